package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/events"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/observability"
)

// NotificationService records user lifecycle events in the audit log.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUserAuthenticated, n.handleUserAuthenticated)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	fields := n.baseFields(event)
	if p, ok := event.Payload.(events.UserRegisteredPayload); ok {
		fields = append(fields, zap.String("email", p.Email), zap.String("role", p.Role))
	}
	n.logger.Info("UserRegistered", fields...)
	n.metrics.RecordEvent(string(event.Type))
	return nil
}

func (n *NotificationService) handleUserAuthenticated(_ context.Context, event events.Event) error {
	fields := n.baseFields(event)
	if p, ok := event.Payload.(events.UserAuthenticatedPayload); ok {
		fields = append(fields, zap.String("email", p.Email), zap.String("roles", p.Roles))
	}
	n.logger.Info("UserAuthenticated", fields...)
	n.metrics.RecordEvent(string(event.Type))
	return nil
}

func (n *NotificationService) baseFields(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.Int64("user_id", event.UserID),
		zap.Time("occurred_at", event.Timestamp),
	}
}

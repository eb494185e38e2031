package worker

import (
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/service"
)

// StartNotificationWorker registers the audit handlers on the dispatcher.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

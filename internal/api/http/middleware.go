package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/dto"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/observability"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as logging, timeouts and error rendering.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
					logger.Error("request failed",
						zap.String("request_id", observability.RequestID(c)),
						zap.String("code", domainErr.Code),
						zap.NamedError("cause", domainErr.Err))
				}
				err = renderError(c, domainErr)
			}
		}()
		return c.Next()
	}
}

// ErrorHandler renders errors that escape the middleware chain, such as
// unmatched routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return renderError(c, toDomainError(err))
}

// toDomainError also classifies fiber's own errors (404 route, 405, body limits).
func toDomainError(err error) *apperrors.DomainError {
	if fe, ok := err.(*fiber.Error); ok {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return apperrors.NewDomainError(apperrors.KindNotFound, apperrors.CodeNotFound, fe.Message)
		case fe.Code < fiber.StatusInternalServerError:
			de := apperrors.NewDomainError(apperrors.KindValidation, apperrors.CodeInvalidPayload, fe.Message)
			de.HTTPStatus = fe.Code
			return de
		}
	}
	return apperrors.ToDomainError(err)
}

func renderError(c *fiber.Ctx, de *apperrors.DomainError) error {
	return c.Status(de.HTTPStatus).JSON(dto.ErrorResponse{
		Code:    de.Code,
		Message: de.Message,
		Status:  de.HTTPStatus,
	})
}

package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/dto"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

// AuthService is the subset of service.AuthService used by the handler.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/v1/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(apperrors.CodeInvalidPayload, "invalid payload")
	}
	if req.CorreoElectronico == "" || req.Password == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingFields, "correoElectronico and password required")
	}

	token, err := h.auth.Login(c.UserContext(), req.CorreoElectronico, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

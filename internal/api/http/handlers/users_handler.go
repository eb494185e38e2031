package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/dto"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/auth"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

// DocumentNumberParam names the path and query parameter used for lookups.
const DocumentNumberParam = "documentNumber"

// UserService is the subset of service.UserService used by the handler.
type UserService interface {
	CreateUser(ctx context.Context, in domain.RegistrationInput) (*domain.User, error)
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// UsersHandler exposes user registration and lookup endpoints.
type UsersHandler struct {
	users UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /api/v1/usuarios.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError(apperrors.CodeInvalidPayload, "invalid payload")
	}

	user, err := h.users.CreateUser(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// GetByDocument handles GET /api/v1/usuarios/:documentNumber and
// GET /api/v1/usuarios?documentNumber=.
func (h *UsersHandler) GetByDocument(c *fiber.Ctx) error {
	documentNumber := c.Params(DocumentNumberParam)
	if documentNumber != "" {
		if unescaped, err := url.PathUnescape(documentNumber); err == nil {
			documentNumber = unescaped
		}
	} else {
		documentNumber = c.Query(DocumentNumberParam)
	}
	// Params and Query alias the request buffer, which fiber reuses.
	documentNumber = utils.CopyString(strings.TrimSpace(documentNumber))
	if documentNumber == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingFields, "documentNumber is required")
	}

	user, err := h.users.FindByDocumentNumber(c.UserContext(), documentNumber)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Me handles GET /api/v1/usuarios/me for the authenticated caller.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := strconv.ParseInt(principal.Subject, 10, 64)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token subject")
	}

	user, err := h.users.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

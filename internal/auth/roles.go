package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

// RequireAuthenticated ensures some principal is attached to the request.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the principal holds at least one of the allowed roles.
func RequireAnyRole(allowed ...string) fiber.Handler {
	authorities := make([]string, 0, len(allowed))
	for _, role := range allowed {
		authorities = append(authorities, domain.Authority(role))
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		for _, authority := range authorities {
			if principal.HasAuthority(authority) {
				return c.Next()
			}
		}
		return apperrors.NewForbidden("insufficient role")
	}
}

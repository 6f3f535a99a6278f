package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// Require rejects callers whose account role is not in the allowed set.
// It must run after Authenticate so the uid is already in the context.
func (m *RoleMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify account role")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
		}
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}

func (m *RoleMiddleware) LandlordOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleLandlord, entity.RoleAdmin)(next)
}

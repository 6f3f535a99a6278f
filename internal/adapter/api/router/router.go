package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, authClient *auth.Client) {
	SetupHealthRouter(e)
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware, roleMiddleware, authClient)
	SetupFavoriteRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
}

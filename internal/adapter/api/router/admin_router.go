package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/handler"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	adminGroup := e.Group("/v1/admin")
	adminGroup.Use(authMiddleware.Authenticate)
	adminGroup.Use(roleMiddleware.AdminOnly)

	adminGroup.GET("/listings", adminHandler.ListListings)
	adminGroup.PATCH("/listings/:id/approve", adminHandler.ApproveListing)
	adminGroup.PATCH("/listings/:id/reject", adminHandler.RejectListing)
	adminGroup.PATCH("/listings/:id/featured", adminHandler.SetFeatured)
}

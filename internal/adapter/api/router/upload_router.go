package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/handler"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploadGroup := e.Group("/v1/uploads")
	uploadGroup.Use(authMiddleware.Authenticate)
	uploadGroup.Use(roleMiddleware.LandlordOnly)

	uploadGroup.POST("/images", uploadHandler.UploadListingImage)
}

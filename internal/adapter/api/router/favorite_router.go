package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/handler"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favoriteGroup := e.Group("/v1/favorites")
	favoriteGroup.Use(authMiddleware.Authenticate)

	favoriteGroup.GET("", favoriteHandler.ListFavorites)
	favoriteGroup.GET("/count", favoriteHandler.GetFavoriteCount)
	favoriteGroup.POST("/:listingId", favoriteHandler.AddFavorite)
	favoriteGroup.DELETE("/:listingId", favoriteHandler.RemoveFavorite)
	favoriteGroup.POST("/:listingId/toggle", favoriteHandler.ToggleFavorite)
	favoriteGroup.GET("/:listingId/status", favoriteHandler.CheckFavoriteStatus)
}

package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/handler"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, authClient *auth.Client) {
	listingHandler := handler.GetListingHandler()

	// Public browse endpoints. The detail page accepts an optional token
	// so it can mark whether the caller already favorited the listing.
	publicGroup := e.Group("/v1/listings")
	publicGroup.GET("", listingHandler.BrowseListings)
	publicGroup.GET("/search", listingHandler.SearchListings)
	publicGroup.GET("/:id", listingHandler.GetListing, VerifyToken(authClient))

	// Landlord management endpoints.
	myGroup := e.Group("/v1/my-listings")
	myGroup.Use(authMiddleware.Authenticate)
	myGroup.Use(roleMiddleware.LandlordOnly)

	myGroup.GET("", listingHandler.ListMyListings)
	myGroup.GET("/stats", listingHandler.GetDashboardStats)
	myGroup.POST("", listingHandler.CreateListing)
	myGroup.PUT("/:id", listingHandler.UpdateListing)
	myGroup.PATCH("/:id/status", listingHandler.SetListingStatus)
	myGroup.DELETE("/:id", listingHandler.DeleteListing)
}

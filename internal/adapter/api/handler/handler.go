package handler

import (
	"github.com/Promisekel/rent-easy-gh/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	listingHandler  *ListingHandler
	favoriteHandler *FavoriteHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase, favoriteUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

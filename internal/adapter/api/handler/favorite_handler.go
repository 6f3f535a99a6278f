package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("listingId")

	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("listingId")

	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	if err := h.favoriteUseCase.Remove(c.Request().Context(), userID, listingID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing removed from favorites successfully",
	})
}

func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("listingId")

	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	favorited, err := h.favoriteUseCase.Toggle(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listing_id":  listingID,
		"is_favorite": favorited,
	})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

func (h *FavoriteHandler) CheckFavoriteStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	listingID := c.Param("listingId")

	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	favorited, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), userID, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listing_id":  listingID,
		"is_favorite": favorited,
	})
}

func (h *FavoriteHandler) GetFavoriteCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.favoriteUseCase.Count(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"count": count,
	})
}

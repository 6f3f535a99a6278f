package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/response"
	"github.com/Promisekel/rent-easy-gh/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListListings(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.adminUseCase.ListListings(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ApproveListing(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.adminUseCase.ApproveListing(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *AdminHandler) RejectListing(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.adminUseCase.RejectListing(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *AdminHandler) SetFeatured(c echo.Context) error {
	id := c.Param("id")

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	listing, err := h.adminUseCase.SetFeatured(c.Request().Context(), id, req.Featured)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

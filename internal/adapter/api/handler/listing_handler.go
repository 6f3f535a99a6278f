package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/search"
	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
	"github.com/Promisekel/rent-easy-gh/pkg/response"
	"github.com/Promisekel/rent-easy-gh/pkg/utils"
)

type ListingHandler struct {
	listingUseCase  *usecase.ListingUseCase
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, favoriteUseCase *usecase.FavoriteUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase:  listingUseCase,
		favoriteUseCase: favoriteUseCase,
	}
}

type listingRequest struct {
	Title         string           `json:"title" validate:"required"`
	Description   string           `json:"description" validate:"required"`
	PropertyType  string           `json:"property_type" validate:"required"`
	Price         float64          `json:"price" validate:"required,gt=0"`
	PaymentTerm   string           `json:"payment_term" validate:"omitempty"`
	Bedrooms      int              `json:"bedrooms" validate:"gte=0"`
	Bathrooms     float64          `json:"bathrooms" validate:"gte=0"`
	Furnished     string           `json:"furnished" validate:"omitempty"`
	Location      entity.Location  `json:"location" validate:"required"`
	Images        []string         `json:"images" validate:"omitempty"`
	Amenities     []string         `json:"amenities" validate:"omitempty"`
	Features      []string         `json:"features" validate:"omitempty"`
	Utilities     entity.Utilities `json:"utilities"`
	Security      *entity.Security `json:"security"`
	Policies      entity.Policies  `json:"policies"`
	Noise         string           `json:"noise" validate:"omitempty"`
	RoadCondition string           `json:"road_condition" validate:"omitempty"`
	RentAdvance   string           `json:"rent_advance" validate:"omitempty"`
}

func (r listingRequest) toInput() usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Title:         r.Title,
		Description:   r.Description,
		PropertyType:  r.PropertyType,
		Price:         r.Price,
		PaymentTerm:   r.PaymentTerm,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Furnished:     r.Furnished,
		Location:      r.Location,
		Images:        r.Images,
		Amenities:     r.Amenities,
		Features:      r.Features,
		Utilities:     r.Utilities,
		Security:      r.Security,
		Policies:      r.Policies,
		Noise:         r.Noise,
		RoadCondition: r.RoadCondition,
		RentAdvance:   r.RentAdvance,
	}
}

// filterSetFromQuery maps browse query parameters onto a filter set. A
// numeric parameter that fails to parse is dropped rather than rejected,
// matching how the browse page treats garbage input.
func filterSetFromQuery(c echo.Context) search.FilterSet {
	f := search.FilterSet{
		Query:           c.QueryParam("q"),
		Region:          c.QueryParam("region"),
		City:            c.QueryParam("city"),
		PropertyType:    c.QueryParam("property_type"),
		Bedrooms:        c.QueryParam("bedrooms"),
		Furnished:       c.QueryParam("furnished"),
		ElectricityType: c.QueryParam("electricity"),
		WaterSource:     c.QueryParam("water_source"),
		NoiseLevel:      c.QueryParam("noise"),
		RoadCondition:   c.QueryParam("road_condition"),
		SecurityLevel:   c.QueryParam("security_level"),
		RentAdvance:     c.QueryParam("rent_advance"),
	}

	if s := c.QueryParam("min_price"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			f.MinPrice = v
		}
	}
	if s := c.QueryParam("max_price"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			f.MaxPrice = v
		}
	}

	f.HasInternet, _ = strconv.ParseBool(c.QueryParam("has_internet"))
	f.HasParking, _ = strconv.ParseBool(c.QueryParam("has_parking"))
	f.HasGenerator, _ = strconv.ParseBool(c.QueryParam("has_generator"))

	return f
}

func (h *ListingHandler) BrowseListings(c echo.Context) error {
	f := filterSetFromQuery(c)
	pagination := utils.GetPaginationParams(c)

	listings, err := h.listingUseCase.Browse(c.Request().Context(), f, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}

// SearchListings is BrowseListings with a required text query.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	if c.QueryParam("q") == "" {
		return response.Error(c, errors.BadRequest("Search query is required", nil))
	}
	return h.BrowseListings(c)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.listingUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	result := map[string]interface{}{
		"listing": listing,
	}

	// Annotate the favorite state when the caller is signed in.
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		favorited, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), uid, id)
		if err != nil {
			logger.Warn("Failed to check favorite state for %s: %v", id, err)
		} else {
			result["is_favorite"] = favorited
		}
	}

	return response.Success(c, result)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), id, userID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.listingUseCase.Delete(c.Request().Context(), id, userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}

func (h *ListingHandler) SetListingStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var req struct {
		Status string `json:"status" validate:"required,oneof=active inactive"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.SetStatus(c.Request().Context(), id, userID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	userID := c.Get("uid").(string)

	listings, err := h.listingUseCase.ListByLandlord(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}

func (h *ListingHandler) GetDashboardStats(c echo.Context) error {
	userID := c.Get("uid").(string)

	stats, err := h.listingUseCase.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/internal/domain/search"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
)

// browseFetchLimit bounds the snapshot pulled for a browse scan. Listing
// collections in this domain stay in the hundreds, so a full scan under
// this cap is the whole collection.
const browseFetchLimit = 500

type ListingUseCase struct {
	listingRepo  repository.ListingRepository
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	storage      StorageClient
	cache        ListingCache
	autoApprove  bool
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	storage StorageClient,
	cache ListingCache,
	autoApprove bool,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:  listingRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		storage:      storage,
		cache:        cache,
		autoApprove:  autoApprove,
	}
}

type CreateListingInput struct {
	Title         string
	Description   string
	PropertyType  string
	Price         float64
	PaymentTerm   string
	Bedrooms      int
	Bathrooms     float64
	Furnished     string
	Location      entity.Location
	Images        []string
	Amenities     []string
	Features      []string
	Utilities     entity.Utilities
	Security      *entity.Security
	Policies      entity.Policies
	Noise         string
	RoadCondition string
	RentAdvance   string
}

func validateListingInput(input CreateListingInput) error {
	if n := len(input.Title); n < entity.TitleMinLength || n > entity.TitleMaxLength {
		return errors.BadRequest(fmt.Sprintf("Title must be between %d and %d characters", entity.TitleMinLength, entity.TitleMaxLength), nil)
	}
	if n := len(input.Description); n < entity.DescriptionMinLength || n > entity.DescriptionMaxLength {
		return errors.BadRequest(fmt.Sprintf("Description must be between %d and %d characters", entity.DescriptionMinLength, entity.DescriptionMaxLength), nil)
	}
	if input.Price < entity.PriceMin || input.Price > entity.PriceMax {
		return errors.BadRequest(fmt.Sprintf("Price must be between %d and %d", entity.PriceMin, entity.PriceMax), nil)
	}
	if input.Bedrooms < 0 {
		return errors.BadRequest("Bedrooms cannot be negative", nil)
	}
	if input.Bathrooms < 0 {
		return errors.BadRequest("Bathrooms cannot be negative", nil)
	}
	if !entity.IsGhanaRegion(input.Location.Region) {
		return errors.BadRequest("Region must be one of the sixteen Ghana regions", nil)
	}
	if input.Location.City == "" {
		return errors.BadRequest("City is required", nil)
	}
	if len(input.Images) > entity.MaxListingImages {
		return errors.BadRequest(fmt.Sprintf("A listing may have at most %d images", entity.MaxListingImages), nil)
	}
	return nil
}

func (uc *ListingUseCase) Create(ctx context.Context, landlordID string, input CreateListingInput) (*entity.Listing, error) {
	landlord, err := uc.userRepo.GetByID(ctx, landlordID)
	if err != nil {
		return nil, errors.BadRequest("Invalid landlord", err)
	}
	if landlord.Role != entity.RoleLandlord && landlord.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Only landlords can create listings", nil)
	}

	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	status := entity.ListingStatusPending
	if uc.autoApprove {
		status = entity.ListingStatusActive
	}

	now := time.Now()
	listing := &entity.Listing{
		LandlordID: landlordID,
		LandlordInfo: entity.LandlordInfo{
			Name:  landlord.DisplayName(),
			Phone: landlord.Phone,
			Email: landlord.Email,
		},
		Title:         input.Title,
		Description:   input.Description,
		PropertyType:  input.PropertyType,
		Price:         input.Price,
		PaymentTerm:   input.PaymentTerm,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		Furnished:     input.Furnished,
		Location:      input.Location,
		Images:        input.Images,
		Amenities:     input.Amenities,
		Features:      input.Features,
		Utilities:     input.Utilities,
		Security:      input.Security,
		Policies:      input.Policies,
		Noise:         input.Noise,
		RoadCondition: input.RoadCondition,
		RentAdvance:   input.RentAdvance,
		Status:        status,
		Featured:      false,
		Views:         0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) Update(ctx context.Context, id, callerID string, input CreateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.requireOwnerOrAdmin(ctx, listing, callerID); err != nil {
		return nil, err
	}

	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.PropertyType = input.PropertyType
	listing.Price = input.Price
	listing.PaymentTerm = input.PaymentTerm
	listing.Bedrooms = input.Bedrooms
	listing.Bathrooms = input.Bathrooms
	listing.Furnished = input.Furnished
	listing.Location = input.Location
	listing.Amenities = input.Amenities
	listing.Features = input.Features
	listing.Utilities = input.Utilities
	listing.Security = input.Security
	listing.Policies = input.Policies
	listing.Noise = input.Noise
	listing.RoadCondition = input.RoadCondition
	listing.RentAdvance = input.RentAdvance
	if len(input.Images) > 0 {
		listing.Images = input.Images
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetByID returns the listing and records the view. The increment runs in
// the background with its own deadline: it is an analytics signal and must
// never delay or fail the page that asked for the listing.
func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
			logger.Warn("Failed to increment views for listing %s: %v", id, err)
		}
	}()

	return listing, nil
}

// Browse returns the active listings matching the filter set, newest
// first, truncated to limit when limit is positive. Equality constraints
// are pushed down to the store; the in-process scan re-applies the full
// filter, so a store that ignored them still yields a correct result.
func (uc *ListingUseCase) Browse(ctx context.Context, f search.FilterSet, limit int) ([]*entity.Listing, error) {
	q := repository.ListingQuery{
		Region:       f.Region,
		City:         f.City,
		PropertyType: f.PropertyType,
		Limit:        browseFetchLimit,
	}
	if n, err := strconv.Atoi(f.Bedrooms); err == nil && n > 0 {
		q.Bedrooms = n
	}

	var listings []*entity.Listing
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, q); ok {
			listings = cached
		}
	}

	if listings == nil {
		var err error
		listings, err = uc.listingRepo.ListActive(ctx, q)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.Set(ctx, q, listings)
		}
	}

	return search.Apply(listings, f, limit), nil
}

func (uc *ListingUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByLandlord(ctx, landlordID)
}

type DashboardStats struct {
	TotalListings    int `json:"total_listings"`
	ActiveListings   int `json:"active_listings"`
	PendingListings  int `json:"pending_listings"`
	FeaturedListings int `json:"featured_listings"`
	TotalViews       int `json:"total_views"`
}

func (uc *ListingUseCase) Stats(ctx context.Context, landlordID string) (*DashboardStats, error) {
	listings, err := uc.listingRepo.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalListings: len(listings)}
	for _, l := range listings {
		stats.TotalViews += l.Views
		if l.Featured {
			stats.FeaturedListings++
		}
		switch l.Status {
		case entity.ListingStatusActive:
			stats.ActiveListings++
		case entity.ListingStatusPending:
			stats.PendingListings++
		}
	}

	return stats, nil
}

// SetStatus lets the owning landlord take a listing off the market and
// put it back. Moderation transitions belong to the admin methods.
func (uc *ListingUseCase) SetStatus(ctx context.Context, id, callerID, status string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.requireOwnerOrAdmin(ctx, listing, callerID); err != nil {
		return nil, err
	}

	if status != entity.ListingStatusActive && status != entity.ListingStatusInactive {
		return nil, errors.BadRequest("Status must be active or inactive", nil)
	}
	if !entity.CanTransitionStatus(listing.Status, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Cannot change status from %s to %s", listing.Status, status), nil)
	}

	if err := uc.listingRepo.UpdateFields(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	listing.Status = status

	return listing, nil
}

// Delete removes the listing permanently, cascading its stored images and
// favorites. Cleanup is best effort: a blob or favorite left behind is
// logged, not surfaced.
func (uc *ListingUseCase) Delete(ctx context.Context, id, callerID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.requireOwnerOrAdmin(ctx, listing, callerID); err != nil {
		return err
	}

	if uc.storage != nil {
		for _, url := range listing.Images {
			if err := uc.storage.DeleteByURL(ctx, url); err != nil {
				logger.Warn("Failed to delete image %s for listing %s: %v", url, id, err)
			}
		}
	}

	if err := uc.favoriteRepo.RemoveByListing(ctx, id); err != nil {
		logger.Warn("Failed to clean up favorites for listing %s: %v", id, err)
	}

	return uc.listingRepo.Delete(ctx, id)
}

func (uc *ListingUseCase) requireOwnerOrAdmin(ctx context.Context, listing *entity.Listing, callerID string) error {
	if listing.LandlordID == callerID {
		return nil
	}

	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return errors.Forbidden("You don't have permission to modify this listing", err)
	}
	if caller.Role != entity.RoleAdmin {
		return errors.Forbidden("You don't have permission to modify this listing", nil)
	}
	return nil
}

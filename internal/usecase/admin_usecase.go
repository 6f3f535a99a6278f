package usecase

import (
	"context"
	"fmt"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
)

// AdminUseCase carries the moderation operations. Route-level middleware
// guarantees the caller is an admin before any of these run.
type AdminUseCase struct {
	listingRepo repository.ListingRepository
}

func NewAdminUseCase(listingRepo repository.ListingRepository) *AdminUseCase {
	return &AdminUseCase{listingRepo: listingRepo}
}

func (uc *AdminUseCase) ListListings(ctx context.Context, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.ListByStatus(ctx, status, limit, offset)
}

func (uc *AdminUseCase) ApproveListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.moderate(ctx, id, entity.ListingStatusActive)
}

func (uc *AdminUseCase) RejectListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.moderate(ctx, id, entity.ListingStatusRejected)
}

func (uc *AdminUseCase) moderate(ctx context.Context, id, status string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
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

// SetFeatured flips the promotional flag. Featured is independent of
// status, so no transition check applies.
func (uc *AdminUseCase) SetFeatured(ctx context.Context, id string, featured bool) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.listingRepo.UpdateFields(ctx, id, map[string]interface{}{"featured": featured}); err != nil {
		return nil, err
	}
	listing.Featured = featured

	return listing, nil
}

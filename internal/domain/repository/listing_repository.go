package repository

import (
	"context"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
)

// ListingQuery carries the equality constraints that are pushed down to
// the store query. Price bounds are not pushed down: Firestore requires
// the inequality field to lead the ordering, which would break the
// createdAt-descending contract. Callers must not assume the store
// applied any constraint: the in-process search engine re-checks every
// filter over the returned set.
type ListingQuery struct {
	Region       string
	City         string
	PropertyType string
	Bedrooms     int // 0 means unset
	Limit        int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// ListActive returns active listings ordered by creation time
	// descending.
	ListActive(ctx context.Context, q ListingQuery) ([]*entity.Listing, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Listing, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
)

type FavoriteRepository interface {
	// Add creates the relation, failing with a CONFLICT error if the
	// (userID, listingID) pair already exists.
	Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error)

	// Remove deletes the relation, failing with NOT_FOUND if absent.
	Remove(ctx context.Context, userID, listingID string) error

	Exists(ctx context.Context, userID, listingID string) (bool, error)

	// ListByUser returns the user's favorites ordered by addedAt descending.
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)

	CountByUser(ctx context.Context, userID string) (int64, error)

	// RemoveByListing deletes every favorite pointing at a listing. Used
	// when a listing is hard-deleted.
	RemoveByListing(ctx context.Context, listingID string) error
}

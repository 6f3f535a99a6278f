package usecase

import (
	"context"
	"sync"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository

	// togglesMu guards toggleLocks; each pair lock serializes Toggle
	// calls for one (userID, listingID) pair so a double-click cannot
	// interleave its read-modify-write with itself.
	togglesMu   sync.Mutex
	toggleLocks map[string]*sync.Mutex
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		toggleLocks:  make(map[string]*sync.Mutex),
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	return uc.favoriteRepo.Add(ctx, userID, listingID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, listingID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, listingID)
}

// Toggle adds the favorite if absent and removes it if present, returning
// the resulting favorited state. Calls for the same pair are serialized.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID, listingID string) (bool, error) {
	lock := uc.pairLock(entity.FavoriteID(userID, listingID))
	lock.Lock()
	defer lock.Unlock()

	exists, err := uc.favoriteRepo.Exists(ctx, userID, listingID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, userID, listingID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := uc.favoriteRepo.Add(ctx, userID, listingID); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *FavoriteUseCase) pairLock(key string) *sync.Mutex {
	uc.togglesMu.Lock()
	defer uc.togglesMu.Unlock()

	lock, ok := uc.toggleLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.toggleLocks[key] = lock
	}
	return lock
}

// ListForUser returns the user's favorites newest first, each hydrated
// with its listing. A favorite whose listing has since been deleted is a
// tombstone: it is skipped, never an error.
func (uc *FavoriteUseCase) ListForUser(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]entity.FavoriteWithListing, 0, len(favorites))
	for _, f := range favorites {
		listing, err := uc.listingRepo.GetByID(ctx, f.ListingID)
		if err != nil {
			if errors.IsNotFound(err) {
				logger.Debug("Skipping orphaned favorite %s", f.ID)
				continue
			}
			return nil, err
		}

		result = append(result, entity.FavoriteWithListing{
			ID:        f.ID,
			UserID:    f.UserID,
			ListingID: f.ListingID,
			Listing:   listing,
			AddedAt:   f.AddedAt,
		})
	}

	return result, nil
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, listingID)
}

func (uc *FavoriteUseCase) Count(ctx context.Context, userID string) (int64, error) {
	return uc.favoriteRepo.CountByUser(ctx, userID)
}

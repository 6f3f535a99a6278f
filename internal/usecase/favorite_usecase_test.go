package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
)

func seedListing(t *testing.T, repo *fakeListingRepo, id string) {
	t.Helper()
	err := repo.Create(context.Background(), &entity.Listing{
		ID:        id,
		Status:    entity.ListingStatusActive,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestAddFavorite(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)

	favorite, err := uc.Add(context.Background(), "u1", "l1")
	require.NoError(t, err)
	assert.Equal(t, "u1_l1", favorite.ID)
	assert.False(t, favorite.AddedAt.IsZero())
}

func TestAddFavoriteDuplicateConflict(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)

	_, err := uc.Add(context.Background(), "u1", "l1")
	require.NoError(t, err)

	_, err = uc.Add(context.Background(), "u1", "l1")
	assert.True(t, errors.IsConflict(err))

	count, err := uc.Count(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteMissingListing(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo(), newFakeListingRepo())

	_, err := uc.Add(context.Background(), "u1", "ghost")
	assert.True(t, errors.IsNotFound(err))
}

func TestRemoveFavoriteAbsent(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo(), newFakeListingRepo())

	err := uc.Remove(context.Background(), "u1", "l1")
	assert.True(t, errors.IsNotFound(err))
}

func TestAddRemoveAddCycle(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", "l1")
	require.NoError(t, err)
	require.NoError(t, uc.Remove(ctx, "u1", "l1"))

	_, err = uc.Add(ctx, "u1", "l1")
	assert.NoError(t, err)
}

func TestToggleFlipsState(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	favorited, err := uc.Toggle(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = uc.Toggle(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.False(t, favorited)

	exists, err := uc.IsFavorite(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleConcurrentSamePair(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	const toggles = 10

	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Toggle(ctx, "u1", "l1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// An even number of serialized toggles lands back where it started.
	exists, err := uc.IsFavorite(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListForUserNewestFirst(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")
	seedListing(t, listingRepo, "l2")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	// Control addedAt explicitly so ordering is deterministic.
	favoriteRepo.favorites["u1_l1"] = &entity.Favorite{
		ID: "u1_l1", UserID: "u1", ListingID: "l1", AddedAt: time.Now().Add(-time.Hour),
	}
	favoriteRepo.favorites["u1_l2"] = &entity.Favorite{
		ID: "u1_l2", UserID: "u1", ListingID: "l2", AddedAt: time.Now(),
	}

	result, err := uc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "l2", result[0].ListingID)
	assert.Equal(t, "l1", result[1].ListingID)
	assert.NotNil(t, result[0].Listing)
}

func TestListForUserSkipsOrphans(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")
	seedListing(t, listingRepo, "l2")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", "l1")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "u1", "l2")
	require.NoError(t, err)

	// The listing disappears while the favorite row lingers.
	require.NoError(t, listingRepo.Delete(ctx, "l1"))

	result, err := uc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "l2", result[0].ListingID)
}

func TestCountPerUser(t *testing.T) {
	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	seedListing(t, listingRepo, "l1")

	uc := NewFavoriteUseCase(favoriteRepo, listingRepo)
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", "l1")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "u2", "l1")
	require.NoError(t, err)

	count, err := uc.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

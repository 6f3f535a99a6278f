package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	exists, err := r.Exists(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Listing is already in favorites", nil)
	}

	favorite := entity.Favorite{
		ID:        entity.FavoriteID(userID, listingID),
		UserID:    userID,
		ListingID: listingID,
		AddedAt:   time.Now(),
	}

	_, err = r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	exists, err := r.Exists(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Favorite", nil)
	}

	_, err = r.client.Collection("favorites").Doc(entity.FavoriteID(userID, listingID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(entity.FavoriteID(userID, listingID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	query := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("addedAt", firestore.Desc)

	iter := query.Documents(ctx)
	var favorites []*entity.Favorite

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate favorites", err)
		}
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			logger.Warn("Skipping malformed favorite %s: %v", doc.Ref.ID, err)
			continue
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

func (r *firestoreFavoriteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("favorites").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count favorites", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreFavoriteRepository) RemoveByListing(ctx context.Context, listingID string) error {
	docs, err := r.client.Collection("favorites").
		Where("listingId", "==", listingID).
		Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to list favorites for listing", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			logger.Warn("Failed to delete favorite %s: %v", doc.Ref.ID, err)
		}
	}

	return nil
}

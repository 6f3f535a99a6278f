package usecase

import (
	"context"
	"io"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

type StorageClient interface {
	UploadListingImage(ctx context.Context, file io.Reader, contentType string) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

// ListingCache caches browse snapshots keyed by their store query. A nil
// cache is valid and means caching is disabled.
type ListingCache interface {
	Get(ctx context.Context, q repository.ListingQuery) ([]*entity.Listing, bool)
	Set(ctx context.Context, q repository.ListingQuery, listings []*entity.Listing)
}

package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
)

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
	seq      int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("listing-%d", r.seq)
	}
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	clone := *l
	return &clone, nil
}

func (r *fakeListingRepo) ListActive(ctx context.Context, q repository.ListingQuery) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Listing
	for _, l := range r.listings {
		if l.Status != entity.ListingStatusActive {
			continue
		}
		if q.Region != "" && l.Location.Region != q.Region {
			continue
		}
		if q.City != "" && l.Location.City != q.City {
			continue
		}
		if q.PropertyType != "" && l.PropertyType != q.PropertyType {
			continue
		}
		if q.Bedrooms > 0 && l.Bedrooms != q.Bedrooms {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeListingRepo) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Listing
	for _, l := range r.listings {
		if l.LandlordID == landlordID {
			clone := *l
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeListingRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Listing
	for _, l := range r.listings {
		if status != "" && l.Status != status {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	if v, ok := fields["status"].(string); ok {
		l.Status = v
	}
	if v, ok := fields["featured"].(bool); ok {
		l.Featured = v
	}
	l.UpdatedAt = time.Now()
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	l.Views++
	return nil
}

func (r *fakeListingRepo) views(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		return l.Views
	}
	return -1
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*entity.Favorite)}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.FavoriteID(userID, listingID)
	if _, ok := r.favorites[id]; ok {
		return nil, errors.Conflict("Listing is already in favorites", nil)
	}
	f := &entity.Favorite{
		ID:        id,
		UserID:    userID,
		ListingID: listingID,
		AddedAt:   time.Now(),
	}
	r.favorites[id] = f
	clone := *f
	return &clone, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.FavoriteID(userID, listingID)
	if _, ok := r.favorites[id]; !ok {
		return errors.NotFound("Favorite", nil)
	}
	delete(r.favorites, id)
	return nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.favorites[entity.FavoriteID(userID, listingID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out, nil
}

func (r *fakeFavoriteRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, f := range r.favorites {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFavoriteRepo) RemoveByListing(ctx context.Context, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, f := range r.favorites {
		if f.ListingID == listingID {
			delete(r.favorites, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeStorageClient struct {
	mu      sync.Mutex
	deleted []string
}

func (s *fakeStorageClient) UploadListingImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	return "https://storage.googleapis.com/test-bucket/listings/fake.jpg", nil
}

func (s *fakeStorageClient) DeleteByURL(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Promisekel/rent-easy-gh/internal/domain/entity"
	"github.com/Promisekel/rent-easy-gh/internal/domain/repository"
	"github.com/Promisekel/rent-easy-gh/pkg/logger"
)

// ListingCache is a short-TTL cache in front of the active-listing browse
// query. It stores the raw store snapshot, before in-process filtering,
// and every failure degrades to a miss so Firestore stays the source of
// truth.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(addr, password string, ttl time.Duration) *ListingCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &ListingCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ListingCache) Get(ctx context.Context, q repository.ListingQuery) ([]*entity.Listing, bool) {
	data, err := c.client.Get(ctx, key(q)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Listing cache read failed: %v", err)
		return nil, false
	}

	var listings []*entity.Listing
	if err := json.Unmarshal([]byte(data), &listings); err != nil {
		logger.Warn("Listing cache decode failed: %v", err)
		return nil, false
	}

	return listings, true
}

func (c *ListingCache) Set(ctx context.Context, q repository.ListingQuery, listings []*entity.Listing) {
	data, err := json.Marshal(listings)
	if err != nil {
		logger.Warn("Listing cache encode failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, key(q), data, c.ttl).Err(); err != nil {
		logger.Warn("Listing cache write failed: %v", err)
	}
}

func (c *ListingCache) Close() error {
	return c.client.Close()
}

func key(q repository.ListingQuery) string {
	raw := fmt.Sprintf("region=%s:city=%s:type=%s:bedrooms=%d:limit=%d",
		q.Region, q.City, q.PropertyType, q.Bedrooms, q.Limit)

	hash := md5.Sum([]byte(raw))
	return "listings:active:" + hex.EncodeToString(hash[:])
}

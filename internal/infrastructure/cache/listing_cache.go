package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
)

// ListingCache is a redis cache-aside layer in front of listing lookups
// by id. A miss returns (nil, nil).
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func listingKey(id string) string { return "listing:" + id }

func (c *ListingCache) Get(ctx context.Context, id string) (*entity.Listing, error) {
	data, err := c.client.Get(ctx, listingKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var l entity.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *ListingCache) Set(ctx context.Context, l *entity.Listing) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey(l.ID), data, c.ttl).Err()
}

func (c *ListingCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, listingKey(id)).Err()
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
)

func newTestCache(t *testing.T) (*ListingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListingCache(client, time.Hour), mr
}

func sampleListing() *entity.Listing {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Listing{
		ID:          "64f0c2a1b3d4e5f607182930",
		Title:       "2019 Toyota Corolla",
		Description: "Single owner, clean title.",
		Tags:        []string{"toyota", "sedan"},
		OwnerEmail:  "alice@example.com",
		Images:      []string{"https://img.example.com/1.jpg"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestListingCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss is nil nil", func(t *testing.T) {
		c, _ := newTestCache(t)

		got, err := c.Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		c, _ := newTestCache(t)
		l := sampleListing()

		require.NoError(t, c.Set(ctx, l))
		got, err := c.Get(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, l, got)
	})

	t.Run("entries expire with the ttl", func(t *testing.T) {
		c, mr := newTestCache(t)
		l := sampleListing()

		require.NoError(t, c.Set(ctx, l))
		mr.FastForward(time.Hour + time.Minute)

		got, err := c.Get(ctx, l.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c, _ := newTestCache(t)
		l := sampleListing()

		require.NoError(t, c.Set(ctx, l))
		require.NoError(t, c.Delete(ctx, l.ID))

		got, err := c.Get(ctx, l.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

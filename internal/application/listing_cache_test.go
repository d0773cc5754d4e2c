package application

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/carhub-dev/carhub-api/internal/domain/repository"
	"github.com/carhub-dev/carhub-api/internal/infrastructure/cache"
)

func newCachedListingService(t *testing.T, listings *fakeListingRepo) *ListingService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListingService(listings, cache.NewListingCache(client, time.Hour), testLogger())
}

func TestListingCacheAside(t *testing.T) {
	ctx := context.Background()

	t.Run("reads are served from the cache once populated", func(t *testing.T) {
		listings := newFakeListingRepo()
		svc := newCachedListingService(t, listings)

		l, err := svc.Create(ctx, validCreateInput("alice@example.com"))
		require.NoError(t, err)

		// mutate the store behind the service's back; the cached copy from
		// Create still answers the read
		_, err = listings.Update(ctx, l.ID, repo.ListingUpdate{Title: strp("changed upstream")})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "2019 Toyota Corolla", got.Title)
	})

	t.Run("a miss falls through to the store and populates the cache", func(t *testing.T) {
		listings := newFakeListingRepo()
		svc := newCachedListingService(t, listings)

		// seed the store directly so nothing is cached yet
		seeded := validCreateInput("alice@example.com")
		direct := newListingService(listings)
		l, err := direct.Create(ctx, seeded)
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.Title, got.Title)

		// second read is answered by the cache: a store change is invisible
		_, err = listings.Update(ctx, l.ID, repo.ListingUpdate{Title: strp("changed upstream")})
		require.NoError(t, err)

		again, err := svc.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.Title, again.Title)
	})

	t.Run("update invalidates so the next read is fresh", func(t *testing.T) {
		listings := newFakeListingRepo()
		svc := newCachedListingService(t, listings)

		l, err := svc.Create(ctx, validCreateInput("alice@example.com"))
		require.NoError(t, err)
		_, err = svc.GetByID(ctx, l.ID) // cached
		require.NoError(t, err)

		_, err = svc.Update(ctx, l.ID, "alice@example.com", UpdateListingInput{
			Title: strp("2020 Toyota Corolla"),
		})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "2020 Toyota Corolla", got.Title)
	})

	t.Run("delete invalidates the cached entry", func(t *testing.T) {
		listings := newFakeListingRepo()
		svc := newCachedListingService(t, listings)

		l, err := svc.Create(ctx, validCreateInput("alice@example.com"))
		require.NoError(t, err)
		_, err = svc.GetByID(ctx, l.ID) // cached
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, l.ID, "alice@example.com"))

		_, err = svc.GetByID(ctx, l.ID)
		assert.ErrorIs(t, err, ErrListingNotFound)
	})
}

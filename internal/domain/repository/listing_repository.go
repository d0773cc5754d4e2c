package repository

import (
	"context"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
)

// ListingUpdate carries a partial field set for a listing. Nil fields are
// left untouched; a non-nil field replaces the stored value wholesale.
type ListingUpdate struct {
	Title       *string
	Description *string
	Tags        []string
	Images      []string
}

// Empty reports whether the update would change nothing.
func (u ListingUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Tags == nil && u.Images == nil
}

// ListingRepository defines the interface for listing persistence and the
// store-owned free-text search.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	FindByID(ctx context.Context, id string) (*entity.Listing, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Listing, error)
	// Update applies the partial field set as a single store-level operation
	// and returns the updated record.
	Update(ctx context.Context, id string, upd ListingUpdate) (*entity.Listing, error)
	Delete(ctx context.Context, id string) error
	// Search runs the text index over title/description/tags. A limit of
	// zero returns all index matches.
	Search(ctx context.Context, query string, limit int64) ([]*entity.Listing, error)
}

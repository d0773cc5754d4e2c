package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	repo "github.com/carhub-dev/carhub-api/internal/domain/repository"
)

// SearchService forwards free-text queries to the store's text index and
// post-filters the hits to the requesting owner. The index itself is not
// owner-scoped.
type SearchService struct {
	Repo   repo.ListingRepository
	Logger *logrus.Logger
}

func NewSearchService(r repo.ListingRepository, logger *logrus.Logger) *SearchService {
	return &SearchService{Repo: r, Logger: logger}
}

// Search returns the owner's hits for query, capped at limit when limit is
// positive. ErrNoResults means the index matched nothing at all; an empty
// slice means the index matched, but nothing belonged to this owner.
func (s *SearchService) Search(ctx context.Context, query, ownerEmail string, limit int64) ([]*entity.Listing, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrMissingQuery
	}
	if strings.TrimSpace(ownerEmail) == "" {
		return nil, ErrMissingOwner
	}

	hits, err := s.Repo.Search(ctx, query, limit)
	if err != nil {
		s.Logger.WithError(err).WithField("query", query).Error("text search failed")
		return nil, err
	}
	if len(hits) == 0 {
		return nil, ErrNoResults
	}

	filtered := make([]*entity.Listing, 0, len(hits))
	for _, l := range hits {
		if l.OwnerEmail == ownerEmail {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

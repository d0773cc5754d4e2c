package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	repo "github.com/carhub-dev/carhub-api/internal/domain/repository"
	"github.com/carhub-dev/carhub-api/internal/infrastructure/cache"
)

// ListingService validates and normalizes incoming listing data, applies
// partial updates and scopes queries by owner email.
type ListingService struct {
	Repo   repo.ListingRepository
	Cache  *cache.ListingCache // optional
	Logger *logrus.Logger
}

func NewListingService(r repo.ListingRepository, c *cache.ListingCache, logger *logrus.Logger) *ListingService {
	return &ListingService{Repo: r, Cache: c, Logger: logger}
}

type CreateListingInput struct {
	OwnerEmail  string
	Title       string
	Description string
	Tags        TagsInput
	Images      []string
}

func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*entity.Listing, error) {
	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "Title is required"
	}
	if in.Description == "" {
		fields["description"] = "Description is required"
	}
	tags := in.Tags.Normalize()
	if !in.Tags.Present() || len(tags) == 0 {
		fields["tags"] = "Tags are required"
	}
	if len(in.Images) < entity.MinImages || len(in.Images) > entity.MaxImages {
		fields["imageUrls"] = "At least one image URL is required, maximum of 10"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	l := &entity.Listing{
		Title:       in.Title,
		Description: in.Description,
		Tags:        tags,
		OwnerEmail:  in.OwnerEmail,
		Images:      in.Images,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		s.Logger.WithError(err).WithField("owner", in.OwnerEmail).Error("listing create failed")
		return nil, err
	}
	s.cacheSet(ctx, l)
	return l, nil
}

// ListByOwner returns the owner's listings in store-native order.
func (s *ListingService) ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Listing, error) {
	return s.Repo.FindByOwner(ctx, ownerEmail)
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, id); err != nil {
			s.Logger.WithError(err).WithField("listing_id", id).Warn("listing cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	l, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	s.cacheSet(ctx, l)
	return l, nil
}

type UpdateListingInput struct {
	Title       *string
	Description *string
	Tags        TagsInput
	Images      []string // nil when the field was omitted
}

// Update applies any subset of title/description/tags/images. A present but
// empty title or description is treated as "no change" — clients cannot
// clear those fields through this path. Images replace the stored array
// wholesale; only the upper bound is re-checked here.
func (s *ListingService) Update(ctx context.Context, id, caller string, in UpdateListingInput) (*entity.Listing, error) {
	fields := map[string]string{}
	if in.Tags.Present() && len(in.Tags.Normalize()) == 0 {
		fields["tags"] = "Tags cannot be empty"
	}
	if in.Images != nil && len(in.Images) > entity.MaxImages {
		fields["imageUrls"] = "Maximum of 10 images allowed"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if current.OwnerEmail != caller {
		return nil, ErrForbidden
	}

	upd := repo.ListingUpdate{}
	if in.Title != nil && *in.Title != "" {
		upd.Title = in.Title
	}
	if in.Description != nil && *in.Description != "" {
		upd.Description = in.Description
	}
	if in.Tags.Present() {
		upd.Tags = in.Tags.Normalize()
	}
	if in.Images != nil {
		upd.Images = in.Images
	}
	// Nothing survived the empty-means-no-change filter; skip the write so
	// updated_at stays put.
	if upd.Empty() {
		return current, nil
	}

	updated, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	s.cacheInvalidate(ctx, id)
	return updated, nil
}

func (s *ListingService) Delete(ctx context.Context, id, caller string) error {
	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	if current.OwnerEmail != caller {
		return ErrForbidden
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func (s *ListingService) cacheSet(ctx context.Context, l *entity.Listing) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, l); err != nil {
		s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("listing cache write failed")
	}
}

func (s *ListingService) cacheInvalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		s.Logger.WithError(err).WithField("listing_id", id).Warn("listing cache invalidate failed")
	}
}

package application

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	repo "github.com/carhub-dev/carhub-api/internal/domain/repository"
)

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.seq++
	u.ID = "user-" + strconv.Itoa(f.seq)
	u.CreatedAt = time.Now().UTC()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

// fakeListingRepo is an in-memory repository.ListingRepository. Search does
// a case-insensitive substring match over title, description and tags,
// standing in for the store's text index.
type fakeListingRepo struct {
	mu       sync.Mutex
	seq      int
	listings map[string]*entity.Listing

	searchErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*entity.Listing{}}
}

func (f *fakeListingRepo) Create(_ context.Context, l *entity.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	l.ID = "listing-" + strconv.Itoa(f.seq)
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingRepo) FindByID(_ context.Context, id string) (*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.listings[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeListingRepo) FindByOwner(_ context.Context, ownerEmail string) ([]*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*entity.Listing{}
	for i := 1; i <= f.seq; i++ {
		l, ok := f.listings["listing-"+strconv.Itoa(i)]
		if ok && l.OwnerEmail == ownerEmail {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Update(_ context.Context, id string, upd repo.ListingUpdate) (*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if upd.Title != nil {
		l.Title = *upd.Title
	}
	if upd.Description != nil {
		l.Description = *upd.Description
	}
	if upd.Tags != nil {
		l.Tags = upd.Tags
	}
	if upd.Images != nil {
		l.Images = upd.Images
	}
	l.UpdatedAt = time.Now().UTC()
	cp := *l
	return &cp, nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.listings[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepo) Search(_ context.Context, query string, limit int64) ([]*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	q := strings.ToLower(query)
	out := []*entity.Listing{}
	for i := 1; i <= f.seq; i++ {
		l, ok := f.listings["listing-"+strconv.Itoa(i)]
		if !ok {
			continue
		}
		hay := strings.ToLower(l.Title + " " + l.Description + " " + strings.Join(l.Tags, " "))
		if strings.Contains(hay, q) {
			cp := *l
			out = append(out, &cp)
			if limit > 0 && int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

var (
	_ repo.UserRepository    = (*fakeUserRepo)(nil)
	_ repo.ListingRepository = (*fakeListingRepo)(nil)
)

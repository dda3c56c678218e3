// Package memory implements the repositories with mutex-guarded maps.
// Data lives for the lifetime of the process only.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

// Store holds every in-memory table. Profiles, SavedListings and Interests
// are views over it implementing the repository interfaces, so foreign keys
// (a saved listing or interest must reference an existing profile) hold.
type Store struct {
	mu        sync.RWMutex
	profiles  map[string]model.Profile
	saved     map[string]map[string]model.SavedListing    // user -> listing -> record
	interests map[string]map[string]model.ListingInterest // listing -> user -> record
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		profiles:  make(map[string]model.Profile),
		saved:     make(map[string]map[string]model.SavedListing),
		interests: make(map[string]map[string]model.ListingInterest),
	}
}

// Profiles implements repository.ProfileRepository.
type Profiles struct{ *Store }

// SavedListings implements repository.SavedListingRepository.
type SavedListings struct{ *Store }

// Interests implements repository.InterestRepository.
type Interests struct{ *Store }

func (s *Store) Profiles() Profiles           { return Profiles{s} }
func (s *Store) SavedListings() SavedListings { return SavedListings{s} }
func (s *Store) Interests() Interests         { return Interests{s} }

var (
	_ repository.ProfileRepository      = Profiles{}
	_ repository.SavedListingRepository = SavedListings{}
	_ repository.InterestRepository     = Interests{}
)

// Create inserts a profile.
func (s Profiles) Create(_ context.Context, p *model.Profile) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; ok {
		return nil, repository.ErrConflict
	}
	if s.emailTakenLocked(p.Email, "") {
		return nil, repository.ErrConflict
	}
	s.profiles[p.ID] = *p
	out := *p
	return &out, nil
}

func (s *Store) emailTakenLocked(email, exceptID string) bool {
	for id, existing := range s.profiles {
		if id != exceptID && strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}

// FindByID returns a copy of the stored profile.
func (s Profiles) FindByID(_ context.Context, id string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

// Update overwrites a profile, keeping its original CreatedAt.
func (s Profiles) Update(_ context.Context, p *model.Profile) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.profiles[p.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if s.emailTakenLocked(p.Email, p.ID) {
		return nil, repository.ErrConflict
	}
	updated := *p
	updated.CreatedAt = existing.CreatedAt
	s.profiles[p.ID] = updated
	return &updated, nil
}

// List pages through profiles newest first.
func (s Profiles) List(_ context.Context, pq repository.PageQuery) (*repository.PageResult[model.Profile], error) {
	s.mu.RLock()
	all := make([]model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		all = append(all, p)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	start := min(max(pq.Offset, 0), total)
	end := total
	if pq.Limit > 0 {
		end = min(start+pq.Limit, total)
	}
	return &repository.PageResult[model.Profile]{Items: all[start:end], Total: total}, nil
}

// Save upserts a bookmark. The user must exist.
func (s SavedListings) Save(_ context.Context, sl *model.SavedListing) (*model.SavedListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[sl.UserID]; !ok {
		return nil, repository.ErrNotFound
	}
	byListing, ok := s.saved[sl.UserID]
	if !ok {
		byListing = make(map[string]model.SavedListing)
		s.saved[sl.UserID] = byListing
	}
	byListing[sl.ListingID] = *sl
	out := *sl
	return &out, nil
}

// Delete removes a bookmark.
func (s SavedListings) Delete(_ context.Context, userID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byListing := s.saved[userID]
	if _, ok := byListing[listingID]; !ok {
		return repository.ErrNotFound
	}
	delete(byListing, listingID)
	if len(byListing) == 0 {
		delete(s.saved, userID)
	}
	return nil
}

// ListByUser returns bookmarks most recent first.
func (s SavedListings) ListByUser(_ context.Context, userID string) ([]model.SavedListing, error) {
	s.mu.RLock()
	items := make([]model.SavedListing, 0, len(s.saved[userID]))
	for _, sl := range s.saved[userID] {
		items = append(items, sl)
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].SavedAt.Equal(items[j].SavedAt) {
			return items[i].ListingID < items[j].ListingID
		}
		return items[i].SavedAt.After(items[j].SavedAt)
	})
	return items, nil
}

// Exists reports whether the bookmark is present.
func (s SavedListings) Exists(_ context.Context, userID, listingID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.saved[userID][listingID]
	return ok, nil
}

// Add records interest; an existing pair is returned unchanged.
func (s Interests) Add(_ context.Context, in *model.ListingInterest) (*model.ListingInterest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[in.UserID]; !ok {
		return nil, repository.ErrNotFound
	}
	byUser, ok := s.interests[in.ListingID]
	if !ok {
		byUser = make(map[string]model.ListingInterest)
		s.interests[in.ListingID] = byUser
	}
	if existing, ok := byUser[in.UserID]; ok {
		return &existing, nil
	}
	byUser[in.UserID] = *in
	out := *in
	return &out, nil
}

// Remove deletes an interest record.
func (s Interests) Remove(_ context.Context, listingID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser := s.interests[listingID]
	if _, ok := byUser[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(byUser, userID)
	if len(byUser) == 0 {
		delete(s.interests, listingID)
	}
	return nil
}

// ListByListing returns interests oldest first.
func (s Interests) ListByListing(_ context.Context, listingID string) ([]model.ListingInterest, error) {
	s.mu.RLock()
	items := make([]model.ListingInterest, 0, len(s.interests[listingID]))
	for _, in := range s.interests[listingID] {
		items = append(items, in)
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].UserID < items[j].UserID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// CountByListing returns the number of interested users.
func (s Interests) CountByListing(_ context.Context, listingID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interests[listingID]), nil
}

// ListByUser returns interests newest first.
func (s Interests) ListByUser(_ context.Context, userID string) ([]model.ListingInterest, error) {
	s.mu.RLock()
	items := make([]model.ListingInterest, 0)
	for _, byUser := range s.interests {
		if in, ok := byUser[userID]; ok {
			items = append(items, in)
		}
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ListingID < items[j].ListingID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

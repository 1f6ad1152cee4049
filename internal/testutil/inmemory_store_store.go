package testutil

import (
	"context"
	"sync"

	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
)

// InMemoryStoreStore implements store.Repository
type InMemoryStoreStore struct {
	*InMemoryStore[*store.Store]

	// guards read-modify-write on counters
	counterMu sync.Mutex

	ratings *InMemoryStore[*store.Rating]
}

// NewInMemoryStoreStore creates a new in-memory store repository
func NewInMemoryStoreStore() *InMemoryStoreStore {
	return &InMemoryStoreStore{
		InMemoryStore: NewInMemoryStore[*store.Store](),
		ratings:       NewInMemoryStore[*store.Rating](),
	}
}

func copyStore(s *store.Store) *store.Store {
	if s == nil {
		return nil
	}
	copied := *s
	if s.FAQ != nil {
		copied.FAQ = append([]byte(nil), s.FAQ...)
	}
	return &copied
}

func (s *InMemoryStoreStore) Create(ctx context.Context, st *store.Store) error {
	if st == nil {
		return ierr.NewError("store cannot be nil").
			WithHint("Store cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, st.ID, copyStore(st)); err != nil {
		return ierr.WithError(err).
			WithHint("A store with this name already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryStoreStore) Get(ctx context.Context, id string) (*store.Store, error) {
	st, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("store not found").
			WithHintf("Store %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyStore(st), nil
}

func (s *InMemoryStoreStore) List(ctx context.Context, filter *types.StoreFilter) ([]*store.Store, error) {
	if filter == nil {
		filter = &types.StoreFilter{}
	}

	items, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, st *store.Store, f interface{}) bool {
			sf := f.(*types.StoreFilter)
			return sf.Category == "" || st.Category == sf.Category
		},
		func(a, b *store.Store) bool {
			return a.Name < b.Name
		},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*store.Store, len(items))
	for i, st := range items {
		result[i] = copyStore(st)
	}
	return result, nil
}

func (s *InMemoryStoreStore) Update(ctx context.Context, id string, update store.Update) error {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()

	st, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return ierr.NewError("store not found").
			WithHintf("Store %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	updated := copyStore(st)
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.LogoURL != nil {
		updated.LogoURL = *update.LogoURL
	}
	if update.Category != nil {
		updated.Category = *update.Category
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.FAQ != nil {
		updated.FAQ = append([]byte(nil), *update.FAQ...)
	}

	return s.InMemoryStore.Update(ctx, id, updated)
}

func (s *InMemoryStoreStore) IncrementStock(ctx context.Context, id string) error {
	return s.adjustCounters(ctx, id, func(st *store.Store) {
		st.Stock++
	})
}

func (s *InMemoryStoreStore) DecrementStock(ctx context.Context, id string) error {
	return s.adjustCounters(ctx, id, func(st *store.Store) {
		if st.Stock > 0 {
			st.Stock--
		}
	})
}

func (s *InMemoryStoreStore) InsertRating(ctx context.Context, rating *store.Rating) error {
	key := rating.UserID + ":" + rating.StoreID
	if err := s.ratings.Create(ctx, key, rating); err != nil {
		return ierr.WithError(err).
			WithHint("You have already rated this store").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryStoreStore) ApplyRating(ctx context.Context, storeID string, rating int) error {
	return s.adjustCounters(ctx, storeID, func(st *store.Store) {
		st.TotalRatings += rating
		st.RatingsCount++
	})
}

func (s *InMemoryStoreStore) adjustCounters(ctx context.Context, id string, fn func(*store.Store)) error {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()

	st, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return ierr.NewError("store not found").
			WithHintf("Store %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	updated := copyStore(st)
	fn(updated)
	return s.InMemoryStore.Update(ctx, id, updated)
}

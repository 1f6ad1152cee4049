package testutil

import (
	"context"
	"sync"

	"github.com/Kal1-linux/CouponCo/internal/domain/category"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
)

// InMemoryCategoryStore implements category.Repository
type InMemoryCategoryStore struct {
	*InMemoryStore[*category.Category]

	// guards the name uniqueness check
	mu sync.Mutex
}

// NewInMemoryCategoryStore creates a new in-memory category store
func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{
		InMemoryStore: NewInMemoryStore[*category.Category](),
	}
}

func (s *InMemoryCategoryStore) Create(ctx context.Context, c *category.Category) error {
	if c == nil {
		return ierr.NewError("category cannot be nil").
			WithHint("Category cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, item *category.Category, _ interface{}) bool {
			return item.Name == c.Name
		}, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ierr.NewError("category already exists").
			WithHintf("Category %s already exists", c.Name).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *c
	return s.InMemoryStore.Create(ctx, c.ID, &copied)
}

func (s *InMemoryCategoryStore) List(ctx context.Context) ([]*category.Category, error) {
	items, err := s.InMemoryStore.List(ctx, nil, nil,
		func(a, b *category.Category) bool {
			return a.Name < b.Name
		},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*category.Category, len(items))
	for i, c := range items {
		copied := *c
		result[i] = &copied
	}
	return result, nil
}

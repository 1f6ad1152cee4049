package testutil

import (
	"context"
	"sync"

	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
)

// InMemoryEventStore implements event.Repository
type InMemoryEventStore struct {
	*InMemoryStore[*event.Event]

	// guards the name uniqueness check
	mu sync.Mutex
}

// NewInMemoryEventStore creates a new in-memory event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		InMemoryStore: NewInMemoryStore[*event.Event](),
	}
}

func (s *InMemoryEventStore) Create(ctx context.Context, e *event.Event) error {
	if e == nil {
		return ierr.NewError("event cannot be nil").
			WithHint("Event cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, item *event.Event, _ interface{}) bool {
			return item.Name == e.Name
		}, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ierr.NewError("event already exists").
			WithHintf("Event %s already exists", e.Name).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *e
	return s.InMemoryStore.Create(ctx, e.ID, &copied)
}

func (s *InMemoryEventStore) Get(ctx context.Context, id string) (*event.Event, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("event not found").
			WithHintf("Event %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	copied := *e
	return &copied, nil
}

func (s *InMemoryEventStore) List(ctx context.Context) ([]*event.Event, error) {
	items, err := s.InMemoryStore.List(ctx, nil, nil,
		func(a, b *event.Event) bool {
			return a.Name < b.Name
		},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*event.Event, len(items))
	for i, e := range items {
		copied := *e
		result[i] = &copied
	}
	return result, nil
}

package testutil

import (
	"context"
	"sync"

	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
)

// InMemoryCouponStore implements coupon.Repository
type InMemoryCouponStore struct {
	*InMemoryStore[*coupon.Coupon]

	counterMu sync.Mutex

	// eventMu guards the coupon-event association set
	eventMu sync.Mutex
	events  map[string]map[string]struct{}
}

// NewInMemoryCouponStore creates a new in-memory coupon store
func NewInMemoryCouponStore() *InMemoryCouponStore {
	return &InMemoryCouponStore{
		InMemoryStore: NewInMemoryStore[*coupon.Coupon](),
		events:        make(map[string]map[string]struct{}),
	}
}

func copyCoupon(c *coupon.Coupon) *coupon.Coupon {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCouponStore) Create(ctx context.Context, c *coupon.Coupon) error {
	if c == nil {
		return ierr.NewError("coupon cannot be nil").
			WithHint("Coupon cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, c.ID, copyCoupon(c)); err != nil {
		return ierr.WithError(err).
			WithHint("A coupon with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryCouponStore) Get(ctx context.Context, id string) (*coupon.Coupon, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("coupon not found").
			WithHintf("Coupon %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyCoupon(c), nil
}

func (s *InMemoryCouponStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("coupon not found").
			WithHintf("Coupon %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryCouponStore) List(ctx context.Context, filter *types.CouponFilter) ([]*coupon.Coupon, error) {
	if filter == nil {
		filter = &types.CouponFilter{}
	}

	items, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, c *coupon.Coupon, f interface{}) bool {
			cf := f.(*types.CouponFilter)
			if cf.StoreID != "" && c.StoreID != cf.StoreID {
				return false
			}
			if cf.Kind != "" && c.Kind != cf.Kind {
				return false
			}
			if cf.Category != "" && c.Category != cf.Category {
				return false
			}
			if cf.EventID != "" && !s.hasEvent(c.ID, cf.EventID) {
				return false
			}
			return true
		},
		func(a, b *coupon.Coupon) bool {
			return a.DueDate.Before(b.DueDate)
		},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*coupon.Coupon, len(items))
	for i, c := range items {
		result[i] = copyCoupon(c)
	}
	return result, nil
}

func (s *InMemoryCouponStore) AttachEvents(ctx context.Context, couponID string, eventIDs []string) error {
	if _, err := s.InMemoryStore.Get(ctx, couponID); err != nil {
		return ierr.NewError("coupon not found").
			WithHintf("Coupon %s was not found", couponID).
			Mark(ierr.ErrNotFound)
	}

	s.eventMu.Lock()
	defer s.eventMu.Unlock()

	set, ok := s.events[couponID]
	if !ok {
		set = make(map[string]struct{})
		s.events[couponID] = set
	}
	for _, eventID := range eventIDs {
		set[eventID] = struct{}{}
	}
	return nil
}

func (s *InMemoryCouponStore) hasEvent(couponID, eventID string) bool {
	s.eventMu.Lock()
	defer s.eventMu.Unlock()

	_, ok := s.events[couponID][eventID]
	return ok
}

func (s *InMemoryCouponStore) IncrementRedemptions(ctx context.Context, id string) error {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()

	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return ierr.NewError("coupon not found").
			WithHintf("Coupon %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	updated := copyCoupon(c)
	updated.TimesRedeemed++
	return s.InMemoryStore.Update(ctx, id, updated)
}

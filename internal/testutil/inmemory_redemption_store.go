package testutil

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
)

// InMemoryRedemptionStore implements redemption.Repository.
// The (user, coupon) pair is the map key, so the create-if-absent check is
// atomic and mirrors the database's unique constraint under concurrency.
type InMemoryRedemptionStore struct {
	*InMemoryStore[*redemption.Redemption]
}

// NewInMemoryRedemptionStore creates a new in-memory redemption ledger
func NewInMemoryRedemptionStore() *InMemoryRedemptionStore {
	return &InMemoryRedemptionStore{
		InMemoryStore: NewInMemoryStore[*redemption.Redemption](),
	}
}

func redemptionKey(userID, couponID string) string {
	return userID + ":" + couponID
}

func (s *InMemoryRedemptionStore) Create(ctx context.Context, red *redemption.Redemption) error {
	if red == nil {
		return ierr.NewError("redemption cannot be nil").
			WithHint("Redemption cannot be nil").
			Mark(ierr.ErrValidation)
	}

	copied := *red
	if err := s.InMemoryStore.Create(ctx, redemptionKey(red.UserID, red.CouponID), &copied); err != nil {
		return ierr.NewError("coupon already redeemed").
			WithHint("You have already redeemed this coupon").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryRedemptionStore) Exists(ctx context.Context, userID, couponID string) (bool, error) {
	_, err := s.InMemoryStore.Get(ctx, redemptionKey(userID, couponID))
	return err == nil, nil
}

func (s *InMemoryRedemptionStore) ListByUser(ctx context.Context, userID string) ([]*redemption.Redemption, error) {
	items, err := s.InMemoryStore.List(ctx, nil,
		func(ctx context.Context, r *redemption.Redemption, _ interface{}) bool {
			return r.UserID == userID
		},
		func(a, b *redemption.Redemption) bool {
			return a.RedeemedAt.After(b.RedeemedAt)
		},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*redemption.Redemption, len(items))
	for i, r := range items {
		copied := *r
		result[i] = &copied
	}
	return result, nil
}

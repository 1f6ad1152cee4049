package coupon

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/types"
)

// Repository defines the interface for coupon data access
type Repository interface {
	Create(ctx context.Context, coupon *Coupon) error
	Get(ctx context.Context, id string) (*Coupon, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.CouponFilter) ([]*Coupon, error)

	// AttachEvents associates the coupon with the given events. Called inside
	// the same transaction as Create so a coupon is never observable without
	// its associations.
	AttachEvents(ctx context.Context, couponID string, eventIDs []string) error

	// IncrementRedemptions bumps the advisory redemption tally with a single
	// atomic statement. The redemption ledger remains the source of truth.
	IncrementRedemptions(ctx context.Context, id string) error
}

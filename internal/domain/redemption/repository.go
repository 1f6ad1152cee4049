package redemption

import (
	"context"
)

// Repository defines the interface for the redemption ledger.
//
// Create must rely on the storage layer's UNIQUE(user_id, coupon_id)
// constraint to reject duplicates, never on a read-then-write check, so that
// concurrent redemption attempts cannot both succeed.
type Repository interface {
	Create(ctx context.Context, redemption *Redemption) error
	Exists(ctx context.Context, userID, couponID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*Redemption, error)
}

package store

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/types"
)

// Repository defines the interface for store data access
type Repository interface {
	Create(ctx context.Context, store *Store) error
	Get(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context, filter *types.StoreFilter) ([]*Store, error)
	Update(ctx context.Context, id string, update Update) error

	// IncrementStock and DecrementStock adjust the live-coupon counter with a
	// single atomic statement. DecrementStock floors the counter at zero.
	IncrementStock(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string) error

	// InsertRating records one user rating; ApplyRating folds it into the
	// store's aggregate counters with a single atomic statement.
	InsertRating(ctx context.Context, rating *Rating) error
	ApplyRating(ctx context.Context, storeID string, rating int) error
}

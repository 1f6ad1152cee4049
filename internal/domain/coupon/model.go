package coupon

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/types"
)

// Coupon represents a redeemable offer tied to a store
type Coupon struct {
	ID            string           `json:"id" db:"id"`
	StoreID       string           `json:"store_id" db:"store_id"`
	Title         string           `json:"title" db:"title"`
	Code          string           `json:"code" db:"code"`
	Kind          types.CouponKind `json:"kind" db:"kind"`
	Category      string           `json:"category" db:"category"`
	Link          string           `json:"link" db:"link"`
	DueDate       time.Time        `json:"due_date" db:"due_date"`
	Description   string           `json:"description" db:"description"`
	TimesRedeemed int              `json:"times_redeemed" db:"times_redeemed"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
}

// IsExpired reports whether the coupon's due date has passed.
// Expiry is a read-time transition, not a stored state.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.DueDate.Before(now)
}

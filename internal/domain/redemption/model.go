package redemption

import (
	"time"
)

// Redemption is one user's one-time claim of a coupon. At most one record
// exists per (user, coupon) pair; the record is never mutated or deleted.
type Redemption struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	CouponID   string    `json:"coupon_id" db:"coupon_id"`
	RedeemedAt time.Time `json:"redeemed_at" db:"redeemed_at"`
}

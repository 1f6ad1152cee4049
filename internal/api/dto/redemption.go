package dto

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
)

// RedeemCouponResponse is returned after a successful redemption
type RedeemCouponResponse struct {
	CouponID   string    `json:"coupon_id"`
	Code       string    `json:"code,omitempty"`
	Link       string    `json:"link,omitempty"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// RedemptionResponse represents one ledger entry in API responses
type RedemptionResponse struct {
	*redemption.Redemption
}

// ListRedemptionsResponse lists the caller's redeemed coupons
type ListRedemptionsResponse struct {
	Items []*RedemptionResponse `json:"items"`
	Total int                   `json:"total"`
}

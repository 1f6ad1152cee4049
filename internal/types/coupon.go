package types

// CouponKind represents how a coupon is presented and redeemed
type CouponKind string

const (
	// CouponKindCode is a coupon redeemed by entering a code at checkout
	CouponKindCode CouponKind = "Codes"
	// CouponKindDeal is a direct deal followed via the coupon link
	CouponKindDeal CouponKind = "Deals"
)

// Validate reports whether the kind is one of the supported values
func (k CouponKind) Validate() bool {
	switch k {
	case CouponKindCode, CouponKindDeal:
		return true
	}
	return false
}

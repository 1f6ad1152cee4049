package dto

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/Kal1-linux/CouponCo/internal/validator"
)

// CreateCouponRequest represents the request to create a new coupon
type CreateCouponRequest struct {
	StoreID     string           `json:"store_id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Code        string           `json:"code"`
	Kind        types.CouponKind `json:"kind" validate:"required"`
	Category    string           `json:"category"`
	Link        string           `json:"link" validate:"omitempty,url"`
	DueDate     time.Time        `json:"due_date" validate:"required"`
	Description string           `json:"description"`
	EventIDs    []string         `json:"event_ids,omitempty"`
}

// Validate validates the CreateCouponRequest
func (r *CreateCouponRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if !r.Kind.Validate() {
		return ierr.NewError("invalid coupon kind").
			WithHintf("Kind must be one of %s or %s", types.CouponKindCode, types.CouponKindDeal).
			WithReportableDetails(map[string]any{"kind": r.Kind}).
			Mark(ierr.ErrValidation)
	}

	// A code offer is useless without a code; a deal links out instead
	if r.Kind == types.CouponKindCode && r.Code == "" {
		return ierr.NewError("code is required for code coupons").
			WithHint("Please provide the coupon code shoppers will copy").
			Mark(ierr.ErrValidation)
	}

	if r.DueDate.IsZero() {
		return ierr.NewError("due_date is required").
			WithHint("Please provide an expiry date for the coupon").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToCoupon converts the request into a domain coupon
func (r *CreateCouponRequest) ToCoupon() *coupon.Coupon {
	now := time.Now().UTC()
	return &coupon.Coupon{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COUPON),
		StoreID:     r.StoreID,
		Title:       r.Title,
		Code:        r.Code,
		Kind:        r.Kind,
		Category:    r.Category,
		Link:        r.Link,
		DueDate:     r.DueDate.UTC(),
		Description: r.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CouponResponse represents a coupon in API responses
type CouponResponse struct {
	*coupon.Coupon
	Expired bool `json:"expired"`
}

// NewCouponResponse builds the response, deriving expiry at read time
func NewCouponResponse(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		Coupon:  c,
		Expired: c.IsExpired(time.Now().UTC()),
	}
}

// ListCouponsResponse represents a paginated list of coupons
type ListCouponsResponse struct {
	Items []*CouponResponse `json:"items"`
	Total int               `json:"total"`
}

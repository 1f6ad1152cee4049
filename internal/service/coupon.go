package service

import (
	"context"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	"github.com/Kal1-linux/CouponCo/internal/cache"
	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/samber/lo"
)

// CouponService manages the coupon lifecycle and redemption flow
type CouponService interface {
	AddCoupon(ctx context.Context, req *dto.CreateCouponRequest) (*dto.CouponResponse, error)
	GetCoupon(ctx context.Context, id string) (*dto.CouponResponse, error)
	ListCoupons(ctx context.Context, filter *types.CouponFilter) (*dto.ListCouponsResponse, error)
	RemoveCoupon(ctx context.Context, id string) error

	Redeem(ctx context.Context, userID, couponID string) (*dto.RedeemCouponResponse, error)
	HasRedeemed(ctx context.Context, userID, couponID string) (bool, error)
	ListRedemptions(ctx context.Context, userID string) (*dto.ListRedemptionsResponse, error)
}

type couponService struct {
	ServiceParams
}

func NewCouponService(params ServiceParams) CouponService {
	return &couponService{ServiceParams: params}
}

// AddCoupon creates a coupon and bumps the owning store's live-coupon stock
// in the same transaction, so the counter can never drift from the listing.
func (s *couponService) AddCoupon(ctx context.Context, req *dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Reject unknown stores up front with a clear not found error
	if _, err := s.StoreRepo.Get(ctx, req.StoreID); err != nil {
		return nil, err
	}

	// Every requested event association must reference a known event
	for _, eventID := range req.EventIDs {
		if _, err := s.EventRepo.Get(ctx, eventID); err != nil {
			return nil, err
		}
	}

	c := req.ToCoupon()

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.CouponRepo.Create(ctx, c); err != nil {
			return err
		}
		if len(req.EventIDs) > 0 {
			if err := s.CouponRepo.AttachEvents(ctx, c.ID, req.EventIDs); err != nil {
				return err
			}
		}
		return s.StoreRepo.IncrementStock(ctx, c.StoreID)
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixStore, c.StoreID))
	s.Logger.Infow("coupon created", "coupon_id", c.ID, "store_id", c.StoreID)

	return dto.NewCouponResponse(c), nil
}

func (s *couponService) GetCoupon(ctx context.Context, id string) (*dto.CouponResponse, error) {
	if id == "" {
		return nil, ierr.NewError("coupon id is required").
			WithHint("Please provide a coupon ID").
			Mark(ierr.ErrValidation)
	}

	c, err := s.CouponRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCouponResponse(c), nil
}

func (s *couponService) ListCoupons(ctx context.Context, filter *types.CouponFilter) (*dto.ListCouponsResponse, error) {
	coupons, err := s.CouponRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(coupons, func(c *coupon.Coupon, _ int) *dto.CouponResponse {
		return dto.NewCouponResponse(c)
	})
	return &dto.ListCouponsResponse{Items: items, Total: len(items)}, nil
}

// RemoveCoupon deletes a coupon and decrements the owning store's stock in
// the same transaction. The stock counter floors at zero.
func (s *couponService) RemoveCoupon(ctx context.Context, id string) error {
	c, err := s.CouponRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.CouponRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.StoreRepo.DecrementStock(ctx, c.StoreID)
	})
	if err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixStore, c.StoreID))
	s.Logger.Infow("coupon removed", "coupon_id", id, "store_id", c.StoreID)
	return nil
}

// Redeem claims a coupon for a user. The ledger insert is the single
// serialization point: whichever concurrent attempt reaches the unique
// constraint first wins, every other attempt gets a conflict.
func (s *couponService) Redeem(ctx context.Context, userID, couponID string) (*dto.RedeemCouponResponse, error) {
	if userID == "" {
		return nil, ierr.NewError("user id is required").
			WithHint("Please sign in to redeem coupons").
			Mark(ierr.ErrValidation)
	}

	c, err := s.CouponRepo.Get(ctx, couponID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if c.IsExpired(now) {
		return nil, ierr.NewError("coupon expired").
			WithHintf("This coupon expired on %s", c.DueDate.Format("2006-01-02")).
			WithReportableDetails(map[string]any{
				"coupon_id": c.ID,
				"due_date":  c.DueDate,
			}).
			Mark(ierr.ErrExpired)
	}

	red := &redemption.Redemption{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REDEMPTION),
		UserID:     userID,
		CouponID:   couponID,
		RedeemedAt: now,
	}
	if err := s.RedemptionRepo.Create(ctx, red); err != nil {
		return nil, err
	}

	// The tally on the coupon row is advisory. The ledger already holds the
	// truth, so a failed increment is logged and never unwinds the redemption.
	if err := s.CouponRepo.IncrementRedemptions(ctx, couponID); err != nil {
		s.Logger.Warnw("failed to increment redemption counter",
			"coupon_id", couponID,
			"error", err,
		)
	}

	s.Logger.Infow("coupon redeemed", "coupon_id", couponID, "user_id", userID)

	return &dto.RedeemCouponResponse{
		CouponID:   c.ID,
		Code:       c.Code,
		Link:       c.Link,
		RedeemedAt: red.RedeemedAt,
	}, nil
}

func (s *couponService) HasRedeemed(ctx context.Context, userID, couponID string) (bool, error) {
	return s.RedemptionRepo.Exists(ctx, userID, couponID)
}

func (s *couponService) ListRedemptions(ctx context.Context, userID string) (*dto.ListRedemptionsResponse, error) {
	redemptions, err := s.RedemptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := lo.Map(redemptions, func(r *redemption.Redemption, _ int) *dto.RedemptionResponse {
		return &dto.RedemptionResponse{Redemption: r}
	})
	return &dto.ListRedemptionsResponse{Items: items, Total: len(items)}, nil
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/stretchr/testify/suite"
)

type CouponServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CouponService
	params  ServiceParams
	store   *store.Store
}

func TestCouponService(t *testing.T) {
	suite.Run(t, new(CouponServiceSuite))
}

func (s *CouponServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		StoreRepo:      stores.StoreRepo,
		CouponRepo:     stores.CouponRepo,
		RedemptionRepo: stores.RedemptionRepo,
		CategoryRepo:   stores.CategoryRepo,
		EventRepo:      stores.EventRepo,
	}
	s.service = NewCouponService(s.params)

	s.store = &store.Store{
		ID:        "store_01",
		Name:      "Acme",
		CreatedAt: s.GetNow(),
		UpdatedAt: s.GetNow(),
	}
	s.NoError(stores.StoreRepo.Create(s.GetContext(), s.store))
}

func (s *CouponServiceSuite) validCreateRequest() *dto.CreateCouponRequest {
	return &dto.CreateCouponRequest{
		StoreID: s.store.ID,
		Title:   "10% off everything",
		Code:    "SAVE10",
		Kind:    types.CouponKindCode,
		DueDate: s.GetNow().Add(30 * 24 * time.Hour),
	}
}

func (s *CouponServiceSuite) TestAddCoupon() {
	testCases := []struct {
		name          string
		mutate        func(req *dto.CreateCouponRequest)
		expectedError func(error) bool
	}{
		{
			name:   "valid code coupon",
			mutate: func(req *dto.CreateCouponRequest) {},
		},
		{
			name: "valid deal coupon without code",
			mutate: func(req *dto.CreateCouponRequest) {
				req.Kind = types.CouponKindDeal
				req.Code = ""
				req.Link = "https://example.com/deal"
			},
		},
		{
			name: "missing title",
			mutate: func(req *dto.CreateCouponRequest) {
				req.Title = ""
			},
			expectedError: ierr.IsValidation,
		},
		{
			name: "invalid kind",
			mutate: func(req *dto.CreateCouponRequest) {
				req.Kind = "Freebies"
			},
			expectedError: ierr.IsValidation,
		},
		{
			name: "code coupon without code",
			mutate: func(req *dto.CreateCouponRequest) {
				req.Code = ""
			},
			expectedError: ierr.IsValidation,
		},
		{
			name: "unknown store",
			mutate: func(req *dto.CreateCouponRequest) {
				req.StoreID = "store_missing"
			},
			expectedError: ierr.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.validCreateRequest()
			tc.mutate(req)

			resp, err := s.service.AddCoupon(s.GetContext(), req)
			if tc.expectedError != nil {
				s.Error(err)
				s.True(tc.expectedError(err))
				return
			}

			s.NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(req.Title, resp.Title)
			s.False(resp.Expired)
		})
	}
}

func (s *CouponServiceSuite) TestAddCouponIncrementsStock() {
	for i := 0; i < 3; i++ {
		_, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
		s.NoError(err)
	}

	st, err := s.params.StoreRepo.Get(s.GetContext(), s.store.ID)
	s.NoError(err)
	s.Equal(3, st.Stock)
}

func (s *CouponServiceSuite) TestRemoveCoupon() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	s.NoError(s.service.RemoveCoupon(s.GetContext(), resp.ID))

	st, err := s.params.StoreRepo.Get(s.GetContext(), s.store.ID)
	s.NoError(err)
	s.Equal(0, st.Stock)

	_, err = s.service.GetCoupon(s.GetContext(), resp.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *CouponServiceSuite) TestRemoveCouponNotFound() {
	err := s.service.RemoveCoupon(s.GetContext(), "coupon_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *CouponServiceSuite) TestStockNeverGoesNegative() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	// Drain the stock counter below the coupon count by hand, then remove
	s.NoError(s.params.StoreRepo.DecrementStock(s.GetContext(), s.store.ID))
	s.NoError(s.service.RemoveCoupon(s.GetContext(), resp.ID))

	st, err := s.params.StoreRepo.Get(s.GetContext(), s.store.ID)
	s.NoError(err)
	s.Equal(0, st.Stock)
}

func (s *CouponServiceSuite) TestGetCouponDerivesExpiry() {
	req := s.validCreateRequest()
	req.DueDate = s.GetNow().Add(time.Hour)

	resp, err := s.service.AddCoupon(s.GetContext(), req)
	s.NoError(err)
	s.False(resp.Expired)

	expired := s.validCreateRequest()
	expired.DueDate = s.GetNow().Add(-time.Hour)
	resp2, err := s.service.AddCoupon(s.GetContext(), expired)
	s.NoError(err)

	got, err := s.service.GetCoupon(s.GetContext(), resp2.ID)
	s.NoError(err)
	s.True(got.Expired)
}

func (s *CouponServiceSuite) TestRedeem() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	redeemed, err := s.service.Redeem(s.GetContext(), "user_01", resp.ID)
	s.NoError(err)
	s.Equal(resp.ID, redeemed.CouponID)
	s.Equal("SAVE10", redeemed.Code)
	s.False(redeemed.RedeemedAt.IsZero())

	// The advisory tally follows the ledger
	c, err := s.params.CouponRepo.Get(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(1, c.TimesRedeemed)

	has, err := s.service.HasRedeemed(s.GetContext(), "user_01", resp.ID)
	s.NoError(err)
	s.True(has)

	has, err = s.service.HasRedeemed(s.GetContext(), "user_02", resp.ID)
	s.NoError(err)
	s.False(has)
}

func (s *CouponServiceSuite) TestRedeemTwiceConflicts() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	_, err = s.service.Redeem(s.GetContext(), "user_01", resp.ID)
	s.NoError(err)

	_, err = s.service.Redeem(s.GetContext(), "user_01", resp.ID)
	s.True(ierr.IsAlreadyExists(err))

	// Different users are unaffected by each other's redemptions
	_, err = s.service.Redeem(s.GetContext(), "user_02", resp.ID)
	s.NoError(err)
}

func (s *CouponServiceSuite) TestRedeemExpiredCoupon() {
	req := s.validCreateRequest()
	req.DueDate = s.GetNow().Add(-time.Minute)

	resp, err := s.service.AddCoupon(s.GetContext(), req)
	s.NoError(err)

	_, err = s.service.Redeem(s.GetContext(), "user_01", resp.ID)
	s.True(ierr.IsExpired(err))

	// No ledger entry is written for a rejected attempt
	has, err := s.service.HasRedeemed(s.GetContext(), "user_01", resp.ID)
	s.NoError(err)
	s.False(has)
}

func (s *CouponServiceSuite) TestRedeemUnknownCoupon() {
	_, err := s.service.Redeem(s.GetContext(), "user_01", "coupon_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *CouponServiceSuite) TestRedeemMissingUser() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	_, err = s.service.Redeem(s.GetContext(), "", resp.ID)
	s.True(ierr.IsValidation(err))
}

func (s *CouponServiceSuite) TestConcurrentRedemptionSingleWinner() {
	resp, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.service.Redeem(context.Background(), "user_01", resp.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.True(ierr.IsAlreadyExists(err))
		}
	}
	s.Equal(1, succeeded)
}

func (s *CouponServiceSuite) TestListCoupons() {
	first := s.validCreateRequest()
	_, err := s.service.AddCoupon(s.GetContext(), first)
	s.NoError(err)

	deal := s.validCreateRequest()
	deal.Kind = types.CouponKindDeal
	deal.Code = ""
	deal.Category = "electronics"
	_, err = s.service.AddCoupon(s.GetContext(), deal)
	s.NoError(err)

	all, err := s.service.ListCoupons(s.GetContext(), &types.CouponFilter{StoreID: s.store.ID})
	s.NoError(err)
	s.Equal(2, all.Total)

	deals, err := s.service.ListCoupons(s.GetContext(), &types.CouponFilter{Kind: types.CouponKindDeal})
	s.NoError(err)
	s.Equal(1, deals.Total)
	s.Equal("electronics", deals.Items[0].Category)
}

func (s *CouponServiceSuite) TestAddCouponWithEvents() {
	ev := &event.Event{
		ID:        "event_black_friday",
		Name:      "Black Friday",
		CreatedAt: s.GetNow(),
	}
	s.NoError(s.params.EventRepo.Create(s.GetContext(), ev))

	req := s.validCreateRequest()
	req.EventIDs = []string{ev.ID}
	resp, err := s.service.AddCoupon(s.GetContext(), req)
	s.NoError(err)

	// A second coupon outside the event
	_, err = s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	listed, err := s.service.ListCoupons(s.GetContext(), &types.CouponFilter{EventID: ev.ID})
	s.NoError(err)
	s.Equal(1, listed.Total)
	s.Equal(resp.ID, listed.Items[0].ID)
}

func (s *CouponServiceSuite) TestAddCouponUnknownEvent() {
	req := s.validCreateRequest()
	req.EventIDs = []string{"event_missing"}

	_, err := s.service.AddCoupon(s.GetContext(), req)
	s.True(ierr.IsNotFound(err))

	// The rejected coupon never touched the stock counter
	st, err := s.params.StoreRepo.Get(s.GetContext(), s.store.ID)
	s.NoError(err)
	s.Equal(0, st.Stock)
}

func (s *CouponServiceSuite) TestListRedemptions() {
	first, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)
	second, err := s.service.AddCoupon(s.GetContext(), s.validCreateRequest())
	s.NoError(err)

	_, err = s.service.Redeem(s.GetContext(), "user_01", first.ID)
	s.NoError(err)
	_, err = s.service.Redeem(s.GetContext(), "user_01", second.ID)
	s.NoError(err)
	_, err = s.service.Redeem(s.GetContext(), "user_02", first.ID)
	s.NoError(err)

	mine, err := s.service.ListRedemptions(s.GetContext(), "user_01")
	s.NoError(err)
	s.Equal(2, mine.Total)

	theirs, err := s.service.ListRedemptions(s.GetContext(), "user_02")
	s.NoError(err)
	s.Equal(1, theirs.Total)
}

package service

import (
	"testing"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreServiceSuite struct {
	testutil.BaseServiceTestSuite
	service StoreService
	params  ServiceParams
}

func TestStoreService(t *testing.T) {
	suite.Run(t, new(StoreServiceSuite))
}

func (s *StoreServiceSuite) SetupTest() {
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
	s.service = NewStoreService(s.params)
}

func (s *StoreServiceSuite) createStore() *dto.StoreResponse {
	resp, err := s.service.CreateStore(s.GetContext(), &dto.CreateStoreRequest{
		Name:     "Acme",
		Category: "electronics",
		FAQ: []store.FAQEntry{
			{Question: "Do codes stack?", Answer: "No"},
		},
	})
	s.Require().NoError(err)
	return resp
}

func (s *StoreServiceSuite) TestCreateStore() {
	resp := s.createStore()
	s.NotEmpty(resp.ID)
	s.Equal("Acme", resp.Name)
	s.Equal(0, resp.Stock)
	s.True(resp.AverageRating.IsZero())
	s.NotEmpty(resp.FAQ)
}

func (s *StoreServiceSuite) TestCreateStoreValidation() {
	_, err := s.service.CreateStore(s.GetContext(), &dto.CreateStoreRequest{})
	s.True(ierr.IsValidation(err))
}

func (s *StoreServiceSuite) TestGetStoreNotFound() {
	_, err := s.service.GetStore(s.GetContext(), "store_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *StoreServiceSuite) TestGetStoreUsesCache() {
	created := s.createStore()

	// Prime the cache
	_, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)

	// Mutate the repository behind the cache's back; the cached copy wins
	s.NoError(s.params.StoreRepo.Update(s.GetContext(), created.ID, store.Update{
		Name: lo.ToPtr("Renamed"),
	}))

	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Acme", got.Name)
}

func (s *StoreServiceSuite) TestGetStoreIncludesCoupons() {
	created := s.createStore()

	now := s.GetNow()
	s.NoError(s.params.CouponRepo.Create(s.GetContext(), &coupon.Coupon{
		ID:      "coupon_01",
		StoreID: created.ID,
		Title:   "10% off",
		Code:    "SAVE10",
		Kind:    types.CouponKindCode,
		DueDate: now.Add(24 * time.Hour),
	}))

	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Require().Len(got.Coupons, 1)
	s.Equal("SAVE10", got.Coupons[0].Code)

	// List responses carry the bare store
	all, err := s.service.ListStores(s.GetContext(), nil)
	s.NoError(err)
	s.Require().Equal(1, all.Total)
	s.Empty(all.Items[0].Coupons)
}

func (s *StoreServiceSuite) TestUpdateStore() {
	created := s.createStore()

	updated, err := s.service.UpdateStore(s.GetContext(), created.ID, &dto.UpdateStoreRequest{
		Name:        lo.ToPtr("Acme Outlet"),
		Description: lo.ToPtr("Discount branch"),
	})
	s.NoError(err)
	s.Equal("Acme Outlet", updated.Name)
	s.Equal("Discount branch", updated.Description)
	// Untouched fields survive a partial update
	s.Equal("electronics", updated.Category)

	// Updates invalidate the cached copy
	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Acme Outlet", got.Name)
}

func (s *StoreServiceSuite) TestUpdateStoreEmptyName() {
	created := s.createStore()

	_, err := s.service.UpdateStore(s.GetContext(), created.ID, &dto.UpdateStoreRequest{
		Name: lo.ToPtr(""),
	})
	s.True(ierr.IsValidation(err))
}

func (s *StoreServiceSuite) TestUpdateStoreFAQ() {
	created := s.createStore()

	err := s.service.UpdateStoreFAQ(s.GetContext(), created.ID, &dto.UpdateStoreFAQRequest{
		FAQ: []store.FAQEntry{
			{Question: "Is shipping free?", Answer: "Over $50"},
			{Question: "Do codes stack?", Answer: "No"},
		},
	})
	s.NoError(err)

	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Contains(string(got.FAQ), "Is shipping free?")
}

func (s *StoreServiceSuite) TestUpdateStoreFAQRejectsIncompleteEntries() {
	created := s.createStore()

	err := s.service.UpdateStoreFAQ(s.GetContext(), created.ID, &dto.UpdateStoreFAQRequest{
		FAQ: []store.FAQEntry{{Question: "Orphan question"}},
	})
	s.True(ierr.IsValidation(err))
}

func (s *StoreServiceSuite) TestAddRating() {
	created := s.createStore()

	s.NoError(s.service.AddRating(s.GetContext(), created.ID, "user_01", &dto.AddRatingRequest{Rating: 5}))
	s.NoError(s.service.AddRating(s.GetContext(), created.ID, "user_02", &dto.AddRatingRequest{Rating: 4}))

	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(2, got.RatingsCount)
	s.Equal(9, got.TotalRatings)
	s.True(got.AverageRating.Equal(decimal.NewFromFloat(4.5)))
}

func (s *StoreServiceSuite) TestAddRatingTwiceConflicts() {
	created := s.createStore()

	s.NoError(s.service.AddRating(s.GetContext(), created.ID, "user_01", &dto.AddRatingRequest{Rating: 5}))

	err := s.service.AddRating(s.GetContext(), created.ID, "user_01", &dto.AddRatingRequest{Rating: 3})
	s.True(ierr.IsAlreadyExists(err))

	// The aggregate is untouched by the rejected attempt
	got, err := s.service.GetStore(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(1, got.RatingsCount)
	s.Equal(5, got.TotalRatings)
}

func (s *StoreServiceSuite) TestAddRatingValidation() {
	created := s.createStore()

	testCases := []struct {
		name   string
		rating int
	}{
		{name: "zero", rating: 0},
		{name: "too high", rating: 6},
		{name: "negative", rating: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.service.AddRating(s.GetContext(), created.ID, "user_01", &dto.AddRatingRequest{Rating: tc.rating})
			s.True(ierr.IsValidation(err))
		})
	}
}

func (s *StoreServiceSuite) TestListStores() {
	s.createStore()

	_, err := s.service.CreateStore(s.GetContext(), &dto.CreateStoreRequest{
		Name:     "Bookworm",
		Category: "books",
	})
	s.NoError(err)

	all, err := s.service.ListStores(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(2, all.Total)

	books, err := s.service.ListStores(s.GetContext(), &types.StoreFilter{Category: "books"})
	s.NoError(err)
	s.Equal(1, books.Total)
	s.Equal("Bookworm", books.Items[0].Name)
}

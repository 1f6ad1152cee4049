package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	"github.com/Kal1-linux/CouponCo/internal/cache"
	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/samber/lo"
)

// StoreService manages stores, their FAQs and user ratings
type StoreService interface {
	CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*dto.StoreResponse, error)
	GetStore(ctx context.Context, id string) (*dto.StoreResponse, error)
	ListStores(ctx context.Context, filter *types.StoreFilter) (*dto.ListStoresResponse, error)
	UpdateStore(ctx context.Context, id string, req *dto.UpdateStoreRequest) (*dto.StoreResponse, error)
	UpdateStoreFAQ(ctx context.Context, id string, req *dto.UpdateStoreFAQRequest) error
	AddRating(ctx context.Context, storeID, userID string, req *dto.AddRatingRequest) error
}

type storeService struct {
	ServiceParams
}

func NewStoreService(params ServiceParams) StoreService {
	return &storeService{ServiceParams: params}
}

func (s *storeService) CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	st, err := req.ToStore()
	if err != nil {
		return nil, err
	}

	if err := s.StoreRepo.Create(ctx, st); err != nil {
		return nil, err
	}

	s.Logger.Infow("store created", "store_id", st.ID, "name", st.Name)
	return dto.NewStoreResponse(st), nil
}

func (s *storeService) GetStore(ctx context.Context, id string) (*dto.StoreResponse, error) {
	if id == "" {
		return nil, ierr.NewError("store id is required").
			WithHint("Please provide a store ID").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixStore, id)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if st, ok := cached.(*store.Store); ok {
			return s.storeWithCoupons(ctx, st)
		}
	}

	st, err := s.StoreRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, st, cache.DefaultExpiration)
	return s.storeWithCoupons(ctx, st)
}

// storeWithCoupons builds the single-store response, which carries the
// store's coupon listing. Only the store record itself is cached.
func (s *storeService) storeWithCoupons(ctx context.Context, st *store.Store) (*dto.StoreResponse, error) {
	coupons, err := s.CouponRepo.List(ctx, &types.CouponFilter{StoreID: st.ID})
	if err != nil {
		return nil, err
	}

	resp := dto.NewStoreResponse(st)
	resp.Coupons = lo.Map(coupons, func(c *coupon.Coupon, _ int) *dto.CouponResponse {
		return dto.NewCouponResponse(c)
	})
	return resp, nil
}

func (s *storeService) ListStores(ctx context.Context, filter *types.StoreFilter) (*dto.ListStoresResponse, error) {
	stores, err := s.StoreRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(stores, func(st *store.Store, _ int) *dto.StoreResponse {
		return dto.NewStoreResponse(st)
	})
	return &dto.ListStoresResponse{Items: items, Total: len(items)}, nil
}

func (s *storeService) UpdateStore(ctx context.Context, id string, req *dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	update, err := req.ToUpdate()
	if err != nil {
		return nil, err
	}

	if err := s.StoreRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixStore, id))

	st, err := s.StoreRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreResponse(st), nil
}

func (s *storeService) UpdateStoreFAQ(ctx context.Context, id string, req *dto.UpdateStoreFAQRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(req.FAQ)
	if err != nil {
		return ierr.WithError(err).
			WithHint("FAQ entries could not be encoded").
			Mark(ierr.ErrValidation)
	}
	rawMsg := json.RawMessage(raw)

	if err := s.StoreRepo.Update(ctx, id, store.Update{FAQ: &rawMsg}); err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixStore, id))
	return nil
}

// AddRating records the rating row and folds it into the store's aggregate
// counters inside one transaction, so the average never reflects a rating
// that was not stored, or vice versa.
func (s *storeService) AddRating(ctx context.Context, storeID, userID string, req *dto.AddRatingRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if userID == "" {
		return ierr.NewError("user id is required").
			WithHint("Please sign in to rate stores").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.StoreRepo.Get(ctx, storeID); err != nil {
		return err
	}

	rating := &store.Rating{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATING),
		UserID:    userID,
		StoreID:   storeID,
		Rating:    req.Rating,
		CreatedAt: time.Now().UTC(),
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.StoreRepo.InsertRating(ctx, rating); err != nil {
			return err
		}
		return s.StoreRepo.ApplyRating(ctx, storeID, req.Rating)
	})
	if err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixStore, storeID))
	s.Logger.Infow("store rated", "store_id", storeID, "user_id", userID, "rating", req.Rating)
	return nil
}

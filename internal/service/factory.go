package service

import (
	"github.com/Kal1-linux/CouponCo/internal/cache"
	"github.com/Kal1-linux/CouponCo/internal/config"
	"github.com/Kal1-linux/CouponCo/internal/domain/category"
	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	"github.com/Kal1-linux/CouponCo/internal/httpclient"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
)

// NewServiceParams assembles the shared dependency bundle for services
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db *postgres.DB,
	cache cache.Cache,
	client httpclient.Client,
	storeRepo store.Repository,
	couponRepo coupon.Repository,
	redemptionRepo redemption.Repository,
	categoryRepo category.Repository,
	eventRepo event.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		DB:             db,
		Cache:          cache,
		Client:         client,
		StoreRepo:      storeRepo,
		CouponRepo:     couponRepo,
		RedemptionRepo: redemptionRepo,
		CategoryRepo:   categoryRepo,
		EventRepo:      eventRepo,
	}
}

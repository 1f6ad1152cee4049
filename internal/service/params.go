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

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache
	Client httpclient.Client

	// Repositories
	StoreRepo      store.Repository
	CouponRepo     coupon.Repository
	RedemptionRepo redemption.Repository
	CategoryRepo   category.Repository
	EventRepo      event.Repository
}

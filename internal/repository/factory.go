package repository

import (
	"github.com/Kal1-linux/CouponCo/internal/domain/category"
	"github.com/Kal1-linux/CouponCo/internal/domain/coupon"
	"github.com/Kal1-linux/CouponCo/internal/domain/event"
	"github.com/Kal1-linux/CouponCo/internal/domain/redemption"
	"github.com/Kal1-linux/CouponCo/internal/domain/store"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
	postgresRepo "github.com/Kal1-linux/CouponCo/internal/repository/postgres"
)

func NewStoreRepository(db *postgres.DB, logger *logger.Logger) store.Repository {
	return postgresRepo.NewStoreRepository(db, logger)
}

func NewCouponRepository(db *postgres.DB, logger *logger.Logger) coupon.Repository {
	return postgresRepo.NewCouponRepository(db, logger)
}

func NewRedemptionRepository(db *postgres.DB, logger *logger.Logger) redemption.Repository {
	return postgresRepo.NewRedemptionRepository(db, logger)
}

func NewCategoryRepository(db *postgres.DB, logger *logger.Logger) category.Repository {
	return postgresRepo.NewCategoryRepository(db, logger)
}

func NewEventRepository(db *postgres.DB, logger *logger.Logger) event.Repository {
	return postgresRepo.NewEventRepository(db, logger)
}

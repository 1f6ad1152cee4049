package api

import (
	v1 "github.com/Kal1-linux/CouponCo/internal/api/v1"
	"github.com/Kal1-linux/CouponCo/internal/config"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Store    *v1.StoreHandler
	Coupon   *v1.CouponHandler
	Category *v1.CategoryHandler
	Event    *v1.EventHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.Default()

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, cfg, logger)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration, logger *logger.Logger) {
	// Public browsing routes
	stores := router.Group("/stores")
	{
		stores.GET("", handlers.Store.ListStores)
		stores.GET("/:id", handlers.Store.GetStore)
		stores.GET("/:id/coupons", handlers.Coupon.ListStoreCoupons)
	}

	coupons := router.Group("/coupons")
	{
		coupons.GET("", handlers.Coupon.ListCoupons)
		coupons.GET("/:id", handlers.Coupon.GetCoupon)
	}

	router.GET("/categories", handlers.Category.ListCategories)
	router.GET("/events", handlers.Event.ListEvents)

	// Routes that need a signed-in user
	authed := router.Group("")
	authed.Use(middleware.AuthenticateMiddleware(cfg, logger))
	{
		authed.POST("/coupons/:id/redeem", handlers.Coupon.RedeemCoupon)
		authed.GET("/coupons/:id/redeemed", handlers.Coupon.HasRedeemed)
		authed.GET("/redemptions", handlers.Coupon.ListRedemptions)
		authed.POST("/stores/:id/ratings", handlers.Store.AddRating)
	}

	// Admin routes for managing the catalog
	admin := router.Group("/admin")
	admin.Use(middleware.AuthenticateMiddleware(cfg, logger), middleware.AdminMiddleware)
	{
		admin.POST("/stores", handlers.Store.CreateStore)
		admin.PUT("/stores/:id", handlers.Store.UpdateStore)
		admin.PUT("/stores/:id/faqs", handlers.Store.UpdateStoreFAQ)
		admin.POST("/stores/:id/coupons", handlers.Coupon.CreateCoupon)
		admin.DELETE("/coupons/:id", handlers.Coupon.DeleteCoupon)
		admin.POST("/categories", handlers.Category.CreateCategory)
		admin.POST("/events", handlers.Event.CreateEvent)
		admin.POST("/media", handlers.Store.UploadLogo)
	}
}

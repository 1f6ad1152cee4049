package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/Kal1-linux/CouponCo/docs/swagger"
	"github.com/Kal1-linux/CouponCo/internal/api"
	v1 "github.com/Kal1-linux/CouponCo/internal/api/v1"
	"github.com/Kal1-linux/CouponCo/internal/cache"
	"github.com/Kal1-linux/CouponCo/internal/config"
	"github.com/Kal1-linux/CouponCo/internal/httpclient"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/postgres"
	"github.com/Kal1-linux/CouponCo/internal/repository"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/Kal1-linux/CouponCo/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// @title CouponCo API
// @version 1.0
// @description Coupon listing and redemption service
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present; real deployments use environment variables
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			cache.Initialize,
			provideCache,
			postgres.NewDB,
			httpclient.NewDefaultClient,

			// Repositories
			repository.NewStoreRepository,
			repository.NewCouponRepository,
			repository.NewRedemptionRepository,
			repository.NewCategoryRepository,
			repository.NewEventRepository,

			// Services
			service.NewServiceParams,
			service.NewStoreService,
			service.NewCouponService,
			service.NewCategoryService,
			service.NewEventService,
			service.NewMediaService,

			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			registerValidator,
			startServer,
		),
	)

	app.Run()
}

func provideCache(c *cache.InMemoryCache) cache.Cache {
	return c
}

func registerValidator() {
	validator.NewValidator()
}

func provideHandlers(
	logger *logger.Logger,
	storeService service.StoreService,
	couponService service.CouponService,
	categoryService service.CategoryService,
	eventService service.EventService,
	mediaService service.MediaService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(),
		Store:    v1.NewStoreHandler(storeService, mediaService, logger),
		Coupon:   v1.NewCouponHandler(couponService, logger),
		Category: v1.NewCategoryHandler(categoryService, logger),
		Event:    v1.NewEventHandler(eventService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			db.Close()
			return nil
		},
	})
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/domain"
	"courtbook/internal/middleware"
	"courtbook/internal/modules/auth"
	"courtbook/internal/modules/availability"
	"courtbook/internal/modules/booking"
	"courtbook/internal/modules/court"
	"courtbook/internal/modules/notification"
	"courtbook/internal/modules/pricing"
	"courtbook/internal/modules/property"
	jwtsvc "courtbook/internal/pkg/jwt"
	"courtbook/internal/pkg/logger"
	"courtbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, jwtService)
	propertyService := property.NewService(propertyRepo)
	courtService := court.NewService(courtRepo, propertyRepo)
	pricingService := pricing.NewService(pricingRepo, courtRepo)
	availabilityService := availability.NewService(availabilityRepo, courtRepo)
	notificationService := notification.NewService(notificationRepo, log)
	bookingService := booking.NewService(bookingRepo, courtRepo, availabilityRepo, pricingService, notificationService)

	authHandler := auth.NewHandler(authService)
	propertyHandler := property.NewHandler(propertyService)
	courtHandler := court.NewHandler(courtService)
	pricingHandler := pricing.NewHandler(pricingService)
	availabilityHandler := availability.NewHandler(availabilityService)
	notificationHandler := notification.NewHandler(notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	ownership := middleware.NewOwnershipChecker(courtRepo, propertyRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/")
		{
			authHandler.RegisterPublicRoutes(public)
			propertyHandler.RegisterPublicRoutes(public)
			courtHandler.RegisterPublicRoutes(public)
			pricingHandler.RegisterPublicRoutes(public)
			bookingHandler.RegisterPublicRoutes(public)
		}

		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterAuthRoutes(authed)
			notificationHandler.RegisterAuthRoutes(authed)
			bookingHandler.RegisterSharedRoutes(authed)

			customer := authed.Group("/")
			customer.Use(middleware.RequireRole(string(domain.RoleCustomer)))
			{
				bookingHandler.RegisterCustomerRoutes(customer)
			}

			owner := authed.Group("/owner")
			owner.Use(middleware.RequireRole(string(domain.RoleOwner)))
			{
				propertyHandler.RegisterOwnerRoutes(owner, ownership.Property())
				courtHandler.RegisterOwnerRoutes(owner, ownership.Court(), ownership.Property())
				bookingHandler.RegisterOwnerRoutes(owner)

				ownerCourts := owner.Group("/courts")
				ownerCourts.Use(ownership.Court())
				{
					pricingHandler.RegisterOwnerRoutes(ownerCourts)
					availabilityHandler.RegisterOwnerRoutes(ownerCourts)
				}
			}
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

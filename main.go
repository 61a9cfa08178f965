package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/sanctuary-builder/backend/cache"
	"github.com/sanctuary-builder/backend/config"
	"github.com/sanctuary-builder/backend/controllers"
	"github.com/sanctuary-builder/backend/database"
	"github.com/sanctuary-builder/backend/logger"
	"github.com/sanctuary-builder/backend/middleware"
	"github.com/sanctuary-builder/backend/repository"
	"github.com/sanctuary-builder/backend/routes"
	"github.com/sanctuary-builder/backend/services"

	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// --- MongoDB ---
	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	// --- Redis (optional devotional cache) ---
	var devotionalCache cache.Cache
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn("Redis unavailable, devotional cache disabled", zap.Error(err))
		} else {
			devotionalCache = cache.NewRedisCache(redisClient)
			log.Info("Connected to Redis")
		}
	}

	// --- Repositories ---
	devotionalRepo := repository.NewDevotionalRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// --- Services ---
	devotionalService := services.NewDevotionalService(devotionalRepo, devotionalCache, log)
	progressService := services.NewProgressService(progressRepo, rewardRepo, log)
	productService := services.NewProductService(productRepo, log)
	orderService := services.NewOrderService(orderRepo, log)
	userService := services.NewUserService(userRepo, log)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RateLimit(rate.Every(time.Minute/100), 50))
	r.Use(middleware.RequestTimeout(30 * time.Second))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Controllers{
		Status:     controllers.NewStatusController(db),
		Devotional: controllers.NewDevotionalController(devotionalService),
		Progress:   controllers.NewProgressController(progressService),
		Product:    controllers.NewProductController(productService),
		Order:      controllers.NewOrderController(orderService),
		User:       controllers.NewUserController(userService),
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info("Sanctuary Builder backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped gracefully")
}

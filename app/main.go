package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gordonblake/moviereviews/domain"
	"github.com/gordonblake/moviereviews/internal/repository"
	mysqlRepo "github.com/gordonblake/moviereviews/internal/repository/mysql"
	"github.com/gordonblake/moviereviews/internal/repository/mysql/model"
	redisCache "github.com/gordonblake/moviereviews/internal/repository/redis"
	"github.com/gordonblake/moviereviews/internal/rest"
	"github.com/gordonblake/moviereviews/internal/rest/middleware"
	authUsecase "github.com/gordonblake/moviereviews/internal/usecase/auth"
	reviewUsecase "github.com/gordonblake/moviereviews/internal/usecase/review"
	"github.com/gordonblake/moviereviews/internal/workers"
)

const (
	defaultTimeout          = 30
	defaultAddress          = ":9090"
	defaultCacheDB          = 0
	defaultReconcileMinutes = 5
	dbMaxRetry              = 10
	dbRetryIntervalSec      = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}
}

func main() {
	// prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// the unique index on likes(review_id, user_id) comes from this migration
	if err := db.AutoMigrate(&model.Review{}, &model.Like{}); err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		log.Println("failed to parse CACHE_DB, using default cache DB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
	}

	// editor credential and signing key, never hardcoded
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	credential := domain.Credential{
		Username:     os.Getenv("EDITOR_USERNAME"),
		PasswordHash: os.Getenv("EDITOR_PASSWORD_HASH"),
	}
	if credential.Username == "" || credential.PasswordHash == "" {
		log.Fatal("EDITOR_USERNAME and EDITOR_PASSWORD_HASH are required")
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	reviewDBRepo := mysqlRepo.NewReviewDBRepository(db)
	reviewCache := redisCache.NewReviewCache(client)
	reviewRepo := repository.NewReviewRepository(reviewDBRepo, reviewCache)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reconcileMinutes, err := strconv.Atoi(os.Getenv("LIKES_RECONCILE_MINUTES"))
	if err != nil || reconcileMinutes <= 0 {
		reconcileMinutes = defaultReconcileMinutes
	}
	reconciler := workers.NewLikesReconciler(reviewDBRepo, time.Duration(reconcileMinutes)*time.Minute)
	go reconciler.Start(ctx)

	// Build service layer
	authSvc := authUsecase.NewService(credential, []byte(jwtSecret), authUsecase.TokenTTL)
	reviewSvc := reviewUsecase.NewService(reviewRepo)
	authHandler := rest.NewAuthHandler(authSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)

	authMiddleware := middleware.Auth(authSvc)

	// Register routes
	route.POST("/api/login", authHandler.Login)
	route.GET("/api/reviews", reviewHandler.Fetch)
	route.GET("/api/reviews/:id", reviewHandler.GetByID)

	authorized := route.Group("/api")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/reviews", reviewHandler.Store)
		authorized.PUT("/reviews/:id", reviewHandler.Update)
		authorized.POST("/reviews/:id/like", reviewHandler.Like)
		authorized.GET("/user/likes", reviewHandler.UserLikes)
	}

	// Start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

package main

import (
	"context"
	"fmt"
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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/internal/repository"
	mysqlRepo "github.com/DajanaD/comment-board/internal/repository/mysql"
	redisCache "github.com/DajanaD/comment-board/internal/repository/redis"
	"github.com/DajanaD/comment-board/internal/workers"

	"github.com/DajanaD/comment-board/internal/rest"
	"github.com/DajanaD/comment-board/internal/rest/middleware"
	"github.com/DajanaD/comment-board/internal/usecase/analytics"
	"github.com/DajanaD/comment-board/internal/usecase/blacklist"
	"github.com/DajanaD/comment-board/internal/usecase/comment"
	"github.com/DajanaD/comment-board/internal/usecase/post"
	"github.com/DajanaD/comment-board/internal/usecase/user"
)

const (
	defaultTimeout        = 30
	defaultAddress        = ":9090"
	defaultCacheDB        = 0
	defaultMigrationsPath = "migrations"
	dbMaxRetry            = 10
	dbRetryIntervalSec    = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("no .env file loaded, relying on environment")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	val.Add("multiStatements", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Fatal("got error when getting sql.DB from gorm.DB: ", err)
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Fatal("got error when closing the DB connection: ", err)
		}
	}()

	// run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("got error when getting sql.DB from gorm.DB: ", err)
	}
	if err := mysqlRepo.RunMigrations(sqlDB, migrationsPath); err != nil {
		logrus.Fatal("failed to run migrations: ", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		logrus.Warn("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			logrus.Fatal("got error when closing the cache connection: ", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.RequestID())
	route.Use(middleware.Metrics())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		logrus.Warn("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	analyticsRepo := mysqlRepo.NewAnalyticsRepository(db)

	// Blacklist is served cache-first: the DB layer owns the words, the
	// redis set keeps the hot copy, and the coordinate layer glues them.
	blacklistDBRepo := mysqlRepo.NewBlacklistRepository(db)
	blacklistCache := redisCache.NewBlacklistCache(client)
	blacklistRepo := repository.NewBlacklistRepository(blacklistDBRepo, blacklistCache)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := workers.NewAutoReplyScheduler(commentRepo)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		logrus.Warn("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	commentSvc := comment.NewService(commentRepo, userRepo, blacklistRepo, scheduler)
	postSvc := post.NewService(postRepo, commentRepo)
	blacklistSvc := blacklist.NewService(blacklistRepo)
	analyticsSvc := analytics.NewService(analyticsRepo)

	// The scheduler needs the comment service to write replies, and the
	// comment service needs the scheduler to enqueue them.
	scheduler.AttachCreator(commentSvc)
	go scheduler.Start(ctx)

	userHandler := rest.NewUserHandler(userSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	postHandler := rest.NewPostHandler(postSvc)
	blacklistHandler := rest.NewBlacklistHandler(blacklistSvc)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/comments", commentHandler.Fetch)
	route.GET("/comments/:id", commentHandler.GetByID)
	route.GET("/users/:id", userHandler.GetByID)
	route.GET("/users/:id/comments", commentHandler.FetchByOwner)

	route.GET("/posts", postHandler.Fetch)
	route.GET("/posts/:id", postHandler.GetByID)

	route.GET("/analytics/comments/daily", analyticsHandler.DailyBreakdown)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/comments", commentHandler.CreateComment)
		authorized.POST("/posts", postHandler.CreatePost)
		authorized.PUT("/users/me/auto-reply", userHandler.UpdateAutoReply)
	}

	// editing and removing content is a moderation action
	moderators := route.Group("/")
	moderators.Use(authMiddleware, middleware.AdminOnly())
	{
		moderators.PUT("/comments/:id", commentHandler.UpdateComment)
		moderators.DELETE("/comments/:id", commentHandler.DeleteComment)
		moderators.PUT("/posts/:id", postHandler.UpdatePost)
		moderators.DELETE("/posts/:id", postHandler.DeletePost)
	}

	admin := route.Group("/blacklist")
	admin.Use(authMiddleware, middleware.AdminOnly())
	{
		admin.GET("", blacklistHandler.Fetch)
		admin.POST("", blacklistHandler.AddWord)
		admin.DELETE("/:word", blacklistHandler.RemoveWord)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	logrus.Info("Server exiting")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/topic-advisor-api/internal/config"
	"github.com/yourusername/topic-advisor-api/internal/domain/repository"
	"github.com/yourusername/topic-advisor-api/internal/handler"
	"github.com/yourusername/topic-advisor-api/internal/middleware"
	pgRepo "github.com/yourusername/topic-advisor-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/topic-advisor-api/internal/repository/redis"
	"github.com/yourusername/topic-advisor-api/internal/service"
	"github.com/yourusername/topic-advisor-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis is optional. Without it the topic cache degrades to a no-op and
	// every read goes to PostgreSQL.
	cacheRepo := newCacheRepo(cfg)

	userRepo := pgRepo.NewUserRepo(db)
	tokenRepo := pgRepo.NewAuthTokenRepo(db)
	submissionRepo := pgRepo.NewSubmissionRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	savedTopicRepo := pgRepo.NewSavedTopicRepo(db)

	authService, err := service.NewAuthService(
		userRepo,
		tokenRepo,
		cfg.Auth.AdminEmailList(),
		time.Duration(cfg.Auth.TokenLifetimeHrs)*time.Hour,
	)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}

	submissionService, err := service.NewSubmissionService(submissionRepo)
	if err != nil {
		log.Printf("Failed to initialize SubmissionService: %v", err)
		os.Exit(1)
	}

	topicService, err := service.NewTopicService(topicRepo, cacheRepo, time.Duration(cfg.Cache.TopicsTTLSec)*time.Second)
	if err != nil {
		log.Printf("Failed to initialize TopicService: %v", err)
		os.Exit(1)
	}

	savedTopicService, err := service.NewSavedTopicService(savedTopicRepo)
	if err != nil {
		log.Printf("Failed to initialize SavedTopicService: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := authService.CleanupExpiredTokens(); err != nil {
					log.Printf("[Main] token cleanup failed: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewQuestionHandler()
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	topicHandler := handler.NewTopicHandler(topicService)
	savedTopicHandler := handler.NewSavedTopicHandler(savedTopicService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		}

		api.GET("/questions", questionHandler.List)

		submissions := api.Group("/submissions")
		{
			submissions.GET("", authMiddleware.RequireAuth(), submissionHandler.List)
			submissions.POST("", authMiddleware.OptionalAuth(), submissionHandler.Create)
			submissions.POST("/claim", authMiddleware.RequireAuth(), submissionHandler.Claim)
			submissions.GET("/:id", authMiddleware.OptionalAuth(), submissionHandler.Get)
		}

		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.List)
			topics.GET("/search", topicHandler.Search)
			topics.GET("/:id", topicHandler.Get)
		}

		savedTopics := api.Group("/saved-topics")
		savedTopics.Use(authMiddleware.RequireAuth())
		{
			savedTopics.GET("", savedTopicHandler.List)
			savedTopics.POST("", savedTopicHandler.Create)
			savedTopics.DELETE("/:id", savedTopicHandler.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("/topics", topicHandler.AdminList)
			admin.POST("/topics", topicHandler.Create)
			admin.PUT("/topics/:id", topicHandler.Update)
			admin.DELETE("/topics/:id", topicHandler.Delete)
			admin.GET("/submissions/export", submissionHandler.Export)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}

// newCacheRepo returns a Redis-backed cache when an address is configured,
// otherwise a no-op stand-in.
func newCacheRepo(cfg *config.Config) repository.CacheRepository {
	if cfg.Redis.Addr == "" {
		log.Println("[Main] REDIS_ADDR not set, topic cache disabled")
		return redisRepo.NoopCache{}
	}

	client, err := database.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("[Main] Redis unavailable, topic cache disabled: %v", err)
		return redisRepo.NoopCache{}
	}

	cacheRepo, err := redisRepo.NewCacheRepo(client)
	if err != nil {
		log.Printf("[Main] failed to initialize cache repo, topic cache disabled: %v", err)
		return redisRepo.NoopCache{}
	}

	log.Println("Successfully connected to Redis")
	return cacheRepo
}

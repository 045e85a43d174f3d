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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kimthedrew/jobsabroad/internal/config"
	"github.com/kimthedrew/jobsabroad/internal/handler"
	"github.com/kimthedrew/jobsabroad/internal/middleware"
	"github.com/kimthedrew/jobsabroad/internal/repository"
	"github.com/kimthedrew/jobsabroad/internal/service"
	"github.com/kimthedrew/jobsabroad/pkg/database"
	"github.com/kimthedrew/jobsabroad/pkg/redis"
)

func main() {
	cfg := config.Load()

	if cfg.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, cfg.RateLimitInterval)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)

	authService := service.NewAuthService(cfg, userRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo)
	jobService := service.NewJobService(jobRepo, profileRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo)
	searchService := service.NewSearchService(candidateRepo)

	authHandler := handler.NewAuthHandler(authService, cfg)
	profileHandler := handler.NewProfileHandler(profileService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	jobSeekerHandler := handler.NewJobSeekerHandler(searchService)

	router := setupRouter(cfg, rateLimiter, authHandler, profileHandler, jobHandler, applicationHandler, jobSeekerHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Server started")
	log.Info().Int("limit", cfg.RateLimitPerMinute).Dur("interval", cfg.RateLimitInterval).Msg("Rate limiting enabled")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func setupRouter(
	cfg *config.Config,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	jobHandler *handler.JobHandler,
	applicationHandler *handler.ApplicationHandler,
	jobSeekerHandler *handler.JobSeekerHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(rateLimiter.GinMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
			})
		})

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/logout", authHandler.Logout)

			protected.POST("/jobs", jobHandler.Create)
			protected.PUT("/jobs/:id", jobHandler.Update)
			protected.DELETE("/jobs/:id", jobHandler.Delete)
			protected.GET("/jobs/my-jobs", jobHandler.MyJobs)

			protected.GET("/applications", applicationHandler.List)
			protected.POST("/applications", applicationHandler.Submit)
			protected.GET("/applications/:id", applicationHandler.Get)
			protected.PUT("/applications/:id", applicationHandler.Update)

			protected.GET("/profile/jobseeker/:id", profileHandler.GetJobSeeker)
			protected.PUT("/profile/jobseeker/:id", profileHandler.UpdateJobSeeker)
			protected.GET("/profile/employer/:id", profileHandler.GetEmployer)
			protected.PUT("/profile/employer/:id", profileHandler.UpdateEmployer)

			protected.GET("/jobseekers", jobSeekerHandler.Search)
			protected.GET("/jobseekers/:id", jobSeekerHandler.Get)
		}
	}

	return router
}

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

	"github.com/beepdt/Ai-Resume-Builder/internal/config"
	"github.com/beepdt/Ai-Resume-Builder/internal/handler"
	"github.com/beepdt/Ai-Resume-Builder/internal/middleware"
	"github.com/beepdt/Ai-Resume-Builder/internal/repository"
	"github.com/beepdt/Ai-Resume-Builder/internal/service"
	"github.com/beepdt/Ai-Resume-Builder/pkg/database"
	"github.com/beepdt/Ai-Resume-Builder/pkg/redis"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.Environment)

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	resumeRepo := repository.NewResumeRepository(db)
	draftStore := repository.NewDraftStore(redisClient, cfg.DraftTTL)

	resumeService := service.NewResumeService(resumeRepo, draftStore, logger)

	resumeHandler := handler.NewResumeHandler(resumeService)
	draftHandler := handler.NewDraftHandler(draftStore)

	router := setupRouter(cfg, resumeHandler, draftHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}

func newLogger(environment string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if environment != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}

func setupRouter(
	cfg *config.Config,
	resumeHandler *handler.ResumeHandler,
	draftHandler *handler.DraftHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
				"services": gin.H{
					"database": "connected",
					"redis":    "connected",
				},
			})
		})

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			resumes := protected.Group("/resumes")
			{
				resumes.GET("", resumeHandler.ListResumes)
				resumes.POST("", resumeHandler.CreateResume)
				resumes.GET("/:id", resumeHandler.GetResume)
				resumes.PUT("/:id", resumeHandler.UpdateResume)
				resumes.DELETE("/:id", resumeHandler.DeleteResume)

				resumes.GET("/:id/preview", resumeHandler.PreviewResume)
				resumes.GET("/:id/export", resumeHandler.ExportResume)
				resumes.GET("/:id/sections", resumeHandler.GetResumeSections)
			}

			drafts := protected.Group("/drafts")
			{
				drafts.GET("/resume", draftHandler.GetDraft)
				drafts.PUT("/resume", draftHandler.SaveDraft)
				drafts.DELETE("/resume", draftHandler.ClearDraft)
			}
		}
	}

	return router
}

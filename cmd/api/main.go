package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/db"
	httpadapter "github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/handlers"
	httpmiddleware "github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/middleware"
	appservice "github.com/Tarunkashyap6665/taskify-bhatiyani/internal/app/service"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/config"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := dbadapter.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	analyticsService := appservice.NewAnalyticsService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), cors.New(corsConfig(cfg)))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, analyticsHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8000"
	}
	server := &http.Server{Addr: ":" + port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced server shutdown", zap.Error(err))
	}
}

// corsConfig mirrors the permissive browser access the frontend relies on.
// gin-contrib rejects credentials together with a wildcard origin, so
// credentials are only enabled for an explicit origin list.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language"}

	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.CORSAllowOrigins
	c.AllowCredentials = true
	return c
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Marketplace/internal/config"
	"Marketplace/internal/handlers"
	"Marketplace/internal/logger"
	"Marketplace/internal/repo"
	"Marketplace/internal/service"
)

func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	//сброс буфера логгера
	defer func() {
		_ = sugar.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(repo.Options{
		Driver:       cfg.DatabaseDriver,
		DSN:          cfg.DatabaseDSN,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		Logger:       sugar,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	communityRepo := repo.NewCommunityRepository(gormDB)
	catalogService := service.NewCatalogService(repo.NewCatalogRepository(gormDB))

	var authorizer service.Authorizer = service.AllowAll{}
	if cfg.EnforceListingAuth {
		authorizer = service.NewMembershipAuthorizer(communityRepo)
	}
	listingService := service.NewListingService(repo.NewListingRepository(gormDB), catalogService, authorizer, sugar)

	h := handlers.NewHandler(listingService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server", "addr", srv.Addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDriver", cfg.DatabaseDriver,
		"EnforceListingAuth", cfg.EnforceListingAuth,
		"LogLevel", cfg.LogLevel,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}

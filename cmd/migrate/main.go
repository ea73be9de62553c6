package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Marketplace/internal/config"
	"Marketplace/internal/logger"
	"Marketplace/internal/repo"
	"Marketplace/internal/seed"
)

func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = sugar.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// InitDB прогоняет AutoMigrate для всех моделей
	gormDB, err := repo.InitDB(repo.Options{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseDSN,
		Logger: sugar,
	})
	if err != nil {
		sugar.Fatalw("migration failed", "error", err)
	}
	sugar.Infow("schema migrated", "driver", cfg.DatabaseDriver)

	if !cfg.Seed {
		return
	}

	res, err := seed.Run(ctx, gormDB, cfg.AuthSecret)
	if err != nil {
		sugar.Fatalw("seed failed", "error", err)
	}

	fmt.Printf("community_id:   %s\n", res.Community.ID)
	fmt.Printf("listed_by_id:   %s\n", res.User.ID)
	fmt.Printf("source_item_id: %s\n", res.SourceItem.ID)
	for _, c := range res.Categories {
		fmt.Printf("category:       %s %s\n", c.ID, c.Name)
	}
	fmt.Printf("user:           %s / %s\n", res.User.Email, seed.DemoPassword)
	fmt.Printf("token:          %s\n", res.Token)
}

// Command seedadmin creates the default admin credential when none exists.
// It is meant for first-run provisioning in environments where the HTTP
// setup endpoint is not reachable.
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	ctx := context.Background()
	adminRepo := postgres.NewAdminRepository(db)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Admin credential already present, nothing to do")

		return nil
	}

	username := envOrDefault("SEED_ADMIN_USERNAME", defaultUsername)
	password := envOrDefault("SEED_ADMIN_PASSWORD", defaultPassword)

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := &entity.AdminCredential{
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Seeded admin credential",
		slog.String("username", username),
		slog.Any("admin_id", admin.ID))

	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

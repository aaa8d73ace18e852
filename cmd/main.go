package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/config"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/db"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/audit"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/handler"
	repo "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/repository/postgres"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	auditLogger := audit.NewLogger(logger)

	tokenService := service.NewTokenService(userRepo,
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		cfg.PasswordResetTTLHours, cfg.MaxActiveSessions)
	passwordService := service.NewPasswordService(cfg.BcryptCost)
	securityService := service.NewSecurityService(userRepo)

	userService := service.NewUserService(userRepo, tokenService, passwordService, securityService, auditLogger,
		service.Options{
			MaxLoginAttempts: cfg.MaxLoginAttempts,
			LockoutDuration:  time.Duration(cfg.LockoutDurationMs) * time.Millisecond,
			ResetTokenTTL:    time.Duration(cfg.PasswordResetTTLHours) * time.Hour,
		})

	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	log.Fatal(app.Listen(":" + cfg.Port))
}

package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/saleworks/catalog-api/internal/config"
	"github.com/saleworks/catalog-api/internal/platform/postgres"
	"github.com/saleworks/catalog-api/internal/service/auth"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// application holds the fully wired dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	authorStore      store.AuthorStore
	categoryStore    store.CategoryStore
	subCategoryStore store.SubCategoryStore
	currencyStore    store.CurrencyStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	// Upload pipeline
	splitter *upload.Splitter
	sink     *upload.Sink
}

// newApplication creates an application instance with all dependencies
// initialized. The config, logger, and database connection must already be
// established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	verifier := auth.NewBcryptVerifier()
	app.passwordHasher = verifier
	app.passwordVerifier = verifier

	app.userStore = postgres.NewUserStore(db)
	app.authorStore = postgres.NewAuthorStore(db)
	app.categoryStore = postgres.NewCategoryStore(db)
	app.subCategoryStore = postgres.NewSubCategoryStore(db)
	app.currencyStore = postgres.NewCurrencyStore(db)

	app.splitter = upload.NewSplitter(cfg.Upload.MaxBytes)
	app.sink = upload.NewSink(cfg.Upload.Root)
	logger.Info("Upload pipeline initialized",
		"root", cfg.Upload.Root,
		"max_bytes", cfg.Upload.MaxBytes)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

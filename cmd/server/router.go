package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saleworks/catalog-api/internal/api"
	apiMiddleware "github.com/saleworks/catalog-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Mutating catalog endpoints sit behind the authentication
// middleware followed by the admin gate, so a missing token reads as 401
// before a role mismatch reads as 403.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	userHandler := api.NewUserHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.splitter,
		app.sink,
	)
	authorHandler := api.NewAuthorHandler(app.authorStore, app.splitter, app.sink)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.splitter, app.sink)
	subCategoryHandler := api.NewSubCategoryHandler(app.subCategoryStore, app.splitter, app.sink)
	currencyHandler := api.NewCurrencyHandler(app.currencyStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/me", userHandler.Me)
				r.Get("/{id}", userHandler.GetByID)
				r.Put("/{id}", userHandler.Update)
			})

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireAdmin)
				r.Get("/", userHandler.List)
				r.Delete("/{id}", userHandler.Delete)
			})
		})

		r.Route("/author", func(r chi.Router) {
			r.Get("/", authorHandler.List)
			r.Get("/{id}", authorHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireAdmin)
				r.Post("/", authorHandler.Create)
				r.Put("/{id}", authorHandler.Update)
				r.Delete("/{id}", authorHandler.Delete)
			})
		})

		r.Route("/category", func(r chi.Router) {
			// Subcategory routes nest under /category and must register
			// before the /{id} pattern would shadow them.
			r.Route("/subcategory", func(r chi.Router) {
				r.Get("/", subCategoryHandler.List)
				r.Get("/{id}", subCategoryHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(authMiddleware.Authenticate)
					r.Use(authMiddleware.RequireAdmin)
					r.Post("/", subCategoryHandler.Create)
					r.Put("/{id}", subCategoryHandler.Update)
					r.Delete("/{id}", subCategoryHandler.Delete)
				})
			})

			r.Get("/", categoryHandler.List)
			r.Get("/{id}", categoryHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireAdmin)
				r.Post("/", categoryHandler.Create)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})
		})

		r.Route("/currency", func(r chi.Router) {
			r.Get("/", currencyHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(authMiddleware.RequireAdmin)
				r.Post("/", currencyHandler.Create)
			})
		})
	})

	// Stored upload assets are served directly from disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.sink.Root())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

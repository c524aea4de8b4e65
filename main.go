package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"teachteam/config"
	"teachteam/database"
	"teachteam/handlers"
	"teachteam/middleware"
	"teachteam/models"
	"teachteam/selection"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Initialize the selection engine and handlers
	engine := selection.NewEngine(database.NewStores(database.GetDB()), logger)

	authHandler := handlers.NewAuthHandler(cfg, logger)
	appHandler := handlers.NewApplicationHandler(engine, logger)
	adminHandler := handlers.NewAdminHandler(logger)
	userHandler := handlers.NewUserHandler(logger)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
		r.Post("/password-reset/request", authHandler.RequestPasswordReset)
		r.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)

			r.Get("/applications", appHandler.List)
			r.Get("/applications/user/{userId}", appHandler.ListByUser)
			r.Put("/users/{email}", userHandler.UpdateAvatar)

			// Withdrawal is reachable by any authenticated caller, not
			// just the owning candidate.
			r.Delete("/applications/{id}", appHandler.Delete)

			// Candidate only routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleCandidate))
				r.Post("/applications", appHandler.Create)
			})

			// Lecturer only routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleLecturer))
				r.Patch("/applications/{id}", appHandler.Update)
				r.Get("/applications/lecturer/{lecturerId}", appHandler.ListForLecturer)
				r.Get("/stats", appHandler.Stats)
			})

			// Admin only routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Get("/courses", adminHandler.ListCourses)
				r.Post("/courses", adminHandler.CreateCourse)
				r.Put("/courses/{id}", adminHandler.UpdateCourse)
				r.Delete("/courses/{id}", adminHandler.DeleteCourse)
				r.Post("/assignments", adminHandler.AssignLecturer)
				r.Get("/lecturers", adminHandler.ListLecturers)
				r.Get("/candidates", adminHandler.ListCandidates)
				r.Post("/candidates/{id}/block", adminHandler.ToggleBlockCandidate)
				r.Get("/reports/overloaded", adminHandler.OverloadedCandidates)
				r.Get("/reports/unselected", adminHandler.UnselectedCandidates)
				r.Get("/reports/selected.csv", adminHandler.ExportSelectedCSV)
			})
		})
	})

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/planora/planora-go/internal/cache"
	"github.com/planora/planora-go/internal/config"
	"github.com/planora/planora-go/internal/handler"
	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
	"github.com/planora/planora-go/internal/service"
	"github.com/planora/planora-go/internal/validate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	venueRepo := repository.NewVenueRepository(db)

	summaryCache := cache.New[model.BudgetSummary](cache.DefaultTTL)
	policy := cfg.OwnershipPolicy

	authService := service.NewAuthService(userRepo, cfg.AccessSecret, cfg.RefreshSecret)
	eventService := service.NewEventService(eventRepo, policy)
	budgetService := service.NewBudgetService(budgetRepo, eventRepo, policy, summaryCache)
	checklistService := service.NewChecklistService(checklistRepo, eventRepo, policy)
	timelineService := service.NewTimelineService(timelineRepo, eventRepo, policy)
	supplierService := service.NewSupplierService(supplierRepo, policy)
	venueService := service.NewVenueService(venueRepo, eventRepo, policy)
	exportService := service.NewExportService(userRepo, eventRepo, budgetRepo, checklistRepo, timelineRepo, venueRepo, policy)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	timelineHandler := handler.NewTimelineHandler(timelineService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	venueHandler := handler.NewVenueHandler(venueService)
	exportHandler := handler.NewExportHandler(exportService)

	limiter := middleware.NewRateLimitStore()
	defer limiter.Stop()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.APIRateLimit(limiter))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRateLimit(limiter))
			r.With(validate.Middleware(validate.RegisterRules)).Post("/auth/register", authHandler.Register)
			r.With(validate.Middleware(validate.LoginRules)).Post("/auth/login", authHandler.Login)
			r.With(validate.Middleware(validate.RefreshRules)).Post("/auth/refresh", authHandler.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.AccessSecret))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Profile)
			r.With(validate.Middleware(validate.LanguageRules)).Put("/auth/language", authHandler.UpdateLanguage)

			r.Get("/events", eventHandler.List)
			r.With(validate.Middleware(validate.EventRules)).Post("/events", eventHandler.Create)
			r.Get("/events/{id}", eventHandler.Get)
			r.Put("/events/{id}", eventHandler.Update)
			r.Delete("/events/{id}", eventHandler.Delete)
			r.Post("/events/{id}/duplicate", eventHandler.Duplicate)

			r.Get("/events/{eventId}/budget/categories", budgetHandler.ListCategories)
			r.With(validate.Middleware(validate.BudgetCategoryRules)).Post("/events/{eventId}/budget/categories", budgetHandler.CreateCategory)
			r.Post("/events/{eventId}/budget/categories/defaults", budgetHandler.GenerateDefaultCategories)
			r.Get("/events/{eventId}/budget/summary", budgetHandler.Summary)
			r.Put("/budget/categories/{id}", budgetHandler.UpdateCategory)
			r.Delete("/budget/categories/{id}", budgetHandler.DeleteCategory)
			r.With(validate.Middleware(validate.BudgetItemRules)).Post("/budget/categories/{id}/items", budgetHandler.CreateItem)
			r.Put("/budget/items/{id}", budgetHandler.UpdateItem)
			r.Delete("/budget/items/{id}", budgetHandler.DeleteItem)

			r.Get("/events/{eventId}/checklist", checklistHandler.List)
			r.With(validate.Middleware(validate.ChecklistItemRules)).Post("/events/{eventId}/checklist", checklistHandler.Create)
			r.Post("/events/{eventId}/checklist/template", checklistHandler.GenerateTemplate)
			r.Put("/checklist/{id}", checklistHandler.Update)
			r.Patch("/checklist/{id}/toggle", checklistHandler.Toggle)
			r.Delete("/checklist/{id}", checklistHandler.Delete)

			r.Get("/events/{eventId}/timeline", timelineHandler.List)
			r.With(validate.Middleware(validate.TimelineEntryRules)).Post("/events/{eventId}/timeline", timelineHandler.Create)
			r.Put("/timeline/{id}", timelineHandler.Update)
			r.Delete("/timeline/{id}", timelineHandler.Delete)

			r.Get("/suppliers", supplierHandler.List)
			r.With(validate.Middleware(validate.SupplierRules)).Post("/suppliers", supplierHandler.Create)
			r.Get("/suppliers/{id}", supplierHandler.Get)
			r.Put("/suppliers/{id}", supplierHandler.Update)
			r.Delete("/suppliers/{id}", supplierHandler.Delete)

			r.Get("/events/{eventId}/venue", venueHandler.Get)
			r.With(validate.Middleware(validate.VenueRules)).Post("/events/{eventId}/venue", venueHandler.Create)
			r.Put("/venues/{id}", venueHandler.Update)
			r.Delete("/venues/{id}", venueHandler.Delete)

			r.With(middleware.ExportRateLimit(limiter)).Get("/events/{eventId}/export/{format}", exportHandler.Export)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

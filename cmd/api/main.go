package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/patunganyuk/patungan/internal/bill"
	"github.com/patunganyuk/patungan/internal/config"
	"github.com/patunganyuk/patungan/internal/manual"
	"github.com/patunganyuk/patungan/internal/receipt"
	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/internal/session/memory"
	"github.com/patunganyuk/patungan/pkg/logging"
	mw "github.com/patunganyuk/patungan/pkg/middleware"
	"github.com/patunganyuk/patungan/pkg/response"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Session state lives in memory only; every round is discarded
	// on start-over.
	store := memory.New()

	// Vision collaborator
	vision := receipt.NewClient(cfg.VisionBaseURL, cfg.VisionAPIKey, cfg.VisionModel)

	// Session feature
	sessionService := session.NewService(store)
	sessionHandler := session.NewHandler(sessionService)

	// Bill feature (itemized splitting)
	billService := bill.NewService(store)
	billHandler := bill.NewHandler(billService)

	// Manual feature (flat collection)
	manualService := manual.NewService(store)
	manualHandler := manual.NewHandler(manualService)

	// Receipt feature (AI scan)
	receiptService := receipt.NewService(store, vision)
	receiptHandler := receipt.NewHandler(receiptService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/sessions", sessionHandler.Routes(
			billHandler.Routes(),
			manualHandler.Routes(),
			receiptHandler.SessionRoutes(),
		))
		r.Mount("/receipts", receiptHandler.Routes())
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

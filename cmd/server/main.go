package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"leaveform/internal/domain/classify"
	"leaveform/internal/domain/export"
	"leaveform/internal/domain/submission"
	"leaveform/internal/platform/archive"
	"leaveform/internal/platform/config"
	"leaveform/internal/platform/email"
	"leaveform/internal/platform/metrics"
	"leaveform/internal/platform/pdf"
	"leaveform/internal/platform/sheets"
	"leaveform/internal/transport/http/api"
	submissionhandler "leaveform/internal/transport/http/handlers/submission"
	"leaveform/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "err", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if dir := filepath.Dir(cfg.WorkbookPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create workbook dir: %v", err)
		}
	}

	workbook, err := sheets.Open(cfg.WorkbookPath, cfg.ApplicationsSheet, cfg.TemplateSheet)
	if err != nil {
		log.Fatalf("open workbook: %v", err)
	}
	defer workbook.Close()

	taxonomy := classify.Default()
	renderer := pdf.New(workbook)
	mailer := email.New(cfg)
	forms := archive.New(cfg.ArchiveDir)

	exporter := export.NewService(taxonomy, workbook, renderer, mailer, forms,
		cfg.ExportRetryAttempts, cfg.ExportRetryBaseDelay)
	service := submission.NewService(workbook, exporter, cfg.SubmitLockWait)

	collector := metrics.New()
	isProd := cfg.Environment == "production"

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(isProd))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

		handler := submissionhandler.NewHandler(service, collector)
		handler.RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	log.Printf("leave application server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

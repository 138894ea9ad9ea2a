// Command worker runs the scrape-and-summarize pipeline on a cron schedule
// against a configured list of URLs. It exposes health and metrics endpoints
// on a side port for monitoring.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	hhttp "scrape-digest/internal/handler/http"
	pgRepo "scrape-digest/internal/infra/adapter/persistence/postgres"
	sqliteRepo "scrape-digest/internal/infra/adapter/persistence/sqlite"
	"scrape-digest/internal/infra/db"
	"scrape-digest/internal/infra/scraper"
	"scrape-digest/internal/infra/summarizer"
	"scrape-digest/internal/repository"
	scrapeUC "scrape-digest/internal/usecase/scrape"
	"scrape-digest/internal/utils/text"
	"scrape-digest/pkg/config"
)

// workerConfig holds the scrape schedule settings read from the environment.
type workerConfig struct {
	URLs         []string
	CronSchedule string
	Limit        int
	RunTimeout   time.Duration
	HealthAddr   string
}

func loadWorkerConfig() workerConfig {
	return workerConfig{
		URLs:         config.GetEnvStringList("SCRAPE_URLS", nil),
		CronSchedule: config.GetEnvString("SCRAPE_CRON", "0 * * * *"),
		Limit:        config.GetEnvInt("SCRAPE_LIMIT", scrapeUC.DefaultLimit),
		RunTimeout:   config.GetEnvDuration("SCRAPE_RUN_TIMEOUT", 10*time.Minute),
		HealthAddr:   config.GetEnvString("WORKER_HEALTH_ADDR", ":8081"),
	}
}

func main() {
	logger := initLogger()

	cfg := loadWorkerConfig()
	if len(cfg.URLs) == 0 {
		logger.Error("SCRAPE_URLS must list at least one URL")
		os.Exit(1)
	}

	database, dialect, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database, dialect); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	svc, err := buildService(database, dialect)
	if err != nil {
		logger.Error("failed to build pipeline", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.Int("url_count", len(cfg.URLs)),
		slog.Int("limit", cfg.Limit),
		slog.Duration("run_timeout", cfg.RunTimeout))

	sideServer := startSideServer(logger, database, cfg.HealthAddr)

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		runOnce(logger, svc, cfg)
	}); err != nil {
		logger.Error("invalid cron schedule",
			slog.String("schedule", cfg.CronSchedule),
			slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	logger.Info("worker started")

	// One immediate run so a fresh deployment does not wait for the first
	// cron tick.
	runOnce(logger, svc, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down worker...")

	cronCtx := c.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sideServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("side server shutdown failed", slog.Any("error", err))
	}
	logger.Info("worker stopped")
}

func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// buildService wires the scrape pipeline for the worker.
func buildService(database *sql.DB, dialect db.Dialect) (*scrapeUC.Service, error) {
	provider, err := summarizer.NewProviderFromEnv(context.Background())
	if err != nil {
		return nil, err
	}

	var repo repository.ArticleRepository
	if dialect == db.DialectPostgres {
		repo = pgRepo.NewArticleRepo(database)
	} else {
		repo = sqliteRepo.NewArticleRepo(database)
	}

	httpClient := &http.Client{
		Timeout: config.GetEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
	}

	return &scrapeUC.Service{
		Extractor:  scraper.New(httpClient),
		Normalizer: text.NewNormalizer(nil),
		Summarizer: summarizer.NewGateway(provider, summarizer.LoadGatewayConfig()),
		Repo:       repo,
	}, nil
}

// runOnce processes every configured URL in order. Failures on one URL do
// not stop the rest of the batch.
func runOnce(logger *slog.Logger, svc *scrapeUC.Service, cfg workerConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	for _, url := range cfg.URLs {
		result, err := svc.ScrapeAndSummarize(ctx, url, cfg.Limit)
		if err != nil {
			logger.Error("scrape run failed",
				slog.String("url", url),
				slog.Any("error", err))
			continue
		}
		logger.Info("scrape run completed",
			slog.String("url", url),
			slog.Int("processed", result.Processed))
	}
}

// startSideServer exposes /health and /metrics for the worker process.
func startSideServer(logger *slog.Logger, database *sql.DB, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("worker side server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("side server failed", slog.Any("error", err))
		}
	}()
	return srv
}

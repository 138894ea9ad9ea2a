// Command api runs the Scrape Digest HTTP server: the scrape-and-summarize
// pipeline and article CRUD endpoints under /api/v1, plus health and
// Prometheus metrics endpoints.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	hhttp "scrape-digest/internal/handler/http"
	harticle "scrape-digest/internal/handler/http/article"
	"scrape-digest/internal/handler/http/requestid"
	pgRepo "scrape-digest/internal/infra/adapter/persistence/postgres"
	sqliteRepo "scrape-digest/internal/infra/adapter/persistence/sqlite"
	"scrape-digest/internal/infra/db"
	"scrape-digest/internal/infra/scraper"
	"scrape-digest/internal/infra/summarizer"
	"scrape-digest/internal/repository"
	artUC "scrape-digest/internal/usecase/article"
	scrapeUC "scrape-digest/internal/usecase/scrape"
	"scrape-digest/internal/utils/text"
	"scrape-digest/pkg/config"
)

const version = "1.0.0"

func main() {
	logger := initLogger()

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

	handler, err := buildHandler(logger, database, dialect)
	if err != nil {
		logger.Error("failed to build handler", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler)
}

// initLogger initializes a structured JSON logger based on LOG_LEVEL.
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

// buildHandler wires the pipeline services and returns the root handler with
// all routes and middleware applied.
func buildHandler(logger *slog.Logger, database *sql.DB, dialect db.Dialect) (http.Handler, error) {
	ctx := context.Background()

	provider, err := summarizer.NewProviderFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	gateway := summarizer.NewGateway(provider, summarizer.LoadGatewayConfig())

	httpClient := &http.Client{
		Timeout: config.GetEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
	}

	repo := newArticleRepo(database, dialect)
	normalizer, err := loadNormalizer()
	if err != nil {
		return nil, err
	}

	scrapeSvc := &scrapeUC.Service{
		Extractor:  scraper.New(httpClient),
		Normalizer: normalizer,
		Summarizer: gateway,
		Repo:       repo,
	}
	articleSvc := &artUC.Service{Repo: repo}

	mux := http.NewServeMux()
	mux.Handle("/", hhttp.RootHandler{Version: version})
	healthHandler := &hhttp.HealthHandler{DB: database}
	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /api/v1/health", healthHandler)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	harticle.Register(mux, scrapeSvc, articleSvc)

	handler := hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.CORS,
		hhttp.Metrics,
	)
	return handler, nil
}

// newArticleRepo picks the repository implementation matching the dialect.
func newArticleRepo(database *sql.DB, dialect db.Dialect) repository.ArticleRepository {
	if dialect == db.DialectPostgres {
		return pgRepo.NewArticleRepo(database)
	}
	return sqliteRepo.NewArticleRepo(database)
}

// loadNormalizer builds the text normalizer, optionally loading a custom
// stopword list from STOPWORDS_FILE.
func loadNormalizer() (*text.Normalizer, error) {
	path := os.Getenv("STOPWORDS_FILE")
	if path == "" {
		return text.NewNormalizer(nil), nil
	}
	stopwords, err := text.LoadStopwords(path)
	if err != nil {
		return nil, err
	}
	return text.NewNormalizer(stopwords), nil
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

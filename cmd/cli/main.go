// Command cli drives the scrape-and-summarize pipeline and article store
// from the command line. It talks to the database directly rather than going
// through the HTTP API.
//
// Usage:
//
//	cli scrape -url <url> [-limit n] [-verbose]
//	cli get -id <id>
//	cli list [-skip n] [-limit n]
//	cli delete -id <id> [-yes]
//	cli delete-batch -ids 1,2,3
//	cli init-db
//	cli test-summarizer [-text <text>]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

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

func main() {
	logLevel := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	if err := run(cmd, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cli <command> [flags]

commands:
  scrape           scrape a URL and store summarized articles
  get              print one article by id
  list             print stored articles
  delete           delete one article by id
  delete-batch     delete several articles by id
  init-db          create the database schema
  test-summarizer  send a test prompt to the configured provider`)
}

func run(cmd string, args []string) error {
	switch cmd {
	case "scrape":
		return runScrape(args)
	case "get":
		return runGet(args)
	case "list":
		return runList(args)
	case "delete":
		return runDelete(args)
	case "delete-batch":
		return runDeleteBatch(args)
	case "init-db":
		return runInitDB()
	case "test-summarizer":
		return runTestSummarizer(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// openStore opens the database and returns the matching repository.
func openStore() (*sql.DB, repository.ArticleRepository, error) {
	database, dialect, err := db.Open()
	if err != nil {
		return nil, nil, err
	}
	if err := db.MigrateUp(database, dialect); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	if dialect == db.DialectPostgres {
		return database, pgRepo.NewArticleRepo(database), nil
	}
	return database, sqliteRepo.NewArticleRepo(database), nil
}

func runScrape(args []string) error {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	url := fs.String("url", "", "page URL to scrape")
	limit := fs.Int("limit", scrapeUC.DefaultLimit, "maximum articles to extract")
	verbose := fs.Bool("verbose", false, "log pipeline progress")
	_ = fs.Parse(args)

	if *url == "" {
		return fmt.Errorf("-url is required")
	}
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	database, repo, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	provider, err := summarizer.NewProviderFromEnv(context.Background())
	if err != nil {
		return err
	}

	svc := &scrapeUC.Service{
		Extractor: scraper.New(&http.Client{
			Timeout: config.GetEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
		}),
		Normalizer: text.NewNormalizer(nil),
		Summarizer: summarizer.NewGateway(provider, summarizer.LoadGatewayConfig()),
		Repo:       repo,
	}

	result, err := svc.ScrapeAndSummarize(context.Background(), *url, *limit)
	if err != nil {
		return err
	}
	fmt.Printf("Processed %d articles: %v\n", result.Processed, result.IDs)
	return nil
}

func runGet(args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.Int64("id", 0, "article id")
	_ = fs.Parse(args)

	database, repo, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	svc := &artUC.Service{Repo: repo}
	art, err := svc.Get(context.Background(), *id)
	if err != nil {
		return err
	}

	fmt.Printf("ID:         %d\n", art.ID)
	fmt.Printf("Title:      %s\n", art.Title)
	fmt.Printf("Author:     %s\n", art.Author)
	fmt.Printf("Source:     %s\n", art.SourceURL)
	fmt.Printf("Created:    %s\n", art.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Printf("Summary:    %s\n", art.Summary)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	skip := fs.Int("skip", 0, "rows to skip")
	limit := fs.Int("limit", 100, "maximum rows to print")
	_ = fs.Parse(args)

	database, repo, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	svc := &artUC.Service{Repo: repo}
	result, err := svc.List(context.Background(), *skip, *limit)
	if err != nil {
		return err
	}

	fmt.Printf("%d articles (showing %d)\n", result.Total, len(result.Articles))
	for _, art := range result.Articles {
		fmt.Printf("%6d  %-40.40s  %-20.20s  %s\n",
			art.ID, art.Title, art.Author, art.SourceURL)
	}
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "article id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	_ = fs.Parse(args)

	if !*yes {
		fmt.Printf("Delete article %d? [y/N] ", *id)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" && answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	database, repo, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	svc := &artUC.Service{Repo: repo}
	if err := svc.Delete(context.Background(), *id); err != nil {
		return err
	}
	fmt.Printf("Article %d deleted\n", *id)
	return nil
}

func runDeleteBatch(args []string) error {
	fs := flag.NewFlagSet("delete-batch", flag.ExitOnError)
	rawIDs := fs.String("ids", "", "comma-separated article ids")
	_ = fs.Parse(args)

	ids, err := parseIDs(*rawIDs)
	if err != nil {
		return err
	}

	database, repo, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	svc := &artUC.Service{Repo: repo}
	result, err := svc.DeleteBatch(context.Background(), ids)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d of %d articles\n", result.Deleted, result.Requested)
	return nil
}

func parseIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, fmt.Errorf("-ids is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runInitDB() error {
	database, dialect, err := db.Open()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := db.MigrateUp(database, dialect); err != nil {
		return err
	}
	fmt.Println("Database initialized")
	return nil
}

func runTestSummarizer(args []string) error {
	fs := flag.NewFlagSet("test-summarizer", flag.ExitOnError)
	input := fs.String("text", "The quick brown fox jumps over the lazy dog.", "text to summarize")
	_ = fs.Parse(args)

	provider, err := summarizer.NewProviderFromEnv(context.Background())
	if err != nil {
		return err
	}
	gateway := summarizer.NewGateway(provider, summarizer.LoadGatewayConfig())

	fmt.Printf("Provider: %s\n", provider.Name())
	fmt.Printf("Summary:  %s\n", gateway.SummarizeText(context.Background(), *input))
	return nil
}

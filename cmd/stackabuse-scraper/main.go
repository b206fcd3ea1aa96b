// Command stackabuse-scraper crawls a Stack Abuse author archive and
// writes the collected posts as CSV, JSON, per-post Markdown files or a
// SQLite archive.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/msanatan/stackabuse-scraper/config"
	"github.com/msanatan/stackabuse-scraper/encode"
	"github.com/msanatan/stackabuse-scraper/scraper"
	"github.com/msanatan/stackabuse-scraper/store"
)

var cli struct {
	Author   string `arg:"" help:"Author slug on the site, e.g. usman."`
	Format   string `help:"Output format." enum:"csv,json,markdown,sqlite" default:"csv"`
	Out      string `help:"Output file, or directory for markdown. Defaults depend on the format."`
	Enrich   bool   `help:"Fetch each post's page for categories, description and content."`
	Source   string `help:"Where to list posts from." enum:"html,feed" default:"html"`
	Delay    string `help:"Delay before each detail fetch, e.g. 500ms." placeholder:"DURATION"`
	Timeout  string `help:"Per-request timeout, e.g. 10s." placeholder:"DURATION"`
	Editor   string `help:"Editor name stamped on enriched records."`
	Config   string `help:"Path to a YAML config file." type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("stackabuse-scraper"),
		kong.Description("Scrape all posts by a Stack Abuse author."),
	)

	logger, err := newLogger(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	kctx.FatalIfErrorf(run(logger))
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Delay != "" {
		cfg.Crawl.Delay = cli.Delay
	}
	if cli.Timeout != "" {
		cfg.Crawl.Timeout = cli.Timeout
	}
	if cli.Editor != "" {
		cfg.Crawl.Editor = cli.Editor
	}

	base := strings.TrimSuffix(cfg.Site.BaseURL, "/")
	startURL := fmt.Sprintf("%s/author/%s/", base, cli.Author)

	posts, err := collectPosts(cfg, base, startURL, logger)
	if err != nil {
		return err
	}
	logger.Info("retrieved posts", zap.Int("count", len(posts)))

	return writeOutput(posts, startURL, logger)
}

// collectPosts runs the crawl (or the feed fetch) and returns the full
// ordered post collection.
func collectPosts(cfg *config.Config, base, startURL string, logger *zap.Logger) ([]scraper.Post, error) {
	ctx := context.Background()

	if cli.Source == "feed" {
		feedURL := fmt.Sprintf("%s/author/%s/rss/", base, cli.Author)
		return scraper.NewFeedSource(logger).Posts(ctx, feedURL)
	}

	strategy, err := scraper.NewHTMLStrategy(&cfg.Site, logger)
	if err != nil {
		return nil, err
	}

	crawler := scraper.New(
		scraper.NewFetcher(cfg.Crawl.TimeoutDuration()),
		strategy,
		&scraper.Config{
			Enrich: cli.Enrich,
			Editor: cfg.Crawl.Editor,
			Delay:  cfg.Crawl.DelayDuration(),
		},
		logger,
	)

	return crawler.Crawl(ctx, startURL)
}

// writeOutput hands the finished collection to the output form selected by
// --format. The crawl is complete before anything here touches the
// filesystem.
func writeOutput(posts []scraper.Post, startURL string, logger *zap.Logger) error {
	out := cli.Out
	if out == "" {
		out = defaultOutput(cli.Format)
	}

	var err error
	switch cli.Format {
	case "json":
		err = writeFile(out, posts, encode.JSON)
	case "markdown":
		err = encode.Markdown(out, posts)
	case "sqlite":
		err = saveCrawl(out, startURL, posts, logger)
	default:
		err = writeFile(out, posts, encode.CSV)
	}
	if err != nil {
		return err
	}

	logger.Info("wrote output", zap.String("path", out), zap.String("format", cli.Format))
	return nil
}

func writeFile(path string, posts []scraper.Post, enc func(io.Writer, []scraper.Post) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return enc(f, posts)
}

func saveCrawl(path, startURL string, posts []scraper.Post, logger *zap.Logger) error {
	db, err := store.NewSqliteStore(path)
	if err != nil {
		return err
	}
	defer db.Close()

	crawlID, err := db.SaveCrawl(startURL, posts)
	if err != nil {
		return err
	}
	logger.Info("saved crawl", zap.String("crawl_id", crawlID))
	return nil
}

func defaultOutput(format string) string {
	switch format {
	case "json":
		return "stackabuse_articles.json"
	case "markdown":
		return "posts"
	case "sqlite":
		return "stackabuse_articles.db"
	default:
		return "stackabuse_articles.csv"
	}
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

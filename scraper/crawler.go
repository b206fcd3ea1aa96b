package scraper

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds the crawl options that aren't part of the site profile.
type Config struct {
	// Enrich controls whether each post's own page is fetched for
	// categories, description and content.
	Enrich bool
	// Editor is stamped onto every enriched record. It is supplied by the
	// caller, never extracted.
	Editor string
	// Delay is applied before each detail fetch to bound the request rate
	// against the origin server.
	Delay time.Duration
}

// DefaultConfig returns the crawl options used when none are given.
func DefaultConfig() *Config {
	return &Config{
		Delay: 500 * time.Millisecond,
	}
}

// Crawler walks an author archive page by page, extracting posts from each
// listing page and optionally enriching them with a second fetch per post.
// It is strictly sequential; the only pacing mechanism is the fixed delay
// before detail fetches.
type Crawler struct {
	fetcher  *Fetcher
	strategy Strategy
	config   *Config
	logger   *zap.Logger
}

// New creates a crawler. A nil config selects DefaultConfig; a nil logger
// discards all output.
func New(fetcher *Fetcher, strategy Strategy, config *Config, logger *zap.Logger) *Crawler {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Crawler{
		fetcher:  fetcher,
		strategy: strategy,
		config:   config,
		logger:   logger,
	}
}

// Crawl follows the pagination chain starting at startURL and returns every
// post found, in page-visit order and top-to-bottom within each page. The
// result is never re-sorted or deduplicated.
//
// A failed page fetch ends the walk but is not an error: the posts
// collected so far are returned, matching the treat-it-as-no-more-posts
// behavior the site's markup drift makes necessary. The only error returned
// is context cancellation. Already-visited URLs are never fetched twice, so
// a pagination chain that loops back on itself terminates cleanly.
func (c *Crawler) Crawl(ctx context.Context, startURL string) ([]Post, error) {
	logger := c.logger.With(zap.String("crawl_id", uuid.NewString()))

	var posts []Post
	visited := make(map[string]struct{})
	cursor := startURL

	for cursor != "" {
		if _, seen := visited[cursor]; seen {
			logger.Warn("pagination cycle detected, stopping",
				zap.String("url", cursor),
			)
			break
		}
		visited[cursor] = struct{}{}

		logger.Info("scraping listing page", zap.String("url", cursor))

		doc, err := c.fetcher.Fetch(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return posts, ctx.Err()
			}
			logger.Error("could not get a response for the page, stopping",
				zap.String("url", cursor),
				zap.Error(err),
			)
			return posts, nil
		}

		pagePosts, next, err := c.strategy.ExtractListing(doc)
		if err != nil {
			logger.Warn("some posts on the page could not be extracted",
				zap.String("url", cursor),
				zap.Error(err),
			)
		}

		if c.config.Enrich {
			for i := range pagePosts {
				if err := c.enrich(ctx, logger, &pagePosts[i]); err != nil {
					return append(posts, pagePosts[:i]...), err
				}
			}
		}

		posts = append(posts, pagePosts...)
		logger.Info("posts found on page", zap.Int("count", len(pagePosts)))

		if next != "" {
			logger.Debug("retrieving older posts", zap.String("next", next))
		}
		cursor = next
	}

	logger.Info("crawl finished", zap.Int("total", len(posts)))
	return posts, nil
}

// enrich fetches one post's page and merges its detail fields into the
// record. A failed fetch or parse downgrades that one post's enrichment
// fields to their empty defaults; only context cancellation aborts the
// crawl. The politeness delay is applied before the fetch.
func (c *Crawler) enrich(ctx context.Context, logger *zap.Logger, post *Post) error {
	post.Editor = c.config.Editor

	if c.config.Delay > 0 {
		timer := time.NewTimer(c.config.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	doc, err := c.fetcher.Fetch(ctx, post.Link)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("detail fetch failed, keeping listing fields only",
			zap.String("url", post.Link),
			zap.Error(err),
		)
		return nil
	}

	detail, err := c.strategy.ExtractDetail(doc)
	if err != nil {
		logger.Warn("detail extraction failed, keeping listing fields only",
			zap.String("url", post.Link),
			zap.Error(err),
		)
		return nil
	}

	post.Description = detail.Description
	post.Categories = detail.Categories
	post.Content = detail.Content
	return nil
}

package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// FeedSource lists an author's posts from the site's RSS feed instead of
// walking the paginated HTML archive. Feeds carry most enrichment fields
// inline, so no second fetch per post is needed.
type FeedSource struct {
	parser *gofeed.Parser
	logger *zap.Logger
}

// NewFeedSource creates a feed-backed listing source.
func NewFeedSource(logger *zap.Logger) *FeedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedSource{
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

// Posts fetches and parses the feed at feedURL and converts every item to a
// Post. Item order follows the feed document. Items without a link are
// skipped; a missing publication date falls back to the feed's updated
// time, then to empty.
func (fs *FeedSource) Posts(ctx context.Context, feedURL string) ([]Post, error) {
	feed, err := fs.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			fs.logger.Warn("skipping feed item without a link",
				zap.String("title", item.Title),
			)
			continue
		}
		posts = append(posts, feedItemToPost(item))
	}

	fs.logger.Info("posts found in feed", zap.Int("count", len(posts)))
	return posts, nil
}

// feedItemToPost maps one RSS/Atom item onto the Post shape the encoders
// consume. gofeed normalizes both formats, so the mapping is shared.
func feedItemToPost(item *gofeed.Item) Post {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "(No title)"
	}

	post := Post{
		Title:       title,
		Link:        item.Link,
		Description: strings.TrimSpace(item.Description),
		Categories:  item.Categories,
		Content:     strings.TrimSpace(item.Content),
	}

	if item.PublishedParsed != nil {
		post.Date = item.PublishedParsed.Format(isoDateLayout)
	} else if item.UpdatedParsed != nil {
		post.Date = item.UpdatedParsed.Format(isoDateLayout)
	}

	if item.Author != nil && item.Author.Name != "" {
		post.Author = item.Author.Name
	} else if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		post.Author = item.Authors[0].Name
	}

	return post
}

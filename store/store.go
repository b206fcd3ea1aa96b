// Package store persists finished crawls to a local database. It is an
// export target like the encoders, not a cache: every run writes a new
// crawl and nothing is ever read back to influence crawling.
package store

import "github.com/msanatan/stackabuse-scraper/scraper"

// Store archives the result of a completed crawl.
type Store interface {
	// SaveCrawl writes the crawl and its posts, returning the new crawl's
	// ID. Post order is preserved.
	SaveCrawl(startURL string, posts []scraper.Post) (string, error)
	// Posts returns the posts of a stored crawl in their original order.
	Posts(crawlID string) ([]scraper.Post, error)
	Close() error
}

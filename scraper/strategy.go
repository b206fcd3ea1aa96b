package scraper

import "github.com/PuerkitoBio/goquery"

// Strategy extracts posts from one revision of a site's markup. A site
// redesign gets a new Strategy (or a new SiteProfile for the selector-driven
// one) rather than changes to the crawl loop.
type Strategy interface {
	// ExtractListing returns the posts found on a listing page in document
	// order, plus the absolute URL of the next-older listing page ("" when
	// this is the last page). A non-nil error reports items that had to be
	// skipped; the returned posts are still usable.
	ExtractListing(doc *goquery.Document) ([]Post, string, error)

	// ExtractDetail pulls the enrichment fields from a post's own page.
	// Missing elements are not errors; the corresponding fields degrade to
	// their empty values.
	ExtractDetail(doc *goquery.Document) (Detail, error)
}

// SiteProfile describes how to locate post data in a specific revision of
// the site's markup. Profiles are what a config file customizes; the crawl
// logic never hard-codes a selector.
type SiteProfile struct {
	BaseURL             string `yaml:"base_url"`
	ArticleSelector     string `yaml:"article_selector"`
	TitleSelector       string `yaml:"title_selector"`
	DateSelector        string `yaml:"date_selector"`
	DateLayout          string `yaml:"date_layout"` // Go time layout for listing dates
	AuthorSelector      string `yaml:"author_selector,omitempty"`
	PaginationSelector  string `yaml:"pagination_selector"`
	CategorySelector    string `yaml:"category_selector,omitempty"`
	DescriptionSelector string `yaml:"description_selector,omitempty"` // element whose content attribute carries the synopsis
	ContentSelector     string `yaml:"content_selector,omitempty"`
}

// StackAbuseProfile returns the selector profile for the current Stack
// Abuse markup.
func StackAbuseProfile() *SiteProfile {
	return &SiteProfile{
		BaseURL:             "https://stackabuse.com",
		ArticleSelector:     "article",
		TitleSelector:       "h2.post-title a",
		DateSelector:        "div.post-meta span.date",
		DateLayout:          "January 2, 2006",
		AuthorSelector:      "div.post-meta span.author",
		PaginationSelector:  "nav.pagination a.older-posts",
		CategorySelector:    "div.post-tags a",
		DescriptionSelector: "meta[name='description']",
		ContentSelector:     "section.post-content p",
	}
}

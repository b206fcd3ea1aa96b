package scraper

// Post represents a single blog post pulled from an author archive. The
// Title, Link and Date fields come from the listing page; the remaining
// fields are only populated when the crawl runs with enrichment enabled.
type Post struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Date        string   `json:"date"` // normalized to YYYY-MM-DD
	Author      string   `json:"author,omitempty"`
	Editor      string   `json:"editor,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Content     string   `json:"content,omitempty"`
}

// Detail holds the fields extracted from a post's own page during
// enrichment. Any of them may be empty when the page doesn't carry the
// corresponding element.
type Detail struct {
	Description string
	Categories  []string
	Content     string
}

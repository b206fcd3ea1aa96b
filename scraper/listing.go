package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// isoDateLayout is the normalized output format for post dates.
const isoDateLayout = "2006-01-02"

// HTMLStrategy extracts posts from the site's HTML using the selectors in a
// SiteProfile. It is the default Strategy; FeedSource covers sites that
// expose their archive over RSS instead.
type HTMLStrategy struct {
	profile   *SiteProfile
	base      *url.URL
	logger    *zap.Logger
	converter *md.Converter
}

// NewHTMLStrategy builds a selector-driven strategy for the given profile.
// The profile's BaseURL must parse; relative hrefs on listing pages are
// resolved against it.
func NewHTMLStrategy(profile *SiteProfile, logger *zap.Logger) (*HTMLStrategy, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	base, err := url.Parse(profile.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %q: %w", profile.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", profile.BaseURL)
	}
	return &HTMLStrategy{
		profile:   profile,
		base:      base,
		logger:    logger,
		converter: newMarkdownConverter(),
	}, nil
}

// ExtractListing walks every article block on a listing page and extracts a
// Post from each. A block with a missing title, missing link or unparsable
// date is skipped and reported through the returned error; the rest of the
// page still extracts. The second return value is the absolute URL of the
// next-older listing page, or "" when the pagination control is absent.
func (s *HTMLStrategy) ExtractListing(doc *goquery.Document) ([]Post, string, error) {
	var posts []Post
	var merr *multierror.Error

	doc.Find(s.profile.ArticleSelector).Each(func(i int, sel *goquery.Selection) {
		post, err := s.extractPost(sel)
		if err != nil {
			s.logger.Warn("skipping unextractable post",
				zap.Int("index", i),
				zap.Error(err),
			)
			merr = multierror.Append(merr, fmt.Errorf("article %d: %w", i, err))
			return
		}
		posts = append(posts, post)
	})

	next := ""
	if href, ok := doc.Find(s.profile.PaginationSelector).First().Attr("href"); ok {
		resolved, err := s.resolve(href)
		if err != nil {
			s.logger.Warn("ignoring malformed pagination href",
				zap.String("href", href),
				zap.Error(err),
			)
		} else {
			next = resolved
		}
	}

	return posts, next, merr.ErrorOrNil()
}

// extractPost pulls the listing-level fields out of one article block.
func (s *HTMLStrategy) extractPost(sel *goquery.Selection) (Post, error) {
	titleSel := sel.Find(s.profile.TitleSelector).First()
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		return Post{}, fmt.Errorf("missing title")
	}

	href, ok := titleSel.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return Post{}, fmt.Errorf("missing link for %q", title)
	}
	link, err := s.resolve(href)
	if err != nil {
		return Post{}, err
	}

	dateText := strings.TrimSpace(sel.Find(s.profile.DateSelector).First().Text())
	if dateText == "" {
		return Post{}, fmt.Errorf("missing date for %q", title)
	}
	date, err := time.Parse(s.profile.DateLayout, dateText)
	if err != nil {
		return Post{}, fmt.Errorf("failed to parse date %q: %w", dateText, err)
	}

	post := Post{
		Title: title,
		Link:  link,
		Date:  date.Format(isoDateLayout),
	}

	if s.profile.AuthorSelector != "" {
		post.Author = strings.TrimSpace(sel.Find(s.profile.AuthorSelector).First().Text())
	}

	return post, nil
}

// resolve turns a page-relative href into an absolute URL on the site
// origin. Already-absolute hrefs pass through unchanged; a href that
// doesn't parse is an error, never an empty link.
func (s *HTMLStrategy) resolve(href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("failed to parse href %q: %w", href, err)
	}
	return s.base.ResolveReference(ref).String(), nil
}

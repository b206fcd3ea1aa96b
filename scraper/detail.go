package scraper

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/cixtor/readability"
	"go.uber.org/zap"
)

// ExtractDetail pulls the enrichment fields from a post's own page:
// category tags, the meta description and the leading body text. None of
// them are required; absent elements degrade to empty values rather than
// failing the post. When the content selector matches nothing the whole
// page is run through a readability pass before giving up.
func (s *HTMLStrategy) ExtractDetail(doc *goquery.Document) (Detail, error) {
	detail := Detail{}

	if s.profile.CategorySelector != "" {
		doc.Find(s.profile.CategorySelector).Each(func(_ int, sel *goquery.Selection) {
			tag := strings.TrimSpace(sel.Text())
			tag = strings.TrimPrefix(tag, "#")
			if tag != "" {
				detail.Categories = append(detail.Categories, tag)
			}
		})
	}

	if s.profile.DescriptionSelector != "" {
		if desc, ok := doc.Find(s.profile.DescriptionSelector).Attr("content"); ok {
			detail.Description = strings.TrimSpace(desc)
		}
	}

	detail.Content = s.extractContent(doc)

	return detail, nil
}

// extractContent returns the first paragraph-level text block of the post
// body, keeping inline formatting as Markdown. Pages whose markup has
// drifted away from the content selector fall back to a readability pass
// over the full page; if that also finds nothing the content is simply
// empty.
func (s *HTMLStrategy) extractContent(doc *goquery.Document) string {
	selector := s.profile.ContentSelector
	if selector == "" {
		selector = "p"
	}

	sel := doc.Find(selector).First()
	if sel.Length() > 0 {
		if content := strings.TrimSpace(s.converter.Convert(sel)); content != "" {
			return content
		}
		if content := strings.TrimSpace(sel.Text()); content != "" {
			return content
		}
	}

	// The fallback only makes sense when the page has paragraph content the
	// selector missed. Run readability on a chrome-only page and it surfaces
	// headers and nav text as the body.
	if doc.Find("p").Length() == 0 {
		return ""
	}
	return s.readabilityContent(doc)
}

// readabilityContent runs the whole page through cixtor/readability and
// converts whatever article body it finds to Markdown. Returns "" when the
// page has no recognizable body.
func (s *HTMLStrategy) readabilityContent(doc *goquery.Document) string {
	html, err := doc.Html()
	if err != nil {
		return ""
	}

	r := readability.New()
	article, err := r.Parse(strings.NewReader(html), s.base.String())
	if err != nil {
		s.logger.Debug("readability pass found no content", zap.Error(err))
		return ""
	}

	content, err := s.converter.ConvertString(article.Content)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(content)
}

// newMarkdownConverter builds the shared HTML-to-Markdown converter used by
// content extraction.
func newMarkdownConverter() *md.Converter {
	return md.NewConverter("", true, nil)
}

// Package encode serializes a finished crawl into its output forms: CSV,
// JSON, or one Markdown file per post.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// csvHeader is the fixed column set. Enrichment fields are deliberately not
// serialized to CSV; the tabular form only carries the listing metadata.
var csvHeader = []string{"Title", "Link", "Date"}

// CSV writes one quoted row per post after a Title,Link,Date header row.
// Every field is quoted whether or not it needs to be, matching the
// archive's published format. Post order is preserved.
func CSV(w io.Writer, posts []scraper.Post) error {
	if err := writeCSVRow(w, csvHeader); err != nil {
		return err
	}
	for _, post := range posts {
		if err := writeCSVRow(w, []string{post.Title, post.Link, post.Date}); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVRow emits one record with every field quoted. encoding/csv only
// quotes fields that require it, so the quoting is done by hand here.
func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintf(w, "%s\r\n", strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

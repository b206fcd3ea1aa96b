package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// JSON writes the full post collection as a 4-space-indented array of
// objects, preserving every field present on each record. Post order is
// preserved.
func JSON(w io.Writer, posts []scraper.Post) error {
	if posts == nil {
		posts = []scraper.Post{}
	}

	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

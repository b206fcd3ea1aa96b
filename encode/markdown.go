package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-multierror"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// Markdown writes one file per post into dir, creating the directory if it
// doesn't exist. Each file is named by a slug of the post's title and
// starts with a front-matter block, a blank line, then the content
// verbatim. Two posts slugging to the same name silently overwrite; the
// later post wins. Failures to write individual files are collected, and
// the remaining posts are still written.
func Markdown(dir string, posts []scraper.Post) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var merr *multierror.Error
	for _, post := range posts {
		filename := filepath.Join(dir, slug.Make(post.Title)+".md")
		if err := os.WriteFile(filename, []byte(markdownFile(post)), 0644); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("failed to write %s: %w", filename, err))
		}
	}
	return merr.ErrorOrNil()
}

// markdownFile renders one post. Core front-matter keys are always
// present; enrichment keys appear only when the post carries them.
func markdownFile(post scraper.Post) string {
	var b strings.Builder

	fmt.Fprintf(&b, "title: %s\n", post.Title)
	fmt.Fprintf(&b, "date: %s\n", post.Date)
	fmt.Fprintf(&b, "link: %s\n", post.Link)
	if post.Author != "" {
		fmt.Fprintf(&b, "author: %s\n", post.Author)
	}
	if post.Editor != "" {
		fmt.Fprintf(&b, "editor: %s\n", post.Editor)
	}
	if post.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", post.Description)
	}
	if len(post.Categories) > 0 {
		fmt.Fprintf(&b, "tags: %s\n", strings.Join(post.Categories, ", "))
	}

	b.WriteString("\n")
	b.WriteString(post.Content)
	if post.Content != "" && !strings.HasSuffix(post.Content, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

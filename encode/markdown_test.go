package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// TestMarkdown_WritesOneFilePerPost verifies each post lands in a file
// named by its title slug, with front matter, a blank line, then the
// content.
func TestMarkdown_WritesOneFilePerPost(t *testing.T) {
	dir := t.TempDir()
	posts := []scraper.Post{
		{
			Title:       "Python for Loops",
			Link:        "https://stackabuse.com/python-for-loops/",
			Date:        "2018-11-23",
			Author:      "Usman Malik",
			Editor:      "Scott Robinson",
			Description: "Learn how for loops work.",
			Categories:  []string{"Python", "Basics"},
			Content:     "For loops are one of the most useful constructs.",
		},
	}

	require.NoError(t, Markdown(dir, posts))

	data, err := os.ReadFile(filepath.Join(dir, "python-for-loops.md"))
	require.NoError(t, err)

	content := string(data)
	front, body, found := strings.Cut(content, "\n\n")
	require.True(t, found, "front matter should be separated from the body by a blank line")

	assert.Contains(t, front, "title: Python for Loops")
	assert.Contains(t, front, "date: 2018-11-23")
	assert.Contains(t, front, "link: https://stackabuse.com/python-for-loops/")
	assert.Contains(t, front, "author: Usman Malik")
	assert.Contains(t, front, "editor: Scott Robinson")
	assert.Contains(t, front, "description: Learn how for loops work.")
	assert.Contains(t, front, "tags: Python, Basics")
	assert.Equal(t, "For loops are one of the most useful constructs.\n", body)
}

// TestMarkdown_BareRecordOmitsEnrichmentKeys verifies a record without
// enrichment fields only emits the core front-matter keys.
func TestMarkdown_BareRecordOmitsEnrichmentKeys(t *testing.T) {
	dir := t.TempDir()
	posts := []scraper.Post{
		{Title: "Hello World", Link: "https://stackabuse.com/hello-world/", Date: "2018-01-05"},
	}

	require.NoError(t, Markdown(dir, posts))

	data, err := os.ReadFile(filepath.Join(dir, "hello-world.md"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "title: Hello World")
	assert.NotContains(t, content, "author:")
	assert.NotContains(t, content, "editor:")
	assert.NotContains(t, content, "tags:")
}

// TestMarkdown_CreatesDirectory verifies a missing output directory is
// created.
func TestMarkdown_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "posts")
	posts := []scraper.Post{
		{Title: "Hello", Link: "https://stackabuse.com/hello/", Date: "2018-01-05"},
	}

	require.NoError(t, Markdown(dir, posts))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestMarkdown_SlugCollisionOverwrites verifies two posts with colliding
// slugs produce one file holding the later post.
func TestMarkdown_SlugCollisionOverwrites(t *testing.T) {
	dir := t.TempDir()
	posts := []scraper.Post{
		{Title: "Same Title", Link: "https://stackabuse.com/one/", Date: "2018-01-05", Content: "first"},
		{Title: "Same Title!", Link: "https://stackabuse.com/two/", Date: "2018-01-06", Content: "second"},
	}

	require.NoError(t, Markdown(dir, posts))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "same-title.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "second")
}

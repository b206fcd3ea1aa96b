package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFileReturnsDefaults verifies a non-existent config path
// is not an error.
func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "https://stackabuse.com", cfg.Site.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Crawl.DelayDuration())
	assert.Equal(t, 10*time.Second, cfg.Crawl.TimeoutDuration())
}

// TestLoad_FileOverridesDefaults verifies values from the file win while
// omitted fields keep their defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
site:
  base_url: https://example.com
  article_selector: div.entry
crawl:
  delay: 2s
  editor: Scott Robinson
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	assert.Equal(t, "div.entry", cfg.Site.ArticleSelector)
	assert.Equal(t, 2*time.Second, cfg.Crawl.DelayDuration())
	assert.Equal(t, "Scott Robinson", cfg.Crawl.Editor)
	assert.Equal(t, "h2.post-title a", cfg.Site.TitleSelector, "omitted selector should keep its default")
}

// TestLoad_MalformedFile verifies a file that exists but can't be parsed is
// an error.
func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [not: valid"), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

// TestDurations_InvalidValuesFallBack verifies junk duration strings fall
// back to the defaults rather than zero.
func TestDurations_InvalidValuesFallBack(t *testing.T) {
	crawl := CrawlConfig{Delay: "soon", Timeout: "whenever"}

	assert.Equal(t, 500*time.Millisecond, crawl.DelayDuration())
	assert.Equal(t, 10*time.Second, crawl.TimeoutDuration())
}

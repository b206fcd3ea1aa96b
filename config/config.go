// Package config loads the scraper's YAML configuration: the site profile
// (selectors for one revision of the site's markup) and run options. The
// config file is optional; missing files yield the built-in Stack Abuse
// defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/msanatan/stackabuse-scraper/scraper"
)

// Config is the structure of the scraper's YAML config file.
type Config struct {
	Site  scraper.SiteProfile `yaml:"site"`
	Crawl CrawlConfig         `yaml:"crawl"`
}

// CrawlConfig holds run options. Delay and Timeout are duration strings
// ("500ms", "10s").
type CrawlConfig struct {
	Delay   string `yaml:"delay"`
	Timeout string `yaml:"timeout"`
	Editor  string `yaml:"editor"`
}

// Default returns the built-in configuration: the current Stack Abuse
// selector profile, a 500ms politeness delay and a 10s fetch timeout.
func Default() *Config {
	return &Config{
		Site: *scraper.StackAbuseProfile(),
		Crawl: CrawlConfig{
			Delay:   "500ms",
			Timeout: "10s",
		},
	}
}

// Load reads the config file at path. A missing file is not an error and
// returns the defaults; a file that exists but can't be parsed is. Fields
// omitted from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// DelayDuration parses the configured delay, falling back to 500ms when
// unset or invalid.
func (c *CrawlConfig) DelayDuration() time.Duration {
	d, err := time.ParseDuration(c.Delay)
	if err != nil || d < 0 {
		return 500 * time.Millisecond
	}
	return d
}

// TimeoutDuration parses the configured fetch timeout, falling back to 10s
// when unset or invalid.
func (c *CrawlConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Package models defines data structures for configuration, requests and results.
package models

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLocale      = "pt"
	DefaultArticlePath = "/wiki/"
	DefaultContentID   = "mw-content-text"
	DefaultPause       = time.Second
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// WikiConfig holds everything the article fetcher needs to know about the
// upstream site. It is passed explicitly; there is no package-level state.
type WikiConfig struct {
	Locale      string `yaml:"locale"`
	BaseURL     string `yaml:"base_url"`
	ArticlePath string `yaml:"article_path"`
	// HomePaths are the landing-page paths the site redirects unknown articles to.
	HomePaths []string `yaml:"home_paths"`
	UserAgent string   `yaml:"user_agent"`
	ContentID string   `yaml:"content_id"`

	Pause   time.Duration `yaml:"pause"`
	Timeout time.Duration `yaml:"timeout"` // 0 = transport default

	ReadabilityFallback bool `yaml:"readability_fallback"`
	DetectLanguage      bool `yaml:"detect_language"`

	History bool   `yaml:"history"`
	DBPath  string `yaml:"db_path"`
}

// DefaultConfig returns the configuration for pt.wikipedia.org.
func DefaultConfig() *WikiConfig {
	return &WikiConfig{
		Locale:      DefaultLocale,
		BaseURL:     baseURLForLocale(DefaultLocale),
		ArticlePath: DefaultArticlePath,
		HomePaths: []string{
			"/wiki/Main_Page",
			"/wiki/Wikipédia:Página_principal",
			"/",
		},
		UserAgent: DefaultUserAgent,
		ContentID: DefaultContentID,
		Pause:     DefaultPause,
		History:   true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Fields absent from the file keep their default values.
func LoadConfig(path string) (*WikiConfig, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	localeBefore := config.Locale
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// A locale change without an explicit base_url moves the base URL along with it.
	if config.Locale != localeBefore && config.BaseURL == baseURLForLocale(localeBefore) {
		config.BaseURL = baseURLForLocale(config.Locale)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SetLocale switches the locale and the default base URL with it.
func (c *WikiConfig) SetLocale(locale string) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return
	}
	c.Locale = locale
	c.BaseURL = baseURLForLocale(locale)
}

// Validate checks the config for values the fetcher cannot work with.
func (c *WikiConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if c.ContentID == "" {
		return fmt.Errorf("config: content_id is required")
	}
	if c.Pause < DefaultPause {
		return fmt.Errorf("config: pause must be at least %s, got %s", DefaultPause, c.Pause)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

func baseURLForLocale(locale string) string {
	return fmt.Sprintf("https://%s.wikipedia.org", locale)
}

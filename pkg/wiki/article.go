// Package wiki fetches a single Wikipedia article and returns its body text.
package wiki

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/wiki-fetch/models"
	"github.com/dtnitsch/wiki-fetch/pkg/detector"
	"github.com/dtnitsch/wiki-fetch/pkg/fetcher"
	"github.com/dtnitsch/wiki-fetch/pkg/parser"
)

// ArticleFetcher turns an ArticleRequest into a FetchResult. Every call
// performs one GET and then pauses for config.Pause before returning.
type ArticleFetcher struct {
	config   *models.WikiConfig
	fetcher  *fetcher.Fetcher
	parser   *parser.Parser
	language *detector.LanguageDetector
	logger   *slog.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// Option customizes an ArticleFetcher.
type Option func(*ArticleFetcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *ArticleFetcher) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithFetcher replaces the HTTP fetcher built from the config.
func WithFetcher(f *fetcher.Fetcher) Option {
	return func(a *ArticleFetcher) {
		if f != nil {
			a.fetcher = f
		}
	}
}

// WithSleep replaces time.Sleep for the courtesy pause.
func WithSleep(sleep func(time.Duration)) Option {
	return func(a *ArticleFetcher) {
		if sleep != nil {
			a.sleep = sleep
		}
	}
}

// NewArticleFetcher builds a fetcher from config. A nil config means
// models.DefaultConfig().
func NewArticleFetcher(config *models.WikiConfig, opts ...Option) *ArticleFetcher {
	if config == nil {
		config = models.DefaultConfig()
	}

	a := &ArticleFetcher{
		config:  config,
		fetcher: fetcher.NewFetcher(config.UserAgent, config.Timeout),
		parser: &parser.Parser{
			ContentID:   config.ContentID,
			Readability: config.ReadabilityFallback,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		sleep:  time.Sleep,
	}
	if config.DetectLanguage {
		a.language = detector.NewLanguageDetector(config.Locale)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ArticleURL builds the article address for title: spaces become
// underscores and the result is path-escaped under the article path.
func (a *ArticleFetcher) ArticleURL(title string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	return strings.TrimRight(a.config.BaseURL, "/") + a.config.ArticlePath + url.PathEscape(slug)
}

// Fetch retrieves the article named by req. Failures are returned as
// Failure results, never as errors.
func (a *ArticleFetcher) Fetch(req models.ArticleRequest) (result models.FetchResult) {
	defer a.sleep(a.config.Pause)

	if err := req.Validate(); err != nil {
		a.logger.Warn("invalid request", "error", err)
		return models.NewFailure(models.ErrorTypeInvalidRequest, err.Error())
	}

	target := strings.TrimSpace(req.URL)
	if target == "" {
		target = a.ArticleURL(req.Title)
	}

	a.logger.Info("fetching article", "url", target, "paragraphs", req.Paragraphs)
	defer func() {
		result.URL = target
		a.logger.Info("fetch finished", "url", target, "status", result.Status, "error_type", result.ErrorType)
	}()

	resp, err := a.fetcher.Get(target)
	if err != nil {
		failure := models.NewFailure(models.ErrorTypeRequest, fmt.Sprintf(models.MsgRequestErrorFmt, err))
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			failure.StatusCode = statusErr.StatusCode
			failure.FinalURL = statusErr.URL
		}
		return failure
	}

	if a.isHomePage(resp.FinalURL) {
		failure := models.NewFailure(models.ErrorTypeNotFound, models.MsgArticleNotFound)
		failure.FinalURL = resp.FinalURL
		failure.StatusCode = resp.StatusCode
		return failure
	}

	paragraphs, err := a.parser.Paragraphs(resp.Body, resp.FinalURL)
	if err != nil {
		var failure models.FetchResult
		if errors.Is(err, parser.ErrContainerNotFound) {
			failure = models.NewFailure(models.ErrorTypeMissingContainer, models.MsgMissingContainer)
		} else {
			failure = models.NewFailure(models.ErrorTypeRequest, fmt.Sprintf(models.MsgRequestErrorFmt, err))
		}
		failure.FinalURL = resp.FinalURL
		failure.StatusCode = resp.StatusCode
		return failure
	}

	selected := parser.Select(paragraphs, req.Paragraphs)
	result = models.NewSuccess(parser.Join(selected))
	result.FinalURL = resp.FinalURL
	result.StatusCode = resp.StatusCode
	result.Paragraphs = selected
	if a.language != nil {
		result.Language = a.language.Detect(result.Text)
	}
	return result
}

// isHomePage reports whether finalURL is the site's landing page, which is
// where the wiki sends requests for articles that don't exist.
func (a *ArticleFetcher) isHomePage(finalURL string) bool {
	final, err := url.Parse(finalURL)
	if err != nil {
		return false
	}
	base, err := url.Parse(a.config.BaseURL)
	if err != nil {
		return false
	}
	if !strings.EqualFold(final.Host, base.Host) {
		return false
	}

	path := final.Path
	if path == "" {
		path = "/"
	}
	for _, home := range a.config.HomePaths {
		if unescaped, err := url.PathUnescape(home); err == nil {
			home = unescaped
		}
		if path == home {
			return true
		}
	}
	return false
}

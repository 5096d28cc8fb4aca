package fetch

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/wiki-fetch/internal/common"
	"github.com/dtnitsch/wiki-fetch/models"
	"github.com/dtnitsch/wiki-fetch/pkg/db"
	"github.com/dtnitsch/wiki-fetch/pkg/storage"
	"github.com/dtnitsch/wiki-fetch/pkg/wiki"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	Prompt        = "Enter the text to search: "
	SuccessBanner = "Content found:"
	ErrorMarker   = "Error: "
)

// Options is everything FetchAction reads from the command line.
type Options struct {
	Title      string
	URL        string
	Paragraphs int
	Format     string
	Output     string

	// Interactive prompts on the input reader when neither Title nor URL is set.
	Interactive bool
}

func FetchAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("locale") {
		config.SetLocale(c.String("locale"))
	}
	if c.IsSet("readability") {
		config.ReadabilityFallback = c.Bool("readability")
	}
	if c.IsSet("detect-language") {
		config.DetectLanguage = c.Bool("detect-language")
	}
	if c.Bool("no-history") {
		config.History = false
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}

	opts := Options{
		Title:       c.String("title"),
		URL:         c.String("url"),
		Paragraphs:  c.Int("paragraphs"),
		Format:      c.String("format"),
		Output:      c.String("output"),
		Interactive: true,
	}
	// Positional words are an alternative to --title.
	if opts.Title == "" && c.NArg() > 0 {
		opts.Title = strings.Join(c.Args().Slice(), " ")
	}

	var history *db.DB
	if config.History {
		history, err = db.Open(config.DBPath)
		if err != nil {
			logger.Warn("fetch history disabled", "error", err)
		} else {
			defer history.Close()
		}
	}

	fetcher := wiki.NewArticleFetcher(config, wiki.WithLogger(logger))
	return Run(c.App.Reader, c.App.Writer, opts, fetcher, history, logger)
}

// Run resolves the request, fetches it, records it and writes the rendered
// result. Fetch failures are printed, not returned.
func Run(in io.Reader, out io.Writer, opts Options, fetcher *wiki.ArticleFetcher, history *db.DB, logger *slog.Logger) error {
	if opts.Format == "" {
		opts.Format = "text"
	}
	if opts.Format != "text" && opts.Format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", opts.Format)
	}

	req := models.ArticleRequest{
		Title:      opts.Title,
		URL:        opts.URL,
		Paragraphs: opts.Paragraphs,
	}

	if req.Title == "" && req.URL == "" && opts.Interactive {
		query, err := promptQuery(in, out)
		if err != nil {
			return err
		}
		if common.LooksLikeURL(query) {
			req.URL = query
		} else {
			req.Title = query
		}
	}

	if req.URL != "" {
		if cleaned, err := common.ValidateURL(req.URL); err == nil {
			req.URL = cleaned
		} else {
			logger.Warn("url failed validation, fetching as given", "url", req.URL, "error", err)
		}
	}

	result := fetcher.Fetch(req)

	if history != nil {
		if fetchID, err := history.RecordFetch(req, result); err != nil {
			logger.Warn("failed to record fetch", "error", err)
		} else {
			logger.Info("fetch recorded", "fetch_id", fetchID)
		}
	}

	rendered, err := Render(result, opts.Format)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(opts.Output, rendered); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s result to %s\n", result.Status, opts.Output)
		return nil
	}

	_, err = out.Write(rendered)
	return err
}

// Render formats a result for display. Text format prints the banner and
// the article on success, and the marked error message on failure.
func Render(result models.FetchResult, format string) ([]byte, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return data, nil
	}

	var b strings.Builder
	if result.IsSuccess() {
		b.WriteString(SuccessBanner)
		b.WriteString("\n\n")
		b.WriteString(result.Text)
	} else {
		b.WriteString(ErrorMarker)
		b.WriteString(result.Message)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func promptQuery(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, Prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read query: %w", err)
	}
	return strings.TrimSpace(line), nil
}

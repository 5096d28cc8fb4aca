package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/wiki-fetch/models"
	dbpkg "github.com/dtnitsch/wiki-fetch/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func openHistory(c *cli.Context) (*dbpkg.DB, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	path := config.DBPath
	if c.IsSet("db") {
		path = c.String("db")
	}

	database, err := dbpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// HistoryAction lists recent fetches.
func HistoryAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	return PrintHistory(c.App.Writer, database, c.Int("limit"), c.Bool("failed-only"))
}

func PrintHistory(out io.Writer, database *dbpkg.DB, limit int, failedOnly bool) error {
	records, err := database.ListFetches(limit, failedOnly)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No fetches found")
		if failedOnly {
			fmt.Fprintln(out, "  - Filter: failed only")
		}
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-8s %-18s %-6s %-50s\n",
		"ID", "Fetched", "Status", "Error Type", "Paras", "URL")
	fmt.Fprintln(out, strings.Repeat("-", 112))

	for _, r := range records {
		fmt.Fprintf(out, "%-6d %-20s %-8s %-18s %-6d %-50s\n",
			r.FetchID,
			r.FetchedAt.Format("2006-01-02 15:04:05"),
			r.Status,
			r.ErrorType,
			r.ParagraphCount,
			r.RequestedURL,
		)
	}

	fmt.Fprintf(out, "\nTotal: %d fetches\n", len(records))
	return nil
}

// ShowAction prints one fetch as YAML.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("fetch ID required. Run 'wikifetch history' to list fetches")
	}

	var fetchID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &fetchID); err != nil {
		return fmt.Errorf("invalid fetch ID %q: %w", c.Args().First(), err)
	}

	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	return PrintFetch(c.App.Writer, database, fetchID)
}

func PrintFetch(out io.Writer, database *dbpkg.DB, fetchID int64) error {
	record, err := database.GetFetch(fetchID)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("fetch %d not found", fetchID)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal fetch: %w", err)
	}
	_, err = out.Write(data)
	return err
}

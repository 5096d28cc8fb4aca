package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/wiki-fetch/models"
)

// FetchRecord is one row of the fetch history.
type FetchRecord struct {
	FetchID        int64     `yaml:"fetch_id"`
	RequestedTitle string    `yaml:"requested_title,omitempty"`
	RequestedURL   string    `yaml:"requested_url,omitempty"`
	FinalURL       string    `yaml:"final_url,omitempty"`
	Status         string    `yaml:"status"`
	ErrorType      string    `yaml:"error_type,omitempty"`
	ErrorMessage   string    `yaml:"error_message,omitempty"`
	StatusCode     int       `yaml:"status_code,omitempty"`
	ParagraphCount int       `yaml:"paragraph_count"`
	Language       string    `yaml:"language,omitempty"`
	FetchedAt      time.Time `yaml:"fetched_at"`
}

// RecordFetch stores the outcome of one fetch and returns its fetch_id.
// The article text itself is not stored.
func (db *DB) RecordFetch(req models.ArticleRequest, result models.FetchResult) (int64, error) {
	requestedURL := req.URL
	if requestedURL == "" {
		requestedURL = result.URL
	}

	res, err := db.Exec(`
		INSERT INTO fetches (requested_title, requested_url, final_url, status, error_type,
			error_message, status_code, paragraph_count, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, NewNullString(req.Title), NewNullString(requestedURL), NewNullString(result.FinalURL),
		result.Kind.String(), NewNullString(string(result.ErrorType)), NewNullString(result.Message),
		result.StatusCode, result.ParagraphCount(), NewNullString(result.Language))
	if err != nil {
		return 0, fmt.Errorf("failed to record fetch: %w", err)
	}

	fetchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get fetch ID: %w", err)
	}
	return fetchID, nil
}

const selectFetch = `
	SELECT fetch_id, requested_title, requested_url, final_url, status, error_type,
		error_message, status_code, paragraph_count, language, fetched_at
	FROM fetches`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFetch(row rowScanner) (*FetchRecord, error) {
	var record FetchRecord
	var title, requestedURL, finalURL, errorType, errorMessage, language sql.NullString
	err := row.Scan(&record.FetchID, &title, &requestedURL, &finalURL, &record.Status, &errorType,
		&errorMessage, &record.StatusCode, &record.ParagraphCount, &language, &record.FetchedAt)
	if err != nil {
		return nil, err
	}
	record.RequestedTitle = title.String
	record.RequestedURL = requestedURL.String
	record.FinalURL = finalURL.String
	record.ErrorType = errorType.String
	record.ErrorMessage = errorMessage.String
	record.Language = language.String
	return &record, nil
}

// GetFetch returns a single history row, or nil if fetchID is unknown.
func (db *DB) GetFetch(fetchID int64) (*FetchRecord, error) {
	record, err := scanFetch(db.QueryRow(selectFetch+" WHERE fetch_id = ?", fetchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fetch %d: %w", fetchID, err)
	}
	return record, nil
}

// ListFetches returns the most recent fetches first. A limit of 0 returns all.
func (db *DB) ListFetches(limit int, failedOnly bool) ([]FetchRecord, error) {
	query := selectFetch
	var args []any
	if failedOnly {
		query += " WHERE status = ?"
		args = append(args, models.Failure.String())
	}
	query += " ORDER BY fetch_id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetches: %w", err)
	}
	defer rows.Close()

	var records []FetchRecord
	for rows.Next() {
		record, err := scanFetch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fetch: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// NewNullString maps "" to NULL.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

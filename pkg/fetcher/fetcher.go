package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// Response is a fetched page together with the address it resolved to.
type Response struct {
	FinalURL    string
	StatusCode  int
	ContentType string
	Body        []byte
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a Fetcher that identifies itself with userAgent.
// A zero timeout leaves the transport defaults in place.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// NewFetcherWithClient is NewFetcher with a caller-supplied http.Client.
func NewFetcherWithClient(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Get issues a single GET, following redirects. Non-2xx responses are
// reported as *StatusError.
func (f *Fetcher) Get(url string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Response{FinalURL: finalURL, StatusCode: resp.StatusCode}, &StatusError{
			URL:        finalURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		FinalURL:    finalURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        bodyBytes,
	}, nil
}

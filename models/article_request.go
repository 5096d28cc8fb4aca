package models

import (
	"errors"
	"fmt"
	"strings"
)

// ArticleRequest identifies one article to fetch, either by title or by URL.
type ArticleRequest struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`

	// Paragraphs caps the number of paragraphs returned. 0 means all of them.
	Paragraphs int `yaml:"paragraphs" json:"paragraphs"`
}

// Validate reports why a request cannot be served, if it can't.
func (r ArticleRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.URL) == "" {
		return errors.New(MsgMissingTitleOrURL)
	}
	if r.Paragraphs < 0 {
		return fmt.Errorf("invalid paragraph count: %d", r.Paragraphs)
	}
	return nil
}

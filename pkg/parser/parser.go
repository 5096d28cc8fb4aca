package parser

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// ErrContainerNotFound is returned when the page has no element with the
// configured content id.
var ErrContainerNotFound = errors.New("content container not found")

type Parser struct {
	// ContentID is the id attribute of the main-content element.
	ContentID string
	// Readability falls back to go-readability when ContentID is absent.
	Readability bool
}

// Paragraphs parses html and returns the trimmed, non-empty text of every
// <p> inside the content container, in document order.
func (p *Parser) Paragraphs(html []byte, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	container := doc.Find("#" + p.ContentID).First()
	if container.Length() == 0 {
		if !p.Readability {
			return nil, ErrContainerNotFound
		}
		return p.readabilityParagraphs(html, pageURL)
	}

	return collectParagraphs(container), nil
}

// readabilityParagraphs lets go-readability find the main content and then
// collects the paragraphs of the distilled HTML.
func (p *Parser) readabilityParagraphs(html []byte, pageURL string) ([]string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: readability: %v", ErrContainerNotFound, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse readability content: %w", err)
	}

	paragraphs := collectParagraphs(doc.Selection)
	if len(paragraphs) == 0 {
		return nil, ErrContainerNotFound
	}
	return paragraphs, nil
}

func collectParagraphs(s *goquery.Selection) []string {
	var paragraphs []string
	s.Find("p").Each(func(i int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

// Select returns the first n paragraphs, or all of them when n is 0.
// Asking for more than exist is not an error.
func Select(paragraphs []string, n int) []string {
	if n <= 0 || n >= len(paragraphs) {
		return paragraphs
	}
	return paragraphs[:n]
}

// Join separates paragraphs with a blank line.
func Join(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

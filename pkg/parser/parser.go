// Package parser extracts incidence counts from country pages.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoMarker reports that the expected count marker is missing: the
// page layout changed or the country has no data.
var ErrNoMarker = errors.New("count marker not found")

// ParseError reports a page whose structure did not match. It is
// non-fatal: the country is omitted from the scraped table.
type ParseError struct {
	Slug string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Slug, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// countPattern matches the first comma-grouped integer, e.g. "4,282,361".
var countPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})*`)

// Count extracts the incidence count from a country page: the first
// integer inside the page's first paragraph.
func Count(slug, html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, &ParseError{Slug: slug, Err: err}
	}

	first := doc.Find("p").First()
	if first.Length() == 0 {
		return 0, &ParseError{Slug: slug, Err: ErrNoMarker}
	}

	match := countPattern.FindString(first.Text())
	if match == "" {
		return 0, &ParseError{Slug: slug, Err: ErrNoMarker}
	}

	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, &ParseError{Slug: slug, Err: err}
	}
	return n, nil
}

// Package fetcher retrieves name-count pages from the upstream site.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Kind selects which count page to fetch for a country.
type Kind string

const (
	Surnames  Kind = "surnames"
	Forenames Kind = "forenames"
)

// NetworkError reports a failed page fetch. It is non-fatal: the
// pipeline skips the country and continues with the rest.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type Fetcher struct {
	client  *resty.Client
	baseURL string
}

func New(baseURL, userAgent string, timeout time.Duration) *Fetcher {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
	return &Fetcher{client: client, baseURL: baseURL}
}

// CountryPage fetches the surname or forename page for a country slug
// and returns the raw HTML.
func (f *Fetcher) CountryPage(ctx context.Context, slug string, kind Kind) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", f.baseURL, slug, kind)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("status code: %d", resp.StatusCode())}
	}
	return resp.String(), nil
}

// internal/uniprot/client.go
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the UniProtKB REST endpoint serving entry XML.
const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// ErrNotFound means the accession does not exist at the record source.
var ErrNotFound = errors.New("uniprot: accession not found")

// Client fetches UniProtKB entries over HTTP. The zero value is not
// usable; construct with NewClient.
type Client struct {
	httpc   *http.Client
	baseURL string
}

// NewClient returns a Client for baseURL (empty = DefaultBaseURL) with the
// given per-request timeout (0 = no timeout).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpc:   &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch retrieves and parses the entry for accession. Any failure means no
// entry: callers surface one error instead of building a partial table.
func (c *Client) Fetch(ctx context.Context, accession string) (*Entry, error) {
	accession = strings.TrimSpace(accession)
	if accession == "" {
		return nil, errors.New("uniprot: empty accession")
	}

	url := fmt.Sprintf("%s/%s.xml", c.baseURL, accession)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uniprot: fetch %s: %w", accession, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, accession)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("uniprot: fetch %s: unexpected status %s", accession, resp.Status)
	}

	entry, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("uniprot: %s: %w", accession, err)
	}
	return entry, nil
}

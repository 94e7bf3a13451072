package feed

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSource fetches the feed as CSV over HTTP. The endpoint is resolved
// through a function at each fetch, so a re-pointed FEED_URL takes effect
// without a restart.
type HTTPSource struct {
	endpoint func() string
	client   *http.Client
}

// NewHTTPSource builds a CSV-over-HTTP source. endpoint is called once per
// fetch to resolve the current feed URL.
func NewHTTPSource(endpoint func() string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string { return "csv" }

// Fetch downloads and tokenizes the feed document.
func (s *HTTPSource) Fetch(ctx context.Context) ([][]string, error) {
	url := s.endpoint()
	if url == "" {
		return nil, &FetchError{Err: errors.New("feed endpoint is not configured")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: url, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Endpoint: url, Err: fmt.Errorf("read response body: %w", err)}
	}

	if looksLikeHTML(body) {
		return nil, &ParseError{Err: errors.New("received HTML instead of CSV - check that the share link is still published")}
	}

	records, err := readRecords(body)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return records, nil
}

// looksLikeHTML catches the usual failure mode of an expired or
// permission-walled share link: an HTML page served with status 200.
func looksLikeHTML(body []byte) bool {
	head := strings.ToUpper(strings.TrimSpace(string(body[:min(len(body), 64)])))
	return strings.HasPrefix(head, "<!DOCTYPE") || strings.HasPrefix(head, "<HTML")
}

func readRecords(body []byte) ([][]string, error) {
	// Published spreadsheets prepend a UTF-8 BOM.
	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1 // no field-count validation; misaligned rows are admitted
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}

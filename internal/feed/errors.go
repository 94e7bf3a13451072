package feed

import "fmt"

// FetchError means the feed endpoint could not be reached or did not
// answer usefully: transport failure, non-200 status, truncated body.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("fetch feed: %v", e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the response arrived but does not tokenize as CSV,
// most commonly an HTML error page behind an expired share link.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

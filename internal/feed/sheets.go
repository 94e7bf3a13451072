package feed

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the schedule through the Google Sheets API instead of
// a publish-to-web CSV link. API-key access is enough for sheets shared
// with "anyone with the link".
type SheetsSource struct {
	svc       *sheets.Service
	sheetID   string
	readRange string
}

// NewSheetsSource builds a Sheets API source for the given spreadsheet and
// value range (e.g. "A:J" or "Schedule!A:J").
func NewSheetsSource(ctx context.Context, apiKey, sheetID, readRange string) (*SheetsSource, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &SheetsSource{svc: svc, sheetID: sheetID, readRange: readRange}, nil
}

func (s *SheetsSource) Name() string { return "sheets" }

// Fetch reads the value range and converts it into raw records.
func (s *SheetsSource) Fetch(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Endpoint: "spreadsheet " + s.sheetID, Err: err}
	}
	return valuesToRecords(resp.Values), nil
}

// valuesToRecords flattens the API's cell values into string records.
// Formatted values arrive as strings; anything else is rendered with %v.
func valuesToRecords(values [][]interface{}) [][]string {
	records := make([][]string, 0, len(values))
	for _, rowValues := range values {
		rec := make([]string, len(rowValues))
		for i, v := range rowValues {
			if s, ok := v.(string); ok {
				rec[i] = s
			} else {
				rec[i] = fmt.Sprintf("%v", v)
			}
		}
		records = append(records, rec)
	}
	return records
}

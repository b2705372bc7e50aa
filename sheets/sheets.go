// Package sheets reads candidate URLs from a Google Sheets column.
package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// videoURLRegexp matches rows that look like a YouTube URL. Only rows
// matching this pattern are handed to the pipeline.
var videoURLRegexp = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// Reader reads input rows from a spreadsheet.
type Reader struct {
	service *sheets.Service
}

// NewReader creates a Sheets reader authenticated with a service
// account credentials file.
func NewReader(ctx context.Context, credentialsFile string) (*Reader, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("credentials file required")
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Reader{service: service}, nil
}

// ReadColumn reads a single-column range from the spreadsheet and
// returns the cell values as trimmed strings. Empty cells are dropped.
func (r *Reader) ReadColumn(ctx context.Context, spreadsheetID, readRange string) ([]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", spreadsheetID, readRange, err)
	}
	return flattenColumn(resp.Values), nil
}

// flattenColumn takes the first cell of each row as a string.
func flattenColumn(values [][]interface{}) []string {
	var out []string
	for _, row := range values {
		if len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(fmt.Sprint(row[0]))
		if cell == "" {
			continue
		}
		out = append(out, cell)
	}
	return out
}

// FilterVideoURLs keeps only the rows that look like YouTube URLs.
// Free-text rows in the sheet are dropped before the pipeline sees them.
func FilterVideoURLs(rows []string) []string {
	var out []string
	for _, row := range rows {
		if videoURLRegexp.MatchString(row) {
			out = append(out, row)
		}
	}
	return out
}

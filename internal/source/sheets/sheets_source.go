// Package sheets reads billing rows from a Google Sheets worksheet using
// service-account credentials held in memory.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"trainerbills/internal/config"
	"trainerbills/internal/domain"
)

// Source fetches rows from one spreadsheet range. The first row of the range
// is the header; every following row becomes a RawRow keyed by it.
type Source struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// New creates a Sheets-backed record source. Credentials are assembled from
// config in memory and handed straight to the client; nothing touches disk.
func New(ctx context.Context, cfg *config.SheetsConfig) (*Source, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet ID is not configured")
	}

	creds, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, fmt.Errorf("sheets: %w", err)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create client: %w", err)
	}

	return &Source{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.ReadRange,
	}, nil
}

// FetchAll returns every data row of the configured range in sheet order.
func (s *Source) FetchAll(ctx context.Context) ([]domain.RawRow, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %q: %w", s.readRange, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	rows := make([]domain.RawRow, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(domain.RawRow, len(header))
		for i, col := range header {
			if i < len(raw) {
				row[col] = fmt.Sprint(raw[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Package xlsx reads billing rows from a local workbook export of the
// billing sheet, for runs without Google Sheets access.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"trainerbills/internal/domain"
)

// Source reads the first sheet of a local .xlsx file. Row 1 is the header;
// every following row becomes a RawRow keyed by it.
type Source struct {
	path string
}

// New creates a workbook-backed record source for the given file.
func New(path string) *Source {
	return &Source{path: path}
}

// FetchAll returns every data row of the workbook's first sheet.
func (s *Source) FetchAll(ctx context.Context) ([]domain.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: read sheet %q: %w", sheetName, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := raw[0]
	rows := make([]domain.RawRow, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(domain.RawRow, len(header))
		for i, col := range header {
			row[col] = cellVal(cells, i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

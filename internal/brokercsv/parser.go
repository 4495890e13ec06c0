package brokercsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ndewijer/portfolio-tracker/internal/apperrors"
	"github.com/ndewijer/portfolio-tracker/internal/model"
)

const utf8BOM = "\uFEFF"

// HeaderError reports a required column that is absent from the header row.
// It wraps apperrors.ErrInvalidCSVHeaders.
type HeaderError struct {
	Missing string   // first required column not found
	Found   []string // trimmed header names actually present
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("Missing required column: %q. Found: %s", e.Missing, strings.Join(e.Found, ", "))
}

func (e *HeaderError) Unwrap() error {
	return apperrors.ErrInvalidCSVHeaders
}

// Parse reads a broker export and validates every data record.
//
// The first row is the header; header names are trimmed and blank lines are
// skipped. When a required column is missing a *HeaderError is returned and no
// rows are validated. Otherwise every record is mapped through ValidateRow in
// file order with 1-based row indices; invalid rows do not stop parsing.
//
// Read or format failures are returned wrapped in apperrors.ErrInvalidCSVFormat.
func Parse(ctx context.Context, r io.Reader) ([]model.ImportPreviewRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file has no header row", apperrors.ErrInvalidCSVFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVFormat, err)
	}

	header = normalizeHeader(header)
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	rows := []model.ImportPreviewRow{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVFormat, err)
		}
		if isBlank(record) {
			continue
		}

		raw := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				raw[name] = record[i]
			}
		}
		rows = append(rows, ValidateRow(raw, len(rows)+1))
	}

	return rows, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func validateHeader(header []string) error {
	for _, col := range RequiredColumns {
		if !slices.Contains(header, col) {
			return &HeaderError{Missing: col, Found: header}
		}
	}
	return nil
}

// isBlank reports whether a record came from a whitespace-only line.
func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

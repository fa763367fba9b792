// Package dataset loads the RAWG CSV export into memory as an ordered row
// set. The loader is tolerant of real-world CSV damage: lazy quotes, variable
// field counts, and a UTF-8 BOM on the first header cell are all handled, and
// rows are padded or truncated to the header width so downstream code can
// rely on stable column indexes.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Header maps canonical column names to their index in every row.
type Header struct {
	names []string
	index map[string]int
}

// Columns returns the column names in source order.
func (h *Header) Columns() []string { return h.names }

// Row is one source record. Absent columns and empty cells are both treated
// as missing.
type Row struct {
	header *Header
	values []string
}

// Get returns the raw cell value for the named column. The second result is
// false when the column does not exist or the cell is empty; values are not
// trimmed, since some consumers (website, updated) pass them through
// verbatim.
func (r Row) Get(col string) (string, bool) {
	i, ok := r.header.index[col]
	if !ok {
		return "", false
	}
	v := r.values[i]
	if v == "" {
		return "", false
	}
	return v, true
}

// Columns returns the column names of the row's source header, in order.
func (r Row) Columns() []string { return r.header.names }

// Has reports whether the named column carries a non-empty value.
func (r Row) Has(col string) bool {
	_, ok := r.Get(col)
	return ok
}

// Load reads the CSV file at path and returns its data rows in source order.
// When limit > 0 at most that many rows are returned, counted from the start
// of the file. An unreadable source is the only fatal condition; malformed
// data rows are skipped, not surfaced.
func Load(ctx context.Context, path string, limit int) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	rows, err := ReadFrom(ctx, f, limit)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// ReadFrom consumes CSV records from r. Split out from Load so callers (and
// tests) can feed in-memory data without filesystem fixtures.
func ReadFrom(ctx context.Context, r io.Reader, limit int) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // enforce width ourselves via pad/truncate
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	rec, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty source")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := &Header{index: make(map[string]int, len(rec))}
	for i, raw := range rec {
		name := strings.TrimSpace(raw)
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header.names = append(header.names, name)
		if _, dup := header.index[name]; !dup {
			header.index[name] = i
		}
	}
	width := len(header.names)

	var rows []Row
	for limit <= 0 || len(rows) < limit {
		if len(rows)%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Soft-fail: skip unparseable records, keep the rest.
			continue
		}

		// ReuseRecord means rec is only valid until the next Read; copy into
		// a right-sized slice, padding or truncating to the header width.
		values := make([]string, width)
		copy(values, rec)
		rows = append(rows, Row{header: header, values: values})
	}
	return rows, nil
}

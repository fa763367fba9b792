// Package probe inspects a RAWG CSV export before a conversion run. It samples
// the head of the file and reports the column layout, normalized column names,
// and how the delimited entity fields would parse, so format drift in a fresh
// export is visible before a full run is attempted.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"rawg2ttl/internal/dataset"
	"rawg2ttl/internal/fields"
	"rawg2ttl/internal/turtle"
)

// sampleBytes caps how much of the source is read for the fingerprint and the
// sampled rows. Enough for any sane header plus a few hundred rows.
const sampleBytes = 256 << 10

// FieldSample shows one raw cell next to its parsed values.
type FieldSample struct {
	Raw    string
	Parsed []string
}

// FieldReport covers one entity-bearing column.
type FieldReport struct {
	Column  string
	Present bool
	Samples []FieldSample
}

// Report is the result of inspecting a source file.
type Report struct {
	Path       string
	Columns    []string
	Normalized []string
	SampleRows int

	// Fingerprint hashes the sampled head of the file; two probes of the
	// same export produce the same value, so it can tag a run in logs.
	Fingerprint uint64

	Fields []FieldReport
}

// Inspect samples up to sampleCount rows from the CSV at path and reports how
// the entity columns would parse. A sampleCount <= 0 defaults to 5.
func Inspect(ctx context.Context, path string, sampleCount int) (*Report, error) {
	if sampleCount <= 0 {
		sampleCount = 5
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	head := make([]byte, sampleBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("read sample: %w", err)
	}
	head = head[:n]

	rows, err := dataset.ReadFrom(ctx, bytes.NewReader(head), sampleCount)
	if err != nil {
		return nil, fmt.Errorf("parse sample: %w", err)
	}

	rep := &Report{
		Path:        path,
		SampleRows:  len(rows),
		Fingerprint: xxh3.Hash(head),
	}
	if len(rows) > 0 {
		rep.Columns = rows[0].Columns()
		rep.Normalized = make([]string, len(rep.Columns))
		for i, col := range rep.Columns {
			rep.Normalized[i] = normalizeFieldName(col)
		}
	}

	for _, cat := range turtle.Categories {
		fr := FieldReport{Column: cat.Column()}
		for _, row := range rows {
			raw, ok := row.Get(cat.Column())
			if !ok {
				continue
			}
			fr.Present = true
			var parsed []string
			if cat.Multi() {
				parsed = fields.SplitMulti(raw)
			} else if v, ok := fields.Single(raw); ok {
				parsed = []string{v}
			}
			fr.Samples = append(fr.Samples, FieldSample{Raw: raw, Parsed: parsed})
		}
		rep.Fields = append(rep.Fields, fr)
	}
	return rep, nil
}

// Render writes the report as indented text.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "source: %s\n", r.Path)
	fmt.Fprintf(w, "fingerprint: %016x\n", r.Fingerprint)
	fmt.Fprintf(w, "sampled rows: %d\n", r.SampleRows)
	fmt.Fprintf(w, "columns (%d):\n", len(r.Columns))
	for i, col := range r.Columns {
		if norm := r.Normalized[i]; norm != col {
			fmt.Fprintf(w, "  %s (normalized: %s)\n", col, norm)
		} else {
			fmt.Fprintf(w, "  %s\n", col)
		}
	}
	for _, fr := range r.Fields {
		if !fr.Present {
			fmt.Fprintf(w, "field %s: absent\n", fr.Column)
			continue
		}
		fmt.Fprintf(w, "field %s:\n", fr.Column)
		for _, s := range fr.Samples {
			fmt.Fprintf(w, "  %q -> %q\n", s.Raw, s.Parsed)
		}
	}
}

// normalizeFieldName converts arbitrary header text into a lowercase ASCII
// identifier:
//  1. lowercase
//  2. strip accents (NFD, remove Mn, NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
//  4. fallback to "col" if empty
func normalizeFieldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		default:
			// drop anything else
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "col"
	}
	return name
}

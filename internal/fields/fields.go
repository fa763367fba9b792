// Package fields parses the raw field values found in the RAWG CSV export.
//
// The dataset encodes multi-value columns (platforms, developers, publishers,
// genres) as a single cell with a two-character "||" separator, e.g.:
//
//	"PC||Xbox One||PlayStation 4"
//
// Parsing is deliberately best-effort: malformed or empty input yields an
// empty result rather than an error, so one bad cell never aborts a run.
package fields

import "strings"

// Delimiter separates values inside a multi-value cell.
const Delimiter = "||"

// SplitMulti parses a delimited multi-value cell into its value names.
//
// Rules:
//   - Empty or whitespace-only input returns nil.
//   - Input containing "||" is split on every occurrence; each piece is
//     trimmed and pieces that trim to nothing are dropped. Relative order is
//     preserved.
//   - Input without the delimiter yields a single trimmed element.
//
// Duplicates within one cell are kept; cross-dataset deduplication is the
// collector's job, not the parser's.
func SplitMulti(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if !strings.Contains(s, Delimiter) {
		return []string{s}
	}

	parts := strings.Split(s, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Single parses a single-value cell. It returns the trimmed value and true,
// or ("", false) when the cell is missing or blank.
func Single(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	return s, true
}

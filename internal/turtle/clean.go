package turtle

import (
	"net/url"
	"strings"
	"unicode"
)

// CleanFragment derives a URI-safe local-name fragment from a raw entity
// name:
//
//  1. Drop every rune that is not a Unicode letter, digit, underscore, or
//     whitespace.
//  2. Collapse each run of whitespace (after trimming) into a single "_".
//  3. Percent-encode the result so non-ASCII letters are safe inside an IRI
//     fragment.
//
// It returns ("", false) when the input is empty or nothing survives step 1.
//
// Two distinct raw names can clean to the same fragment ("Mario!" and
// "Mario?"); the emitter logs such collisions but does not resolve them.
// CleanFragment is not idempotent: feeding its own output back in would
// strip the percent signs introduced in step 3.
func CleanFragment(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	// Fields both trims and collapses interior whitespace runs.
	cleaned := strings.Join(strings.Fields(b.String()), "_")
	if cleaned == "" {
		return "", false
	}
	return url.PathEscape(cleaned), true
}

var literalEscaper = strings.NewReplacer(
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeLiteral makes text safe to embed inside a quoted Turtle literal by
// escaping double quotes, newlines, and carriage returns. Nothing else is
// escaped; backslashes and other control characters pass through verbatim,
// matching the shape of the consuming ontology's existing data.
func EscapeLiteral(text string) string {
	return literalEscaper.Replace(text)
}

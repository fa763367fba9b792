package turtle

import "time"

// dateLayout is the only accepted release-date form.
const dateLayout = "2006-01-02"

// FormatDate validates that s is a calendar date in YYYY-MM-DD form and
// returns it unchanged. Malformed dates return ("", false) and are silently
// dropped by the caller; the dataset contains a handful of them and omitting
// the assertion beats aborting the run.
func FormatDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", false
	}
	return s, true
}

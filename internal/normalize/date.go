// Package normalize converts raw matched substrings into canonical values:
// ISO 8601 dates and decimal amounts with a currency code. Normalization
// never returns an error to the extractor; a failed parse yields ok=false
// and the caller lowers the field confidence.
package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts are the fallback formats seen across supported statements,
// tried in order after any issuer-specific hints.
var dateLayouts = []string{
	"2-Jan-2006",     // 1-Mar-2023
	"02-Jan-2006",    // 01-Mar-2023
	"2/Jan/2006",     // 1/Mar/2023
	"02012006",       // 08062019 (DDMMYYYY)
	"January 2, 2006", // January 14, 2024
	"January 2 2006",
	"02/01/2006", // 01/03/2023
	"2/1/2006",
	"2006-01-02", // already ISO
	"2 January 2006",
	"2 Jan 2006",
	"2 Jan 06", // 31 Oct 24
	"02-01-2006",
	"02.01.2006",
}

var dateSpaces = regexp.MustCompile(`\s+`)

// Date parses a raw date string into ISO 8601 (YYYY-MM-DD). Issuer-specific
// layout hints are tried before the shared fallback list. Returns ok=false
// when no layout matches; never panics or errors.
func Date(raw string, hints ...string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	// OCR output tends to collapse badly around separators.
	raw = dateSpaces.ReplaceAllString(raw, " ")
	raw = strings.Trim(raw, " .:_")

	for _, layout := range hints {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// DateRange scans free text for a "start to end" date pair and normalizes
// both sides. Used as a last-resort fallback by extractors.
func DateRange(text string) (start, end string, ok bool) {
	for _, re := range dateRangePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		e, eok := Date(m[2])
		s, sok := Date(m[1])
		if !sok && eok {
			// Ranges like "From January 5 to February 4, 2024" carry the
			// year only on the end date.
			s, sok = Date(m[1] + ", " + e[:4])
		}
		if sok && eok {
			return s, e, true
		}
	}
	return "", "", false
}

var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}-\w{3}-\d{4})\s+to\s+(\d{1,2}-\w{3}-\d{4})`),
	regexp.MustCompile(`(?i)(\d{8})\s+to\s+(\d{8})`),
	regexp.MustCompile(`(?i)From\s+(\d{8})\s+to\s+(\d{8})`),
	regexp.MustCompile(`(?i)From\s+(\w+\s+\d{1,2})\s+to\s+(\w+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{1,2}/\d{4})`),
}

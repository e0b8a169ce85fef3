package engine

import (
	"strings"
	"unicode"
)

// textQuality estimates how usable extracted text is for field extraction:
// the ratio of alphanumeric-dense lines to total non-empty lines. Structural
// extraction of a scanned page typically yields a handful of sparse lines,
// which scores near zero and pushes the cascade toward OCR.
func textQuality(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	var total, dense int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		if isDense(line) {
			dense++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(dense) / float64(total)
}

// isDense reports whether at least half of a line is alphanumeric and it
// carries enough signal to be worth matching against.
func isDense(line string) bool {
	var alnum, runes int
	for _, r := range line {
		runes++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return alnum >= 4 && alnum*2 >= runes
}

// cleanText strips per-line whitespace and drops empty lines, matching what
// downstream pattern tables expect.
func cleanText(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

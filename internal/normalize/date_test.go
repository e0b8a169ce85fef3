package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardlens/internal/normalize"
)

func TestDate_SupportedLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1-Mar-2023", "2023-03-01"},
		{"19-Mar-2023", "2023-03-19"},
		{"08062019", "2019-06-08"},
		{"January 14, 2024", "2024-01-14"},
		{"08/06/2019", "2019-06-08"},
		{"16 Aug 2024", "2024-08-16"},
		{"05 Oct 2024", "2024-10-05"},
		{"31 Oct 24", "2024-10-31"},
		{"5 October 2024", "2024-10-05"},
		{"2024-08-16", "2024-08-16"},
		{"20/May/2025", "2025-05-20"},
	}
	for _, tc := range cases {
		got, ok := normalize.Date(tc.raw)
		assert.True(t, ok, "Date(%q) should parse", tc.raw)
		assert.Equal(t, tc.want, got, "Date(%q)", tc.raw)
	}
}

func TestDate_HintTriedFirst(t *testing.T) {
	// 02/03/2024 is ambiguous: the hint pins day-first interpretation.
	got, ok := normalize.Date("02/03/2024", "02/01/2006")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-02", got)
}

func TestDate_Garbage(t *testing.T) {
	for _, raw := range []string{"", "not a date", "99/99/9999", "___"} {
		_, ok := normalize.Date(raw)
		assert.False(t, ok, "Date(%q) should fail", raw)
	}
}

func TestDate_OCRNoiseTrimmed(t *testing.T) {
	got, ok := normalize.Date("  19-Mar-2023 .")
	assert.True(t, ok)
	assert.Equal(t, "2023-03-19", got)
}

func TestDateRange_StandardPair(t *testing.T) {
	start, end, ok := normalize.DateRange("Statement Period 2-Feb-2023 to 1-Mar-2023")
	assert.True(t, ok)
	assert.Equal(t, "2023-02-02", start)
	assert.Equal(t, "2023-03-01", end)
}

func TestDateRange_YearOnlyOnEndDate(t *testing.T) {
	start, end, ok := normalize.DateRange("From January 5 to February 4, 2024")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-05", start)
	assert.Equal(t, "2024-02-04", end)
}

func TestDateRange_EightDigitDates(t *testing.T) {
	start, end, ok := normalize.DateRange("From 01052024 to 31052024")
	assert.True(t, ok)
	assert.Equal(t, "2024-05-01", start)
	assert.Equal(t, "2024-05-31", end)
}

func TestDateRange_NoRange(t *testing.T) {
	_, _, ok := normalize.DateRange("no dates here at all")
	assert.False(t, ok)
}

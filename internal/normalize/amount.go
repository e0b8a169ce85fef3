package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPatterns maps ISO currency codes to the symbols and spellings that
// appear on supported statements. Order matters: INR first because "Rs."
// statements sometimes also print "$" in marketing copy.
var currencyPatterns = []struct {
	code string
	re   *regexp.Regexp
}{
	{"INR", regexp.MustCompile(`(?i)Rs\.?|₹|INR|rupees?`)},
	{"GBP", regexp.MustCompile(`(?i)£|GBP|pounds?`)},
	{"EUR", regexp.MustCompile(`(?i)€|EUR|euros?`)},
	{"USD", regexp.MustCompile(`(?i)\$|USD|dollars?`)},
}

var (
	amountNumber   = regexp.MustCompile(`-?\d{1,3}(?:,\d{2,3})*(?:\.\d{1,2})?|-?\d+(?:\.\d{1,2})?`)
	amountEuropean = regexp.MustCompile(`-?\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?`)
	amountNoise    = regexp.MustCompile(`(?i)\(|\)|Cr\.?|Dr\.?`)
)

// Currency detects the currency code present in text, or "" if none.
func Currency(text string) string {
	for _, cp := range currencyPatterns {
		if cp.re.MatchString(text) {
			return cp.code
		}
	}
	return ""
}

// Amount parses a raw amount string ("Rs. 45,240.00", "£1.234,56") into a
// two-decimal value and a currency code, falling back to defaultCurrency
// when no symbol is present. Sign is preserved; credit balances stay
// negative. Returns ok=false when no numeric value is found.
func Amount(raw, defaultCurrency string) (decimal.Decimal, string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, defaultCurrency, false
	}

	currency := Currency(s)
	if currency == "" {
		currency = defaultCurrency
	}

	for _, cp := range currencyPatterns {
		s = cp.re.ReplaceAllString(s, "")
	}
	s = amountNoise.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// European decimal-comma style first: it is a strict superset of the
	// thousands-dot pattern and would otherwise be misread.
	if m := amountEuropean.FindString(s); m != "" {
		m = strings.ReplaceAll(m, ".", "")
		m = strings.ReplaceAll(m, ",", ".")
		if d, err := decimal.NewFromString(m); err == nil {
			return d.Round(2), currency, true
		}
	}

	m := amountNumber.FindString(s)
	if m == "" {
		return decimal.Zero, currency, false
	}
	m = strings.ReplaceAll(m, ",", "")
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, currency, false
	}
	return d.Round(2), currency, true
}

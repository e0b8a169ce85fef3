package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardlens/internal/normalize"
)

func TestAmount_IndianFormats(t *testing.T) {
	cases := []struct {
		raw      string
		want     string
		currency string
	}{
		{"Rs. 45,240.00", "45240", "INR"},
		{"Rs 478,387.66", "478387.66", "INR"},
		{"₹ 5,882.52", "5882.52", "INR"},
		{"INR 1,234.50", "1234.5", "INR"},
		{"Rs. 1,00,000.00", "100000", "INR"}, // lakh grouping
	}
	for _, tc := range cases {
		got, cur, ok := normalize.Amount(tc.raw, "INR")
		assert.True(t, ok, "Amount(%q)", tc.raw)
		assert.Equal(t, tc.want, got.String(), "Amount(%q)", tc.raw)
		assert.Equal(t, tc.currency, cur)
	}
}

func TestAmount_Sterling(t *testing.T) {
	got, cur, ok := normalize.Amount("£1,219.26", "GBP")
	assert.True(t, ok)
	assert.Equal(t, "1219.26", got.String())
	assert.Equal(t, "GBP", cur)
}

func TestAmount_EuropeanDecimalComma(t *testing.T) {
	got, cur, ok := normalize.Amount("€1.234,56", "INR")
	assert.True(t, ok)
	assert.Equal(t, "1234.56", got.String())
	assert.Equal(t, "EUR", cur)
}

func TestAmount_CreditDebitMarkersStripped(t *testing.T) {
	got, _, ok := normalize.Amount("1,500.00 Cr", "INR")
	assert.True(t, ok)
	assert.Equal(t, "1500", got.String())
}

func TestAmount_NegativePreserved(t *testing.T) {
	got, _, ok := normalize.Amount("-250.75", "INR")
	assert.True(t, ok)
	assert.Equal(t, "-250.75", got.String())
}

func TestAmount_DefaultCurrencyWhenNoSymbol(t *testing.T) {
	_, cur, ok := normalize.Amount("40,491.00", "INR")
	assert.True(t, ok)
	assert.Equal(t, "INR", cur)
}

func TestAmount_NoNumber(t *testing.T) {
	_, _, ok := normalize.Amount("Rs. N/A", "INR")
	assert.False(t, ok)

	_, _, ok = normalize.Amount("", "INR")
	assert.False(t, ok)
}

func TestCurrency_Detection(t *testing.T) {
	assert.Equal(t, "INR", normalize.Currency("Total Rs. 500"))
	assert.Equal(t, "GBP", normalize.Currency("new balance £90"))
	assert.Equal(t, "", normalize.Currency("just text"))
}

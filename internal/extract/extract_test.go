package extract_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlens/internal/domain"
	"cardlens/internal/extract"
	"cardlens/internal/score"
)

const hdfcSample = `HDFC Bank Credit Card Statement
Card No: 5228 52XX XXXX 0591
Statement Date: 16 Aug 2024
Payment Due Date: 05 Oct 2024
Total Amount Due: Rs. 40,491.00
Minimum Amount Due (Rs.) 2,020.00

Date        Transaction Details              Amount
15/07/2024  AMAZON RETAIL IN MUMBAI          1,299.00
20/07/2024  SWIGGY BANGALORE                 450.50
22/07/2024  PAYMENT RECEIVED THANK YOU       5,000.00 Cr
`

func TestHDFC_CanonicalLayout(t *testing.T) {
	p := extract.NewHDFC().Extract(hdfcSample)

	require.NotNil(t, p.CardNumber)
	assert.Equal(t, "5228 52XX XXXX 0591", p.CardNumber.Value)
	assert.Equal(t, score.MethodAnchor, p.CardNumber.Method)

	require.NotNil(t, p.StatementDate)
	assert.Equal(t, "2024-08-16", p.StatementDate.Value)
	assert.True(t, p.StatementDate.NormalizedOK)
	assert.Equal(t, score.MethodAnchor, p.StatementDate.Method)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2024-10-05", p.PaymentDueDate.Value)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("40491.00")))
	assert.Equal(t, "INR", p.TotalAmountDue.Currency)
	assert.Equal(t, score.MethodAnchor, p.TotalAmountDue.Method)

	require.NotNil(t, p.MinimumAmountDue)
	assert.True(t, p.MinimumAmountDue.Amount.Equal(decimal.RequireFromString("2020.00")))

	require.Len(t, p.Transactions, 3)
	assert.Equal(t, "AMAZON RETAIL IN MUMBAI", p.Transactions[0].Merchant)
	assert.Equal(t, "2024-07-15", p.Transactions[0].Date)
	assert.True(t, p.Transactions[1].Amount.Equal(decimal.RequireFromString("450.50")))
	// payments print as Cr and come out negative
	assert.True(t, p.Transactions[2].Amount.Equal(decimal.RequireFromString("-5000.00")))
}

func TestHDFC_ZeroTotalSkipped(t *testing.T) {
	text := `Total Amount Due: Rs. 0.00
Total Dues: 1,000.00`

	p := extract.NewHDFC().Extract(text)
	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("1000.00")))
}

func TestHDFC_TabularAmounts(t *testing.T) {
	// Older HDFC layouts print the amounts in a table, with the due date
	// in the same row ahead of the total.
	text := `HDFC Bank Credit Card Statement
Card No: 5228 52XX XXXX 0591
Payment Due Date  Minimum Amount Due
28/06/2019  45,240.00  2,262.00`

	p := extract.NewHDFC().Extract(text)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2019-06-28", p.PaymentDueDate.Value)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("45240.00")),
		"total parsed as %s", p.TotalAmountDue.Amount)
	assert.Equal(t, "45,240.00", p.TotalAmountDue.Raw)
	assert.Equal(t, "INR", p.TotalAmountDue.Currency)

	require.NotNil(t, p.MinimumAmountDue)
	assert.True(t, p.MinimumAmountDue.Amount.Equal(decimal.RequireFromString("2262.00")),
		"minimum parsed as %s", p.MinimumAmountDue.Amount)
}

func TestGeneric_DateBetweenLabelAndAmount(t *testing.T) {
	text := `New Balance as on 28/06/2019 Rs. 12,345.00`

	p := extract.NewGeneric().Extract(text)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("12345.00")),
		"total parsed as %s", p.TotalAmountDue.Amount)
	assert.Equal(t, "INR", p.TotalAmountDue.Currency)
	assert.Equal(t, score.MethodProximity, p.TotalAmountDue.Method)
}

func TestAxis_PaymentSummaryLayout(t *testing.T) {
	text := `Axis Bank Ltd
Credit Card Statement
Card Number: 4532 XXXX XXXX 9012
Statement Date: 16/08/2024 to 15/09/2024
16/08/2024 - 15/09/2024 05/10/2024 13/09/2024
Total Outstanding 40,491.00 Dr`

	p := extract.NewAxis().Extract(text)

	require.NotNil(t, p.CardNumber)
	assert.Equal(t, "4532 XXXX XXXX 9012", p.CardNumber.Value)

	require.NotNil(t, p.StatementDate)
	assert.Equal(t, "2024-09-15", p.StatementDate.Value, "closing date of the range")

	require.NotNil(t, p.BillingPeriod)
	assert.Equal(t, "2024-08-16", p.BillingPeriod.Start)
	assert.Equal(t, "2024-09-15", p.BillingPeriod.End)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2024-10-05", p.PaymentDueDate.Value)
	assert.Equal(t, score.MethodPattern, p.PaymentDueDate.Method)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("40491.00")),
		"total parsed as %s", p.TotalAmountDue.Amount)
	assert.Equal(t, "INR", p.TotalAmountDue.Currency)
}

func TestKotak_StatementDateDerivedFromPeriod(t *testing.T) {
	text := `Kotak Mahindra Bank
Corporate Credit Card Statement
Card Number: 414767XXXXXX1234
Statement Period _ 2-Feb-2023 . To 1-Mar-2023
Payment Due Date: 18-Mar-2023
Total Amount Due (Rs.) 12,345.67`

	p := extract.NewKotak().Extract(text)

	require.NotNil(t, p.CardNumber)
	assert.Equal(t, "414767XXXXXX1234", p.CardNumber.Value)

	require.NotNil(t, p.BillingPeriod)
	assert.Equal(t, "2023-02-02", p.BillingPeriod.Start)
	assert.Equal(t, "2023-03-01", p.BillingPeriod.End)
	assert.True(t, p.BillingPeriod.NormalizedOK)

	// no labeled statement date, so the period's closing date stands in
	require.NotNil(t, p.StatementDate)
	assert.Equal(t, "2023-03-01", p.StatementDate.Value)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2023-03-18", p.PaymentDueDate.Value)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("12345.67")))
}

func TestKotak_MalformedDateKeepsRaw(t *testing.T) {
	// OCR mangled the due date; the anchored match survives with the raw
	// text and a failed normalization.
	text := `Kotak Mahindra Bank
Payment Due Date: 3I-O2-2OZ3`

	p := extract.NewKotak().Extract(text)
	require.NotNil(t, p.PaymentDueDate)
	assert.False(t, p.PaymentDueDate.NormalizedOK)
	assert.Empty(t, p.PaymentDueDate.Value)
	assert.Equal(t, "3I-O2-2OZ3", p.PaymentDueDate.Raw)
	assert.Equal(t, score.MethodAnchor, p.PaymentDueDate.Method)
}

func TestAmex_PeriodBorrowsYearFromEndDate(t *testing.T) {
	text := `American Express Banking Corp
From January 5 to February 4, 2024
Payment Due Date: February 21, 2024
Closing Balance Rs. 89,000.00`

	p := extract.NewAmex().Extract(text)

	require.NotNil(t, p.BillingPeriod)
	assert.Equal(t, "2024-01-05", p.BillingPeriod.Start)
	assert.Equal(t, "2024-02-04", p.BillingPeriod.End)
	assert.True(t, p.BillingPeriod.NormalizedOK)

	require.NotNil(t, p.StatementDate)
	assert.Equal(t, "2024-02-04", p.StatementDate.Value)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2024-02-21", p.PaymentDueDate.Value)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("89000.00")))
}

func TestGeneric_BestEffort(t *testing.T) {
	text := `Some Regional Bank
Card Number: 4111 11XX XXXX 1111
Statement Date: 08062019
Due Date: 08072019
Total Amount Due: ₹ 9,999.00`

	p := extract.NewGeneric().Extract(text)

	require.NotNil(t, p.CardNumber)
	assert.Equal(t, "4111 11XX XXXX 1111", p.CardNumber.Value)

	require.NotNil(t, p.StatementDate)
	assert.Equal(t, "2019-06-08", p.StatementDate.Value)

	require.NotNil(t, p.PaymentDueDate)
	assert.Equal(t, "2019-07-08", p.PaymentDueDate.Value)

	require.NotNil(t, p.TotalAmountDue)
	assert.True(t, p.TotalAmountDue.Amount.Equal(decimal.RequireFromString("9999.00")))
}

func TestRegistry_Routing(t *testing.T) {
	r := extract.NewRegistry()

	assert.Equal(t, domain.IssuerHDFC, r.For(domain.IssuerHDFC).Issuer())
	assert.Equal(t, domain.IssuerKotak, r.For(domain.IssuerKotak).Issuer())
	assert.Equal(t, domain.IssuerAxis, r.For(domain.IssuerAxis).Issuer())
	assert.Equal(t, domain.IssuerUnknown, r.For(domain.IssuerUnknown).Issuer())
	assert.Equal(t, domain.IssuerUnknown, r.For(domain.Issuer("nonexistent")).Issuer())
}

func TestExtract_NothingFound(t *testing.T) {
	p := extract.NewHDFC().Extract("completely unrelated text with no statement fields")

	assert.Nil(t, p.CardNumber)
	assert.Nil(t, p.StatementDate)
	assert.Nil(t, p.BillingPeriod)
	assert.Nil(t, p.PaymentDueDate)
	assert.Nil(t, p.TotalAmountDue)
	assert.Empty(t, p.Transactions)
}

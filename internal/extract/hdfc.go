package extract

import "cardlens/internal/domain"

// NewHDFC builds the extractor for HDFC Bank statements. HDFC masks cards
// as "5228 52XX XXXX 0591" and prints the due date and amounts in a table
// under a "Payment Due Date  Minimum Amount Due" header, so a couple of
// positional patterns supplement the labeled ones.
func NewHDFC() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerHDFC,
		currency:  "INR",
		dateHints: []string{"02/01/2006", "02012006", "2 Jan 2006"},
		card: []pattern{
			anchor(`Card\s+No\.?\s*:?\s*(\d{4}\s*\d{2}X{2}\s*X{4}\s*\d{4})`),
			bare(`(\d{4}\s*\d{2}X{2}\s*X{4}\s*\d{4})`),
			bare(`(\d{4}\s+X{4}\s+X{4}\s+\d{4})`),
		},
		stmtDate: []pattern{
			anchor(`Statement\s+Date\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`Statement\s+Date\s*:?\s*(\d{1,2}\s+\w{3}\s+\d{4})`),
			anchor(`Statement\s+Date\s*:?\s*(\d{8})`),
			anchor(`(?s)Statement\s+for.{0,80}?(\d{2}/\d{2}/\d{4})`),
		},
		period: []pattern{
			anchor(`(?s)(?:Statement|Billing)\s+Period.{0,100}?(\d{2}/\d{2}/\d{4}).{0,50}?(?:to|To)\s*(\d{2}/\d{2}/\d{4})`),
			bare(`(?s)From.{0,100}?(\d{2}/\d{2}/\d{4}).{0,50}?(?:to|To)\s*(\d{2}/\d{2}/\d{4})`),
		},
		dueDate: []pattern{
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}\s+\w{3}\s+\d{4})`),
			anchor(`(?s)Payment\s+Due\s+Date.{0,200}?(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)Due\s+Date.{0,100}?(\d{2}/\d{2}/\d{4})`),
			anchor(`Pay\s+by\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)Payment\s+Due\s+Date.{0,200}?(\d{8})`),
		},
		total: []pattern{
			anchor(`Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Dues\s*:?\s*([\d,]+\.?\d*)`),
			anchor(`New\s+Balance\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`CLOSING\s+BALANCE\s*:?\s*([\d,]+\.?\d*)`),
			// tabular layout: "28/06/2019 45,240.00 2,262.00", total first
			anchor(`(?s)Payment\s+Due\s+Date\s+Minimum\s+Amount\s+Due\s+\d{2}/\d{2}/\d{4}\s+([\d,]+\.?\d*)`),
			bare(`\d{2}/\d{2}/\d{4}\s+([\d,]+\.?\d*)\s+[\d,]+\.?\d*`),
		},
		minimumDue: append([]pattern{
			anchor(`(?s)Payment\s+Due\s+Date\s+Minimum\s+Amount\s+Due\s+\d{2}/\d{2}/\d{4}\s+[\d,]+\.?\d*\s+([\d,]+\.?\d*)`),
		}, commonMinimumDue()...),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

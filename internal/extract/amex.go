package extract

import "cardlens/internal/domain"

// NewAmex builds the extractor for American Express statements. Amex uses
// 15-digit membership numbers ("XXXX-XXXXXX-01007"), spells dates out in
// full ("February 1, 2024") and labels the total "Closing Balance".
func NewAmex() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerAmex,
		currency:  "INR",
		dateHints: []string{"January 2, 2006", "January 2 2006", "2 January 2006"},
		card: []pattern{
			bare(`(\d{4}\s*X{4}\s*X{4}\s*\d{3,4})`),
			bare(`(X{4}-X{6}-\d{5})`),
			bare(`(\d{4}[\s\-]X{6}[\s\-]\d{5})`),
			anchor(`Membership\s+Number\s*:?\s*(\d{4}[\sX\-]+\d{3,5})`),
		},
		period: []pattern{
			bare(`From\s+(\w+\s+\d{1,2})\s+to\s+(\w+\s+\d{1,2},\s+\d{4})`),
			anchor(`Statement\s+Period\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{1,2}/\d{4})`),
			bare(`From\s+(\d{8})\s+to\s+(\d{8})`),
		},
		dueDate: []pattern{
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\w+\s+\d{1,2},?\s+\d{4})`),
			anchor(`(?s)Minimum\s+Payment\s+Due\s*.{0,80}?(\w+\s+\d{1,2},\s+\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{1,2}\s+\w+\s+\d{4})`),
			anchor(`Pay\s+by\s*:?\s*(\w+\s+\d{1,2},?\s+\d{4})`),
		},
		total: []pattern{
			anchor(`Closing\s+Balance\s+Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`New\s+Balance\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Your\s+Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

package extract

import "cardlens/internal/domain"

// NewICICI builds the extractor for ICICI Bank statements. ICICI labels
// the closing date "Statement Date" and the total "Your Total Amount Due",
// often with the value on the following line.
func NewICICI() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerICICI,
		currency:  "INR",
		dateHints: []string{"02/01/2006", "2-Jan-2006", "02012006"},
		card: []pattern{
			bare(`(\d{4}\s*X{4}\s*X{4}\s*\d{4})`),
			bare(`(\d{6}X{6}\d{4})`),
			anchor(`Card\s+No\.?\s*:?\s*(\d{4}[\sX*]{4,}[\sX*]{4,}\d{4})`),
		},
		stmtDate: []pattern{
			anchor(`(?s)Statement\s+Date.{0,100}?(\d{2}/\d{2}/\d{4})`),
		},
		period: []pattern{
			anchor(`Statement\s+Period\s*:?\s*(\d{1,2}-\w{3}-\d{4})\s+(?:To|to)\s+(\d{1,2}-\w{3}-\d{4})`),
			bare(`From\s+(\d{8})\s+to\s+(\d{8})`),
		},
		dueDate: []pattern{
			anchor(`Due\s+Date\s*:\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}-\w{3}-\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{8})`),
			anchor(`Pay\s+by\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`(?s)Due\s+Date.{0,50}?(\d{2}/\d{2}/\d{4})`),
		},
		total: []pattern{
			anchor(`(?s)Your\s+Total\s+Amount\s+Due.{0,100}?([\d,]+\.?\d*)`),
			anchor(`Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Outstanding\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`New\s+Balance\s*:?\s*([\d,]+\.?\d*)`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

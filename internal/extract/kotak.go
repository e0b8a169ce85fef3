package extract

import "cardlens/internal/domain"

// NewKotak builds the extractor for Kotak Mahindra Bank statements.
// Kotak prints "2-Feb-2023 To 1-Mar-2023" periods and "Rs." amounts, and
// OCR runs tend to insert underscores and dots around the labels.
func NewKotak() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerKotak,
		currency:  "INR",
		dateHints: []string{"2-Jan-2006", "02-Jan-2006", "2/Jan/2006"},
		card: []pattern{
			bare(`(\d{6}X{6}\d{4})`),
			bare(`(\d{4}\s*\d{2}X{2}\s*X{4}\s*\d{4})`),
			bare(`(\d{4}\s+X{4}\s+X{4}\s+\d{4})`),
			anchor(`Card\s+Number\s*:?\s*(\d{4}[\s*X]+\d{2}[\s*X]+\d{4})`),
		},
		period: []pattern{
			anchor(`Statement\s+Period\s*[_:\s.]*(\d{1,2}-\w{3}-\d{4})\s*[.\s]*[Tt]o\s+(\d{1,2}-\w{3}-\d{4})`),
			anchor(`Statement\s+(?:Date|Period)\s*[_:\s.]*(\d{1,2}[/-]\w{3}[/-]\d{4})\s*[.\s]*[Tt]o\s+(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Billing\s+Period\s*[_:\s.]*(\d{1,2}[/-]\w{3}[/-]\d{4})\s*[.\s]*[Tt]o\s+(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			bare(`From\s+(\d{1,2}[/-]\w{3}[/-]\d{4})\s*[.\s]*[Tt]o\s+(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			bare(`(\d{1,2}[/-]\w{3}[/-]\d{4})\s*[.\s]*[Tt]o\s+(\d{1,2}[/-]\w{3}[/-]\d{4})`),
		},
		dueDate: []pattern{
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Pay\s+by\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Due\s+on\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Payment\s+Due\s+Date\s*:?\s*([0-9A-Za-z/.\-]{6,20})`),
		},
		total: []pattern{
			anchor(`Total\s+Amount\s+Due\s*\(Rs\.\)\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Dues\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Your\s+Total\s+Amount\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Outstanding\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Balance\s+Due\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			bare(`(?:Rs\.|INR|₹)\s*([\d,]+\.\d{2})`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

package extract

import "cardlens/internal/domain"

// NewIDFC builds the extractor for IDFC First Bank statements. IDFC mixes
// separators freely ("20/May/2025 - 19/Jun/2025") and sometimes masks the
// card down to "XX7853".
func NewIDFC() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerIDFC,
		currency:  "INR",
		dateHints: []string{"2/Jan/2006", "02-01-2006", "2-Jan-2006"},
		card: []pattern{
			anchor(`Card\s+(?:No|Number)\s*\.?\s*:?\s*([X*\d]{4}\s*[X*\d]{4}\s*[X*\d]{4}\s*\d{4})`),
			bare(`(\d{4}\s*X{4}\s*X{4}\s*\d{4})`),
			bare(`(\d{4}\s*\*{4}\s*\*{4}\s*\d{4})`),
			anchor(`Card\s+(?:No|Number)\s*\.?\s*:?\s*([X*]{2,6}\d{4})`),
		},
		period: []pattern{
			bare(`(\d{1,2}/\w{3}/\d{4})\s*-\s*(\d{1,2}/\w{3}/\d{4})`),
			anchor(`(?s)Statement\s+(?:Period|Date)\s*:?\s*.{0,100}?(\d{2}[/-]\d{2}[/-]\d{4})\s*(?:to|To|-)\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
			anchor(`Statement\s+for\s+period\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})\s*(?:to|To|-)\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
			bare(`From\s+(\d{2}[/-]\d{2}[/-]\d{4})\s*(?:to|To)\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
			bare(`(\d{1,2}-\w{3}-\d{4})\s*(?:to|To|-)\s*(\d{1,2}-\w{3}-\d{4})`),
		},
		dueDate: []pattern{
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{2}[/-]\d{2}[/-]\d{4})`),
			anchor(`Pay\s+by\s*:?\s*(\d{1,2}[/-]\w{3}[/-]\d{4})`),
		},
		total: []pattern{
			anchor(`Total\s+Amount\s+Due\s*:?\s*(?:Rs\.?|₹)?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+(?:Dues|Outstanding)\s*:?\s*(?:Rs\.?|₹)?\s*([\d,]+\.?\d*)`),
			anchor(`New\s+Balance\s*:?\s*(?:Rs\.?|₹)?\s*([\d,]+\.?\d*)`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

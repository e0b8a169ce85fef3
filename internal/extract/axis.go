package extract

import "cardlens/internal/domain"

// NewAxis builds the extractor for Axis Bank statements. Axis prints a
// payment summary line where the billing period runs straight into the
// due date ("16/08/2024 - 15/09/2024 05/10/2024") and tags the closing
// balance with a Dr suffix instead of a currency symbol.
func NewAxis() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerAxis,
		currency:  "INR",
		dateHints: []string{"02/01/2006", "02-Jan-2006"},
		card: []pattern{
			anchor(`(?:Credit\s+)?Card\s+(?:Number|No\.?)\s*:?\s*([X*\d]{4}[\s\-]*[X*\d]{4}[\s\-]*[X*\d]{4}[\s\-]*\d{4})`),
			bare(`([X*]{4}[\s\-]*[X*]{4}[\s\-]*[X*]{4}[\s\-]*\d{4})`),
			bare(`(\d{4}[\s\-]*[X*]{4}[\s\-]*[X*]{4}[\s\-]*\d{4})`),
		},
		stmtDate: []pattern{
			// "Statement Date: 16/08/2024 to 15/09/2024" means the
			// closing date; the leading range start is skipped over.
			anchor(`Statement\s+Date\s*:?\s*(?:\d{2}/\d{2}/\d{4}\s*(?:to|To|TO)\s*)?(\d{2}/\d{2}/\d{4})`),
			anchor(`Statement\s+on\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`Date\s+of\s+Statement\s*:?\s*(\d{2}/\d{2}/\d{4})`),
		},
		period: []pattern{
			anchor(`(?s)Statement\s+(?:Date|Period)\s*:?\s*.{0,100}?(\d{2}/\d{2}/\d{4})\s*(?:to|To|TO)\s*(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)Billing\s+Cycle\s*:?\s*.{0,100}?(\d{2}-\w{3}-\d{4})\s*(?:to|To|TO)\s*(\d{2}-\w{3}-\d{4})`),
			bare(`From\s+(\d{2}/\d{2}/\d{4})\s+(?:to|To|TO)\s+(\d{2}/\d{2}/\d{4})`),
			bare(`(\d{1,2}/\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{1,2}/\d{4})`),
		},
		dueDate: []pattern{
			// payment summary line: period then due date
			bare(`\d{1,2}/\d{1,2}/\d{4}\s*-\s*\d{1,2}/\d{1,2}/\d{4}\s+(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`(?s)Payment\s+Due\s+Date\s*:?\s*.{0,100}?(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)Due\s+Date\s*:?\s*.{0,100}?(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)Pay\s+by\s*.{0,100}?(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)(?:Payment\s+due|Due)\s+on\s*.{0,100}?(\d{2}/\d{2}/\d{4})`),
			anchor(`(?s)(?:Payment\s+)?Due\s+Date\s*:?\s*.{0,100}?(\d{2}-\w{3}-\d{4})`),
		},
		total: []pattern{
			bare(`([\d,]+\.\d{2})\s*Dr\b`),
			anchor(`Total\s+Amount\s+Due\s*:?\s*(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`),
			anchor(`Amount\s+Payable\s*:?\s*(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`),
			anchor(`(?:Current\s+|Total\s+)?Outstanding(?:\s+Amount)?\s*:?\s*(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`),
			proximity(`(?s)(?:Total\s+Amount\s+Due|Amount\s+Payable).{0,200}?([\d,]+\.\d{2})`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

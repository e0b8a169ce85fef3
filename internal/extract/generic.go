package extract

import "cardlens/internal/domain"

// NewGeneric builds the best-effort extractor used when the issuer is
// unknown. It carries the union of mask and label formats seen across
// supported banks; the overall confidence cap for unknown issuers keeps
// its optimism in check.
func NewGeneric() Extractor {
	return &tableExtractor{t: table{
		issuer:   domain.IssuerUnknown,
		currency: "INR",
		card: []pattern{
			bare(`(\d{4}\s*\d{2}X{2}\s*X{4}\s*\d{4})`),
			bare(`(\d{6}X{6}\d{4})`),
			bare(`(\d{4}\s*X{4}\s*X{4}\s*\d{3,4})`),
			bare(`(X{4}-X{6}-\d{5})`),
			bare(`(\d{4}\s*\*{4}\s*\*{4}\s*\d{4})`),
			bare(`(\d{6}\*{6}\d{4})`),
			anchor(`(?:Card|Account)\s+(?:No\.?|Number)\s*:?\s*([\dX*\s\-]{8,25}\d)`),
			proximity(`(?s)(?:Card|Membership)\s+Number.{0,50}?(\d{4})`),
		},
		stmtDate: []pattern{
			anchor(`Statement\s+Date\s*:?\s*(\d{1,2}[-/\s]\w{3,9}[-/\s,]+\d{2,4})`),
			anchor(`Statement\s+Date\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`Statement\s+Date\s*:?\s*(\d{8})`),
		},
		period: []pattern{
			anchor(`Statement\s+Period\s*:?\s*(\d{1,2}-\w{3}-\d{4})\s+(?:To|to)\s+(\d{1,2}-\w{3}-\d{4})`),
			bare(`From\s+(\w+\s+\d{1,2})\s+to\s+(\w+\s+\d{1,2},\s+\d{4})`),
			bare(`(\d{8})\s+(?:to|To)\s+(\d{8})`),
			anchor(`Billing\s+Cycle\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`Period\s*:?\s*(\d{1,2}\s+\w+\s+\d{4})\s+to\s+(\d{1,2}\s+\w+\s+\d{4})`),
		},
		dueDate: []pattern{
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}-\w{3}-\d{4})`),
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`Due\s+Date\s*:?\s*(\d{8})`),
			anchor(`Due\s+by\s+(\w+\s+\d{1,2},\s+\d{4})`),
			anchor(`Pay\s+by\s+(\d{1,2}\s+\w{3}\s+\d{2,4})`),
			anchor(`Due\s*:?\s*(\d{1,2}\s+\w+\s+\d{4})`),
			proximity(`(?s)(?:Payment\s+Due\s+Date|Due\s+Date|Pay\s+By).{0,200}?(\d{1,2}[-/\s][\w\d]{1,9}[-/\s,]+\d{2,4})`),
		},
		total: []pattern{
			anchor(`Total\s+Amount\s+Due\s*:?\s*(?:Rs\.?|₹)\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Dues\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Your\s+Total\s+Amount\s+Due\s*:?\s*([\d,]+\.?\d*)`),
			anchor(`New\s+Balance\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`CLOSING\s+BALANCE\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Outstanding\s*:?\s*Rs\.?\s*([\d,]+\.?\d*)`),
			anchor(`Amount\s+Due\s*:?\s*([\d,]+\.?\d*)`),
			proximity(`(?s)(?:Total\s+Amount\s+Due|Total\s+Dues|New\s+Balance|Closing\s+Balance).{0,120}?([\d,]+\.\d{2})`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

package extract

import "cardlens/internal/domain"

// NewCapitalOne builds the extractor for Capital One Europe statements.
// UK layout: sterling amounts, "Statement date 5 October 24" and chatty
// labels like "It's due on 31 Oct 24". A bare last-4 card match is
// accepted as a weak fallback.
func NewCapitalOne() Extractor {
	return &tableExtractor{t: table{
		issuer:    domain.IssuerCapitalOne,
		currency:  "GBP",
		dateHints: []string{"2 January 2006", "2 Jan 06", "2 January 06"},
		card: []pattern{
			bare(`(\d{4}\s*\*{4}\s*\*{4}\s*\d{4})`),
			bare(`(\d{4}\s*X{4}\s*X{4}\s*\d{4})`),
			anchor(`Card\s+ending\s+in\s+(\d{4})`),
			proximity(`(\d{4})(?:\s|$)`),
		},
		stmtDate: []pattern{
			anchor(`Statement\s+date\s+(\d{1,2}\s+\w+\s+\d{2,4})`),
		},
		period: []pattern{
			bare(`From\s+(\d{8})\s+to\s+(\d{8})`),
			anchor(`Statement\s+Period\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{1,2}/\d{4})`),
			bare(`(\d{1,2}\s+\w+\s+\d{4})\s+to\s+(\d{1,2}\s+\w+\s+\d{4})`),
		},
		dueDate: []pattern{
			anchor(`(?:It'?s\s+)?due\s+on\s+(\d{1,2}\s+\w+\s+\d{2,4})`),
			anchor(`Payment\s+Due\s+Date\s*:?\s*(\d{8})`),
			anchor(`Due\s+Date\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
			anchor(`Pay\s+by\s*:?\s*(\d{1,2}\s+\w+\s+\d{2,4})`),
			anchor(`due\s+(?:date\s+)?(?:on\s+)?(\d{1,2}\s+\w+\s+\d{2,4})`),
		},
		total: []pattern{
			anchor(`(?:Your\s+)?new\s+balance\s+£\s*([\d,]+\.?\d*)`),
			anchor(`NEW\s+CLOSING\s+BALANCE\s+£\s*([\d,]+\.?\d*)`),
			anchor(`Total\s+Amount\s+Due\s*:?\s*£\s*([\d,]+\.?\d*)`),
			anchor(`Amount\s+Due\s*:?\s*£\s*([\d,]+\.?\d*)`),
		},
		minimumDue:      commonMinimumDue(),
		previousBalance: commonPreviousBalance(),
		availableCredit: commonAvailableCredit(),
		rewardPoints:    commonRewardPoints(),
		txnRow:          commonTxnRow,
	}}
}

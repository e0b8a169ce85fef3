package extract

import (
	"regexp"
	"strings"

	"cardlens/internal/domain"
	"cardlens/internal/normalize"
	"cardlens/internal/score"
)

// pattern pairs a compiled expression with the confidence method its match
// earns. Anchored expressions name the field label next to the value;
// bare format expressions rank lower.
type pattern struct {
	re     *regexp.Regexp
	method score.Method
}

func anchor(expr string) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + expr), method: score.MethodAnchor}
}

func bare(expr string) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + expr), method: score.MethodPattern}
}

func proximity(expr string) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + expr), method: score.MethodProximity}
}

// table is one issuer's pattern set. Pattern lists are tried in order and
// the first match wins, so each list goes from most to least specific.
type table struct {
	issuer    domain.Issuer
	currency  string
	dateHints []string

	card     []pattern // 1 capture group: the masked number
	stmtDate []pattern // 1 capture group: a single statement date
	period   []pattern // 2 capture groups: start and end
	dueDate  []pattern // 1 capture group
	total    []pattern // 1 capture group: the numeric amount

	minimumDue      []pattern
	previousBalance []pattern
	availableCredit []pattern
	rewardPoints    []pattern

	txnRow *regexp.Regexp // groups: date, merchant, amount, optional Cr/Dr
}

// tableExtractor implements Extractor over a pattern table. All issuer
// extractors share this walk; only the tables differ.
type tableExtractor struct {
	t table
}

func (e *tableExtractor) Issuer() domain.Issuer { return e.t.issuer }

func (e *tableExtractor) Extract(text string) *Partial {
	p := &Partial{
		CardNumber:     e.card(text),
		StatementDate:  e.date(text, e.t.stmtDate),
		BillingPeriod:  e.billingPeriod(text),
		PaymentDueDate: e.date(text, e.t.dueDate),
		TotalAmountDue: e.money(text, e.t.total),

		MinimumAmountDue:     e.money(text, e.t.minimumDue),
		PreviousBalance:      e.money(text, e.t.previousBalance),
		AvailableCreditLimit: e.money(text, e.t.availableCredit),
		RewardPoints:         e.text(text, e.t.rewardPoints),

		Transactions: e.transactions(text),
	}
	// Statements that only print a closing date still get a statement
	// date, taken from the billing period's end.
	if p.StatementDate == nil && p.BillingPeriod != nil && p.BillingPeriod.End != "" {
		p.StatementDate = &DateField{
			Value:        p.BillingPeriod.End,
			Raw:          p.BillingPeriod.Raw,
			Method:       p.BillingPeriod.Method,
			NormalizedOK: true,
		}
	}
	return p
}

func (e *tableExtractor) card(text string) *TextField {
	for _, pat := range e.t.card {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := group(m, 1)
		return &TextField{
			Value:        strings.Join(strings.Fields(raw), " "),
			Raw:          raw,
			Method:       pat.method,
			NormalizedOK: true,
		}
	}
	return nil
}

func (e *tableExtractor) date(text string, pats []pattern) *DateField {
	for _, pat := range pats {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := group(m, 1)
		iso, ok := normalize.Date(raw, e.t.dateHints...)
		return &DateField{Value: iso, Raw: raw, Method: pat.method, NormalizedOK: ok}
	}
	return nil
}

func (e *tableExtractor) billingPeriod(text string) *RangeField {
	for _, pat := range e.t.period {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		startRaw, endRaw := group(m, 1), group(m, 2)
		end, eok := normalize.Date(endRaw, e.t.dateHints...)
		start, sok := normalize.Date(startRaw, e.t.dateHints...)
		if !sok && eok {
			// periods like "From January 5 to February 4, 2024" carry
			// the year only on the end date
			start, sok = normalize.Date(startRaw + ", " + end[:4])
		}
		return &RangeField{
			Start:        start,
			End:          end,
			Raw:          strings.TrimSpace(startRaw + " to " + endRaw),
			Method:       pat.method,
			NormalizedOK: sok && eok,
		}
	}
	// Last resort: a free-text "X to Y" pair anywhere in the document.
	if start, end, ok := normalize.DateRange(text); ok {
		return &RangeField{
			Start:        start,
			End:          end,
			Raw:          "date range in body text",
			Method:       score.MethodProximity,
			NormalizedOK: true,
		}
	}
	return nil
}

func (e *tableExtractor) money(text string, pats []pattern) *MoneyField {
	for _, pat := range pats {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// Only the captured group is a value; the full match may also
		// carry dates and labels, and is consulted solely for a
		// currency marker.
		raw := group(m, 1)
		amount, currency, ok := normalize.Amount(raw, e.t.currency)
		if c := normalize.Currency(m[0]); ok && c != "" {
			currency = c
		}
		f := &MoneyField{Raw: raw, Method: pat.method, NormalizedOK: ok}
		if ok {
			f.Amount = amount
			f.Currency = currency
		} else {
			f.Currency = e.t.currency
		}
		// Zero or negative totals are header noise, keep looking.
		if ok && !amount.IsPositive() {
			continue
		}
		return f
	}
	return nil
}

func (e *tableExtractor) text(text string, pats []pattern) *TextField {
	for _, pat := range pats {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := group(m, 1)
		return &TextField{
			Value:        strings.TrimSpace(raw),
			Raw:          raw,
			Method:       pat.method,
			NormalizedOK: true,
		}
	}
	return nil
}

func (e *tableExtractor) transactions(text string) []domain.Transaction {
	if e.t.txnRow == nil {
		return nil
	}
	var out []domain.Transaction
	for _, m := range e.t.txnRow.FindAllStringSubmatch(text, maxTransactions) {
		date, ok := normalize.Date(m[1], e.t.dateHints...)
		if !ok {
			continue
		}
		amount, _, ok := normalize.Amount(m[3], e.t.currency)
		if !ok {
			continue
		}
		if len(m) > 4 && strings.EqualFold(strings.TrimSpace(m[4]), "Cr") {
			amount = amount.Neg()
		}
		out = append(out, domain.Transaction{
			Date:     date,
			Merchant: strings.TrimSpace(m[2]),
			Amount:   amount,
		})
	}
	return out
}

const maxTransactions = 500

func group(m []string, i int) string {
	if i < len(m) && m[i] != "" {
		return m[i]
	}
	return m[0]
}

// Shared optional-field patterns. Issuer tables start from these and
// override where a bank labels things differently.
func commonMinimumDue() []pattern {
	return []pattern{
		anchor(`Minimum\s+Amount\s+Due\s*\(?(?:Rs\.?\)?)?\s*:?\s*₹?\s*([\d,]+\.?\d*)`),
		anchor(`Min(?:imum)?\s+Payment\s+Due\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
		anchor(`Minimum\s+Due\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
	}
}

func commonPreviousBalance() []pattern {
	return []pattern{
		anchor(`Previous\s+Balance\s*\(?(?:Rs\.?\)?)?\s*:?\s*₹?\s*([\d,]+\.?\d*)`),
		anchor(`Opening\s+Balance\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
		anchor(`Last\s+Statement\s+Balance\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
	}
}

func commonAvailableCredit() []pattern {
	return []pattern{
		anchor(`Available\s+Credit\s+Limit\s*\(?(?:Rs\.?\)?)?\s*:?\s*₹?\s*([\d,]+\.?\d*)`),
		anchor(`Available\s+Credit\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
		anchor(`Credit\s+(?:Limit\s+)?Available\s*:?\s*(?:Rs\.?|₹|£)?\s*([\d,]+\.?\d*)`),
	}
}

func commonRewardPoints() []pattern {
	return []pattern{
		anchor(`(?:Reward|Bonus)\s+Points?\s+(?:Balance|Earned|Summary)\s*:?\s*([\d,]+)`),
		anchor(`Points\s+Balance\s*:?\s*([\d,]+)`),
		anchor(`Total\s+Reward\s+Points?\s*:?\s*([\d,]+)`),
	}
}

// commonTxnRow matches a "date merchant amount [Cr/Dr]" ledger line in the
// formats Indian issuers print.
var commonTxnRow = regexp.MustCompile(
	`(?im)^\s*(\d{1,2}[-/](?:\d{1,2}|[A-Za-z]{3})[-/]\d{2,4})\s+(\S.{2,58}?)\s{2,}([\d,]+\.\d{2})\s*(Cr|Dr)?\s*$`)

package statement

import (
	"cardlens/internal/domain"
	"cardlens/internal/extract"
	"cardlens/internal/issuer"
	"cardlens/internal/score"
)

// assemble folds the extractor output, the issuer detection and the engine
// outcome into a final immutable ParseResult. Every per-field confidence
// is multiplied by the engine factor here, in one place.
func assemble(
	partial *extract.Partial,
	det issuer.Detection,
	engineFactor float64,
	w score.Weights,
	caps score.Caps,
	engineQuality float64,
) domain.ParseResult {
	res := domain.ParseResult{
		Issuer:           det.Issuer,
		IssuerConfidence: det.Confidence,
		MatchedSignature: det.MatchedSignature,
		CardNumber:       textField(partial.CardNumber, engineFactor),
		StatementDate:    dateField(partial.StatementDate, engineFactor),
		BillingPeriod:    rangeField(partial.BillingPeriod, engineFactor),
		PaymentDueDate:   dateField(partial.PaymentDueDate, engineFactor),
		TotalAmountDue:   amountField(partial.TotalAmountDue, engineFactor),
		Transactions:     partial.Transactions,
	}
	if partial.MinimumAmountDue != nil {
		f := amountField(partial.MinimumAmountDue, engineFactor)
		res.MinimumAmountDue = &f
	}
	if partial.PreviousBalance != nil {
		f := amountField(partial.PreviousBalance, engineFactor)
		res.PreviousBalance = &f
	}
	if partial.AvailableCreditLimit != nil {
		f := amountField(partial.AvailableCreditLimit, engineFactor)
		res.AvailableCreditLimit = &f
	}
	if partial.RewardPoints != nil {
		f := textField(partial.RewardPoints, engineFactor)
		res.RewardPointsSummary = &f
	}

	res.Confidence = domain.ConfidenceScores{
		CardNumber:     res.CardNumber.Confidence,
		StatementDate:  res.StatementDate.Confidence,
		BillingPeriod:  res.BillingPeriod.Confidence,
		PaymentDueDate: res.PaymentDueDate.Confidence,
		TotalAmountDue: res.TotalAmountDue.Confidence,
	}
	missing := res.CardNumber.Value == nil ||
		res.StatementDate.Value == nil ||
		res.PaymentDueDate.Value == nil ||
		res.TotalAmountDue.Value == nil
	res.Confidence.Overall = score.Overall(res.Confidence, w, caps, det.Issuer, engineQuality, missing)
	return res
}

func textField(f *extract.TextField, factor float64) domain.Field {
	if f == nil {
		return domain.Field{}
	}
	out := domain.Field{
		Confidence: score.Field(f.Method, f.NormalizedOK) * factor,
		RawText:    f.Raw,
	}
	if f.NormalizedOK {
		v := f.Value
		out.Value = &v
	}
	return out
}

func dateField(f *extract.DateField, factor float64) domain.DateField {
	if f == nil {
		return domain.DateField{}
	}
	out := domain.DateField{
		Confidence: score.Field(f.Method, f.NormalizedOK) * factor,
		RawText:    f.Raw,
	}
	if f.NormalizedOK {
		v := f.Value
		out.Value = &v
	}
	return out
}

func rangeField(f *extract.RangeField, factor float64) domain.DateRangeField {
	if f == nil {
		return domain.DateRangeField{}
	}
	out := domain.DateRangeField{
		Confidence: score.Field(f.Method, f.NormalizedOK) * factor,
		RawText:    f.Raw,
	}
	if f.Start != "" {
		s := f.Start
		out.StartDate = &s
	}
	if f.End != "" {
		e := f.End
		out.EndDate = &e
	}
	return out
}

func amountField(f *extract.MoneyField, factor float64) domain.AmountField {
	if f == nil {
		return domain.AmountField{}
	}
	out := domain.AmountField{
		Currency:   f.Currency,
		Confidence: score.Field(f.Method, f.NormalizedOK) * factor,
		RawText:    f.Raw,
	}
	if f.NormalizedOK {
		v := f.Amount
		out.Value = &v
	}
	return out
}

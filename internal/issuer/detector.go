package issuer

import (
	"log"

	"cardlens/internal/domain"
)

const (
	headerChars = 2000
	sampleChars = 5000

	// score at which confidence saturates at 1.0
	saturationScore = 5
)

// Detection is the outcome of issuer detection over extracted text.
type Detection struct {
	Issuer           domain.Issuer
	Confidence       float64
	MatchedSignature string
}

// Detector scores issuer signatures against statement text. Header hits
// count double because issuer branding sits at the top of a statement.
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

// Detect returns the best-scoring issuer, or IssuerUnknown with zero
// confidence when no signature matches. Identical text always yields the
// identical detection.
func (d *Detector) Detect(text string) Detection {
	header := head(text, headerChars)
	sample := head(text, sampleChars)

	best := Detection{Issuer: domain.IssuerUnknown}
	bestScore := 0

	for _, set := range signatureSets {
		score := 0
		matched := ""
		for _, p := range set.patterns {
			headerHits := len(p.FindAllStringIndex(header, -1))
			sampleHits := len(p.FindAllStringIndex(sample, -1))
			score += headerHits*2 + sampleHits
			if matched == "" && headerHits+sampleHits > 0 {
				matched = p.String()
			}
		}
		if score > bestScore {
			bestScore = score
			best = Detection{
				Issuer:           set.issuer,
				Confidence:       confidence(score),
				MatchedSignature: matched,
			}
		}
	}

	if best.Issuer == domain.IssuerUnknown {
		log.Printf("issuer: no signature matched in %d chars of text", len(text))
	} else {
		log.Printf("issuer: detected %s (score %d, signature %q)", best.Issuer, bestScore, best.MatchedSignature)
	}
	return best
}

func confidence(score int) float64 {
	c := float64(score) / saturationScore
	if c > 1 {
		return 1
	}
	return c
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

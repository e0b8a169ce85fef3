package issuer

import (
	"regexp"

	"cardlens/internal/domain"
)

// signatureSet groups the text markers that identify one issuer. Patterns
// are ordered strongest first so the recorded match names the most
// specific marker that hit.
type signatureSet struct {
	issuer   domain.Issuer
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// signatureSets is iterated in this fixed order. Detection must stay
// deterministic for identical text, so this is a slice, never a map.
var signatureSets = []signatureSet{
	{
		issuer: domain.IssuerKotak,
		patterns: compileAll(
			`Kotak\s+Mahindra\s+Bank`,
			`Kotak\s+Corporate\s+Credit\s+Card`,
			`Kotak\s+Credit\s+Card`,
			`Kotak\s+Bank`,
			`Kotak\s+Mahindra`,
			`Kotak`,
			`GSTIN\s*-?\s*27AAACK4409J3ZI`,
			`kotak\.com`,
			`Corporate\s+Credit\s+Card\s+Statement`,
			`414767`, // Kotak card BIN
		),
	},
	{
		issuer: domain.IssuerHDFC,
		patterns: compileAll(
			`HDFC\s+Bank`,
			`Platinum\s+Times\s+Card`,
			`GSTIN\s*33AAACH2702H2Z6`,
			`hdfcbank\.com`,
			`HDFC\s+Credit\s+Card`,
		),
	},
	{
		issuer: domain.IssuerICICI,
		patterns: compileAll(
			`ICICI\s+Bank`,
			`GSTIN\s*27AAACI1195H3ZK`,
			`icicibank\.com`,
			`ICICI\s+Credit\s+Card`,
		),
	},
	{
		issuer: domain.IssuerAxis,
		patterns: compileAll(
			`Axis\s+Bank\s+Ltd`,
			`axisbank\.com`,
			`Axis\s+Bank`,
		),
	},
	{
		issuer: domain.IssuerIDFC,
		patterns: compileAll(
			`IDFC\s+First\s+Bank`,
			`idfcfirstbank\.com`,
			`IDFC\s+Bank`,
			`IDFC\s+FIRST`,
		),
	},
	{
		issuer: domain.IssuerAmex,
		patterns: compileAll(
			`American\s+Express\s+Banking\s+Corp`,
			`American\s+Express`,
			`AEBC`,
			`americanexpress\.co\.in`,
		),
	},
	{
		issuer: domain.IssuerCapitalOne,
		patterns: compileAll(
			`Capital\s+One\s+Europe`,
			`capitalone\.co\.uk`,
			`Capital\s+One`,
		),
	},
}

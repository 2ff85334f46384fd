// Package anchors defines the closed set of career anchor codes and the
// directed tension table between them.
package anchors

// Code identifies one of the eight career anchors.
type Code string

// The eight anchor codes. The set is closed; scoring, ranking, and tradeoff
// lookup all iterate over All and must stay exhaustive.
const (
	TechnicalFunctional Code = "TF" // technical/functional competence
	GeneralManagement   Code = "GM" // general managerial competence
	Autonomy            Code = "AU" // autonomy/independence
	Security            Code = "SE" // security/stability
	Entrepreneurial     Code = "EC" // entrepreneurial creativity
	Service             Code = "SV" // service/dedication to a cause
	Challenge           Code = "CH" // pure challenge
	Lifestyle           Code = "LS" // lifestyle integration
)

// All lists every anchor code in canonical declaration order.
var All = []Code{
	TechnicalFunctional,
	GeneralManagement,
	Autonomy,
	Security,
	Entrepreneurial,
	Service,
	Challenge,
	Lifestyle,
}

// IsValid reports whether s is one of the eight anchor codes.
func IsValid(s string) bool {
	switch Code(s) {
	case TechnicalFunctional, GeneralManagement, Autonomy, Security,
		Entrepreneurial, Service, Challenge, Lifestyle:
		return true
	}
	return false
}

// tensionTable maps an anchor to the anchor it is known to trade off
// against. The table is directed: both directions of a pair are listed
// explicitly when they exist, and not every pair is present.
var tensionTable = map[Code]Code{
	Autonomy:            Security,
	Security:            Autonomy,
	Challenge:           Security,
	Entrepreneurial:     Security,
	TechnicalFunctional: GeneralManagement,
	GeneralManagement:   TechnicalFunctional,
	Lifestyle:           GeneralManagement,
	Service:             Entrepreneurial,
}

// TensionPartner returns the anchor that code is in tension with, if the
// table defines one.
func TensionPartner(code Code) (Code, bool) {
	partner, ok := tensionTable[code]
	return partner, ok
}

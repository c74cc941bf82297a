package query

// Sentiment labels accepted by the filter grammar.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Comparison operators accepted inside impactScoreRange.
const (
	OpGreaterThan    = "greaterThan"
	OpGreaterOrEqual = "greaterOrEqual"
	OpLessThan       = "lessThan"
	OpLessOrEqual    = "lessOrEqual"
	OpEqualTo        = "equalTo"
)

// CaseInsensitive is the only accepted value for the companyNameMatch case flag.
const CaseInsensitive = "insensitive"

// Limit bounds for a single call. Out-of-range limits are clamped, not rejected.
const (
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 10
)

// NameMatch is a case-insensitive substring match on the company name.
type NameMatch struct {
	Pattern string
	Case    string
}

// FilterSpec is the validated, whitelisted representation of a caller-supplied
// filter. Zero-value fields mean the corresponding predicate is absent, which
// matches any value rather than requiring the field to be missing.
type FilterSpec struct {
	Sentiment        string
	Symbol           *string
	CompanyNameMatch *NameMatch
	ImpactScoreRange map[string]float64
}

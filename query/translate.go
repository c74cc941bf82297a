package query

import "go.mongodb.org/mongo-driver/bson"

// Store-side field names. The company identity lives in a nested symbolmap
// document, addressed by dotted path.
const (
	FieldSentiment = "sentiment"
	FieldSymbol    = "symbolmap.NSE"
	FieldCompany   = "symbolmap.Company_Name"
	FieldScore     = "impact score"
	FieldTimestamp = "dt_tm"
	FieldSummary   = "short summary"
	FieldImpact    = "impact"
	FieldLink      = "news link"
)

var mongoOperators = map[string]string{
	OpGreaterThan:    "$gt",
	OpGreaterOrEqual: "$gte",
	OpLessThan:       "$lt",
	OpLessOrEqual:    "$lte",
	OpEqualTo:        "$eq",
}

// StoreQuery is the concrete filter+projection+sort+limit request sent to the
// document store.
type StoreQuery struct {
	Filter     bson.M
	Projection bson.D
	Sort       bson.D
	Limit      int64
}

// Translate maps a validated FilterSpec and limit onto a StoreQuery. Absent
// FilterSpec fields contribute no predicate. The projection and the
// newest-first sort on FieldTimestamp are fixed and never caller-configurable.
// Translate performs no I/O and cannot fail on a well-formed FilterSpec.
func Translate(spec FilterSpec, limit int) StoreQuery {
	filter := bson.M{}

	if spec.Sentiment != "" {
		filter[FieldSentiment] = spec.Sentiment
	}
	if spec.Symbol != nil {
		filter[FieldSymbol] = *spec.Symbol
	}
	if spec.CompanyNameMatch != nil {
		filter[FieldCompany] = bson.M{
			"$regex":   spec.CompanyNameMatch.Pattern,
			"$options": "i",
		}
	}
	if len(spec.ImpactScoreRange) > 0 {
		bounds := bson.M{}
		for op, bound := range spec.ImpactScoreRange {
			bounds[mongoOperators[op]] = bound
		}
		filter[FieldScore] = bounds
	}

	return StoreQuery{
		Filter:     filter,
		Projection: projection(),
		Sort:       bson.D{{Key: FieldTimestamp, Value: -1}},
		Limit:      int64(limit),
	}
}

// projection returns a fresh copy so a shared document can never be mutated
// by driver internals across calls.
func projection() bson.D {
	return bson.D{
		{Key: "_id", Value: 0},
		{Key: FieldCompany, Value: 1},
		{Key: FieldSymbol, Value: 1},
		{Key: FieldTimestamp, Value: 1},
		{Key: FieldSummary, Value: 1},
		{Key: FieldImpact, Value: 1},
		{Key: FieldScore, Value: 1},
		{Key: FieldSentiment, Value: 1},
		{Key: FieldLink, Value: 1},
	}
}

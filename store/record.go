package store

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonwraymond/newsimpact/query"
)

// Record is a single stored document reduced to the fields the gateway
// projects. It is produced once per document by DecodeRecord and consumed
// exactly once by the normalizer.
type Record struct {
	Company   string
	Symbol    string
	Timestamp any // time.Time, string, or nil when absent
	Summary   string
	Impact    any
	Score     *float64
	Sentiment string
	Link      string
}

// DecodeRecord reduces a raw document to a Record with defensive defaults.
// Missing or mis-shaped fields, including the nested symbolmap document,
// degrade to zero values; decoding never fails.
func DecodeRecord(doc bson.M) Record {
	rec := Record{
		Summary:   stringField(doc[query.FieldSummary]),
		Sentiment: stringField(doc[query.FieldSentiment]),
		Link:      stringField(doc[query.FieldLink]),
		Impact:    doc[query.FieldImpact],
		Score:     numberField(doc[query.FieldScore]),
		Timestamp: timestampField(doc[query.FieldTimestamp]),
	}
	if symbolmap, ok := asMap(doc["symbolmap"]); ok {
		rec.Company = stringField(symbolmap["Company_Name"])
		rec.Symbol = stringField(symbolmap["NSE"])
	}
	return rec
}

// asMap tolerates both the driver's bson.M and a plain map, so decoded
// documents and hand-built fixtures behave identically.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

func numberField(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

func timestampField(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t
	case nil:
		return nil
	default:
		return v
	}
}

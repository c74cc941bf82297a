// Package normalize reshapes raw store records into the stable, flat items
// returned to callers. Normalization is order-preserving and never fails:
// malformed or missing fields degrade to empty or default values.
package normalize

import (
	"fmt"
	"time"

	"github.com/jonwraymond/newsimpact/store"
)

// Score bounds. Out-of-range scores are clamped rather than rejected.
const (
	MinScore = 0
	MaxScore = 10
)

// DefaultSentiment is applied to every record whose sentiment is absent or
// empty. This is a content policy of the gateway, not a store default.
const DefaultSentiment = "Neutral"

// Item is the stable output record. It is created fresh per store record and
// not retained after the response is built.
type Item struct {
	Company   string   `json:"company"`
	Symbol    string   `json:"symbol"`
	Timestamp *string  `json:"dt"`
	Summary   string   `json:"summary"`
	Impact    *string  `json:"impact"`
	Score     *float64 `json:"score"`
	Sentiment string   `json:"sentiment"`
	Link      string   `json:"link"`
}

// Normalize converts records into items, preserving the store's sort order.
func Normalize(records []store.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, normalizeRecord(rec))
	}
	return items
}

func normalizeRecord(rec store.Record) Item {
	item := Item{
		Company:   rec.Company,
		Symbol:    rec.Symbol,
		Timestamp: timestampString(rec.Timestamp),
		Summary:   rec.Summary,
		Impact:    impactString(rec.Impact),
		Score:     clampScore(rec.Score),
		Sentiment: rec.Sentiment,
		Link:      rec.Link,
	}
	if item.Sentiment == "" {
		item.Sentiment = DefaultSentiment
	}
	return item
}

// timestampString coerces a timestamp to ISO-8601 when it is a native time
// value, passes strings through unchanged, and stringifies anything else as a
// last resort.
func timestampString(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		s := t.UTC().Format(time.RFC3339)
		return &s
	case string:
		return &t
	default:
		s := fmt.Sprintf("%v", t)
		return &s
	}
}

func impactString(v any) *string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		return &s
	default:
		out := fmt.Sprintf("%v", s)
		return &out
	}
}

func clampScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	s := *score
	if s < MinScore {
		s = MinScore
	}
	if s > MaxScore {
		s = MaxScore
	}
	return &s
}

package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationError reports malformed or disallowed filter input. Field names
// the offending part of the input so callers can surface a specific reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func fail(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var allowedFilterKeys = map[string]bool{
	"sentiment":        true,
	"symbol":           true,
	"companyNameMatch": true,
	"impactScoreRange": true,
}

var allowedOperators = map[string]bool{
	OpGreaterThan:    true,
	OpGreaterOrEqual: true,
	OpLessThan:       true,
	OpLessOrEqual:    true,
	OpEqualTo:        true,
}

// Validate checks an untrusted argument map against the filter grammar and
// returns the resulting FilterSpec together with the effective limit.
//
// The "query" key is required; "limit" is optional and defaults to
// DefaultLimit. A coercible out-of-range limit is clamped into
// [MinLimit, MaxLimit] rather than rejected.
func Validate(args map[string]any) (FilterSpec, int, error) {
	var spec FilterSpec

	raw, ok := args["query"]
	if args == nil || !ok {
		return spec, 0, fail("query", "query is required")
	}
	filter, ok := asObject(raw)
	if !ok {
		return spec, 0, fail("query", "query must be an object")
	}

	var unknown []string
	for key := range filter {
		if !allowedFilterKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return spec, 0, fail("query", fmt.Sprintf(
			"unknown keys: %s (allowed: %s)",
			strings.Join(unknown, ", "), strings.Join(allowedKeyNames(), ", ")))
	}

	if rawSentiment, ok := filter["sentiment"]; ok {
		s, isString := rawSentiment.(string)
		if !isString || (s != SentimentPositive && s != SentimentNeutral && s != SentimentNegative) {
			return spec, 0, fail("sentiment", fmt.Sprintf(
				"must be one of: %s, %s, %s", SentimentPositive, SentimentNeutral, SentimentNegative))
		}
		spec.Sentiment = s
	}

	if rawSymbol, ok := filter["symbol"]; ok {
		s, isString := rawSymbol.(string)
		if !isString {
			return spec, 0, fail("symbol", "must be a string")
		}
		spec.Symbol = &s
	}

	if rawMatch, ok := filter["companyNameMatch"]; ok {
		match, err := validateNameMatch(rawMatch)
		if err != nil {
			return spec, 0, err
		}
		spec.CompanyNameMatch = match
	}

	if rawRange, ok := filter["impactScoreRange"]; ok {
		bounds, err := validateScoreRange(rawRange)
		if err != nil {
			return spec, 0, err
		}
		spec.ImpactScoreRange = bounds
	}

	limit := DefaultLimit
	if rawLimit, ok := args["limit"]; ok {
		n, err := coerceInt(rawLimit)
		if err != nil {
			return spec, 0, fail("limit", fmt.Sprintf(
				"must be an integer between %d and %d", MinLimit, MaxLimit))
		}
		limit = clampLimit(n)
	}

	return spec, limit, nil
}

func validateNameMatch(raw any) (*NameMatch, error) {
	obj, ok := asObject(raw)
	if !ok || obj == nil {
		return nil, fail("companyNameMatch", "must be an object with pattern and case")
	}
	if len(obj) != 2 {
		return nil, fail("companyNameMatch", "must have exactly the keys pattern and case")
	}
	rawPattern, hasPattern := obj["pattern"]
	rawCase, hasCase := obj["case"]
	if !hasPattern || !hasCase {
		return nil, fail("companyNameMatch", "must have exactly the keys pattern and case")
	}
	pattern, isString := rawPattern.(string)
	if !isString || pattern == "" {
		return nil, fail("companyNameMatch.pattern", "must be a non-empty string")
	}
	if rawCase != CaseInsensitive {
		return nil, fail("companyNameMatch.case", fmt.Sprintf("must be %q", CaseInsensitive))
	}
	return &NameMatch{Pattern: pattern, Case: CaseInsensitive}, nil
}

func validateScoreRange(raw any) (map[string]float64, error) {
	obj, ok := asObject(raw)
	if !ok || len(obj) == 0 {
		return nil, fail("impactScoreRange", "must be a non-empty object of comparison operators")
	}
	if len(obj) > 2 {
		return nil, fail("impactScoreRange", "must contain at most two comparison operators")
	}
	bounds := make(map[string]float64, len(obj))
	for op, rawBound := range obj {
		if !allowedOperators[op] {
			return nil, fail("impactScoreRange", fmt.Sprintf(
				"unknown operator %s (allowed: %s, %s, %s, %s, %s)", op,
				OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual, OpEqualTo))
		}
		bound, ok := asNumber(rawBound)
		if !ok {
			return nil, fail("impactScoreRange."+op, "must be a number")
		}
		bounds[op] = bound
	}
	return bounds, nil
}

// asObject accepts a JSON-decoded object. A nil value is treated as an empty
// object so that an explicit null filter behaves like a match-all filter.
func asObject(v any) (map[string]any, bool) {
	if v == nil {
		return map[string]any{}, true
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case float32:
		return int(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}

func clampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

func allowedKeyNames() []string {
	names := make([]string, 0, len(allowedFilterKeys))
	for key := range allowedFilterKeys {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

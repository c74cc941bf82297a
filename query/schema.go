package query

// InputSchema returns the JSON Schema advertised for the tool's arguments.
// It mirrors the grammar enforced by Validate; the validator, not the schema,
// is the source of truth at call time.
func InputSchema() map[string]any {
	return map[string]any{
		"type":  "object",
		"title": "NewsImpactQueryWithLimit",
		"description": "Provide a filter under 'query' (allowed keys only) and an optional " +
			"'limit' (1-50, default 10). Results are sorted newest-first.",
		"properties": map[string]any{
			"query": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sentiment": map[string]any{
						"type": "string",
						"enum": []string{SentimentPositive, SentimentNeutral, SentimentNegative},
					},
					"symbol": map[string]any{
						"type":        "string",
						"description": "Exact NSE symbol, e.g. RELIANCE.",
					},
					"companyNameMatch": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"pattern": map[string]any{"type": "string", "minLength": 1},
							"case":    map[string]any{"type": "string", "enum": []string{CaseInsensitive}},
						},
						"required":             []string{"pattern", "case"},
						"additionalProperties": false,
					},
					"impactScoreRange": map[string]any{
						"type": "object",
						"properties": map[string]any{
							OpGreaterThan:    map[string]any{"type": "number"},
							OpGreaterOrEqual: map[string]any{"type": "number"},
							OpLessThan:       map[string]any{"type": "number"},
							OpLessOrEqual:    map[string]any{"type": "number"},
							OpEqualTo:        map[string]any{"type": "number"},
						},
						"minProperties":        1,
						"maxProperties":        2,
						"additionalProperties": false,
					},
				},
				"additionalProperties": false,
			},
			"limit": map[string]any{
				"type":    "integer",
				"minimum": MinLimit,
				"maximum": MaxLimit,
				"default": DefaultLimit,
			},
		},
		"required":             []string{"query"},
		"additionalProperties": false,
	}
}

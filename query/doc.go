// Package query defines the bounded filter grammar for the news-impact tool
// and its translation into a MongoDB query.
//
// The grammar is a closed whitelist: callers may filter on sentiment, symbol,
// companyNameMatch, and impactScoreRange, and nothing else. Validate checks an
// untrusted argument map against that whitelist and produces a FilterSpec plus
// a limit clamped into [MinLimit, MaxLimit]. Translate then maps the FilterSpec
// onto the store's field names with a fixed projection and a fixed
// newest-first sort.
//
// Validation is total and side-effect free: it performs no I/O and either
// returns a fully well-formed FilterSpec or a single *ValidationError naming
// the offending field.
package query

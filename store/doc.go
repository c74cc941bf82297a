// Package store executes translated queries against the backing MongoDB
// collection and decodes the resulting documents into Records.
//
// The Mongo adapter owns a pooled client with an explicit lifecycle: Open at
// startup, Execute per call, Close at shutdown. All execution failures surface
// as a single error wrapping ErrQueryFailed; callers never see driver-internal
// failure subtypes.
package store

package store

import (
	"context"
	"errors"

	"github.com/jonwraymond/newsimpact/query"
)

// ErrQueryFailed wraps every store execution failure: connectivity, timeout,
// or server-side query errors alike.
var ErrQueryFailed = errors.New("store query failed")

// Store executes a translated query and returns matching records in the
// store's sort order.
type Store interface {
	Execute(ctx context.Context, q query.StoreQuery) ([]Record, error)
}

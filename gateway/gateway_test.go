package gateway

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/newsimpact/query"
	"github.com/jonwraymond/newsimpact/store"
)

type fakeStore struct {
	records []store.Record
	err     error
	panics  bool
	queries []query.StoreQuery
}

func (f *fakeStore) Execute(ctx context.Context, q query.StoreQuery) ([]store.Record, error) {
	if f.panics {
		panic("boom")
	}
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestGateway(st store.Store) *Gateway {
	return New(st, Config{
		ServerInfo: ServerInfo{Name: "test", Version: "1.0.0"},
	})
}

func TestCall_MissingQueryNeverReachesStore(t *testing.T) {
	st := &fakeStore{}
	gw := newTestGateway(st)

	resp := gw.Call(context.Background(), map[string]any{})

	if resp.State != StateRejected {
		t.Fatalf("expected StateRejected, got %s", resp.State)
	}
	if len(st.queries) != 0 {
		t.Error("validation failure must never reach the store")
	}
}

func TestCall_UnknownKeyRejected(t *testing.T) {
	st := &fakeStore{}
	gw := newTestGateway(st)

	resp := gw.Call(context.Background(), map[string]any{
		"query": map[string]any{"unknownField": "x"},
	})

	if resp.State != StateRejected {
		t.Fatalf("expected StateRejected, got %s", resp.State)
	}
	if resp.Reason == "" {
		t.Error("expected a descriptive reason")
	}
	if len(st.queries) != 0 {
		t.Error("rejected call must never reach the store")
	}
}

func TestCall_EmptyResult(t *testing.T) {
	gw := newTestGateway(&fakeStore{})

	resp := gw.Call(context.Background(), map[string]any{
		"query": map[string]any{"sentiment": query.SentimentPositive},
	})

	if resp.State != StateEmpty {
		t.Fatalf("expected StateEmpty, got %s", resp.State)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected no items, got %d", len(resp.Items))
	}
}

func TestCall_ReadyPreservesStoreOrder(t *testing.T) {
	newest := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	st := &fakeStore{records: []store.Record{
		{Symbol: "RELIANCE", Sentiment: "Positive", Timestamp: newest},
		{Symbol: "TCS", Sentiment: "Positive", Timestamp: newest.Add(-24 * time.Hour)},
		{Symbol: "INFY", Sentiment: "Positive", Timestamp: newest.Add(-48 * time.Hour)},
	}}
	gw := newTestGateway(st)

	resp := gw.Call(context.Background(), map[string]any{
		"query": map[string]any{"sentiment": query.SentimentPositive},
		"limit": 5,
	})

	if resp.State != StateReady {
		t.Fatalf("expected StateReady, got %s", resp.State)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(resp.Items))
	}
	for i, want := range []string{"RELIANCE", "TCS", "INFY"} {
		if resp.Items[i].Symbol != want {
			t.Errorf("item %d: expected %q, got %q", i, want, resp.Items[i].Symbol)
		}
		if resp.Items[i].Sentiment != "Positive" {
			t.Errorf("item %d: expected Positive sentiment, got %q", i, resp.Items[i].Sentiment)
		}
	}
	if st.queries[0].Limit != 5 {
		t.Errorf("expected limit 5 in store query, got %d", st.queries[0].Limit)
	}
}

func TestCall_StoreFailure(t *testing.T) {
	st := &fakeStore{err: fmt.Errorf("%w: connection refused", store.ErrQueryFailed)}
	gw := newTestGateway(st)

	resp := gw.Call(context.Background(), map[string]any{
		"query": map[string]any{},
	})

	if resp.State != StateStoreFailure {
		t.Fatalf("expected StateStoreFailure, got %s", resp.State)
	}
	if !errors.Is(st.err, store.ErrQueryFailed) {
		t.Fatal("fixture error must wrap ErrQueryFailed")
	}
	if resp.Reason == "" {
		t.Error("expected a failure reason")
	}
}

func TestCall_LimitClampedBeforeStore(t *testing.T) {
	st := &fakeStore{}
	gw := newTestGateway(st)

	gw.Call(context.Background(), map[string]any{
		"query": map[string]any{"symbol": "RELIANCE"},
		"limit": 100,
	})

	if len(st.queries) != 1 {
		t.Fatalf("expected one store query, got %d", len(st.queries))
	}
	if st.queries[0].Limit != query.MaxLimit {
		t.Errorf("expected clamped limit %d, got %d", query.MaxLimit, st.queries[0].Limit)
	}
}

func TestCall_Idempotent(t *testing.T) {
	st := &fakeStore{records: []store.Record{
		{Symbol: "TCS", Sentiment: "Neutral"},
		{Symbol: "INFY", Sentiment: "Negative"},
	}}
	gw := newTestGateway(st)
	args := map[string]any{"query": map[string]any{}}

	first := gw.Call(context.Background(), args)
	second := gw.Call(context.Background(), args)

	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Error("identical calls against unchanged contents must yield identical items")
	}
}

func TestCall_ContradictoryBoundsYieldEmpty(t *testing.T) {
	st := &fakeStore{} // an impossible predicate matches nothing
	gw := newTestGateway(st)

	resp := gw.Call(context.Background(), map[string]any{
		"query": map[string]any{
			"impactScoreRange": map[string]any{
				query.OpGreaterThan: 5.0, query.OpLessThan: 3.0,
			},
		},
	})

	if resp.State != StateEmpty {
		t.Fatalf("expected StateEmpty, got %s", resp.State)
	}
	if len(st.queries) != 1 {
		t.Fatal("structurally valid bounds must reach the store")
	}
}

func TestResponse_Result_Empty(t *testing.T) {
	gw := newTestGateway(&fakeStore{})

	res := Empty().Result(gw.widget)

	if res.IsError {
		t.Error("empty result is not an error")
	}
	if len(res.Meta) != 0 {
		t.Errorf("empty result must not carry widget meta, got %v", res.Meta)
	}
	sc, ok := res.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("expected structured content map, got %T", res.StructuredContent)
	}
	items := reflect.ValueOf(sc["items"])
	if items.Kind() != reflect.Slice || items.Len() != 0 {
		t.Errorf("expected empty items collection, got %v", sc["items"])
	}
}

func TestResponse_Result_ReadyEnablesWidget(t *testing.T) {
	gw := newTestGateway(&fakeStore{records: []store.Record{{Symbol: "TCS"}}})

	resp := gw.Call(context.Background(), map[string]any{"query": map[string]any{}})
	res := resp.Result(gw.widget)

	if res.IsError {
		t.Error("ready result is not an error")
	}
	if res.Meta["openai/widgetAccessible"] != true {
		t.Error("ready result must enable the widget")
	}
	if res.Meta["openai/resultCanProduceWidget"] != true {
		t.Error("ready result must mark itself widget-producing")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok || text.Text == "" {
		t.Error("expected a human-readable count message")
	}
}

func TestResponse_Result_ErrorsCarryNoMeta(t *testing.T) {
	gw := newTestGateway(&fakeStore{})

	for _, resp := range []Response{Rejected("bad field"), StoreFailure("down")} {
		res := resp.Result(gw.widget)
		if !res.IsError {
			t.Errorf("%s must be an error result", resp.State)
		}
		if len(res.Meta) != 0 {
			t.Errorf("%s must not carry widget meta", resp.State)
		}
	}
}

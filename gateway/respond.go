package gateway

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/newsimpact/normalize"
	"github.com/jonwraymond/newsimpact/widget"
)

// State tags the terminal outcome of a gateway call.
type State string

const (
	// StateRejected means validation refused the input.
	StateRejected State = "rejected"
	// StateStoreFailure means the store round-trip failed.
	StateStoreFailure State = "store_failure"
	// StateEmpty means the query matched zero documents.
	StateEmpty State = "empty"
	// StateReady means the query matched and the widget may render.
	StateReady State = "ready"
)

// Response is the tagged result of one gateway call. Exactly one variant is
// produced per call, and each variant carries only the fields valid for it.
type Response struct {
	State  State
	Reason string           // StateRejected and StateStoreFailure only
	Items  []normalize.Item // StateReady only
}

// Rejected reports a validation failure with the offending field named.
func Rejected(reason string) Response {
	return Response{State: StateRejected, Reason: reason}
}

// StoreFailure reports a failed store round-trip.
func StoreFailure(reason string) Response {
	return Response{State: StateStoreFailure, Reason: reason}
}

// Empty reports a query that matched zero documents.
func Empty() Response {
	return Response{State: StateEmpty}
}

// Ready reports a query that matched, with items in store order.
func Ready(items []normalize.Item) Response {
	return Response{State: StateReady, Items: items}
}

// Result renders the response as an MCP tool result. The render-enable
// metadata is attached to the Ready state only, freshly computed per call;
// no partial or stale enablement can leak between calls.
func (r Response) Result(w widget.Descriptor) *mcp.CallToolResult {
	switch r.State {
	case StateRejected:
		return errorResult("validation error: " + r.Reason)
	case StateStoreFailure:
		return errorResult("query error: " + r.Reason)
	case StateEmpty:
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{
				Text: "No news matched your query. Widget not rendered.",
			}},
			StructuredContent: map[string]any{"items": []normalize.Item{}},
		}
	case StateReady:
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Fetched %d item(s) for News Impact.", len(r.Items)),
			}},
			StructuredContent: map[string]any{"items": r.Items},
			Meta:              w.ResultMeta(),
		}
	default:
		return errorResult("internal error")
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

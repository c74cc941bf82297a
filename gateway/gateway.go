package gateway

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/jonwraymond/newsimpact/normalize"
	"github.com/jonwraymond/newsimpact/query"
	"github.com/jonwraymond/newsimpact/store"
	"github.com/jonwraymond/newsimpact/widget"
)

// ProtocolVersion is the MCP protocol revision this gateway speaks.
const ProtocolVersion = "2025-06-18"

// ToolName is the single tool exposed by the gateway.
const ToolName = "news-impact"

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Config configures a Gateway.
type Config struct {
	ServerInfo ServerInfo
	// Widget overrides the default descriptor; the zero value selects
	// widget.Default("").
	Widget widget.Descriptor
	// Logger defaults to a disabled logger when left zero.
	Logger zerolog.Logger
}

// Gateway wires the validate→translate→execute→normalize pipeline behind the
// MCP protocol. Calls share no gateway-owned mutable state, so a Gateway is
// safe for concurrent use.
type Gateway struct {
	store  store.Store
	widget widget.Descriptor
	config Config
	log    zerolog.Logger
}

// New creates a Gateway backed by st.
func New(st store.Store, cfg Config) *Gateway {
	if cfg.Widget == (widget.Descriptor{}) {
		cfg.Widget = widget.Default("")
	}
	return &Gateway{
		store:  st,
		widget: cfg.Widget,
		config: cfg,
		log:    cfg.Logger,
	}
}

// Tool returns the static capability advertisement. The attached metadata
// always declares the widget inaccessible; rendering is only enabled on a
// Ready call result, so a caller cannot infer renderability without
// executing a query.
func (g *Gateway) Tool() mcp.Tool {
	return mcp.Tool{
		Name: ToolName,
		Description: "Query stored news impact data and (only if results are found) " +
			"render the News Impact carousel.",
		InputSchema: query.InputSchema(),
		Meta:        g.widget.ToolMeta(),
	}
}

// Call runs one gateway call end to end and returns its terminal response.
// Validation failures never reach the store.
func (g *Gateway) Call(ctx context.Context, args map[string]any) Response {
	spec, limit, err := query.Validate(args)
	if err != nil {
		return Rejected(err.Error())
	}

	records, err := g.store.Execute(ctx, query.Translate(spec, limit))
	if err != nil {
		g.log.Error().Err(err).Msg("store query failed")
		return StoreFailure(err.Error())
	}

	items := normalize.Normalize(records)
	g.log.Info().Int("count", len(items)).Msg("tool call completed")

	if len(items) == 0 {
		return Empty()
	}
	return Ready(items)
}

package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonwraymond/newsimpact/widget"
)

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HandleRequest processes an MCP request and returns a response.
func (g *Gateway) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	switch req.Method {
	case "initialize":
		return g.handleInitialize(req.ID)
	case "tools/list":
		return g.handleToolsList(req.ID)
	case "tools/call":
		return g.handleToolsCall(ctx, req.ID, req.Params)
	case "resources/read":
		return g.handleResourcesRead(req.ID, req.Params)
	default:
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    ErrCodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (g *Gateway) handleInitialize(id any) MCPResponse {
	result := map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    g.config.ServerInfo.Name,
			"version": g.config.ServerInfo.Version,
		},
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func (g *Gateway) handleToolsList(id any) MCPResponse {
	tool := g.Tool()
	descriptor := map[string]any{
		"name":        tool.Name,
		"title":       g.widget.Title,
		"description": tool.Description,
		"inputSchema": tool.InputSchema,
		"_meta":       tool.Meta,
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": []map[string]any{descriptor}},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (g *Gateway) handleToolsCall(ctx context.Context, id any, params json.RawMessage) (resp MCPResponse) {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeInvalidParams,
				Message: err.Error(),
			},
		}
	}

	if callParams.Name != ToolName {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeToolNotFound,
				Message: fmt.Sprintf("%s: %s", ErrToolNotFound, callParams.Name),
			},
		}
	}

	// A fault anywhere in the pipeline must not take the serving process
	// down or leak internal state; it degrades to a generic call-level error.
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Msg("tool call failed unexpectedly")
			resp = MCPResponse{
				JSONRPC: "2.0",
				ID:      id,
				Result:  errorResult("internal error"),
			}
		}
	}()

	response := g.Call(ctx, callParams.Arguments)

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  response.Result(g.widget),
	}
}

type resourcesReadParams struct {
	URI string `json:"uri"`
}

func (g *Gateway) handleResourcesRead(id any, params json.RawMessage) MCPResponse {
	var readParams resourcesReadParams
	if err := json.Unmarshal(params, &readParams); err != nil {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeInvalidParams,
				Message: err.Error(),
			},
		}
	}

	if readParams.URI != g.widget.TemplateURI {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeResourceNotFound,
				Message: fmt.Sprintf("%s: %s", ErrResourceNotFound, readParams.URI),
			},
		}
	}

	contents := map[string]any{
		"uri":      g.widget.TemplateURI,
		"mimeType": widget.MIMEType,
		"title":    g.widget.Title,
		"text":     g.widget.LoadHTML(),
		"_meta":    g.widget.ResourceMeta(),
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"contents": []map[string]any{contents}},
	}
}

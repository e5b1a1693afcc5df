// Package mcpserver exposes the tool catalog over the Model Context Protocol
// using the official Go SDK's streamable HTTP transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/affinity-mcp/pkg/tools"
)

// Server wraps an MCP server whose tool list mirrors the registry.
type Server struct {
	mcp *mcp.Server
	log zerolog.Logger
}

// New builds an MCP server from the executor's registry. Each registered tool
// is exposed with its name, description, schema, and annotations; calls are
// dispatched through the executor.
func New(name, version string, executor *tools.Executor, log zerolog.Logger) *Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)
	for _, tool := range executor.Registry().All() {
		srv.AddTool(&tool.Tool, toolHandler(executor, tool.Name))
	}
	return &Server{mcp: srv, log: log}
}

// Handler returns the streamable HTTP handler serving the MCP protocol.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

func toolHandler(executor *tools.Executor, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req)
		if err != nil {
			return faultResult(tools.InvalidArguments("%s", err.Error())), nil
		}
		result, err := executor.Execute(ctx, name, args)
		if err != nil {
			return faultResult(err), nil
		}
		return callToolResult(result), nil
	}
}

// decodeArguments normalizes the SDK's argument payload. On the server side
// the SDK hands over raw JSON.
func decodeArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	args := map[string]any{}
	raw := req.Params.Arguments
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	return args, nil
}

func callToolResult(result *tools.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, block := range result.Content {
		content = append(content, &mcp.TextContent{Text: block.Text})
	}
	return &mcp.CallToolResult{Content: content}
}

func faultResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

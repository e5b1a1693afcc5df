// Package tools implements the Affinity operation catalog: static tool
// descriptors with closed input schemas, a registry populated once at startup,
// and the dispatch adapter that validates arguments and invokes handlers.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool binds an MCP tool descriptor to its execution logic.
// Descriptors are immutable after registration.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema, Annotations
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result is the reply envelope produced by a handler: an ordered sequence of
// content blocks. Every current handler emits exactly one text block.
type Result struct {
	Content []ContentBlock `json:"content"`
}

// ContentBlock is a single piece of reply content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Text returns the first text block, or an empty string.
func (r *Result) Text() string {
	for _, block := range r.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

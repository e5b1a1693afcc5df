package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TextResult creates a result with a single text block.
func TextResult(text string) *Result {
	return &Result{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// TextResultf creates a text result with a formatted message.
func TextResultf(format string, args ...any) *Result {
	return TextResult(fmt.Sprintf(format, args...))
}

// RawResult pretty-prints a raw remote payload into a text block. The remote
// JSON is passed through opaquely, never parsed into typed structures.
func RawResult(raw json.RawMessage) *Result {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return TextResult(string(raw))
	}
	return TextResult(buf.String())
}

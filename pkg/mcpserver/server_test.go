package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/affinity-mcp/pkg/affinity"
	"github.com/beeper/affinity-mcp/pkg/tools"
)

func newTestServer(t *testing.T, remoteHandler http.HandlerFunc) *Server {
	t.Helper()
	remote := httptest.NewServer(remoteHandler)
	t.Cleanup(remote.Close)

	client := affinity.NewClient("test-key", affinity.WithBaseURL(remote.URL))
	registry, err := tools.BuildRegistry(client)
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	executor := tools.NewExecutor(registry, zerolog.Nop())
	return New("affinity-mcp-test", "0.0.1", executor, zerolog.Nop())
}

func connectTestSession(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.MCP().Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect failed: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServerListsCatalog(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	session := connectTestSession(t, server)

	listed, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(listed.Tools) != 20 {
		t.Fatalf("expected 20 tools, got %d", len(listed.Tools))
	}

	byName := make(map[string]*mcp.Tool, len(listed.Tools))
	for _, tool := range listed.Tools {
		byName[tool.Name] = tool
	}
	if _, ok := byName["affinity_create_person"]; !ok {
		t.Fatal("affinity_create_person missing from tool list")
	}
	search, ok := byName["affinity_search_persons"]
	if !ok {
		t.Fatal("affinity_search_persons missing from tool list")
	}
	if search.Annotations == nil || !search.Annotations.ReadOnlyHint {
		t.Fatal("search tool should advertise ReadOnlyHint")
	}
	remove, ok := byName["affinity_remove_from_list"]
	if !ok {
		t.Fatal("affinity_remove_from_list missing from tool list")
	}
	if remove.Annotations == nil || remove.Annotations.DestructiveHint == nil || !*remove.Annotations.DestructiveHint {
		t.Fatal("remove tool should advertise DestructiveHint")
	}
}

func TestServerCallToolEndToEnd(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"first_name":"Ada","last_name":"Lovelace"}`))
	})
	session := connectTestSession(t, server)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "affinity_create_person",
		Arguments: map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected exactly one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	if text.Text != "Person created: Ada Lovelace (ID: 42)" {
		t.Fatalf("unexpected reply text: %q", text.Text)
	}
}

func TestServerCallToolRemoteFailure(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusBadGateway)
	})
	session := connectTestSession(t, server)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "affinity_get_person",
		Arguments: map[string]any{"person_id": 1},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result for remote failure")
	}
}

func TestDecodeArguments(t *testing.T) {
	req := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{
		Arguments: json.RawMessage(`{"person_id":7}`),
	}}
	args, err := decodeArguments(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["person_id"] != float64(7) {
		t.Fatalf("unexpected args: %v", args)
	}

	req = &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{}}
	args, err = decodeArguments(req)
	if err != nil {
		t.Fatalf("unexpected error for nil arguments: %v", err)
	}
	if len(args) != 0 {
		t.Fatalf("expected empty args, got %v", args)
	}

	req = &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{
		Arguments: json.RawMessage(`[1,2,3]`),
	}}
	if _, err = decodeArguments(req); err == nil {
		t.Fatal("expected error for non-object arguments")
	}
}

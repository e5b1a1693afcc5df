package tools

import (
	"context"
	"net/http"
	"testing"
)

func TestCreateNoteParentMapping(t *testing.T) {
	cases := []struct {
		parentType string
		wantKey    string
	}{
		{"person", "person_ids"},
		{"organization", "organization_ids"},
		{"opportunity", "opportunity_ids"},
	}

	for _, tc := range cases {
		t.Run(tc.parentType, func(t *testing.T) {
			remote := newFakeRemote(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":99}`))
			})
			executor := newTestExecutor(t, remote)

			result, err := executor.Execute(context.Background(), "affinity_create_note", map[string]any{
				"parent_type": tc.parentType,
				"parent_id":   42,
				"content":     "Met at the conference.",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := result.Text(); got != "Note created (ID: 99)" {
				t.Fatalf("unexpected reply text: %q", got)
			}

			body := remote.Calls()[0].Body
			ids, ok := body[tc.wantKey].([]any)
			if !ok || len(ids) != 1 || ids[0] != float64(42) {
				t.Fatalf("expected %s=[42], got %v", tc.wantKey, body[tc.wantKey])
			}
			// Exactly one association array may be present.
			for _, key := range []string{"person_ids", "organization_ids", "opportunity_ids"} {
				if key == tc.wantKey {
					continue
				}
				if _, present := body[key]; present {
					t.Fatalf("unexpected %s in body: %v", key, body)
				}
			}
			if body["content"] != "Met at the conference." {
				t.Fatalf("unexpected content: %v", body["content"])
			}
		})
	}
}

func TestCreateNoteRejectsBadParentType(t *testing.T) {
	remote := newFakeRemote(t, nil)
	executor := newTestExecutor(t, remote)

	_, err := executor.Execute(context.Background(), "affinity_create_note", map[string]any{
		"parent_type": "spaceship",
		"parent_id":   42,
		"content":     "x",
	})
	if err == nil {
		t.Fatal("expected error for invalid parent_type")
	}
	if remote.CallCount() != 0 {
		t.Fatalf("expected no remote calls, got %d", remote.CallCount())
	}
}

func TestGetNote(t *testing.T) {
	remote := newFakeRemote(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":99,"content":"hello"}`))
	})
	executor := newTestExecutor(t, remote)

	if _, err := executor.Execute(context.Background(), "affinity_get_note", map[string]any{
		"note_id": 99,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := remote.Calls(); calls[0].Path != "/notes/99" {
		t.Fatalf("unexpected path: %s", calls[0].Path)
	}
}

package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beeper/affinity-mcp/pkg/affinity"
)

type remoteCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// fakeRemote is a mock Affinity API that records every request it receives.
type fakeRemote struct {
	mu      sync.Mutex
	calls   []remoteCall
	handler http.HandlerFunc
	srv     *httptest.Server
}

func newFakeRemote(t *testing.T, handler http.HandlerFunc) *fakeRemote {
	t.Helper()
	f := &fakeRemote{handler: handler}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			if len(data) > 0 {
				_ = json.Unmarshal(data, &body)
			}
		}
		f.mu.Lock()
		f.calls = append(f.calls, remoteCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		})
		f.mu.Unlock()

		if f.handler != nil {
			f.handler(w, r)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRemote) Calls() []remoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]remoteCall, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *fakeRemote) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestExecutor(t *testing.T, remote *fakeRemote) *Executor {
	t.Helper()
	client := affinity.NewClient("test-key", affinity.WithBaseURL(remote.srv.URL))
	registry, err := BuildRegistry(client)
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}
	return NewExecutor(registry, zerolog.Nop())
}

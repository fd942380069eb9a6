package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/session"
	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeServer routes by exact path, or by prefix for routes ending in "/".
type fakeServer struct {
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []*http.Request
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Clone(context.Background()))
	f.mu.Unlock()

	if h, ok := f.routes[r.URL.Path]; ok {
		h(w, r)
		return
	}
	for p, h := range f.routes {
		if strings.HasSuffix(p, "/") && strings.HasPrefix(r.URL.Path, p) {
			h(w, r)
			return
		}
	}
	http.NotFound(w, r)
}

func (f *fakeServer) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, r := range f.calls {
		out = append(out, r.URL.Path)
	}
	return out
}

func (f *fakeServer) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

type testEnv struct {
	srv    *fakeServer
	client *api.Client
	sess   *session.Store
}

func newEnv(t *testing.T, kv storage.Store, routes map[string]http.HandlerFunc) *testEnv {
	t.Helper()
	if kv == nil {
		kv = storage.NewMemoryStore()
	}
	fs := &fakeServer{routes: routes}
	srv := httptest.NewServer(fs)
	t.Cleanup(srv.Close)

	sess := session.New(kv, logging.Discard())
	reqHooks, respHooks := api.SessionHooks(sess, logging.Discard())
	client := api.New(api.Options{BaseURL: srv.URL, RequestHooks: reqHooks, ResponseHooks: respHooks})

	return &testEnv{srv: fs, client: client, sess: sess}
}

func (e *testEnv) login(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, e.sess.SetToken(context.Background(), token))
}

func envelope(data any, extra map[string]any) map[string]any {
	resp := map[string]any{"data": data, "kiboType": "success"}
	for k, v := range extra {
		resp[k] = v
	}
	return map[string]any{"KiboApp": map[string]any{"Response": resp}}
}

func reply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// failingKV rejects every write.
type failingKV struct {
	*storage.MemoryStore
}

func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

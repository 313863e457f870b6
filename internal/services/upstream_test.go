package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"fintech-dashboard/internal/api"
	"fintech-dashboard/internal/config"
)

// fakeUpstream is a scriptable stand-in for the banking REST API. Responses
// are keyed by "METHOD /path"; each route counts its hits and may be delayed
// to script interleavings.
type fakeUpstream struct {
	server *httptest.Server

	mu             sync.Mutex
	counts         map[string]int
	queries        map[string]string
	responses      map[string]upstreamResponse
	lastCreateBody []byte
}

type upstreamResponse struct {
	status int
	body   string
	delay  time.Duration
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{
		counts:  make(map[string]int),
		queries: make(map[string]string),
		responses: map[string]upstreamResponse{
			"GET /users":        {status: http.StatusOK, body: `[]`},
			"POST /users":       {status: http.StatusOK, body: `{"_id": "u1", "name": "Demo User", "email": "demo123@bank.dev"}`},
			"GET /accounts":     {status: http.StatusOK, body: `[]`},
			"GET /cards":        {status: http.StatusOK, body: `[]`},
			"GET /transactions": {status: http.StatusOK, body: `[]`},
		},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeUpstream) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.counts[key]++
	f.queries[key] = r.URL.RawQuery
	resp, ok := f.responses[key]
	if r.Method == http.MethodPost {
		f.lastCreateBody, _ = io.ReadAll(r.Body)
	}
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	if resp.status >= http.StatusBadRequest {
		http.Error(w, "upstream failure", resp.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeUpstream) respond(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resp := f.responses[key]
	resp.status = status
	resp.body = body
	f.responses[key] = resp
}

func (f *fakeUpstream) delay(key string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resp := f.responses[key]
	resp.delay = d
	f.responses[key] = resp
}

func (f *fakeUpstream) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key]
}

func (f *fakeUpstream) query(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[key]
}

func (f *fakeUpstream) createBody() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCreateBody
}

func (f *fakeUpstream) client() *api.Client {
	return api.NewClient(f.server.URL, 5*time.Second)
}

func (f *fakeUpstream) close() {
	f.server.Close()
}

func testUpstreamConfig() config.UpstreamConfig {
	return config.UpstreamConfig{
		BaseURL:           "unused",
		RequestTimeout:    5 * time.Second,
		TransactionsLimit: 5,
		DefaultUserName:   "Demo User",
		UserEmailDomain:   "bank.dev",
	}
}

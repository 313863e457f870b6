package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second), server
}

func TestClient_Get_Success(t *testing.T) {
	var gotPath, gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id": "c1"}, {"_id": "c2"}]`))
	})
	defer server.Close()

	var items []map[string]string
	err := client.Get(context.Background(), "/cards", url.Values{"user_id": {"u1"}}, &items)

	require.NoError(t, err)
	assert.Equal(t, "/cards", gotPath)
	assert.Equal(t, "user_id=u1", gotQuery)
	assert.Len(t, items, 2)
}

func TestClient_Post_Success(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = w.Write([]byte(`{"_id": "u1", "name": "Demo User"}`))
	})
	defer server.Close()

	var created map[string]string
	err := client.Post(context.Background(), "/users", map[string]string{"name": "Demo User"}, &created)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Demo User", gotBody["name"])
	assert.Equal(t, "u1", created["_id"])
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	var out json.RawMessage
	err := client.Get(context.Background(), "/accounts", nil, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.Status)
	assert.Equal(t, "/accounts", transportErr.Path)
}

func TestClient_Get_MalformedJSON(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unterminated`))
	})
	defer server.Close()

	var out map[string]any
	err := client.Get(context.Background(), "/users", nil, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Get_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(server.URL, time.Second)

	var out json.RawMessage
	err := client.Get(context.Background(), "/users", nil, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Get_ContextCancelled(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		var out json.RawMessage
		errCh <- client.Get(ctx, "/users", nil, &out)
	}()

	cancel()
	err := <-errCh

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Method: http.MethodGet, Path: "/users", Err: cause}

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/users")
}

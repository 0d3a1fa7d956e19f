package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresAbsoluteURL(t *testing.T) {
	_, err := New("localhost:8899/rpc")
	assert.Error(t, err)

	c, err := New("http://localhost:8899")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout)
}

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key", r.Header.Get("X-Writer-Key"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c, err := New(srv.URL, Config{Headers: map[string]string{"X-Writer-Key": "key"}})
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), "/v1/echo", RequestOptions{Body: []byte(`{"hello":"world"}`)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var out map[string]string
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, "world", out["hello"])
}

func TestUnmarshalPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	resp, err := c.Get(context.Background(), "", RequestOptions{})
	require.NoError(t, err)

	var out map[string]any
	assert.Error(t, resp.UnmarshalBody(&out))
}

func TestCanceledContext(t *testing.T) {
	c, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Get(ctx, "", RequestOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

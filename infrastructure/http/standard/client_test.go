package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardHTTPClient(t *testing.T) {
	client := NewStandardHTTPClient(10 * time.Second)

	require.NotNil(t, client)
	assert.Equal(t, 10*time.Second, client.client.Timeout)
	assert.Equal(t, userAgent, client.headers.Get("User-Agent"))
}

func TestStandardHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	defer resp.Body().Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "text/plain", resp.Header("content-type"))

	body, err := io.ReadAll(resp.Body())
	require.NoError(t, err)
	assert.Equal(t, "test response", string(body))
}

func TestStandardHTTPClient_Get_SendsClientHeaders(t *testing.T) {
	var authorization, agent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		agent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10*time.Second, WithHeader("Authorization", "raw-key"))

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, "raw-key", authorization)
	assert.Equal(t, userAgent, agent)
}

func TestStandardHTTPClient_Get_EmptyHeaderValueIsSkipped(t *testing.T) {
	client := NewStandardHTTPClient(10*time.Second, WithHeader("Authorization", ""))

	_, ok := client.headers["Authorization"]
	assert.False(t, ok)
}

func TestStandardHTTPClient_Get_DoesNotRetryServerErrors(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestStandardHTTPClient_Get_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, server.URL)
	if err == nil {
		resp.Body().Close()
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStandardHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), "://missing-scheme")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

type recordingTransport struct {
	hosts []string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.hosts = append(rt.hosts, req.URL.Host)
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       http.NoBody,
		Header:     http.Header{},
		Request:    req,
	}, nil
}

func TestStandardHTTPClient_WithTransport(t *testing.T) {
	rt := &recordingTransport{}
	client := NewStandardHTTPClient(time.Second, WithTransport(rt))

	resp, err := client.Get(context.Background(), "https://newsapi.org/v2/top-headlines")
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, []string{"newsapi.org"}, rt.hosts)
}

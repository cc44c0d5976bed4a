package modeladapter_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/chatbridge/pkg/modeladapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, handler http.HandlerFunc) (*modeladapter.ModelAdapter, modeladapter.Target) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := modeladapter.New(srv.URL, modeladapter.Auth{Key: "sk-test"}, srv.Client())

	return &a, modeladapter.Target{URL: srv.URL + "/v1/chat/completions", Header: a.Header()}
}

func TestRemoteAPIError_MessageIsBody(t *testing.T) {
	err := &modeladapter.RemoteAPIError{StatusCode: 400, Body: "model not found"}
	assert.EqualError(t, err, "model not found")
}

func TestNew_DefaultClient(t *testing.T) {
	a := modeladapter.New("https://api.example.com", modeladapter.Auth{}, nil)
	assert.Nil(t, a.Client)
	assert.Equal(t, "https://api.example.com", a.Endpoint)
}

func TestHeader_NoCredential(t *testing.T) {
	h := modeladapter.Header(modeladapter.Auth{}, nil)

	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Empty(t, h.Get("Authorization"))
}

func TestHeader_Bearer(t *testing.T) {
	h := modeladapter.Header(modeladapter.Auth{Key: "sk-test"}, nil)
	assert.Equal(t, "Bearer sk-test", h.Get("Authorization"))
}

func TestHeader_ExtraHeaders(t *testing.T) {
	h := modeladapter.Header(modeladapter.Auth{}, map[string]string{
		"X-Org":        "acme",
		"Content-Type": "application/vnd.custom+json",
	})

	assert.Equal(t, "acme", h.Get("X-Org"))
	assert.Equal(t, "application/vnd.custom+json", h.Get("Content-Type"))
}

func TestHeader_CredentialWinsOverCallerAuthorization(t *testing.T) {
	h := modeladapter.Header(modeladapter.Auth{Key: "sk-real"}, map[string]string{
		"Authorization": "Bearer spoofed",
	})

	assert.Equal(t, "Bearer sk-real", h.Get("Authorization"))
}

func TestHeader_CallerAuthorizationKeptWithoutCredential(t *testing.T) {
	h := modeladapter.Header(modeladapter.Auth{}, map[string]string{
		"Authorization": "Basic abc",
	})

	assert.Equal(t, "Basic abc", h.Get("Authorization"))
}

func TestNewRequest_ClonesHeader(t *testing.T) {
	a := modeladapter.New("https://api.example.com", modeladapter.Auth{Key: "k"}, nil)
	target := modeladapter.Target{URL: "https://api.example.com/x", Header: a.Header()}

	req, err := a.NewRequest(context.Background(), http.MethodPost, target, nil)
	require.NoError(t, err)

	req.Header.Set("X-Mutated", "1")
	assert.Empty(t, target.Header.Get("X-Mutated"))
	assert.Equal(t, "https://api.example.com/x", req.URL.String())
}

func TestPostJSON_Success(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"hello":"world"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	var dest map[string]any
	err := a.PostJSON(context.Background(), target, map[string]string{"hello": "world"}, &dest)
	require.NoError(t, err)
	assert.Equal(t, true, dest["ok"])
}

func TestPostJSON_NilDest(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	assert.NoError(t, a.PostJSON(context.Background(), target, struct{}{}, nil))
}

func TestPostJSON_RemoteError(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	err := a.PostJSON(context.Background(), target, struct{}{}, nil)
	require.Error(t, err)

	var apiErr *modeladapter.RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, `{"error":{"message":"Incorrect API key provided"}}`, err.Error())
}

func TestPostJSON_DecodeError(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	})

	var dest any
	err := a.PostJSON(context.Background(), target, struct{}{}, &dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestPostJSON_SingleAttempt(t *testing.T) {
	calls := 0
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := a.PostJSON(context.Background(), target, struct{}{}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPostJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := modeladapter.New(url, modeladapter.Auth{}, nil)
	err := a.PostJSON(context.Background(), modeladapter.Target{URL: url}, struct{}{}, nil)
	require.Error(t, err)

	var apiErr *modeladapter.RemoteAPIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "do request")
}

func TestPostStream_ReturnsLiveBody(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: one\n\ndata: [DONE]\n\n"))
	})

	rc, err := a.PostStream(context.Background(), target, struct{}{})
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data: one\n\ndata: [DONE]\n\n", string(data))
}

func TestPostStream_RemoteError(t *testing.T) {
	a, target := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	})

	rc, err := a.PostStream(context.Background(), target, struct{}{})
	assert.Nil(t, rc)
	assert.EqualError(t, err, "slow down")
}

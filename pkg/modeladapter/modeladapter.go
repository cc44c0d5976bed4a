package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// RemoteAPIError is returned when the endpoint responds with a non-2xx
// status. Its message is the raw response body.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return e.Body
}

// Auth holds the credential for an endpoint.
type Auth struct {
	Key string // Bearer secret; empty means unauthenticated.
}

// Present reports whether a credential is configured.
func (a Auth) Present() bool { return a.Key != "" }

// Target is a fully resolved request destination.
type Target struct {
	URL    string
	Header http.Header
}

// Header builds the base headers for a JSON request: Content-Type first,
// then the caller's extra headers, then the bearer credential. A caller
// header named Authorization is therefore replaced when a credential is set.
func Header(auth Auth, extra map[string]string) http.Header {
	h := make(http.Header, len(extra)+2)
	h.Set("Content-Type", "application/json")

	for k, v := range extra {
		h.Set(k, v)
	}

	if auth.Present() {
		h.Set("Authorization", "Bearer "+auth.Key)
	}

	return h
}

// ModelAdapter holds shared state for endpoint clients. Embed it in concrete
// provider structs to get request building, dispatch, and error mapping.
type ModelAdapter struct {
	Endpoint string            // Base endpoint URL as supplied by the caller.
	Auth     Auth              // Authentication settings.
	Headers  map[string]string // Extra headers applied to every request.
	Client   *http.Client      // HTTP client; falls back to http.DefaultClient.
	Logger   *slog.Logger      // Optional; nil discards.
}

// New creates a ModelAdapter with the given settings.
// A nil client falls back to http.DefaultClient at call time.
func New(endpoint string, auth Auth, client *http.Client) ModelAdapter {
	return ModelAdapter{
		Endpoint: endpoint,
		Auth:     auth,
		Client:   client,
	}
}

var discard = slog.New(slog.DiscardHandler)

func (a *ModelAdapter) log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return discard
}

func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	return http.DefaultClient
}

// Header returns the base headers for this adapter's credential and extra
// headers.
func (a *ModelAdapter) Header() http.Header {
	return Header(a.Auth, a.Headers)
}

// NewRequest builds an *http.Request for target with a copy of its headers.
func (a *ModelAdapter) NewRequest(ctx context.Context, method string, target Target, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target.URL, body)
	if err != nil {
		return nil, err
	}

	if target.Header != nil {
		req.Header = target.Header.Clone()
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from caller-supplied endpoint config.
}

// PostJSON marshals payload as JSON, sends a single POST to target, and
// decodes the 2xx response body into dest. A nil dest discards the body.
func (a *ModelAdapter) PostJSON(ctx context.Context, target Target, payload any, dest any) error {
	resp, err := a.post(ctx, target, payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// PostStream marshals payload as JSON, sends a single POST to target, and
// returns the live response body. The caller owns the returned reader and
// must close it.
func (a *ModelAdapter) PostStream(ctx context.Context, target Target, payload any) (io.ReadCloser, error) {
	resp, err := a.post(ctx, target, payload)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// post performs the request and maps non-2xx statuses to RemoteAPIError.
// On success the caller must close the response body.
func (a *ModelAdapter) post(ctx context.Context, target Target, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	a.log().DebugContext(ctx, "sending request", "method", req.Method, "url", target.URL, "bytes", len(body))

	resp, err := a.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read error body: %w", err)
		}

		a.log().DebugContext(ctx, "request failed", "url", target.URL, "status", resp.StatusCode)

		return nil, &RemoteAPIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	a.log().DebugContext(ctx, "request succeeded", "url", target.URL, "status", resp.StatusCode)

	return resp, nil
}

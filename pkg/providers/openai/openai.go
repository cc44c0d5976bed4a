// Package openai provides blocking and streaming chat completion calls
// against OpenAI-compatible endpoints, including Azure-hosted deployments.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/germanamz/chatbridge/pkg/chats/message"
	"github.com/germanamz/chatbridge/pkg/modeladapter"
	"github.com/germanamz/chatbridge/pkg/modeladapter/azure"
	"github.com/germanamz/chatbridge/pkg/providers/model"
)

// Adapter sends chat completion requests to a single endpoint.
// It holds no per-call state and is safe for concurrent use as long as its
// fields are not modified.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter for endpoint. The endpoint is used as given for
// OpenAI-compatible servers (e.g. "https://api.openai.com/v1/chat/completions")
// and as the resource base for Azure endpoints. An empty apiKey sends no
// credential headers.
func New(endpoint, apiKey string) *Adapter {
	a := &Adapter{}
	a.Endpoint = endpoint
	a.Auth = modeladapter.Auth{Key: apiKey}

	return a
}

// ResolveTarget computes the request URL and headers for a call.
//
// Content-Type and the extra headers are applied first, then the bearer
// credential. For Azure endpoints with a credential the same secret is also
// sent as api-key, the model is translated through table, and the deployment
// path is appended to the endpoint unless already present.
func ResolveTarget(endpoint string, id model.ID, auth modeladapter.Auth, headers map[string]string, table azure.DeploymentTable) modeladapter.Target {
	target := modeladapter.Target{
		URL:    endpoint,
		Header: modeladapter.Header(auth, headers),
	}

	if azure.IsEndpoint(endpoint) && auth.Present() {
		target.Header.Set("api-key", auth.Key)
		target.URL = azure.ResolveURL(endpoint, table.Lookup(id))
	}

	return target
}

// Target resolves the request target for this adapter's endpoint.
func (a *Adapter) Target(id model.ID, table azure.DeploymentTable) modeladapter.Target {
	return ResolveTarget(a.Endpoint, id, a.Auth, a.Headers, table)
}

// FetchCompletion sends messages with cfg and returns the decoded JSON
// response without validating its shape.
func (a *Adapter) FetchCompletion(ctx context.Context, msgs []message.Message, cfg model.Config) (any, error) {
	target := a.Target(cfg.Model, azure.CompletionDeployments)

	var out any
	if err := a.PostJSON(ctx, target, requestBody(msgs, cfg, false), &out); err != nil {
		return nil, wrapErr(err)
	}

	return out, nil
}

// FetchCompletionStream sends messages with cfg and "stream": true, and
// returns the undecoded response stream. The caller must close it.
func (a *Adapter) FetchCompletionStream(ctx context.Context, msgs []message.Message, cfg model.Config) (io.ReadCloser, error) {
	target := a.Target(cfg.Model, azure.StreamDeployments)

	rc, err := a.PostStream(ctx, target, requestBody(msgs, cfg, true))
	if err != nil {
		return nil, wrapErr(err)
	}

	return rc, nil
}

// requestBody merges the config fields with the message list. The messages
// key always carries msgs.
func requestBody(msgs []message.Message, cfg model.Config, stream bool) map[string]any {
	body := cfg.Fields()

	if msgs == nil {
		msgs = []message.Message{}
	}
	body["messages"] = msgs

	if stream {
		body["stream"] = true
	}

	return body
}

// wrapErr prefixes local failures. Remote errors are returned untouched so
// their message stays the server's response body.
func wrapErr(err error) error {
	var apiErr *modeladapter.RemoteAPIError
	if errors.As(err, &apiErr) {
		return err
	}

	return fmt.Errorf("openai: %w", err)
}

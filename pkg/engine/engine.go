package engine

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/germanamz/chatbridge/pkg/chats/chat"
	"github.com/germanamz/chatbridge/pkg/providers/model"
	"github.com/germanamz/chatbridge/pkg/providers/openai"
	"github.com/germanamz/chatbridge/pkg/sharegpt"
)

// Options holds optional collaborators for New. Zero fields use defaults.
type Options struct {
	Client *http.Client    // Shared by completion and share requests.
	Logger *slog.Logger    // Request-level debug logging.
	Opener sharegpt.Opener // Browser launcher for shared links.
}

// Engine is the composition root that assembles the completion adapter and
// transcript sharer from configuration. It keeps no per-call state; every
// call builds its own request.
type Engine struct {
	cfg     Config
	adapter *openai.Adapter
	sharer  *sharegpt.Sharer
	log     *slog.Logger
}

// New creates an Engine from the given configuration.
func New(cfg Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	adapter := openai.New(cfg.Endpoint, cfg.APIKey)
	adapter.Headers = cfg.Headers
	adapter.Client = opts.Client
	adapter.Logger = log.With("component", "openai")

	sharer := &sharegpt.Sharer{
		URL:      cfg.Share.URL,
		LinkBase: cfg.Share.LinkBase,
		Client:   opts.Client,
		Opener:   opts.Opener,
		Logger:   log.With("component", "sharegpt"),
	}

	return &Engine{
		cfg:     cfg,
		adapter: adapter,
		sharer:  sharer,
		log:     log,
	}, nil
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config { return e.cfg }

// Model returns the generation parameters sent with every request.
func (e *Engine) Model() model.Config { return e.cfg.Model }

// Complete sends the conversation and returns the decoded JSON response.
func (e *Engine) Complete(ctx context.Context, c *chat.Chat) (any, error) {
	e.log.InfoContext(ctx, "completion requested", "model", e.cfg.Model.Model, "messages", c.Len())

	return e.adapter.FetchCompletion(ctx, c.Messages(), e.cfg.Model)
}

// Stream sends the conversation in streaming mode and returns the raw
// response stream. The caller must close it.
func (e *Engine) Stream(ctx context.Context, c *chat.Chat) (io.ReadCloser, error) {
	e.log.InfoContext(ctx, "stream requested", "model", e.cfg.Model.Model, "messages", c.Len())

	return e.adapter.FetchCompletionStream(ctx, c.Messages(), e.cfg.Model)
}

// Share publishes the conversation as a ShareGPT transcript, opens the link,
// and returns it.
func (e *Engine) Share(ctx context.Context, c *chat.Chat) (string, error) {
	link, err := e.sharer.Share(ctx, sharegpt.FromChat(c, e.cfg.Share.AvatarURL))
	if err != nil {
		return link, err
	}

	e.log.InfoContext(ctx, "transcript shared", "url", link)

	return link, nil
}

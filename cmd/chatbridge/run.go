package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/germanamz/chatbridge/pkg/chats/chat"
	"github.com/germanamz/chatbridge/pkg/engine"
	"github.com/germanamz/chatbridge/pkg/sharegpt"
)

const defaultConfigFile = "chatbridge.yaml"

// run builds the engine from flags and executes cmd, writing results to w.
func run(ctx context.Context, cmd string, f *cliFlags, w io.Writer) error {
	cfg, err := resolveConfig(f.config)
	if err != nil {
		return err
	}

	c, err := buildChat(f)
	if err != nil {
		return err
	}

	log := newLogger(f.verbose)
	logConversation(ctx, log, c)

	opts := engine.Options{Logger: log}
	if f.noOpen {
		opts.Opener = sharegpt.OpenerFunc(func(string) error { return nil })
	}

	eng, err := engine.New(cfg, opts)
	if err != nil {
		return err
	}

	switch cmd {
	case "complete":
		return runComplete(ctx, eng, c, f.raw, w)
	case "stream":
		return runStream(ctx, eng, c, f.raw, w)
	case "share":
		return runShare(ctx, eng, c, w)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// resolveConfig loads path, or chatbridge.yaml when present, or falls back
// to defaults with the key taken from OPENAI_API_KEY.
func resolveConfig(path string) (engine.Config, error) {
	if path != "" {
		return engine.LoadConfig(path)
	}

	if _, err := os.Stat(defaultConfigFile); err == nil {
		return engine.LoadConfig(defaultConfigFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return engine.Config{}, err
	}

	cfg := engine.DefaultConfig()
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")

	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runComplete(ctx context.Context, eng *engine.Engine, c *chat.Chat, raw bool, w io.Writer) error {
	out, err := eng.Complete(ctx, c)
	if err != nil {
		return err
	}

	if raw {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	text, ok := replyText(out)
	if !ok {
		return errors.New("response has no assistant message (use -raw to inspect it)")
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", answerPrefixStyle.Render("assistant"), answerBlockStyle.Render(renderMarkdown(text)))
	return err
}

func runStream(ctx context.Context, eng *engine.Engine, c *chat.Chat, raw bool, w io.Writer) error {
	rc, err := eng.Stream(ctx, c)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	if raw {
		_, err := io.Copy(w, rc)
		return err
	}

	if _, err := fmt.Fprintln(w, answerPrefixStyle.Render("assistant")); err != nil {
		return err
	}

	var writeErr error
	err = decodeStream(rc, func(delta string) {
		if writeErr == nil {
			_, writeErr = io.WriteString(w, delta)
		}
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	_, err = fmt.Fprintln(w)
	return err
}

func runShare(ctx context.Context, eng *engine.Engine, c *chat.Chat, w io.Writer) error {
	link, err := eng.Share(ctx, c)
	if link != "" {
		_, _ = fmt.Fprintln(w, linkStyle.Render(link))
	}

	return err
}

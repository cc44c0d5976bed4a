package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/chatbridge/pkg/chats/chat"
	"github.com/germanamz/chatbridge/pkg/chats/message"
)

// previewWidth bounds message previews in verbose logs.
const previewWidth = 60

// loadConversation reads a YAML list of messages.
func loadConversation(path string) ([]message.Message, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	var msgs []message.Message
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse conversation: %w", err)
	}

	for i, m := range msgs {
		if !m.Role.Valid() {
			return nil, fmt.Errorf("parse conversation: message %d: unknown role %q", i, m.Role)
		}
	}

	return msgs, nil
}

// buildChat assembles the conversation: the -system prompt, then the
// -conversation file, then each -m message in flag order.
func buildChat(f *cliFlags) (*chat.Chat, error) {
	c := chat.New()

	if f.system != "" {
		c.Append(message.System(f.system))
	}

	if f.conversation != "" {
		msgs, err := loadConversation(f.conversation)
		if err != nil {
			return nil, err
		}
		c.Append(msgs...)
	}

	for _, m := range f.messages {
		c.Append(message.User(m))
	}

	if c.Len() == 0 {
		return nil, fmt.Errorf("empty conversation: pass -conversation or -m")
	}

	return c, nil
}

func logConversation(ctx context.Context, log *slog.Logger, c *chat.Chat) {
	c.Each(func(i int, m message.Message) bool {
		log.DebugContext(ctx, "message", "index", i, "role", m.Role, "content", truncate(m.Content, previewWidth))
		return true
	})
}

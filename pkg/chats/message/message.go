// Package message provides the Message type exchanged with chat completion
// endpoints.
package message

import (
	"github.com/germanamz/chatbridge/pkg/chats/role"
)

// Message is a single conversation turn. It serializes to the
// {"role": ..., "content": ...} shape expected by chat completion APIs and
// is passed through to the wire verbatim.
type Message struct {
	Role    role.Role `json:"role" yaml:"role"`
	Content string    `json:"content" yaml:"content"`
}

// New creates a Message with the given role and text content.
func New(r role.Role, text string) Message {
	return Message{Role: r, Content: text}
}

// System creates a system message.
func System(text string) Message { return New(role.System, text) }

// User creates a user message.
func User(text string) Message { return New(role.User, text) }

// Assistant creates an assistant message.
func Assistant(text string) Message { return New(role.Assistant, text) }

// IsEmpty reports whether the message carries no text.
func (m Message) IsEmpty() bool {
	return m.Content == ""
}

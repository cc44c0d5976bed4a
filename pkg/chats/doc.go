// Package chats provides a provider-agnostic data model for chat completion
// requests.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/chatbridge/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/germanamz/chatbridge/pkg/chats/message] — role plus text content, serialized verbatim
//   - [github.com/germanamz/chatbridge/pkg/chats/chat] — ordered conversation container
//
// No provider or API code is included — chats is a foundation layer
// that adapters can build on.
package chats

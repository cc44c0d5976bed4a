// Package providers groups the chat completion provider code.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/chatbridge/pkg/providers/model] — supported model identifiers and request generation parameters
//   - [github.com/germanamz/chatbridge/pkg/providers/openai] — blocking and streaming calls to OpenAI-compatible and Azure endpoints
package providers

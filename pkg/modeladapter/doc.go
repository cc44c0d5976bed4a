// Package modeladapter provides the embeddable HTTP base shared by chat
// completion clients.
//
// It contains:
//   - [ModelAdapter] base struct with request building, single-attempt dispatch, and status mapping
//   - [RemoteAPIError] — returned for non-2xx responses, carrying the raw body as its message
//   - [github.com/germanamz/chatbridge/pkg/modeladapter/azure] — URL and deployment rules for Azure-hosted endpoints
//
// Requests are never retried. Transport errors are wrapped and returned as-is;
// deadlines come from the caller's context or *http.Client.
package modeladapter

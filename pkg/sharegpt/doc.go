// Package sharegpt publishes conversation transcripts to the ShareGPT paste
// service and opens the resulting short link.
//
// [Sharer.Share] accepts any JSON-encodable payload and passes it through
// untouched; [FromChat] builds the submit body ShareGPT expects from a
// [github.com/germanamz/chatbridge/pkg/chats/chat.Chat].
package sharegpt

package sharegpt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/germanamz/chatbridge/pkg/chats/chat"
	"github.com/germanamz/chatbridge/pkg/chats/message"
	"github.com/germanamz/chatbridge/pkg/chats/role"
	"github.com/germanamz/chatbridge/pkg/modeladapter"
)

// Default service locations.
const (
	DefaultSubmitURL = "https://sharegpt.com/api/conversations"
	DefaultLinkBase  = "https://shareg.pt/"
)

// ErrMissingID is returned when the service response carries no id.
var ErrMissingID = errors.New("sharegpt: response has no id")

// Speaker values used in transcript items.
const (
	FromHuman = "human"
	FromGPT   = "gpt"
)

// Item is one turn in a transcript.
type Item struct {
	From  string `json:"from"`
	Value string `json:"value"`
}

// Transcript is the ShareGPT submit body.
type Transcript struct {
	AvatarURL string `json:"avatarUrl"`
	Items     []Item `json:"items"`
}

// FromChat converts a conversation into a Transcript. System messages are
// not part of the ShareGPT format and are skipped.
func FromChat(c *chat.Chat, avatarURL string) Transcript {
	t := Transcript{AvatarURL: avatarURL, Items: []Item{}}

	c.Each(func(_ int, m message.Message) bool {
		switch m.Role {
		case role.User:
			t.Items = append(t.Items, Item{From: FromHuman, Value: m.Content})
		case role.Assistant:
			t.Items = append(t.Items, Item{From: FromGPT, Value: m.Content})
		}
		return true
	})

	return t
}

// Opener navigates to a URL, typically by launching a browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls the underlying function.
func (f OpenerFunc) Open(url string) error { return f(url) }

// Sharer submits transcripts. The zero value posts to the public ShareGPT
// service and opens links in the system browser.
type Sharer struct {
	URL      string       // Submit endpoint; defaults to DefaultSubmitURL.
	LinkBase string       // Prefix for the returned id; defaults to DefaultLinkBase.
	Client   *http.Client // HTTP client; falls back to http.DefaultClient.
	Opener   Opener       // Defaults to BrowserOpener.
	Logger   *slog.Logger // Optional; nil discards.
}

type submitResponse struct {
	ID string `json:"id"`
}

// Share posts payload as JSON, builds the short link from the returned id,
// opens it, and returns it. Nothing is opened when any step fails.
func (s *Sharer) Share(ctx context.Context, payload any) (string, error) {
	base := modeladapter.New(s.submitURL(), modeladapter.Auth{}, s.Client)
	base.Logger = s.Logger

	target := modeladapter.Target{URL: base.Endpoint, Header: base.Header()}

	var resp submitResponse
	if err := base.PostJSON(ctx, target, payload, &resp); err != nil {
		return "", fmt.Errorf("sharegpt: submit: %w", err)
	}

	if resp.ID == "" {
		return "", ErrMissingID
	}

	link := s.linkBase() + resp.ID

	if err := s.opener().Open(link); err != nil {
		return link, fmt.Errorf("sharegpt: open %s: %w", link, err)
	}

	return link, nil
}

func (s *Sharer) submitURL() string {
	if s.URL != "" {
		return s.URL
	}
	return DefaultSubmitURL
}

func (s *Sharer) linkBase() string {
	if s.LinkBase != "" {
		return s.LinkBase
	}
	return DefaultLinkBase
}

func (s *Sharer) opener() Opener {
	if s.Opener != nil {
		return s.Opener
	}
	return BrowserOpener{}
}

package model

// ID names a chat model. Unknown identifiers are valid and are passed through
// to the endpoint unchanged.
type ID string

// Supported model identifiers.
const (
	GPT4Turbo         ID = "gpt-4-turbo"
	GPT35Turbo16K     ID = "gpt-3.5-turbo-16k"
	GPT35Turbo1106    ID = "gpt-3.5-turbo-1106"
	GPT4o             ID = "gpt-4o"
	GPT4oMini         ID = "gpt-4o-mini"
	GPT4              ID = "gpt-4"
	O1Mini            ID = "o1-mini"
	O1Preview         ID = "o1-preview"
	Claude35Sonnet    ID = "claude-3-5-sonnet-20241022"
	Claude3Haiku      ID = "claude-3-haiku-20240307"
	Gemini15ProLatest ID = "gemini-1.5-pro-latest"
	Llama31_70B       ID = "llama-3.1-70b"
)

var known = []ID{
	GPT4Turbo,
	GPT35Turbo16K,
	GPT35Turbo1106,
	GPT4o,
	GPT4oMini,
	GPT4,
	O1Mini,
	O1Preview,
	Claude35Sonnet,
	Claude3Haiku,
	Gemini15ProLatest,
	Llama31_70B,
}

// Known returns the supported model identifiers in declaration order.
func Known() []ID {
	out := make([]ID, len(known))
	copy(out, known)
	return out
}

// IsKnown reports whether id is one of the supported identifiers.
func (id ID) IsKnown() bool {
	for _, k := range known {
		if k == id {
			return true
		}
	}
	return false
}

// String returns the identifier as sent on the wire.
func (id ID) String() string { return string(id) }

// ReservedMaxTokens is the body key that Fields never emits.
const ReservedMaxTokens = "max_tokens"

// Config holds the generation parameters merged into a completion request.
// Nil sampling fields are omitted from the request so the endpoint applies
// its own defaults.
type Config struct {
	Model            ID             `yaml:"model"`
	MaxTokens        int            `yaml:"max_tokens"` // Kept for callers; never transmitted.
	Temperature      *float64       `yaml:"temperature"`
	PresencePenalty  *float64       `yaml:"presence_penalty"`
	TopP             *float64       `yaml:"top_p"`
	FrequencyPenalty *float64       `yaml:"frequency_penalty"`
	Extra            map[string]any `yaml:"extra"` // Provider-specific pass-through fields.
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{
		Model:            GPT4o,
		MaxTokens:        4000,
		Temperature:      Float(1),
		PresencePenalty:  Float(0),
		TopP:             Float(1),
		FrequencyPenalty: Float(0),
	}
}

// Float returns a pointer to v, for populating optional Config fields.
func Float(v float64) *float64 { return &v }

// Fields returns the key/value pairs merged into the request body. Enumerated
// fields take precedence over Extra entries with the same key, and
// max_tokens is removed regardless of where it was set.
func (c Config) Fields() map[string]any {
	out := make(map[string]any, len(c.Extra)+5)

	for k, v := range c.Extra {
		out[k] = v
	}

	if c.Model != "" {
		out["model"] = string(c.Model)
	}

	setFloat(out, "temperature", c.Temperature)
	setFloat(out, "presence_penalty", c.PresencePenalty)
	setFloat(out, "top_p", c.TopP)
	setFloat(out, "frequency_penalty", c.FrequencyPenalty)

	delete(out, ReservedMaxTokens)

	return out
}

func setFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

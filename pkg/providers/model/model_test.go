package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_IsKnown(t *testing.T) {
	assert.True(t, GPT4.IsKnown())
	assert.True(t, Llama31_70B.IsKnown())
	assert.False(t, ID("gpt-4-32k").IsKnown())
	assert.False(t, ID("").IsKnown())
}

func TestKnown_ReturnsCopy(t *testing.T) {
	ids := Known()
	assert.Len(t, ids, 12)
	assert.Equal(t, GPT4Turbo, ids[0])

	ids[0] = "mutated"
	assert.Equal(t, GPT4Turbo, Known()[0])
}

func TestConfig_ZeroValue(t *testing.T) {
	var c Config

	assert.Empty(t, c.Fields())
}

func TestConfig_Fields(t *testing.T) {
	c := Default()

	f := c.Fields()
	assert.Equal(t, "gpt-4o", f["model"])
	assert.InDelta(t, 1.0, f["temperature"], 1e-9)
	assert.InDelta(t, 0.0, f["presence_penalty"], 1e-9)
	assert.InDelta(t, 1.0, f["top_p"], 1e-9)
	assert.InDelta(t, 0.0, f["frequency_penalty"], 1e-9)
	assert.NotContains(t, f, "max_tokens")
}

func TestConfig_Fields_StripsMaxTokensFromExtra(t *testing.T) {
	c := Config{
		Model:     GPT4,
		MaxTokens: 512,
		Extra: map[string]any{
			"max_tokens": 2048,
			"user":       "alice",
		},
	}

	f := c.Fields()
	assert.NotContains(t, f, ReservedMaxTokens)
	assert.Equal(t, "alice", f["user"])
}

func TestConfig_Fields_EnumeratedWinsOverExtra(t *testing.T) {
	c := Config{
		Model:       GPT4o,
		Temperature: Float(0.2),
		Extra: map[string]any{
			"model":       "other",
			"temperature": 9.0,
		},
	}

	f := c.Fields()
	assert.Equal(t, "gpt-4o", f["model"])
	assert.InDelta(t, 0.2, f["temperature"], 1e-9)
}

func TestConfig_Embedding(t *testing.T) {
	type Settings struct {
		Config
		Endpoint string
	}

	s := Settings{Config: Config{Model: Claude3Haiku}, Endpoint: "https://api.example.com"}

	assert.Equal(t, Claude3Haiku, s.Model)
	assert.Equal(t, "https://api.example.com", s.Endpoint)
}

package message

import (
	"encoding/json"
	"testing"

	"github.com/germanamz/chatbridge/pkg/chats/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	msg := New(role.User, "hello")

	assert.Equal(t, role.User, msg.Role)
	assert.Equal(t, "hello", msg.Content)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, role.System, System("s").Role)
	assert.Equal(t, role.User, User("u").Role)
	assert.Equal(t, role.Assistant, Assistant("a").Role)
}

func TestMessage_IsEmpty(t *testing.T) {
	var msg Message

	assert.True(t, msg.IsEmpty())
	assert.False(t, User("hi").IsEmpty())
}

func TestMessage_JSONShape(t *testing.T) {
	data, err := json.Marshal(User("hi there"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"role":"user","content":"hi there"}`, string(data))
}

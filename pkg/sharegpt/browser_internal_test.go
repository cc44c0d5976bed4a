package sharegpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserCommand(t *testing.T) {
	const url = "https://shareg.pt/abc"

	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", url}},
		{"linux", []string{"xdg-open", url}},
		{"windows", []string{"cmd", "/c", "start", `""`, url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := browserCommand(tt.goos, url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Args)
		})
	}
}

func TestBrowserCommand_Unsupported(t *testing.T) {
	_, err := browserCommand("plan9", "https://shareg.pt/abc")
	assert.EqualError(t, err, "sharegpt: unsupported platform: plan9")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SCAMSHIELD_TEST_DIR", "/tmp/uploads")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty path", in: "", want: ""},
		{name: "plain path untouched", in: "/var/data/clip.mp3", want: "/var/data/clip.mp3"},
		{name: "tilde prefix", in: "~/clips/voicemail.mp3", want: filepath.Join(home, "clips/voicemail.mp3")},
		{name: "bare tilde", in: "~", want: home},
		{name: "environment variable", in: "$SCAMSHIELD_TEST_DIR/shot.png", want: "/tmp/uploads/shot.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

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

	t.Setenv("FINTRACK_TEST_DIR", "/var/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain path", input: "/tmp/fintrack.db", want: "/tmp/fintrack.db"},
		{name: "tilde prefix", input: "~/fintrack.db", want: filepath.Join(home, "fintrack.db")},
		{name: "bare tilde", input: "~", want: home},
		{name: "env var", input: "$FINTRACK_TEST_DIR/fintrack.db", want: "/var/data/fintrack.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

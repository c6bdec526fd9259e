package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "https://example.com"},
		{"https://example.com/path?q=1", "https://example.com/path?q=1"},
		{"EXAMPLE.com/Path", "https://example.com/Path"},
		{"example.com:443", "https://example.com"},
		{"  twitter.com/someone  ", "https://twitter.com/someone"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, URL(tt.in), "input %q", tt.in)
	}
}

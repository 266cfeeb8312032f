package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "simple string",
			input: "hello",
		},
		{
			name:  "URL",
			input: "https://example.com/path",
		},
		{
			name:  "string with special chars",
			input: "hello!@#$%^&*()",
		},
		{
			name:  "unicode string",
			input: "你好世界",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := HashString(tt.input)
			second := HashString(tt.input)
			assert.Equal(t, first, second, "hash should be deterministic")
		})
	}
}

func TestHashString_Distribution(t *testing.T) {
	assert.NotEqual(t, HashString("hello"), HashString("hellp"))
	assert.NotEqual(t, HashString("a"), HashString("b"))
}

func TestHashIP(t *testing.T) {
	const secret = "test-secret"

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashIP(secret, "192.168.1.1"), HashIP(secret, "192.168.1.1"))
	})

	t.Run("raw address never appears in the digest", func(t *testing.T) {
		h := HashIP(secret, "203.0.113.7")
		assert.NotContains(t, h, "203.0.113.7")
		assert.Len(t, h, 64)
	})

	t.Run("different addresses produce different digests", func(t *testing.T) {
		assert.NotEqual(t, HashIP(secret, "192.168.1.1"), HashIP(secret, "192.168.1.2"))
	})

	t.Run("different secrets produce different digests", func(t *testing.T) {
		assert.NotEqual(t, HashIP("secret-a", "192.168.1.1"), HashIP("secret-b", "192.168.1.1"))
	})

	t.Run("hex encoded", func(t *testing.T) {
		h := HashIP(secret, "2001:db8::1")
		assert.Equal(t, strings.ToLower(h), h)
		for _, c := range h {
			assert.Contains(t, "0123456789abcdef", string(c))
		}
	})
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		shop string
		want string
	}{
		{name: "plain shop domain", shop: "example.myshopify.com", want: "example_myshopify_com"},
		{name: "hyphenated shop", shop: "a-b.myshopify.com", want: "a_b_myshopify_com"},
		{name: "already safe", shop: "shop123", want: "shop123"},
		{name: "path traversal characters are stripped", shop: "../../etc/passwd", want: "______etc_passwd"},
		{name: "unicode", shop: "shöp.example", want: "sh_p_example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.shop))
		})
	}
}

// Two shop keys differing only in punctuation alias to the same storage
// key. This is the current behavior and a known correctness risk, not a
// guarantee to build on.
func TestSanitizeCollision(t *testing.T) {
	assert.Equal(t, Sanitize("a-b.myshopify.com"), Sanitize("a.b.myshopify.com"))
	assert.Equal(t, Sanitize("a-b.myshopify.com"), Sanitize("a_b_myshopify_com"))
}

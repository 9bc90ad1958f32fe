package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "script removed", input: `<script>alert('xss')</script>Hello world`, want: "Hello world"},
		{name: "tags become single spaces", input: `<p>Hello <b>world</b></p>`, want: "Hello world"},
		{name: "event handler attributes dropped", input: `<p onclick="alert('xss')">Safe text</p>`, want: "Safe text"},
		{name: "entities unescaped", input: `Tom &amp; Jerry`, want: "Tom & Jerry"},
		{name: "nbsp normalised", input: "a\u00a0b", want: "a b"},
		{name: "newlines kept", input: "# Heading\n**bold**   text", want: "# Heading\n**bold** text"},
		{name: "plain text untouched", input: "Just plain text", want: "Just plain text"},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
		})
	}
}

package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short enough", in: "hello", max: 10, want: "hello"},
		{name: "exact fit", in: "hello", max: 5, want: "hello"},
		{name: "truncated", in: "hello world", max: 8, want: "hello..."},
		{name: "tiny max", in: "hello", max: 2, want: "he"},
		{name: "multibyte counted in runes", in: "привет мир", max: 10, want: "привет мир"},
		{name: "multibyte truncated", in: "привет мир!", max: 10, want: "привет ..."},
		{name: "emoji truncated", in: "🎉🎉🎉🎉🎉", max: 4, want: "🎉..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.in, tt.max)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

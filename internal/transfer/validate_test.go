package transfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMemo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text untouched", in: "rent for July", want: "rent for July"},
		{name: "surrounding whitespace trimmed", in: "  lunch  ", want: "lunch"},
		{name: "markup characters stripped", in: `<b>bold</b> & "quoted" 'single'`, want: "bbold/b  quoted single"},
		{name: "truncated to cap", in: strings.Repeat("a", 250), want: strings.Repeat("a", maxMemoLength)},
		{name: "whitespace-only becomes empty", in: "   ", want: ""},
		// "é" is two bytes and would straddle the cap; the whole rune goes.
		{name: "truncation respects rune boundaries", in: strings.Repeat("a", maxMemoLength-1) + "éxx", want: strings.Repeat("a", maxMemoLength-1)},
		{name: "multibyte memo under cap untouched", in: "déjeuner café", want: "déjeuner café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeMemo(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "�")
		})
	}
}

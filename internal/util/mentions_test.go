package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no mentions",
			text: "Blessed are the peacemakers",
			want: nil,
		},
		{
			name: "single mention",
			text: "Praying for you @grace_99!",
			want: []string{"grace_99"},
		},
		{
			name: "multiple mentions keep order",
			text: "@paul and @silas were singing, right @paul?",
			want: []string{"paul", "silas"},
		},
		{
			name: "mention at start and punctuation boundary",
			text: "@Maria, thank you.",
			want: []string{"Maria"},
		},
		{
			name: "bare at sign is not a mention",
			text: "meet @ the chapel",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExtractMentions(tt.text))
		})
	}
}

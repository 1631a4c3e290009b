package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DajanaD/comment-board/internal/moderation"
)

func TestIsBlocked(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		words   []string
		blocked bool
	}{
		{
			name:    "match in the middle",
			text:    "this is spam",
			words:   []string{"spam", "scam"},
			blocked: true,
		},
		{
			name:    "no match",
			text:    "hello world",
			words:   []string{"spam", "scam"},
			blocked: false,
		},
		{
			name:    "empty word list",
			text:    "anything at all",
			words:   nil,
			blocked: false,
		},
		{
			name:    "match is case sensitive",
			text:    "this is SPAM",
			words:   []string{"spam"},
			blocked: false,
		},
		{
			name:    "substring of a longer token",
			text:    "unspammable",
			words:   []string{"spam"},
			blocked: true,
		},
		{
			name:    "empty text never matches",
			text:    "",
			words:   []string{"spam"},
			blocked: false,
		},
		{
			name:    "empty blacklist entry is ignored",
			text:    "hello world",
			words:   []string{""},
			blocked: false,
		},
		{
			name:    "empty entry ignored but real entry still matches",
			text:    "free scam here",
			words:   []string{"", "scam"},
			blocked: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.blocked, moderation.IsBlocked(tc.text, tc.words))
		})
	}
}

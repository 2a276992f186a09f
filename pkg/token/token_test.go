// Test Type: Unit Test
// Description: Tests for the token package - character-class tokenizer and
// timezone offset pairing

package token_test

import (
	"testing"

	"github.com/arthur-debert/datesense/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "iso_date",
			input: "2015-01-09",
			want: []token.Token{
				{Kind: token.Digit, Text: "2015"},
				{Kind: token.Punctuation, Text: "-"},
				{Kind: token.Digit, Text: "01"},
				{Kind: token.Punctuation, Text: "-"},
				{Kind: token.Digit, Text: "09"},
			},
		},
		{
			name:  "day_month_name_year",
			input: "15 Dec 2014",
			want: []token.Token{
				{Kind: token.Digit, Text: "15"},
				{Kind: token.Whitespace, Text: " "},
				{Kind: token.Alpha, Text: "Dec"},
				{Kind: token.Whitespace, Text: " "},
				{Kind: token.Digit, Text: "2014"},
			},
		},
		{
			name:  "mixed_runs",
			input: "12 34Abc?",
			want: []token.Token{
				{Kind: token.Digit, Text: "12"},
				{Kind: token.Whitespace, Text: " "},
				{Kind: token.Digit, Text: "34"},
				{Kind: token.Alpha, Text: "Abc"},
				{Kind: token.Punctuation, Text: "?"},
			},
		},
		{
			name:  "punctuation_runs_group",
			input: "a..b",
			want: []token.Token{
				{Kind: token.Alpha, Text: "a"},
				{Kind: token.Punctuation, Text: ".."},
				{Kind: token.Alpha, Text: "b"},
			},
		},
		{
			name:  "empty_string",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.Tokenize(tt.input))
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "positive_offset_pairs",
			input: "12:00 +0300",
			want: []token.Token{
				{Kind: token.Digit, Text: "12"},
				{Kind: token.Punctuation, Text: ":"},
				{Kind: token.Digit, Text: "00"},
				{Kind: token.Whitespace, Text: " "},
				{Kind: token.TzOffset, Text: "+0300"},
			},
		},
		{
			name:  "negative_offset_pairs",
			input: "-0300",
			want:  []token.Token{{Kind: token.TzOffset, Text: "-0300"}},
		},
		{
			name:  "hyphen_after_digits_stays_punctuation",
			input: "12-3456",
			want: []token.Token{
				{Kind: token.Digit, Text: "12"},
				{Kind: token.Punctuation, Text: "-"},
				{Kind: token.Digit, Text: "3456"},
			},
		},
		{
			name:  "sign_without_four_digits_degrades",
			input: "+12",
			want: []token.Token{
				{Kind: token.Punctuation, Text: "+"},
				{Kind: token.Digit, Text: "12"},
			},
		},
		{
			name:  "double_sign_never_pairs",
			input: "+-0300",
			want: []token.Token{
				{Kind: token.Punctuation, Text: "+"},
				{Kind: token.Punctuation, Text: "-"},
				{Kind: token.Digit, Text: "0300"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.Tokenize(tt.input))
		})
	}
}

func TestTokenPredicates(t *testing.T) {
	assert.True(t, token.Token{Kind: token.Digit, Text: "12"}.IsDigit())
	assert.True(t, token.Token{Kind: token.Alpha, Text: "Dec"}.IsAlpha())
	assert.True(t, token.Token{Kind: token.Punctuation, Text: "/"}.IsSeparator())
	assert.True(t, token.Token{Kind: token.Whitespace, Text: " "}.IsSeparator())
	assert.False(t, token.Token{Kind: token.TzOffset, Text: "+0100"}.IsSeparator())
}

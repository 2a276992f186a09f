// Package token turns a raw date string into an ordered sequence of typed
// runs. Tokens are divided on character class: a maximal run of digits,
// letters, punctuation, or whitespace becomes one token. A second pass pairs
// a '+' or '-' sign with an immediately following 4-digit run into a single
// timezone offset token (e.g. "+0100", "-0300").
package token

import "unicode"

// Kind classifies a token by the character class of its run
type Kind int

const (
	Punctuation Kind = iota
	Digit
	Alpha
	Whitespace
	TzOffset

	// sign is a scan-only class for '+' and '-'; it never survives into a
	// token: a sign either pairs into a TzOffset or degrades to Punctuation
	sign
)

// String returns a short name for the kind, used in logs and error details
func (k Kind) String() string {
	switch k {
	case Punctuation:
		return "punct"
	case Digit:
		return "digit"
	case Alpha:
		return "alpha"
	case Whitespace:
		return "space"
	case TzOffset:
		return "tzoffset"
	}
	return "unknown"
}

// Token is one maximal same-class run of a date string
type Token struct {
	Kind Kind
	Text string
}

// IsDigit reports whether the token is a digit run
func (t Token) IsDigit() bool { return t.Kind == Digit }

// IsAlpha reports whether the token is a letter run
func (t Token) IsAlpha() bool { return t.Kind == Alpha }

// IsSeparator reports whether the token is punctuation or whitespace
func (t Token) IsSeparator() bool {
	return t.Kind == Punctuation || t.Kind == Whitespace
}

// offsetDigits is the run length a sign must be followed by to form a
// timezone offset token, per offsets like +0100 and -0300
const offsetDigits = 4

// Tokenize splits a raw date string into tokens. The scan is a single
// left-to-right pass grouping maximal same-class runs, followed by the
// offset pairing pass. Every character of the input lands in exactly one
// token; no input can fail to tokenize.
func Tokenize(s string) []Token {
	var toks []Token
	runes := []rune(s)

	start := 0
	for i := 0; i < len(runes); i++ {
		class := classify(runes[i])
		// Signs never merge into a run, neither with punctuation nor with
		// each other; everything else groups with its class neighbors
		if class != sign && i+1 < len(runes) && classify(runes[i+1]) == class {
			continue
		}
		toks = append(toks, Token{Kind: class, Text: string(runes[start : i+1])})
		start = i + 1
	}

	return pairOffsets(toks)
}

// pairOffsets merges a sign token with a following 4-digit run into one
// TzOffset token. The sign only pairs when the token before it is not a
// digit run or another sign, so "12-3456" stays three tokens while
// "12:00 +0300" yields an offset. An unpaired sign degrades to punctuation.
func pairOffsets(toks []Token) []Token {
	if len(toks) == 0 {
		return nil
	}
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind != sign {
			out = append(out, tok)
			continue
		}

		prevOK := i == 0 || (toks[i-1].Kind != Digit && toks[i-1].Kind != sign)
		nextOK := i+1 < len(toks) && toks[i+1].Kind == Digit && len(toks[i+1].Text) == offsetDigits
		if prevOK && nextOK {
			out = append(out, Token{Kind: TzOffset, Text: tok.Text + toks[i+1].Text})
			i++
			continue
		}
		out = append(out, Token{Kind: Punctuation, Text: tok.Text})
	}
	return out
}

func classify(r rune) Kind {
	switch {
	case r == '+' || r == '-':
		return sign
	case r >= '0' && r <= '9':
		return Digit
	case unicode.IsLetter(r):
		return Alpha
	case unicode.IsSpace(r):
		return Whitespace
	default:
		return Punctuation
	}
}

package rules

import (
	"strings"

	"github.com/arthur-debert/datesense/pkg/token"
)

// RuleKind discriminates the closed set of rule variants
type RuleKind int

const (
	KindPattern RuleKind = iota
	KindLength
	KindName
	KindDelimiter
)

// String returns the kind's config/display name
func (k RuleKind) String() string {
	switch k {
	case KindPattern:
		return "pattern"
	case KindLength:
		return "length"
	case KindName:
		return "name"
	case KindDelimiter:
		return "delimiter"
	}
	return "unknown"
}

// Candidate is one proposed directive with its tie-break weight
type Candidate struct {
	Directive string
	Score     int
}

// Segment is the matched unit at one token position: either a literal
// (empty candidate set) or a set of candidate directives. Text keeps the raw
// token value for the resolver's range elimination.
type Segment struct {
	Text       string
	Candidates []Candidate
	Consumed   int
}

// IsLiteral reports whether the segment carries no directive candidates
func (s Segment) IsLiteral() bool { return len(s.Candidates) == 0 }

// Subpattern is one element of a pattern rule's sequence: a literal token
// text, or a set of alternative directives
type Subpattern struct {
	Literal      string
	Alternatives []string
}

// Lit builds a literal subpattern
func Lit(text string) Subpattern { return Subpattern{Literal: text} }

// Alt builds an alternative-directive subpattern
func Alt(directives ...string) Subpattern { return Subpattern{Alternatives: directives} }

// NameEntry maps a word table to a directive. Words must be lower case;
// abbreviated forms are their own entries so a 3-letter table only ever
// matches 3-letter tokens.
type NameEntry struct {
	Directive string
	Words     []string
	Score     int
}

// Rule is a tagged variant over the four rule kinds. Rules are immutable
// value objects; a constructed rule is never modified, so rules and rule
// sets are safe for concurrent reads.
type Rule struct {
	Kind RuleKind

	// PosScore orders rule attempts at a token position, highest first
	PosScore int

	// Pattern rules: the sub-pattern sequence and the score every
	// alternative candidate carries
	Sequence []Subpattern
	Score    int

	// Length rules: exact digit-run length and the pre-declared candidates
	Length     int
	Candidates []Candidate

	// Name rules: word tables to match alpha runs against
	Entries []NameEntry
}

// NewPatternRule builds a rule matching a contiguous sub-pattern sequence
func NewPatternRule(sequence []Subpattern, posScore, score int) Rule {
	return Rule{Kind: KindPattern, Sequence: sequence, PosScore: posScore, Score: score}
}

// NewLengthRule builds a rule matching a digit run of an exact length
func NewLengthRule(length int, candidates []Candidate, posScore int) Rule {
	return Rule{Kind: KindLength, Length: length, Candidates: candidates, PosScore: posScore}
}

// NewNameRule builds a rule matching alpha runs against word tables
func NewNameRule(entries []NameEntry, posScore int) Rule {
	return Rule{Kind: KindName, Entries: entries, PosScore: posScore}
}

// NewDelimiterRule builds a rule that passes punctuation and whitespace
// through as literal text
func NewDelimiterRule() Rule {
	return Rule{Kind: KindDelimiter}
}

// MatchResult reports a rule application: either no match, or the segments
// covering the consumed tokens
type MatchResult struct {
	Matched  bool
	Segments []Segment
}

// noMatch is the shared decline result
var noMatch = MatchResult{}

// Attempt applies the rule at a position in a token sequence. The switch is
// exhaustive over the rule kinds; adding a variant means adding an arm here.
func (r Rule) Attempt(toks []token.Token, pos int) MatchResult {
	switch r.Kind {
	case KindPattern:
		return r.attemptPattern(toks, pos)
	case KindLength:
		return r.attemptLength(toks, pos)
	case KindName:
		return r.attemptName(toks, pos)
	case KindDelimiter:
		return r.attemptDelimiter(toks, pos)
	}
	return noMatch
}

// attemptPattern compares tokens against the sub-pattern sequence
// positionally. Literal sub-patterns must equal the token text exactly;
// alternative sub-patterns accept any class-compatible token and propose one
// candidate per alternative. The whole sequence must match contiguously.
func (r Rule) attemptPattern(toks []token.Token, pos int) MatchResult {
	if pos+len(r.Sequence) > len(toks) {
		return noMatch
	}

	segments := make([]Segment, 0, len(r.Sequence))
	for i, sub := range r.Sequence {
		tok := toks[pos+i]
		if len(sub.Alternatives) == 0 {
			if tok.Text != sub.Literal {
				return noMatch
			}
			segments = append(segments, Segment{Text: tok.Text, Consumed: 1})
			continue
		}

		var cands []Candidate
		for _, dir := range sub.Alternatives {
			if compatibleKind(dir, tok) {
				cands = append(cands, Candidate{Directive: dir, Score: r.Score})
			}
		}
		if len(cands) == 0 {
			return noMatch
		}
		segments = append(segments, Segment{Text: tok.Text, Candidates: cands, Consumed: 1})
	}
	return MatchResult{Matched: true, Segments: segments}
}

// attemptLength requires a digit run of the configured exact length and
// returns the rule's pre-declared candidate set
func (r Rule) attemptLength(toks []token.Token, pos int) MatchResult {
	tok := toks[pos]
	if tok.Kind != token.Digit || len(tok.Text) != r.Length {
		return noMatch
	}
	cands := make([]Candidate, len(r.Candidates))
	copy(cands, r.Candidates)
	return MatchResult{Matched: true, Segments: []Segment{
		{Text: tok.Text, Candidates: cands, Consumed: 1},
	}}
}

// attemptName matches an alpha run case-insensitively against the word
// tables, collecting one candidate per table that contains the word
func (r Rule) attemptName(toks []token.Token, pos int) MatchResult {
	tok := toks[pos]
	if tok.Kind != token.Alpha {
		return noMatch
	}
	word := strings.ToLower(tok.Text)

	var cands []Candidate
	for _, entry := range r.Entries {
		for _, w := range entry.Words {
			if w == word {
				cands = append(cands, Candidate{Directive: entry.Directive, Score: entry.Score})
				break
			}
		}
	}
	if len(cands) == 0 {
		return noMatch
	}
	return MatchResult{Matched: true, Segments: []Segment{
		{Text: tok.Text, Candidates: cands, Consumed: 1},
	}}
}

// attemptDelimiter passes a punctuation or whitespace run through as a
// literal with no directive candidates
func (r Rule) attemptDelimiter(toks []token.Token, pos int) MatchResult {
	tok := toks[pos]
	if !tok.IsSeparator() {
		return noMatch
	}
	return MatchResult{Matched: true, Segments: []Segment{
		{Text: tok.Text, Consumed: 1},
	}}
}

// Package match walks one string's token sequence and produces its segment
// list by trying rules in priority order at each position. Segmentation is
// per string and touches no shared mutable state, so any number of strings
// can be segmented independently.
package match

import (
	"github.com/arthur-debert/datesense/pkg/errors"
	"github.com/arthur-debert/datesense/pkg/logging"
	"github.com/arthur-debert/datesense/pkg/rules"
	"github.com/arthur-debert/datesense/pkg/token"
	"github.com/rs/zerolog"
)

// Segmenter applies a rule set to token sequences
type Segmenter struct {
	rules  rules.RuleSet
	logger zerolog.Logger
}

// NewSegmenter creates a segmenter for the given rule set
func NewSegmenter(ruleSet rules.RuleSet) *Segmenter {
	return &Segmenter{
		rules:  ruleSet,
		logger: logging.GetLogger("match.segmenter"),
	}
}

// Segment walks the token sequence left to right. At each cursor position
// rules are attempted in descending posscore order; the first rule that
// matches wins and its segments are appended, advancing the cursor by the
// consumed token count. Fails with UNRECOGNIZED_TOKEN when no rule matches
// at some position.
func (s *Segmenter) Segment(toks []token.Token) ([]rules.Segment, error) {
	segments := make([]rules.Segment, 0, len(toks))

	pos := 0
	for pos < len(toks) {
		result := s.attemptAt(toks, pos)
		if !result.Matched {
			return nil, errors.Newf(errors.ErrUnrecognizedToken,
				"no rule matches token %q at position %d", toks[pos].Text, pos).
				WithDetail("position", pos).
				WithDetail("tokenKind", toks[pos].Kind.String())
		}

		consumed := 0
		for _, seg := range result.Segments {
			consumed += seg.Consumed
		}
		segments = append(segments, result.Segments...)
		pos += consumed
	}

	s.logger.Trace().
		Int("tokenCount", len(toks)).
		Int("segmentCount", len(segments)).
		Msg("Segmented token sequence")

	return segments, nil
}

// attemptAt tries the rules at one position and returns the first match
func (s *Segmenter) attemptAt(toks []token.Token, pos int) rules.MatchResult {
	for _, rule := range s.rules.Rules() {
		result := rule.Attempt(toks, pos)
		if result.Matched {
			s.logger.Trace().
				Int("position", pos).
				Str("ruleKind", rule.Kind.String()).
				Int("segments", len(result.Segments)).
				Msg("Rule matched")
			return result
		}
	}
	return rules.MatchResult{}
}

// Package resolve reduces the per-string segment lists of a batch to one
// globally consistent sequence of literals and directives. Resolution is a
// positional intersection over every string's candidate sets followed by
// value-range elimination and a documented deterministic tie-break; it is
// never a majority vote.
package resolve

import (
	"strconv"

	"github.com/arthur-debert/datesense/pkg/errors"
	"github.com/arthur-debert/datesense/pkg/logging"
	"github.com/arthur-debert/datesense/pkg/rules"
)

// Preference picks the winner when score and elimination leave both %d and
// %m alive at a position
type Preference int

const (
	// MonthFirst prefers %m over %d, the common US reading
	MonthFirst Preference = iota
	// DayFirst prefers %d over %m
	DayFirst
)

// Options configures resolution
type Options struct {
	Prefer Preference
}

// ResolvedSegment is one unit of the final format: a literal or a directive
type ResolvedSegment struct {
	Literal   string
	Directive string
}

// IsLiteral reports whether the segment is literal text
func (r ResolvedSegment) IsLiteral() bool { return r.Directive == "" }

// Resolve aligns the segment lists positionally and reduces each aligned
// position to a single literal or directive that is valid evidence for
// every input string. Shape disagreements fail with INCONSISTENT_FORMAT;
// positions where no candidate survives fail with AMBIGUOUS_FORMAT.
func Resolve(lists [][]rules.Segment, opts Options) ([]ResolvedSegment, error) {
	logger := logging.GetLogger("resolve")

	if len(lists) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no segment lists to resolve")
	}

	shape := lists[0]
	for s := 1; s < len(lists); s++ {
		if len(lists[s]) != len(shape) {
			return nil, errors.Newf(errors.ErrInconsistentFormat,
				"string %d has %d segments, expected %d", s, len(lists[s]), len(shape)).
				WithDetail("stringIndex", s)
		}
	}

	// Shape is validated over the whole batch before any candidate work.
	// A literal disagreement anywhere means the strings cannot share a
	// format, and that verdict outranks an empty candidate intersection
	// at an earlier position.
	for i := range shape {
		if err := checkShape(lists, i); err != nil {
			return nil, err
		}
	}

	resolved := make([]ResolvedSegment, 0, len(shape))
	used := make(map[string]bool)
	for i := range shape {
		seg, err := resolvePosition(lists, i, opts, used)
		if err != nil {
			return nil, err
		}
		if !seg.IsLiteral() {
			used[seg.Directive] = true
		}
		resolved = append(resolved, seg)
	}

	logger.Debug().
		Int("strings", len(lists)).
		Int("positions", len(shape)).
		Msg("Resolved segment lists")

	return resolved, nil
}

// checkShape verifies that position i agrees in kind across all strings:
// literal and candidate segments must not mix, and literal text must match
// everywhere. Either disagreement is a shape mismatch.
func checkShape(lists [][]rules.Segment, i int) error {
	first := lists[0][i]
	for s, list := range lists {
		if list[i].IsLiteral() != first.IsLiteral() {
			return errors.Newf(errors.ErrInconsistentFormat,
				"literal/directive shapes disagree at position %d", i).
				WithDetail("position", i).
				WithDetail("stringIndex", s)
		}
		if first.IsLiteral() && list[i].Text != first.Text {
			return errors.Newf(errors.ErrInconsistentFormat,
				"literal %q and %q disagree at position %d", first.Text, list[i].Text, i).
				WithDetail("position", i).
				WithDetail("stringIndex", s)
		}
	}
	return nil
}

// resolvePosition reduces one aligned, shape-checked position across all
// strings. A date format carries each directive at most once, so directives
// already resolved at an earlier position yield to an unused survivor when
// one exists.
func resolvePosition(lists [][]rules.Segment, i int, opts Options, used map[string]bool) (ResolvedSegment, error) {
	first := lists[0][i]

	if first.IsLiteral() {
		return ResolvedSegment{Literal: first.Text}, nil
	}

	survivors := intersect(lists, i)
	survivors = eliminateByValue(survivors, lists, i)

	if len(survivors) == 0 {
		return ResolvedSegment{}, errors.Newf(errors.ErrAmbiguousFormat,
			"no candidate consistent with all strings at position %d", i).
			WithDetail("position", i)
	}

	return ResolvedSegment{Directive: pick(survivors, opts, used)}, nil
}

// intersect keeps the directives present in every string's candidate set at
// position i, preserving the first string's declaration order and scores
func intersect(lists [][]rules.Segment, i int) []rules.Candidate {
	var out []rules.Candidate
	for _, cand := range lists[0][i].Candidates {
		inAll := true
		for s := 1; s < len(lists); s++ {
			if !hasDirective(lists[s][i].Candidates, cand.Directive) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, cand)
		}
	}
	return out
}

func hasDirective(cands []rules.Candidate, directive string) bool {
	for _, c := range cands {
		if c.Directive == directive {
			return true
		}
	}
	return false
}

// eliminateByValue drops numeric directives whose domain excludes any
// string's concrete token value at this position. This uses values, never
// scores, and runs before the tie-break.
func eliminateByValue(cands []rules.Candidate, lists [][]rules.Segment, i int) []rules.Candidate {
	out := cands[:0]
	for _, cand := range cands {
		numRange, numeric := rules.Range(cand.Directive)
		if !numeric {
			out = append(out, cand)
			continue
		}

		valid := true
		for _, list := range lists {
			v, err := strconv.Atoi(list[i].Text)
			if err != nil || !numRange.Includes(v) {
				valid = false
				break
			}
		}
		if valid {
			out = append(out, cand)
		}
	}
	return out
}

// pick breaks ties among survivors: candidates not yet used elsewhere are
// preferred, then highest declared score wins; a surviving month/day pair
// falls to the configured preference; anything still tied falls back to
// declaration order within the originating rule
func pick(survivors []rules.Candidate, opts Options, used map[string]bool) string {
	var fresh []rules.Candidate
	for _, cand := range survivors {
		if !used[cand.Directive] {
			fresh = append(fresh, cand)
		}
	}
	if len(fresh) > 0 {
		survivors = fresh
	}

	best := []rules.Candidate{survivors[0]}
	for _, cand := range survivors[1:] {
		switch {
		case cand.Score > best[0].Score:
			best = []rules.Candidate{cand}
		case cand.Score == best[0].Score:
			best = append(best, cand)
		}
	}

	if len(best) > 1 && hasDirective(best, rules.DirMonth) && hasDirective(best, rules.DirDay) {
		if opts.Prefer == DayFirst {
			return rules.DirDay
		}
		return rules.DirMonth
	}
	return best[0].Directive
}

// Package detect is the library entry point: it wires the tokenizer, the
// per-string segmenter, the cross-string resolver and the formatter into one
// call that infers the shared format of a batch of date strings.
package detect

import (
	"github.com/arthur-debert/datesense/pkg/errors"
	"github.com/arthur-debert/datesense/pkg/logging"
	"github.com/arthur-debert/datesense/pkg/match"
	"github.com/arthur-debert/datesense/pkg/resolve"
	"github.com/arthur-debert/datesense/pkg/rules"
	"github.com/arthur-debert/datesense/pkg/token"
	"github.com/rs/zerolog"
)

// Detector runs format detection with a fixed rule set and options. A
// detector holds no per-call state and is safe for concurrent use.
type Detector struct {
	rules  rules.RuleSet
	opts   resolve.Options
	logger zerolog.Logger
}

// NewDetector creates a detector. An empty rule set selects the default
// catalogue.
func NewDetector(ruleSet rules.RuleSet, opts resolve.Options) *Detector {
	if ruleSet.IsEmpty() {
		ruleSet = rules.DefaultRuleSet()
	}
	return &Detector{
		rules:  ruleSet,
		opts:   opts,
		logger: logging.GetLogger("detect"),
	}
}

// Detect infers the single format string shared by all input dates.
// Fails with INVALID_INPUT on an empty batch, UNRECOGNIZED_TOKEN when some
// string has a token no rule matches, INCONSISTENT_FORMAT when the strings
// do not share one segment shape, and AMBIGUOUS_FORMAT when cross-string
// evidence eliminates every candidate at some position.
func (d *Detector) Detect(dates []string) (string, error) {
	if len(dates) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "no date strings provided")
	}

	d.logger.Debug().Int("dateCount", len(dates)).Msg("Starting format detection")

	segmenter := match.NewSegmenter(d.rules)
	lists := make([][]rules.Segment, 0, len(dates))
	for i, date := range dates {
		segments, err := segmenter.Segment(token.Tokenize(date))
		if err != nil {
			return "", errors.Wrapf(err, errors.GetErrorCode(err),
				"segmenting date string %d", i).
				WithDetail("stringIndex", i).
				WithDetail("input", date)
		}
		lists = append(lists, segments)
	}

	resolved, err := resolve.Resolve(lists, d.opts)
	if err != nil {
		return "", err
	}

	format := resolve.Format(resolved)
	d.logger.Info().
		Int("dateCount", len(dates)).
		Str("format", format).
		Msg("Detected format")

	return format, nil
}

// DetectFormat infers the shared format of a batch of date strings using
// the given rule set; pass a zero RuleSet for the default catalogue.
func DetectFormat(dates []string, ruleSet rules.RuleSet) (string, error) {
	return NewDetector(ruleSet, resolve.Options{}).Detect(dates)
}

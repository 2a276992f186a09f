// Test Type: Unit Test
// Description: Tests for the rules package - rule set ordering and the
// default catalogue

package rules_test

import (
	"testing"

	"github.com/arthur-debert/datesense/pkg/rules"
	"github.com/arthur-debert/datesense/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleSetOrdersByPosScore(t *testing.T) {
	low := rules.NewLengthRule(2, []rules.Candidate{{Directive: rules.DirDay, Score: 1}}, 10)
	high := rules.NewLengthRule(4, []rules.Candidate{{Directive: rules.DirYear4, Score: 1}}, 50)
	mid := rules.NewDelimiterRule()
	mid.PosScore = 30

	rs := rules.NewRuleSet(low, high, mid)

	require.Equal(t, 3, rs.Len())
	ordered := rs.Rules()
	assert.Equal(t, 50, ordered[0].PosScore)
	assert.Equal(t, 30, ordered[1].PosScore)
	assert.Equal(t, 10, ordered[2].PosScore)
}

func TestNewRuleSetStableOnTies(t *testing.T) {
	first := rules.NewLengthRule(1, []rules.Candidate{{Directive: rules.DirMonth, Score: 1}}, 20)
	second := rules.NewLengthRule(2, []rules.Candidate{{Directive: rules.DirDay, Score: 1}}, 20)

	rs := rules.NewRuleSet(first, second)
	ordered := rs.Rules()
	assert.Equal(t, 1, ordered[0].Length)
	assert.Equal(t, 2, ordered[1].Length)
}

func TestZeroRuleSetIsEmpty(t *testing.T) {
	var rs rules.RuleSet
	assert.True(t, rs.IsEmpty())
	assert.Equal(t, 0, rs.Len())
	assert.False(t, rules.DefaultRuleSet().IsEmpty())
}

func TestDefaultRuleSetCoversCommonTokens(t *testing.T) {
	rs := rules.DefaultRuleSet()

	// Every kind of token the common formats produce has some matching rule
	inputs := []string{"2014", "15", "9", "365", "Dec", "December", "Mon", "am", "UTC", "/", " ", "+0100", "T"}
	for _, input := range inputs {
		toks := token.Tokenize(input)
		matched := false
		for _, rule := range rs.Rules() {
			if rule.Attempt(toks, 0).Matched {
				matched = true
				break
			}
		}
		assert.True(t, matched, "no default rule matches %q", input)
	}
}

func TestDefaultRuleSetLeavesUnknownWordsUnmatched(t *testing.T) {
	rs := rules.DefaultRuleSet()
	toks := token.Tokenize("Foobar")

	for _, rule := range rs.Rules() {
		assert.False(t, rule.Attempt(toks, 0).Matched)
	}
}

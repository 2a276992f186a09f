package rules

import "sort"

// RuleSet is an ordered, immutable collection of rules. Rules are held in
// descending PosScore order with declaration order breaking ties, which is
// exactly the order the segmenter attempts them in. A zero RuleSet is empty;
// the detector substitutes the default catalogue for it.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds a rule set from the given rules. The input slice is
// copied and sorted; the caller keeps ownership of its slice.
func NewRuleSet(ruleList ...Rule) RuleSet {
	rs := make([]Rule, len(ruleList))
	copy(rs, ruleList)
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].PosScore > rs[j].PosScore
	})
	return RuleSet{rules: rs}
}

// Rules returns the rules in attempt order. Callers must not modify the
// returned slice.
func (rs RuleSet) Rules() []Rule { return rs.rules }

// Len returns the number of rules in the set
func (rs RuleSet) Len() int { return len(rs.rules) }

// IsEmpty reports whether the set carries no rules
func (rs RuleSet) IsEmpty() bool { return len(rs.rules) == 0 }

// Candidate scores in the default catalogue. Month and day outrank the
// clock directives so bare digit pairs lean calendar-ward, matching how
// dates show up in logs and imports far more often than bare times.
const (
	scoreCommon   = 3
	scoreLikely   = 2
	scoreUncommon = 1
)

// defaultSet is built once at init and never mutated afterwards
var defaultSet = buildDefaultRuleSet()

// DefaultRuleSet returns the built-in catalogue. The set is shared and
// read-only; any number of detections may use it concurrently.
func DefaultRuleSet() RuleSet { return defaultSet }

func buildDefaultRuleSet() RuleSet {
	return NewRuleSet(
		// YYYY-MM-DD
		NewPatternRule([]Subpattern{
			Alt(DirYear4), Lit("-"), Alt(DirMonth), Lit("-"), Alt(DirDay),
		}, 90, 4),

		// mm/dd/yy and dd/mm/yy shapes; the resolver's range elimination
		// and the day/month preference pick between them
		NewPatternRule([]Subpattern{
			Alt(DirMonth, DirDay), Lit("/"), Alt(DirMonth, DirDay), Lit("/"), Alt(DirYear4, DirYear2),
		}, 88, scoreCommon),

		// hh:mm am/pm
		NewPatternRule([]Subpattern{
			Alt(DirHour12), Lit(":"), Alt(DirMinute), Lit(" "), Alt(DirMeridiem),
		}, 86, scoreCommon),

		// hh:mm:ss
		NewPatternRule([]Subpattern{
			Alt(DirHour24, DirHour12), Lit(":"), Alt(DirMinute), Lit(":"), Alt(DirSecond),
		}, 85, scoreCommon),

		// hh:mm
		NewPatternRule([]Subpattern{
			Alt(DirHour24, DirHour12), Lit(":"), Alt(DirMinute),
		}, 80, scoreUncommon),

		// +0100 / -0300
		NewPatternRule([]Subpattern{Alt(DirOffset)}, 75, scoreLikely),

		// Month names, full and 3-letter
		NewNameRule([]NameEntry{
			{Directive: DirMonthFull, Words: monthsFull, Score: scoreLikely},
			{Directive: DirMonthAbbr, Words: monthsAbbr, Score: scoreLikely},
		}, 70),

		// Weekday names, full and 3-letter
		NewNameRule([]NameEntry{
			{Directive: DirWeekdayFull, Words: weekdaysFull, Score: scoreUncommon},
			{Directive: DirWeekdayAbbr, Words: weekdaysAbbr, Score: scoreUncommon},
		}, 68),

		// am/pm
		NewNameRule([]NameEntry{
			{Directive: DirMeridiem, Words: meridiems, Score: scoreLikely},
		}, 66),

		// Timezone names
		NewNameRule([]NameEntry{
			{Directive: DirZoneName, Words: zoneNames, Score: scoreUncommon},
		}, 64),

		// Bare digit runs by length
		NewLengthRule(4, []Candidate{
			{DirYear4, scoreLikely},
		}, 40),
		NewLengthRule(3, []Candidate{
			{DirYearDay, scoreUncommon},
		}, 38),
		NewLengthRule(2, []Candidate{
			{DirMonth, scoreCommon},
			{DirDay, scoreCommon},
			{DirYear2, scoreLikely},
			{DirHour24, scoreUncommon},
			{DirHour12, scoreUncommon},
			{DirMinute, scoreUncommon},
			{DirSecond, scoreUncommon},
		}, 36),
		NewLengthRule(1, []Candidate{
			{DirMonth, scoreCommon},
			{DirDay, scoreCommon},
			{DirHour24, scoreUncommon},
			{DirHour12, scoreUncommon},
		}, 34),

		// The ISO designator between date and clock
		NewPatternRule([]Subpattern{Lit("T")}, 10, 0),

		// Separators fall through to plain literals
		NewDelimiterRule(),
	)
}

package rules

import (
	"strings"

	"github.com/arthur-debert/datesense/pkg/token"
)

// Directive codes follow the conventional strptime/strftime vocabulary.
const (
	DirYear2   = "%y"
	DirYear4   = "%Y"
	DirMonth   = "%m"
	DirDay     = "%d"
	DirHour24  = "%H"
	DirHour12  = "%I"
	DirMinute  = "%M"
	DirSecond  = "%S"
	DirYearDay = "%j"
	DirCentury = "%C"

	DirMonthAbbr   = "%b"
	DirMonthFull   = "%B"
	DirWeekdayAbbr = "%a"
	DirWeekdayFull = "%A"
	DirMeridiem    = "%p"
	DirZoneName    = "%Z"

	DirOffset = "%z"
)

// NumRange is the inclusive value domain of a numeric directive
type NumRange struct {
	Min int
	Max int
}

// Includes reports whether v lies inside the range
func (r NumRange) Includes(v int) bool { return v >= r.Min && v <= r.Max }

// numRanges holds the semantic domain of every numeric directive the
// catalogue knows. Seconds run to 61 to admit leap seconds.
var numRanges = map[string]NumRange{
	DirYear2:   {0, 99},
	DirYear4:   {0, 9999},
	DirMonth:   {1, 12},
	DirDay:     {1, 31},
	DirHour24:  {0, 23},
	DirHour12:  {1, 12},
	DirMinute:  {0, 59},
	DirSecond:  {0, 61},
	DirYearDay: {1, 366},
	DirCentury: {0, 99},
}

// wordDirectives are the directives that stand for alphabetic tokens
var wordDirectives = map[string]bool{
	DirMonthAbbr:   true,
	DirMonthFull:   true,
	DirWeekdayAbbr: true,
	DirWeekdayFull: true,
	DirMeridiem:    true,
	DirZoneName:    true,
}

// Range returns the value domain of a numeric directive
func Range(directive string) (NumRange, bool) {
	r, ok := numRanges[directive]
	return r, ok
}

// IsNumeric reports whether the directive stands for a digit run
func IsNumeric(directive string) bool {
	_, ok := numRanges[directive]
	return ok
}

// compatibleKind reports whether a token can carry the given directive.
// Numeric directives take any digit run (value-range checks are the
// resolver's business); word directives additionally require the token to be
// in the directive's vocabulary, so a pattern alternative like %p only
// matches an actual am/pm token.
func compatibleKind(directive string, tok token.Token) bool {
	switch {
	case IsNumeric(directive):
		return tok.Kind == token.Digit
	case wordDirectives[directive]:
		return tok.Kind == token.Alpha && inVocabulary(directive, tok.Text)
	case directive == DirOffset:
		return tok.Kind == token.TzOffset
	}
	return false
}

// inVocabulary matches a word directive's name table case-insensitively
func inVocabulary(directive, text string) bool {
	word := strings.ToLower(text)
	for _, w := range vocabularies[directive] {
		if w == word {
			return true
		}
	}
	return false
}

// Name tables for the default catalogue. Words are lower case; matching is
// case-insensitive and by exact membership, so the 3-letter forms only match
// 3-letter tokens and never act as prefixes.
var (
	monthsFull = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	monthsAbbr = []string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	}
	weekdaysFull = []string{
		"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	}
	weekdaysAbbr = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
	meridiems    = []string{"am", "pm"}
	// Nowhere near a complete list; enough for the common log formats
	zoneNames = []string{"utc", "gmt"}
)

// vocabularies maps each word directive to its name table
var vocabularies = map[string][]string{
	DirMonthFull:   monthsFull,
	DirMonthAbbr:   monthsAbbr,
	DirWeekdayFull: weekdaysFull,
	DirWeekdayAbbr: weekdaysAbbr,
	DirMeridiem:    meridiems,
	DirZoneName:    zoneNames,
}

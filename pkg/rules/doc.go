// Package rules defines the rule catalogue that drives format detection.
//
// A Rule is a closed tagged variant over four kinds:
//
//   - pattern rules match a contiguous sub-pattern sequence, each element a
//     literal token text or a set of alternative directives
//   - length rules match a digit run of an exact length and propose a
//     pre-declared candidate set
//   - name rules match alphabetic runs case-insensitively against word
//     tables (month names, weekday names, am/pm, zone names)
//   - delimiter rules pass punctuation and whitespace through as literals
//
// # Rule Priority
//
// At a given token position rules are attempted in descending posscore
// order; the first rule that matches wins. A rule's score is the tie-break
// weight its candidate directives carry into resolution.
//
// # Configuration
//
// DefaultRuleSet covers common English-language formats. Custom rule sets
// load from TOML:
//
//	[[rules]]
//	kind = "pattern"
//	priority = 90
//	score = 4
//	pattern = ["%Y", "-", "%m", "-", "%d"]
//
//	[[rules]]
//	kind = "length"
//	priority = 36
//	length = 2
//
//	[[rules.candidates]]
//	directive = "%m"
//	score = 3
//
//	[[rules]]
//	kind = "delimiter"
//
// Rule sets are immutable after construction and safe to share across any
// number of concurrent detections.
package rules

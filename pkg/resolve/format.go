package resolve

import "strings"

// Format concatenates resolved segments into the final format string.
// Directive codes are emitted as declared; literal text is copied verbatim
// except that stray '%' characters are escaped as '%%' so the output stays a
// valid strftime format. Pure and total.
func Format(resolved []ResolvedSegment) string {
	var b strings.Builder
	for _, seg := range resolved {
		if seg.IsLiteral() {
			b.WriteString(strings.ReplaceAll(seg.Literal, "%", "%%"))
			continue
		}
		b.WriteString(seg.Directive)
	}
	return b.String()
}

package measure

import (
	"strings"

	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Shorten truncates each line of text to fit into maxWidth at a given size.
// Lines that fit are left untouched. Truncated lines keep the longest prefix
// of whole code-points whose width stays strictly below maxWidth minus the
// width of the terminator, and get the terminator appended (see option
// Terminator). Kerning, if enabled, is not applied between the prefix and
// the terminator. If the terminator alone does not leave any room, the line
// is shortened to the empty string.
//
// Shorten returns a core.EINVALID error for negative widths and for invalid
// sizes or options.
func Shorten(m *metrics.Metrics, text string, maxWidth float64, size metrics.Size,
	opts ...Option) (string, error) {
	//
	q, err := prepare(m, size, opts)
	if err != nil {
		return "", err
	}
	if err = checkMaxWidth(maxWidth); err != nil {
		return "", err
	}
	tw := q.width([]rune(q.terminator))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = q.shorten(line, maxWidth, tw)
	}
	return strings.Join(lines, "\n"), nil
}

func (q query) shorten(line string, maxWidth, terminatorWidth float64) string {
	runes := []rune(line)
	if q.width(runes) <= maxWidth {
		return line
	}
	budget := maxWidth - terminatorWidth
	if budget <= 0 {
		tracer().Debugf("shorten: terminator %q leaves no room in %g", q.terminator, maxWidth)
		return ""
	}
	_, n := q.walk(runes, func(st step) bool {
		return q.scale.Apply(st.pen+st.advance) < budget
	})
	if n == len(runes) { // nothing truncated
		return line
	}
	tracer().Debugf("shorten: keeping %d of %d code-points", n, len(runes))
	return string(runes[:n]) + q.terminator
}

package measure

import (
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Width returns the width of text at a given size.
// For text spanning multiple lines, Width returns the width of the widest line.
// The empty string has width 0.
//
// Width returns a core.EINVALID error for invalid sizes or options.
func Width(m *metrics.Metrics, text string, size metrics.Size, opts ...Option) (float64, error) {
	q, err := prepare(m, size, opts)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	var w float64
	for i, line := range splitLines(text) {
		if lw := q.width(line); i == 0 || lw > w {
			w = lw
		}
	}
	return w, nil
}

// RunesWidth returns the width of a sequence of code-points at a given size.
// Unlike Width, line breaks are not interpreted: the sequence is measured
// as a single line.
func RunesWidth(m *metrics.Metrics, runes []rune, size metrics.Size, opts ...Option) (float64, error) {
	q, err := prepare(m, size, opts)
	if err != nil {
		return 0, err
	}
	return q.width(runes), nil
}

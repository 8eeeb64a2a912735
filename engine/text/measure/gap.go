package measure

import (
	"math"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Gap is a position between two code-points of a line, or before the first
// or after the last one.
type Gap struct {
	Index int     // number of code-points of the line before the gap
	X     float64 // horizontal offset of the gap from the start of the line
	Line  int     // line index, starting at 0
}

// NearestGap returns the gap of text closest to the point (x, y), given in
// output space with the origin at the top left of the first line.
//
// The line is selected by y, using a line pitch which may be set with option
// LineHeight. Points above the first line resolve to the very first gap,
// points below the last line to the end of the last line. Within a line,
// a point over a glyph resolves to the gap after the glyph if x is right of
// the glyph's horizontal midpoint, and to the gap before it otherwise.
//
// NearestGap returns a core.EINVALID error if x or y are not finite numbers and
// for invalid sizes or options.
func NearestGap(m *metrics.Metrics, text string, x, y float64, size metrics.Size,
	opts ...Option) (Gap, error) {
	//
	q, err := prepare(m, size, opts)
	if err != nil {
		return Gap{}, err
	}
	if !isFinite(x) || !isFinite(y) {
		return Gap{}, core.Error(core.EINVALID, "point (%g,%g) is not finite", x, y)
	}
	if y < 0 {
		return Gap{}, nil
	}
	lh := q.scale.Em()
	if q.hasLineHeight {
		lh = q.lineHeight
	}
	lines := splitLines(text)
	if l := y / lh; l >= float64(len(lines)) {
		last := len(lines) - 1
		tracer().Debugf("nearest gap: y=%g is below last line %d", y, last)
		return Gap{
			Index: len(lines[last]),
			X:     q.width(lines[last]),
			Line:  last,
		}, nil
	}
	l := int(math.Floor(y / lh))
	return q.nearestGap(lines[l], x, l), nil
}

func (q query) nearestGap(line []rune, x float64, lineno int) Gap {
	gap := Gap{Line: lineno}
	if x <= 0 {
		return gap
	}
	pen, n := q.walk(line, func(st step) bool {
		if q.scale.Apply(st.end()) <= x {
			return true
		}
		if mid := q.scale.Apply(st.pen + st.advance/2); x > mid {
			gap.Index, gap.X = st.i+1, q.scale.Apply(st.end())
		} else {
			gap.Index, gap.X = st.i, q.scale.Apply(st.pen)
		}
		return false
	})
	if n == len(line) {
		gap.Index, gap.X = n, q.scale.Apply(pen)
	}
	tracer().Debugf("nearest gap for x=%g in line %d: #%d at %g", x, lineno, gap.Index, gap.X)
	return gap
}

// PositionAt returns the horizontal offset of the gap before the code-point
// at index, together with the index of the line it belongs to. Line breaks
// count as code-points: each one consumes an index, starts a new line and
// resets the offset. Kerning never applies across a line break.
//
// Indices <= 0 resolve to (0, 0). Indices beyond the end of text resolve to
// the end of the last line.
//
// PositionAt returns a core.EINVALID error for invalid sizes or options.
func PositionAt(m *metrics.Metrics, text string, index int, size metrics.Size,
	opts ...Option) (x float64, line int, err error) {
	//
	q, err := prepare(m, size, opts)
	if err != nil {
		return 0, 0, err
	}
	if index <= 0 {
		return 0, 0, nil
	}
	remaining := index
	for l, runes := range splitLines(text) {
		if l > 0 {
			remaining-- // consumed by the line break
		}
		line = l
		if remaining <= len(runes) {
			pen, _ := q.walk(runes, func(st step) bool {
				return st.i < remaining
			})
			return q.scale.Apply(pen), l, nil
		}
		remaining -= len(runes)
		x = q.width(runes)
	}
	return x, line, nil
}

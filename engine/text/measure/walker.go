package measure

import (
	"strings"

	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// walker walks a line of code-points against the font's tables.
// All positions it reports are raw font units.
type walker struct {
	m    *metrics.Metrics
	kern bool
}

// step is a single code-point visited by a walker.
type step struct {
	i       int     // index of r within the line
	r       rune    // code-point
	pen     float64 // pen position before r, including kerning against r's predecessor
	advance float64 // advance width of r
	kern    float64 // kerning between r and its successor; 0 for the last code-point
}

// end returns the pen position after r, i.e. before r's successor.
func (st step) end() float64 {
	return st.pen + (st.advance + st.kern)
}

// walk visits the code-points of a line in order, as long as visit returns true.
// visit may be nil.
//
// walk returns the pen position where the walk ended and the number of code-points
// consumed. If visit rejects a code-point, it is not consumed and the pen position
// is the one before it.
func (w walker) walk(line []rune, visit func(step) bool) (pen float64, n int) {
	for i, r := range line {
		st := step{i: i, r: r, pen: pen, advance: w.m.Advance(r)}
		if w.kern && i+1 < len(line) {
			st.kern = w.m.Kern(r, line[i+1])
		}
		if visit != nil && !visit(st) {
			return pen, i
		}
		pen = st.end()
	}
	return pen, len(line)
}

// width returns the scaled width of a single line.
func (q query) width(line []rune) float64 {
	if len(line) == 0 {
		return 0
	}
	pen, _ := q.walk(line, nil)
	return q.scale.Apply(pen)
}

// splitLines splits text at line breaks. The result always has at least one
// (possibly empty) line.
func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

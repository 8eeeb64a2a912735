package monospace

import (
	"unicode/utf8"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Metrics creates metric tables for a grid of cells, each cell units wide
// (in font units). The advance table covers the code-points of text.
//
// text is split into graphemes. The first code-point of a grapheme advances
// by the grapheme's width in cells; any further code-points of the grapheme
// (e.g., combining marks) have an advance of zero. Code-points not covered
// by text are one cell wide. There is no kerning.
//
// If context is nil, uax11.LatinContext is used.
func Metrics(cell int, text string, context *uax11.Context) (*metrics.Metrics, error) {
	if cell <= 0 {
		return nil, core.Error(core.EINVALID, "monospace cell width must be positive, is %d", cell)
	}
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	em := 2 * cell
	t := metrics.Tables{
		UnitsPerEm: em,
		Ascent:     em * 4 / 5,
		Descent:    -em / 5,
		Advances:   map[rune]float64{metrics.Fallback: float64(cell)},
	}
	t.MaxBox = metrics.Box{XMin: 0, YMin: t.Descent, XMax: em, YMax: t.Ascent}
	if text == "" {
		return metrics.New(t)
	}
	gstr := grapheme.StringFromString(text)
	for i := 0; i < gstr.Len(); i++ {
		grphm := []byte(gstr.Nth(i))
		w := uax11.Width(grphm, context)
		first := true
		for len(grphm) > 0 {
			r, size := utf8.DecodeRune(grphm)
			grphm = grphm[size:]
			if !first {
				if _, ok := t.Advances[r]; !ok {
					t.Advances[r] = 0
				}
				continue
			}
			t.Advances[r] = float64(w * cell)
			first = false
		}
	}
	tracer().Debugf("monospace metrics with %d code-points, cell = %d", len(t.Advances)-1, cell)
	return metrics.New(t)
}

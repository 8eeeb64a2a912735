package metrics

import (
	"fmt"

	"github.com/npillmayer/fontmetrics/core"
)

// Fallback is the code-point of the advance entry used for missing glyphs.
const Fallback rune = 0

// Pair is an ordered pair of adjacent code-points, used as a key for kerning.
type Pair struct {
	Left, Right rune
}

// Box is a bounding box in font units.
type Box struct {
	XMin, YMin int
	XMax, YMax int
}

// Empty is a predicate: has this box a zero area?
func (b Box) Empty() bool {
	return b.XMax-b.XMin == 0 || b.YMax-b.YMin == 0
}

// Dx is the horizontal extent of this box.
func (b Box) Dx() int {
	return b.XMax - b.XMin
}

// Dy is the vertical extent of this box.
func (b Box) Dy() int {
	return b.YMax - b.YMin
}

// BoxF is a bounding box in output space, i.e. possibly scaled to pixels.
type BoxF struct {
	XMin, YMin float64
	XMax, YMax float64
}

// Tables is the raw material for a Metrics value. Table builders fill it in
// and hand it to New.
type Tables struct {
	UnitsPerEm      int              // scale denominator, must be positive
	Ascent, Descent int              // vertical extents; descent is usually negative
	MaxBox          Box              // bounding box of the largest glyph
	Advances        map[rune]float64 // must contain an entry for Fallback
	Kerning         map[Pair]float64 // absent pairs imply zero adjustment
}

// Metrics is an immutable set of font metric tables.
// Create one with New; the zero value is not usable.
type Metrics struct {
	upem            int
	ascent, descent int
	maxBox          Box
	advances        map[rune]float64
	kerning         map[Pair]float64
}

// New validates t and creates a Metrics value from it. The maps of t are
// copied, clients may re-use or modify t afterwards.
//
// New returns a core.EINVALID error if units per em is not positive or if
// the advance table lacks the Fallback entry.
func New(t Tables) (*Metrics, error) {
	if t.UnitsPerEm <= 0 {
		return nil, core.Error(core.EINVALID, "units per em must be positive, is %d", t.UnitsPerEm)
	}
	if _, ok := t.Advances[Fallback]; !ok {
		return nil, core.Error(core.EINVALID, "advance table has no fallback entry at code-point 0")
	}
	m := &Metrics{
		upem:     t.UnitsPerEm,
		ascent:   t.Ascent,
		descent:  t.Descent,
		maxBox:   t.MaxBox,
		advances: make(map[rune]float64, len(t.Advances)),
		kerning:  make(map[Pair]float64, len(t.Kerning)),
	}
	for r, w := range t.Advances {
		m.advances[r] = w
	}
	for p, k := range t.Kerning {
		if k != 0 {
			m.kerning[p] = k
		}
	}
	tracer().Debugf("metrics: %d advances, %d kerning pairs, %d units/em",
		len(m.advances), len(m.kerning), m.upem)
	return m, nil
}

// Check panics if m has not been created by New.
func (m *Metrics) Check() {
	if m == nil || m.upem <= 0 || m.advances == nil {
		panic("font metrics not initialized; use metrics.New")
	}
}

func (m *Metrics) String() string {
	if m == nil {
		return "Metrics<nil>"
	}
	return fmt.Sprintf("Metrics<upem=%d, #adv=%d, #kern=%d>", m.upem, len(m.advances), len(m.kerning))
}

// UnitsPerEm returns the font's design units per em.
func (m *Metrics) UnitsPerEm() int {
	return m.upem
}

// Advance returns the raw advance width of code-point r in font units.
// Code-points missing from the table are measured with the fallback entry.
func (m *Metrics) Advance(r rune) float64 {
	if w, ok := m.advances[r]; ok {
		return w
	}
	return m.advances[Fallback]
}

// Kern returns the raw kerning adjustment between left and right, in font units.
// Pairs not in the kerning table have an adjustment of zero.
func (m *Metrics) Kern(left, right rune) float64 {
	return m.kerning[Pair{left, right}]
}

// KerningPairs returns the number of entries in the kerning table.
func (m *Metrics) KerningPairs() int {
	return len(m.kerning)
}

// SupportedRune is a predicate: is r present in the advance table?
func (m *Metrics) SupportedRune(r rune) bool {
	_, ok := m.advances[r]
	return ok
}

// Supported is a predicate: is every code-point of text present in the advance table?
// Text which is not supported will be measured (and usually rendered) using the
// fallback glyph. The empty string is supported.
func (m *Metrics) Supported(text string) bool {
	for _, r := range text {
		if !m.SupportedRune(r) {
			return false
		}
	}
	return true
}

// --- Scaled accessors ------------------------------------------------------

// Ascent returns the ascent of the font at a given size.
func (m *Metrics) Ascent(size Size) (float64, error) {
	s, err := m.Scaler(size)
	if err != nil {
		return 0, err
	}
	return s.Apply(float64(m.ascent)), nil
}

// Descent returns the descent of the font at a given size. It usually is negative.
func (m *Metrics) Descent(size Size) (float64, error) {
	s, err := m.Scaler(size)
	if err != nil {
		return 0, err
	}
	return s.Apply(float64(m.descent)), nil
}

// MaxBox returns the bounding box of the largest glyph at a given size.
func (m *Metrics) MaxBox(size Size) (BoxF, error) {
	s, err := m.Scaler(size)
	if err != nil {
		return BoxF{}, err
	}
	return BoxF{
		XMin: s.Apply(float64(m.maxBox.XMin)),
		YMin: s.Apply(float64(m.maxBox.YMin)),
		XMax: s.Apply(float64(m.maxBox.XMax)),
		YMax: s.Apply(float64(m.maxBox.YMax)),
	}, nil
}

package font

import (
	"unicode"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ExtractOptions control which code-points end up in the metric tables of a font.
type ExtractOptions struct {
	// Ranges of code-points to collect advances for. Code-points not mapped to a
	// glyph by the font are skipped. Defaults to DefaultRanges.
	Ranges []*unicode.RangeTable
	// Code-points to collect kerning pairs for; every ordered pair of these is
	// looked up. Defaults to printable ASCII.
	KerningRunes []rune
}

// DefaultRanges are the code-point ranges extracted if no ranges are given.
var DefaultRanges = []*unicode.RangeTable{
	unicode.Latin, unicode.Greek, unicode.Cyrillic, unicode.Common,
}

func printableASCII() []rune {
	runes := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Metrics extracts the metric tables of a font, in font units.
//
// The fallback advance is the advance of glyph 0 ('.notdef'). Kerning pairs are
// taken from whatever kerning information sfnt supports for the font; fonts
// without any get an empty kerning table.
func (sf *ScalableFont) Metrics(opts ExtractOptions) (*metrics.Metrics, error) {
	if sf == nil || sf.SFNT == nil {
		return nil, core.Error(core.EINVALID, "no font to extract metrics from")
	}
	if len(opts.Ranges) == 0 {
		opts.Ranges = DefaultRanges
	}
	if opts.KerningRunes == nil {
		opts.KerningRunes = printableASCII()
	}
	otf := sf.SFNT
	x := extractor{otf: otf, upem: int(otf.UnitsPerEm())}
	x.ppem = fixed.I(x.upem) // at ppem = upem, results are font units in 26.6
	t := metrics.Tables{
		UnitsPerEm: x.upem,
		Advances:   make(map[rune]float64),
		Kerning:    make(map[metrics.Pair]float64),
	}
	var err error
	if err = x.fontMetrics(&t); err != nil {
		return nil, err
	}
	notdef, err := otf.GlyphAdvance(&x.buf, 0, x.ppem, xfont.HintingNone)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font %s has no .notdef glyph", sf.Fontname)
	}
	for _, rt := range opts.Ranges {
		forEachRune(rt, func(r rune) {
			if r == metrics.Fallback { // U+0000 may map to a zero-width glyph
				return
			}
			if gid := x.glyph(r); gid != 0 {
				if adv, err := otf.GlyphAdvance(&x.buf, gid, x.ppem, xfont.HintingNone); err == nil {
					t.Advances[r] = units(adv)
				}
			}
		})
	}
	t.Advances[metrics.Fallback] = units(notdef)
	x.kerning(&t, opts.KerningRunes)
	tracer().Infof("extracted metrics of %s: %d advances, %d kerning pairs",
		sf.Fontname, len(t.Advances), len(t.Kerning))
	return metrics.New(t)
}

type extractor struct {
	otf  *sfnt.Font
	buf  sfnt.Buffer
	upem int
	ppem fixed.Int26_6
}

// fontMetrics retrieves font-wide metrics: ascent, descent and the bounding box.
func (x *extractor) fontMetrics(t *metrics.Tables) error {
	fm, err := x.otf.Metrics(&x.buf, x.ppem, xfont.HintingNone)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot read font metrics")
	}
	t.Ascent = fm.Ascent.Round()
	t.Descent = -fm.Descent.Round() // sfnt reports descent as a positive distance
	bounds, err := x.otf.Bounds(&x.buf, x.ppem, xfont.HintingNone)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot read font bounding box")
	}
	// sfnt's y axis grows downwards
	t.MaxBox = metrics.Box{
		XMin: bounds.Min.X.Round(),
		YMin: -bounds.Max.Y.Round(),
		XMax: bounds.Max.X.Round(),
		YMax: -bounds.Min.Y.Round(),
	}
	return nil
}

// kerning looks up every ordered pair of runes mapped to a glyph.
func (x *extractor) kerning(t *metrics.Tables, runes []rune) {
	var gids []sfnt.GlyphIndex
	var cps []rune
	for _, r := range runes {
		if gid := x.glyph(r); gid != 0 {
			gids = append(gids, gid)
			cps = append(cps, r)
		}
	}
	for i, g0 := range gids {
		for j, g1 := range gids {
			k, err := x.otf.Kern(&x.buf, g0, g1, x.ppem, xfont.HintingNone)
			if err != nil {
				tracer().Errorf("kerning %q/%q: %v", cps[i], cps[j], err)
				continue
			}
			if k != 0 {
				t.Kerning[metrics.Pair{Left: cps[i], Right: cps[j]}] = units(k)
			}
		}
	}
}

// glyph returns the glyph index for a given code-point.
// If the code-point cannot be found, 0 is returned.
func (x *extractor) glyph(r rune) sfnt.GlyphIndex {
	gid, err := x.otf.GlyphIndex(&x.buf, r)
	if err != nil {
		return 0
	}
	return gid
}

// units converts a 26.6 value at ppem = units per em back to font units.
func units(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func forEachRune(rt *unicode.RangeTable, f func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			f(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			f(r)
		}
	}
}

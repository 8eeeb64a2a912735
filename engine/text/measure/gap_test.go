package measure

import (
	"math"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Tests of this file run as part of the measure test suite.

func (env *MeasureTestEnviron) TestNearestGapAboveText() {
	gap, err := NearestGap(env.plain, "abc\nabc", 700, -1, metrics.Pixels(12))
	env.Require().NoError(err)
	env.Equal(Gap{}, gap)
}

func (env *MeasureTestEnviron) TestNearestGapMidpoint() {
	for _, c := range []struct {
		x     float64
		index int
		pos   float64
	}{
		{-5, 0, 0},
		{0, 0, 0},
		{250, 0, 0},
		{300, 0, 0}, // exactly at the midpoint of 'a'
		{301, 1, 600},
		{600, 1, 600},
		{899, 1, 600},
		{901, 2, 1200},
		{1499, 2, 1200},
		{1501, 3, 1800},
		{5000, 3, 1800},
	} {
		gap, err := NearestGap(env.plain, "abc", c.x, 10, metrics.Unscaled)
		env.Require().NoError(err)
		env.Equal(Gap{Index: c.index, X: c.pos, Line: 0}, gap, "x = %g", c.x)
	}
}

func (env *MeasureTestEnviron) TestNearestGapLines() {
	text := "abc\nab"
	// default line height is one em, i.e. 2048 units when unscaled
	gap, _ := NearestGap(env.plain, text, 700, 2048, metrics.Unscaled)
	env.Equal(Gap{Index: 1, X: 600, Line: 1}, gap)
	gap, _ = NearestGap(env.plain, text, 700, 2047, metrics.Unscaled)
	env.Equal(Gap{Index: 1, X: 600, Line: 0}, gap)
	gap, _ = NearestGap(env.plain, text, 0, 5000, metrics.Unscaled)
	env.Equal(Gap{Index: 2, X: 1200, Line: 1}, gap, "below last line clamps to its end")
	gap, _ = NearestGap(env.plain, text, 700, 15, metrics.Unscaled, LineHeight(10))
	env.Equal(Gap{Index: 1, X: 600, Line: 1}, gap)
	// scaled: one em is 20.48 pixels, 'a' is 6 pixels wide
	gap, _ = NearestGap(env.plain, text, 3.5, 21, metrics.Pixels(20.48))
	env.Equal(1, gap.Line)
	env.Equal(1, gap.Index)
	env.InDelta(6.0, gap.X, 1e-9)
}

func (env *MeasureTestEnviron) TestNearestGapKerning() {
	// "ab" kerned: a spans [0,600], pen after a is 500
	gap, _ := NearestGap(env.kerned, "abc", 550, 0, metrics.Unscaled, Kerning(true))
	env.Equal(Gap{Index: 1, X: 500, Line: 0}, gap)
	gap, _ = NearestGap(env.kerned, "abc", 550, 0, metrics.Unscaled)
	env.Equal(Gap{Index: 1, X: 600, Line: 0}, gap)
}

func (env *MeasureTestEnviron) TestNearestGapInvalid() {
	_, err := NearestGap(env.plain, "abc", 10, 10, metrics.Unscaled, LineHeight(0))
	env.Equal(core.EINVALID, core.Code(err))
	_, err = NearestGap(env.plain, "abc", math.NaN(), 10, metrics.Unscaled)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = NearestGap(env.plain, "abc", 10, 10, metrics.Pixels(math.Inf(1)))
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *MeasureTestEnviron) TestPositionAt() {
	text := "abc\nab"
	for _, c := range []struct {
		index int
		x     float64
		line  int
	}{
		{-3, 0, 0},
		{0, 0, 0},
		{2, 1200, 0},
		{3, 1800, 0},
		{4, 0, 1},
		{5, 600, 1},
		{6, 1200, 1},
		{100, 1200, 1},
	} {
		x, line, err := PositionAt(env.plain, text, c.index, metrics.Unscaled)
		env.Require().NoError(err)
		env.Equal(c.x, x, "x at index %d", c.index)
		env.Equal(c.line, line, "line at index %d", c.index)
	}
	x, line, _ := PositionAt(env.plain, "a\n\nb", 3, metrics.Unscaled)
	env.Equal(0.0, x)
	env.Equal(2, line)
}

func (env *MeasureTestEnviron) TestPositionAtKerning() {
	x, _, _ := PositionAt(env.kerned, "abc", 1, metrics.Unscaled, Kerning(true))
	env.Equal(500.0, x)
	x, _, _ = PositionAt(env.kerned, "abc", 2, metrics.Unscaled, Kerning(true))
	env.Equal(1150.0, x, "kerning of (b,c) is part of b's advance")
}

func (env *MeasureTestEnviron) TestPositionAgreesWithWidth() {
	for _, text := range []string{"", "a", "abc", "abcab cab", "xaybzc"} {
		for _, kern := range []bool{false, true} {
			size := metrics.Pixels(22)
			w, err := Width(env.kerned, text, size, Kerning(kern))
			env.Require().NoError(err)
			x, _, err := PositionAt(env.kerned, text, len([]rune(text)), size, Kerning(kern))
			env.Require().NoError(err)
			env.Equal(w, x, "text %q", text)
		}
	}
}

func (env *MeasureTestEnviron) TestGapAgreesWithPosition() {
	text := "abcab cab"
	size := metrics.Pixels(17)
	for x := 0.0; x < 80; x += 1.5 {
		gap, err := NearestGap(env.kerned, text, x, 3, size, Kerning(true))
		env.Require().NoError(err)
		pos, _, err := PositionAt(env.kerned, text, gap.Index, size, Kerning(true))
		env.Require().NoError(err)
		env.Equal(pos, gap.X, "x = %g", x)
	}
}

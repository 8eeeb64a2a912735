package measure

import (
	"strings"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Tests of this file run as part of the measure test suite.
// Widths in metrics env.kerned: a, b, c = 600, space = 300, others = 500.

func (env *MeasureTestEnviron) TestWrapWords() {
	for _, c := range []struct {
		text   string
		max    float64
		result string
	}{
		{"abc abc abc", 4000, "abc abc\nabc"},
		{"abc abc abc", 3900, "abc abc\nabc"},
		{"abc abc abc", 3899, "abc\nabc\nabc"},
		{"abc abc abc", 100, "abc\nabc\nabc"},
		{"abc   abc\tabc", 4000, "abc abc\nabc"},
		{"  abc abc  ", 10000, "abc abc"},
		{"abc\n\nabc abc", 10000, "abc\n\nabc abc"},
		{"", 100, ""},
	} {
		s, err := Wrap(env.kerned, c.text, c.max, metrics.Unscaled)
		env.Require().NoError(err)
		env.Equal(c.result, s, "wrapping %q at %g", c.text, c.max)
	}
}

func (env *MeasureTestEnviron) TestWrapChars() {
	for _, c := range []struct {
		text   string
		max    float64
		result string
	}{
		{"abcabc", 1300, "ab\nca\nbc"},
		{"abcabc", 100, "a\nb\nc\na\nb\nc"},
		{"ab c", 1300, "ab\n c"},
		{"abc\nab", 1300, "ab\nc\nab"},
	} {
		s, err := Wrap(env.kerned, c.text, c.max, metrics.Unscaled, WrapBy(WrapChar))
		env.Require().NoError(err)
		env.Equal(c.result, s, "wrapping %q at %g", c.text, c.max)
	}
}

func (env *MeasureTestEnviron) TestWrapKerning() {
	// kerned: "ab" is 1100 wide, "abc" 1750, "ca" 1200
	s, _ := Wrap(env.kerned, "abcab", 1100, metrics.Unscaled, WrapBy(WrapChar), Kerning(true))
	env.Equal("ab\nc\nab", s)
	s, _ = Wrap(env.kerned, "abcab", 1100, metrics.Unscaled, WrapBy(WrapChar))
	env.Equal("a\nb\nc\na\nb", s)
}

func (env *MeasureTestEnviron) TestWrapLinesFit() {
	text := "This paragraph mixes known glyphs like abc and cab with unknown ones"
	size := metrics.Pixels(22)
	for _, mode := range []WrapMode{WrapWord, WrapChar} {
		for _, max := range []float64{5, 40, 100, 250} {
			s, err := Wrap(env.kerned, text, max, size, WrapBy(mode), Kerning(true))
			env.Require().NoError(err)
			for _, line := range strings.Split(s, "\n") {
				env.NotEmpty(line, "mode %s produced an empty line", mode)
				w, _ := Width(env.kerned, line, size, Kerning(true))
				if w > max {
					if mode == WrapChar {
						env.Len([]rune(line), 1, "only a single code-point may overflow")
					} else {
						env.NotContains(line, " ", "only a single word may overflow")
					}
				}
			}
		}
	}
}

func (env *MeasureTestEnviron) TestWrapReversible() {
	text := "  the quick\tbrown fox   jumps over  the lazy dog "
	normalized := strings.Join(strings.Fields(text), " ")
	for _, max := range []float64{0, 30, 60, 1000} {
		s, err := Wrap(env.kerned, text, max, metrics.Pixels(14))
		env.Require().NoError(err)
		env.Equal(normalized, strings.ReplaceAll(s, "\n", " "), "at max width %g", max)
	}
	s, _ := Wrap(env.kerned, "abcabc cab", 1300, metrics.Unscaled, WrapBy(WrapChar))
	env.Equal("abcabc cab", strings.ReplaceAll(s, "\n", ""))
}

func (env *MeasureTestEnviron) TestWrapInvalid() {
	_, err := Wrap(env.kerned, "abc", -1, metrics.Unscaled)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = Wrap(env.kerned, "abc", 100, metrics.Unscaled, WrapBy(WrapMode(7)))
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *MeasureTestEnviron) TestSplitWordsAtWhitespace() {
	env.Equal([]string{"ab", "c", "ba"}, splitWords("  ab \t c  ba "))
	env.Empty(splitWords(" \t "))
	env.Empty(splitWords(""))
}

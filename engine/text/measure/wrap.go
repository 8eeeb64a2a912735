package measure

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/fontmetrics/core/font/metrics"
	"github.com/npillmayer/uax/segment"
)

// Wrap breaks text into lines no wider than maxWidth at a given size and
// returns them joined by '\n'. Line breaks already present in text always
// start a new line.
//
// With WrapWord (the default) lines break at whitespace. Words of a line are
// joined by a single space, thus runs of whitespace are collapsed. A word
// wider than maxWidth gets a line of its own.
// With WrapChar lines break between code-points and whitespace is kept.
// A single code-point wider than maxWidth gets a line of its own.
//
// Empty input lines are kept as empty lines; no other empty lines are produced.
//
// Wrap returns a core.EINVALID error for negative widths and for invalid
// sizes or options.
func Wrap(m *metrics.Metrics, text string, maxWidth float64, size metrics.Size,
	opts ...Option) (string, error) {
	//
	q, err := prepare(m, size, opts)
	if err != nil {
		return "", err
	}
	if err = checkMaxWidth(maxWidth); err != nil {
		return "", err
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		switch q.wrap {
		case WrapChar:
			lines = append(lines, q.wrapRunes(para, maxWidth)...)
		default:
			lines = append(lines, q.wrapWords(para, maxWidth)...)
		}
	}
	tracer().Debugf("wrap (%s): %d lines at max width %g", q.wrap, len(lines), maxWidth)
	return strings.Join(lines, "\n"), nil
}

func (q query) wrapWords(para string, maxWidth float64) []string {
	words := splitWords(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var line []rune
	for _, word := range words {
		if len(line) == 0 {
			line = []rune(word)
			continue
		}
		candidate := make([]rune, 0, len(line)+1+len(word))
		candidate = append(append(append(candidate, line...), ' '), []rune(word)...)
		if q.width(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, string(line))
		line = []rune(word)
	}
	return append(lines, string(line))
}

func (q query) wrapRunes(para string, maxWidth float64) []string {
	runes := []rune(para)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := range runes {
		if i > start && q.width(runes[start:i+1]) > maxWidth {
			lines = append(lines, string(runes[start:i]))
			start = i
		}
	}
	return append(lines, string(runes[start:]))
}

// splitWords segments a paragraph at whitespace. The segmenter delivers
// alternating spans of whitespace and non-whitespace; the latter are words.
func splitWords(para string) []string {
	seg := segment.NewSegmenter() // default breaker splits at whitespace
	seg.Init(strings.NewReader(para))
	var words []string
	for seg.Next() {
		if fragment := seg.Text(); !isspace(fragment) {
			words = append(words, fragment)
		}
	}
	return words
}

func isspace(fragment string) bool {
	r, width := utf8.DecodeRuneInString(fragment)
	if width == 0 || r == utf8.RuneError {
		return fragment == ""
	}
	return unicode.IsSpace(r)
}

package measure

import (
	"math"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// Ellipsis is the default terminator for Shorten.
const Ellipsis = "…"

// WrapMode specifies the granularity of line breaking for Wrap.
type WrapMode uint8

const (
	// WrapWord breaks at whitespace only. Words wider than the line
	// occupy a line of their own.
	WrapWord WrapMode = iota

	// WrapChar breaks between any two code-points.
	WrapChar
)

func (mode WrapMode) String() string {
	switch mode {
	case WrapWord:
		return "word"
	case WrapChar:
		return "char"
	}
	return "unknown"
}

// Option configures a query.
type Option func(*config)

type config struct {
	kern          bool
	terminator    string
	wrap          WrapMode
	lineHeight    float64
	hasLineHeight bool
}

func defaultConfig() config {
	return config{
		terminator: Ellipsis,
		wrap:       WrapWord,
	}
}

// Kerning turns application of the kerning table on or off.
// Kerning is off by default.
func Kerning(on bool) Option {
	return func(c *config) {
		c.kern = on
	}
}

// Terminator sets the string Shorten appends to truncated lines.
// The default is an ellipsis (U+2026). An empty terminator is allowed.
func Terminator(t string) Option {
	return func(c *config) {
		c.terminator = t
	}
}

// WrapBy sets the line breaking granularity of Wrap. The default is WrapWord.
func WrapBy(mode WrapMode) Option {
	return func(c *config) {
		c.wrap = mode
	}
}

// LineHeight sets the vertical line pitch NearestGap uses to select a line,
// in output space. It defaults to one em, i.e. the pixel size for scaled
// queries and units per em for unscaled ones.
func LineHeight(h float64) Option {
	return func(c *config) {
		c.lineHeight = h
		c.hasLineHeight = true
	}
}

func (c config) validate() error {
	if c.hasLineHeight && (!isFinite(c.lineHeight) || c.lineHeight <= 0) {
		return core.Error(core.EINVALID, "line height must be a positive number, is %g", c.lineHeight)
	}
	if c.wrap != WrapWord && c.wrap != WrapChar {
		return core.Error(core.EINVALID, "unknown wrap mode %d", c.wrap)
	}
	return nil
}

// query bundles everything a single call needs: validated options,
// the walker over the font's tables, and the scaler for the requested size.
type query struct {
	config
	walker
	scale metrics.Scaler
}

func prepare(m *metrics.Metrics, size metrics.Size, opts []Option) (query, error) {
	q := query{config: defaultConfig()}
	for _, opt := range opts {
		opt(&q.config)
	}
	if err := q.config.validate(); err != nil {
		return q, err
	}
	s, err := m.Scaler(size) // panics on invalid metrics
	if err != nil {
		return q, err
	}
	q.scale = s
	q.walker = walker{m: m, kern: q.config.kern}
	return q, nil
}

// checkMaxWidth validates a width budget.
func checkMaxWidth(w float64) error {
	if !isFinite(w) || w < 0 {
		return core.Error(core.EINVALID, "maximum width must be a non-negative number, is %g", w)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

/*
Package measure answers geometric questions about text set in a font with
known metrics: how wide is a string, where can it be shortened to fit, which
gap between characters is closest to a pixel position, where does a character
start, and how does a paragraph wrap into lines of a given width.

All queries are pure functions of their arguments. They share one walker over
the code-points of a line, which sums advances and (optionally) kerning
adjustments in font units and scales once at the end, so every query agrees
with Width on the width of any substring.

Text is split into lines at '\n'. Queries are line-aware where it makes sense:
Width reports the widest line, Shorten and Wrap treat lines independently,
NearestGap and PositionAt report line indices.

There is no shaping: one code-point is one glyph, measured by its advance
width. Code-points missing from the font are measured with the font's
fallback advance and never produce an error.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmetrics.measure'
func tracer() tracing.Trace {
	return tracing.Select("fontmetrics.measure")
}

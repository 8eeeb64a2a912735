/*
Package metrics holds the immutable metric tables of a font: advance widths
per code-point, pairwise kerning, and the font-wide vertical extents.

A Metrics value is built once, usually by a table builder such as
package font (from an OpenType file) or package monospace, and is read-only
afterwards. All raw values are in font design units; conversion to pixels
is always

	value * pixels / unitsPerEm

and is performed by a Scaler. The zero Size (Unscaled) returns raw font units.

Code-points not present in the advance table are measured with the
advance of the fallback entry at code-point 0, the "missing glyph"
(sometimes called tofu). Supported lets clients check up front whether
text will render with real glyphs.

Metrics values may be shared between any number of goroutines without
synchronization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmetrics.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontmetrics.fonts")
}

/*
Package monospace builds metric tables for monospace output, such as
terminals or fixed-pitch grids.

Every grapheme occupies one or two cells, depending on its East Asian Width
property (Unicode UAX #11). One em spans two cells, so a size given in pixels
is the width of a double-width cell.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontmetrics.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fontmetrics.fonts")
}

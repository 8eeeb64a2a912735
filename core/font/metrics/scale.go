package metrics

import (
	"math"
	"strconv"

	"github.com/npillmayer/fontmetrics/core"
)

// Size is a font size in pixels. The zero value requests raw font units.
type Size float64

// Unscaled requests measurements in raw font design units.
const Unscaled Size = 0

// Pixels returns a size of px pixels.
func Pixels(px float64) Size {
	return Size(px)
}

// IsUnscaled is a predicate: does this size request raw font units?
func (size Size) IsUnscaled() bool {
	return size == Unscaled
}

// Validate returns a core.EINVALID error if size is negative, NaN or infinite.
func (size Size) Validate() error {
	f := float64(size)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return core.Error(core.EINVALID, "pixel size must be a non-negative number, is %g", f)
	}
	return nil
}

func (size Size) String() string {
	if size.IsUnscaled() {
		return "unscaled"
	}
	return strconv.FormatFloat(float64(size), 'g', -1, 64) + "px"
}

// Scaler converts raw font units to output space.
type Scaler struct {
	pixels float64
	upem   float64
	raw    bool
}

// Scaler creates a Scaler for a given size. Sizes are validated,
// see Size.Validate.
func (m *Metrics) Scaler(size Size) (Scaler, error) {
	m.Check()
	if err := size.Validate(); err != nil {
		return Scaler{}, err
	}
	if size.IsUnscaled() {
		return Scaler{raw: true, upem: float64(m.upem)}, nil
	}
	return Scaler{pixels: float64(size), upem: float64(m.upem)}, nil
}

// Apply converts a value in font units to output space.
func (s Scaler) Apply(v float64) float64 {
	if s.raw {
		return v
	}
	return v * s.pixels / s.upem
}

// Multiplier returns the factor applied to raw font units.
// It is 1 for unscaled output.
func (s Scaler) Multiplier() float64 {
	if s.raw {
		return 1
	}
	return s.pixels / s.upem
}

// Em returns the size of one em in output space: the pixel size, or
// units per em for unscaled output.
func (s Scaler) Em() float64 {
	if s.raw {
		return s.upem
	}
	return s.pixels
}

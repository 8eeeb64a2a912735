/*
Package font loads OpenType fonts and builds metric tables from them.

The query engine of this module does not parse fonts. It consumes a
metrics.Metrics value, which this package extracts from an OpenType/TrueType
font file with the help of golang.org/x/image/font/sfnt:

	f, err := font.LoadOpenTypeFont("/path/to/GentiumPlus-R.ttf")
	...
	m, err := f.Metrics(font.ExtractOptions{})

A fallback font (Go Sans) is always present, and a Registry caches the metrics
of fonts by name, falling back to Go Sans for unknown fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontmetrics.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontmetrics.fonts")
}

// ScalableFont is a parsed OpenType font.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont reads and parses a font file.
// A missing file results in a core.EMISSING error.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.WrapError(err, core.EMISSING, "font not found: %s", fontfile)
		}
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of a font.
// Invalid data results in a core.EINVALID error.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	tracer().Debugf("parsed font %q", f.Fontname)
	return
}

// FindSystemFont locates a font installed on the system by (file) name and loads it.
// A font which cannot be found results in a core.EMISSING error.
func FindSystemFont(name string) (*ScalableFont, error) {
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return nil, core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return LoadOpenTypeFont(fpath)
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else fails.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	f.Fontname = "Go Sans"
	f.Filepath = "internal"
	return f
}

// NormalizeFontname returns a canonical form of a font's name, suitable as
// a lookup key: lower case, no file extension, blanks replaced by underscores.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

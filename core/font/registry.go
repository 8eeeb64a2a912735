package font

import (
	"sync"

	"github.com/npillmayer/fontmetrics/core"
	"github.com/npillmayer/fontmetrics/core/font/metrics"
)

// --- Font Registry ---------------------------------------------------------

// Registry caches fonts and their extracted metrics by normalized name.
// It is safe for concurrent use.
type Registry struct {
	sync.Mutex
	opts    ExtractOptions
	fonts   map[string]*ScalableFont
	metrics map[string]*metrics.Metrics
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry returns a registry shared by all clients, using default
// extraction options.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(ExtractOptions{})
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry, which will extract metrics with opts.
func NewRegistry(opts ExtractOptions) *Registry {
	return &Registry{
		opts:    opts,
		fonts:   make(map[string]*ScalableFont),
		metrics: make(map[string]*metrics.Metrics),
	}
}

// StoreFont registers a font under its (normalized) name.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
	delete(fr.metrics, fname)
}

// Metrics returns the metric tables of a registered font, extracting them on
// first use. If no font is registered under name, Metrics returns the metrics
// of the fallback font together with a core.EMISSING error.
func (fr *Registry) Metrics(name string) (*metrics.Metrics, error) {
	fname := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if m, ok := fr.metrics[fname]; ok {
		return m, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		m, err := f.Metrics(fr.opts)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches its metrics", fname)
		fr.metrics[fname] = m
		return m, nil
	}
	tracer().Infof("registry does not contain font %s", name)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	const fallback = "<fallback>"
	if m, ok := fr.metrics[fallback]; ok {
		return m, err
	}
	m, xerr := FallbackFont().Metrics(fr.opts)
	if xerr != nil {
		return nil, xerr
	}
	fr.metrics[fallback] = m
	return m, err
}

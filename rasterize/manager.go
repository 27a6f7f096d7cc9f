package rasterize

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// SVGConverterManager tries standalone SVG converters in priority order,
// auto-detecting which are installed (§4.8's rasterizer, generalized
// with a defensive fallback chain beyond the primary browser screenshot
// path).
type SVGConverterManager struct {
	converters []SVGConverter
	mu         sync.RWMutex
}

// NewSVGConverterManager auto-detects converters, preferring native
// tools (Inkscape, rsvg-convert) and falling back to the pure-Go
// oksvg/rasterx rasterizer, which is always available.
func NewSVGConverterManager() *SVGConverterManager {
	m := &SVGConverterManager{}
	m.RefreshConverters()
	return m
}

func (m *SVGConverterManager) RefreshConverters() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.converters = lo.Filter([]SVGConverter{
		NewInkscapeConverter(),
		NewRSVGConverter(),
		NewPureGoConverter(),
	}, func(c SVGConverter, _ int) bool { return c.IsAvailable() })
}

// ConvertWithFallback tries every available converter in order until
// one succeeds.
func (m *SVGConverterManager) ConvertWithFallback(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error {
	m.mu.RLock()
	converters := make([]SVGConverter, len(m.converters))
	copy(converters, m.converters)
	m.mu.RUnlock()

	if opts == nil {
		opts = DefaultConvertOptions()
	}

	var lastErr error
	for _, c := range converters {
		if err := c.Convert(ctx, svgPath, outputPath, opts); err != nil {
			lastErr = fmt.Errorf("%s: %w", c.Name(), err)
			continue
		}
		return nil
	}
	if lastErr == nil {
		return fmt.Errorf("no SVG converter available")
	}
	return fmt.Errorf("all SVG converters failed, last error: %w", lastErr)
}

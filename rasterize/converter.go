// Package rasterize bakes the constructs PowerPoint cannot represent —
// CSS gradients, background images, SVGs, radius-on-image, object-fit
// positioning — into PNG files by screenshotting isolated offscreen DOM
// nodes (§4.8). A secondary fallback chain of standalone SVGConverters
// handles the `svg` element variant specifically if the primary
// in-browser screenshot fails.
package rasterize

import (
	"context"
	"fmt"
)

// SVGConverter converts a standalone SVG file to a raster image. It is
// the fallback path for `svg` elements only — gradients and background
// images always require the live page's own rendering and can't be
// served by a standalone converter.
type SVGConverter interface {
	Name() string
	IsAvailable() bool
	Convert(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error
}

// ConvertOptions configures a standalone SVG-to-PNG conversion.
type ConvertOptions struct {
	Width, Height int
	DPI           int
}

func DefaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{DPI: 96}
}

// ConverterError reports which backend failed and how.
type ConverterError struct {
	Converter string
	Operation string
	Err       error
}

func (e *ConverterError) Error() string {
	return fmt.Sprintf("%s converter %s failed: %v", e.Converter, e.Operation, e.Err)
}

func (e *ConverterError) Unwrap() error { return e.Err }

func newConverterError(converter, operation string, err error) error {
	return &ConverterError{Converter: converter, Operation: operation, Err: err}
}

package rasterize

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// PureGoConverter rasterizes SVG markup with oksvg/rasterx instead of an
// external binary. It is always available and is the last resort in the
// fallback chain.
type PureGoConverter struct{}

func NewPureGoConverter() *PureGoConverter { return &PureGoConverter{} }

func (c *PureGoConverter) Name() string { return "oksvg" }

func (c *PureGoConverter) IsAvailable() bool { return true }

func (c *PureGoConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error {
	raw, err := os.ReadFile(svgPath)
	if err != nil {
		return newConverterError(c.Name(), "read svg", err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(raw), oksvg.StrictErrorMode)
	if err != nil {
		return newConverterError(c.Name(), "parse svg", err)
	}

	width, height := float64(opts.Width), float64(opts.Height)
	if width <= 0 || height <= 0 {
		if w, h, err := intrinsicSize(string(raw)); err == nil {
			width, height = w, h
		} else {
			width, height = 400, 400
		}
	}

	icon.SetTarget(0, 0, width, height)

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)
	icon.Draw(raster, 1.0)

	f, err := os.Create(outputPath)
	if err != nil {
		return newConverterError(c.Name(), "create output", err)
	}
	defer f.Close()

	if err := png.Encode(f, rgba); err != nil {
		return newConverterError(c.Name(), "encode png", fmt.Errorf("%w", err))
	}
	return nil
}

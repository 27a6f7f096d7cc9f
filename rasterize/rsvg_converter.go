package rasterize

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// RSVGConverter shells out to `rsvg-convert`.
type RSVGConverter struct{}

func NewRSVGConverter() *RSVGConverter { return &RSVGConverter{} }

func (c *RSVGConverter) Name() string { return "rsvg-convert" }

func (c *RSVGConverter) IsAvailable() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

func (c *RSVGConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error {
	if !c.IsAvailable() {
		return newConverterError(c.Name(), "convert", exec.ErrNotFound)
	}
	if opts == nil {
		opts = DefaultConvertOptions()
	}

	args := []string{"--format=png", "--output=" + outputPath}
	if opts.Width > 0 {
		args = append(args, "--width="+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		args = append(args, "--height="+strconv.Itoa(opts.Height))
	}
	if opts.DPI > 0 {
		args = append(args, "--dpi-x="+strconv.Itoa(opts.DPI), "--dpi-y="+strconv.Itoa(opts.DPI))
	}
	args = append(args, svgPath)

	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return newConverterError(c.Name(), "convert", fmt.Errorf("%w: %s", err, out))
	}
	return nil
}

package rasterize

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// InkscapeConverter shells out to `inkscape` to rasterize a standalone
// SVG file.
type InkscapeConverter struct{}

func NewInkscapeConverter() *InkscapeConverter { return &InkscapeConverter{} }

func (c *InkscapeConverter) Name() string { return "inkscape" }

func (c *InkscapeConverter) IsAvailable() bool {
	_, err := exec.LookPath("inkscape")
	return err == nil
}

func (c *InkscapeConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error {
	if !c.IsAvailable() {
		return newConverterError(c.Name(), "convert", exec.ErrNotFound)
	}
	if opts == nil {
		opts = DefaultConvertOptions()
	}

	args := []string{svgPath, "--export-filename=" + outputPath, "--export-type=png", "--export-background-opacity=0"}
	if opts.Width > 0 {
		args = append(args, "--export-width="+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		args = append(args, "--export-height="+strconv.Itoa(opts.Height))
	}
	if opts.DPI > 0 {
		args = append(args, "--export-dpi="+strconv.Itoa(opts.DPI))
	}

	cmd := exec.CommandContext(ctx, "inkscape", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return newConverterError(c.Name(), "convert", fmt.Errorf("%w: %s", err, out))
	}
	return nil
}

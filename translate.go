// Package html2slide is the HTML-to-slide translation engine: it loads
// a single rendered HTML document representing one presentation slide
// into a headless browser, inspects its laid-out DOM, and emits a
// declarative slide description to an external presentation builder
// (§1, §6).
package html2slide

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/domslide/html2slide/browser"
	"github.com/domslide/html2slide/emit"
	"github.com/domslide/html2slide/extract"
	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/rasterize"
	"github.com/domslide/html2slide/shutdown"
	"github.com/domslide/html2slide/slidebuilder"
	"github.com/domslide/html2slide/style"
	"github.com/domslide/html2slide/validate"
)

// Options configures one Translate call (§6).
type Options struct {
	Slide  slidebuilder.Slide
	TmpDir string
}

// BuilderOption mutates Options; Translate applies them in order.
type BuilderOption func(*Options)

// WithSlide populates an existing slide instead of adding a new one.
func WithSlide(s slidebuilder.Slide) BuilderOption {
	return func(o *Options) { o.Slide = s }
}

// WithTmpDir overrides the directory rasterized images are written
// under; default is a fresh directory under the OS temp root.
func WithTmpDir(dir string) BuilderOption {
	return func(o *Options) { o.TmpDir = dir }
}

// Result is Translate's return value: the populated slide plus the
// placeholder rectangles the caller uses to place non-HTML content.
type Result struct {
	Slide        slidebuilder.Slide
	Placeholders []model.Placeholder
}

// Translate is the engine's entry point (§6): translate(htmlFile,
// presentation, options) → {slide, placeholders}.
func Translate(ctx context.Context, htmlFile string, presentation slidebuilder.Presentation, opts ...BuilderOption) (*Result, error) {
	var options Options
	for _, o := range opts {
		o(&options)
	}

	absHTML, err := filepath.Abs(htmlFile)
	if err != nil {
		return nil, hostFailure(htmlFile, fmt.Errorf("resolve path: %w", err))
	}

	tmpDir := options.TmpDir
	if tmpDir == "" {
		tmpDir, err = os.MkdirTemp("", "html2slide-*")
		if err != nil {
			return nil, hostFailure(htmlFile, fmt.Errorf("create temp dir: %w", err))
		}
	}

	br := browser.New()
	shutdown.AddHook("html2slide.browser", func() { _ = br.Close() })
	defer br.Close()

	page, err := br.NewPage(ctx)
	if err != nil {
		return nil, hostFailure(htmlFile, err)
	}
	defer page.Close()

	if err := page.Load(absHTML); err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	dims, err := extract.ProbeDimensions(page)
	if err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	if err := page.SetViewport(int(dims.WidthPx), int(dims.HeightPx)); err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	desc, err := extract.Extract(page)
	if err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	rasterizer := rasterize.New(page, tmpDir, dims.WidthPx, dims.HeightPx)
	if err := rasterizer.Run(ctx, desc); err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	layout := presentation.Layout()
	verrs := validate.Run(desc, validate.Options{
		Dimensions: struct{ WidthPx, HeightPx, ScrollWidthPx, ScrollHeightPx float64 }{
			WidthPx: dims.WidthPx, HeightPx: dims.HeightPx,
			ScrollWidthPx: dims.ScrollWidthPx, ScrollHeightPx: dims.ScrollHeightPx,
		},
		LayoutWidthIn:  style.EMUToIn(layout.WidthEMU),
		LayoutHeightIn: style.EMUToIn(layout.HeightEMU),
		HTMLDir:        filepath.Dir(absHTML),
	})
	if verrs.Len() > 0 {
		return nil, prefixed(htmlFile, verrs)
	}

	slide := options.Slide
	if slide == nil {
		slide = presentation.AddSlide()
	}

	if err := emit.Run(slide, desc); err != nil {
		return nil, hostFailure(htmlFile, err)
	}

	logger.Infof("translated %s: %d elements, %d placeholders", htmlFile, len(desc.Elements), len(desc.Placeholders))

	return &Result{Slide: slide, Placeholders: desc.Placeholders}, nil
}

// hostFailure wraps a category-4 failure (§7): browser/filesystem
// errors surface immediately, prefixed with the HTML filename.
func hostFailure(htmlFile string, err error) error {
	return prefixed(htmlFile, err)
}

// prefixed implements §6's failure contract: the error message is
// prefixed with the HTML filename unless it already starts with it.
func prefixed(htmlFile string, err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, htmlFile) {
		return err
	}
	return fmt.Errorf("%s: %s", htmlFile, msg)
}

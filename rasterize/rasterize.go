package rasterize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/domslide/html2slide/browser"
	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/style"
)

// Rasterizer replaces every intermediate record a model.Description
// carries (svg, bgImage, gradient elements; css/gradient backgrounds;
// image records that need CSS baked in) with a PNG file on disk (§4.8).
// It owns the live page used for extraction — the helper-element
// screenshot relies on the page's own rendering of gradients and
// object-fit geometry, so a fresh, unrelated page can't substitute.
type Rasterizer struct {
	page                           *browser.Page
	tmpDir                         string
	bodyWidthPx, bodyHeightPx      float64
	manager                        *SVGConverterManager
	blanked                        bool
}

// New returns a Rasterizer writing baked images under tmpDir. bodyWidthPx
// and bodyHeightPx are the page's forced viewport size — the background
// is always rasterized at full body size.
func New(page *browser.Page, tmpDir string, bodyWidthPx, bodyHeightPx float64) *Rasterizer {
	return &Rasterizer{page: page, tmpDir: tmpDir, bodyWidthPx: bodyWidthPx, bodyHeightPx: bodyHeightPx, manager: NewSVGConverterManager()}
}

// Run walks desc in place, baking every construct that needs it. Per
// §7's category-4 host failures, a screenshot or filesystem error here
// fails fast rather than accumulating like a validation error.
func (r *Rasterizer) Run(ctx context.Context, desc *model.Description) error {
	if err := os.MkdirAll(r.tmpDir, 0o755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	if desc.Background.NeedsRasterization() {
		path, err := r.bakeBackground(ctx, desc.Background)
		if err != nil {
			return fmt.Errorf("rasterize background: %w", err)
		}
		desc.Background = model.Background{Kind: model.BackgroundImage, Path: path}
	}

	for i, el := range desc.Elements {
		baked, err := r.bakeElement(ctx, el)
		if err != nil {
			return fmt.Errorf("rasterize element %d: %w", i, err)
		}
		if baked != nil {
			desc.Elements[i] = baked
		}
	}

	return nil
}

func (r *Rasterizer) uniqueFilename() string {
	return fmt.Sprintf("%d-%s.png", time.Now().UnixNano(), uuid.NewString()[:8])
}

func (r *Rasterizer) ensureBlanked() error {
	if r.blanked {
		return nil
	}
	if err := r.page.Evaluate(blankPageScript, nil); err != nil {
		return err
	}
	r.blanked = true
	return nil
}

func (r *Rasterizer) bakeBackground(ctx context.Context, bg model.Background) (string, error) {
	cssStyle := model.CSSBackgroundStyle{}
	if bg.CSSStyle != nil {
		cssStyle = *bg.CSSStyle
	}
	if bg.GradientValue != "" {
		cssStyle.BackgroundImage = bg.GradientValue
		if cssStyle.BackgroundRepeat == "" {
			cssStyle.BackgroundRepeat = "no-repeat"
		}
		if cssStyle.BackgroundSize == "" {
			cssStyle.BackgroundSize = "cover"
		}
		if cssStyle.BackgroundPosition == "" {
			cssStyle.BackgroundPosition = "center"
		}
	}
	return r.screenshotCSSHelper(0, 0, r.bodyWidthPx, r.bodyHeightPx, cssStyle)
}

func (r *Rasterizer) bakeElement(ctx context.Context, el model.Element) (model.Element, error) {
	switch e := el.(type) {
	case model.SVG:
		return r.bakeSVG(ctx, e)
	case model.BgImage:
		return r.bakeBgImage(ctx, e)
	case model.Gradient:
		return r.bakeGradient(ctx, e)
	case model.Image:
		return r.bakeImageIfNeeded(ctx, e)
	default:
		return nil, nil
	}
}

func (r *Rasterizer) bakeSVG(ctx context.Context, e model.SVG) (model.Element, error) {
	leftPx, topPx := style.InToPx(e.Position.X), style.InToPx(e.Position.Y)
	wPx, hPx := style.InToPx(e.Position.W), style.InToPx(e.Position.H)

	path, err := r.screenshotSVGHelper(leftPx, topPx, wPx, hPx, e.Markup)
	if err != nil {
		fallbackPath, fbErr := r.fallbackRasterizeSVG(ctx, e.Markup, int(wPx), int(hPx))
		if fbErr != nil {
			return nil, fmt.Errorf("primary screenshot failed (%v), fallback chain failed: %w", err, fbErr)
		}
		path = fallbackPath
	}
	return model.Image{Position: e.Position, Src: path}, nil
}

func (r *Rasterizer) fallbackRasterizeSVG(ctx context.Context, markup string, width, height int) (string, error) {
	svgPath := filepath.Join(r.tmpDir, r.uniqueFilename()+".svg")
	if err := os.WriteFile(svgPath, []byte(markup), 0o644); err != nil {
		return "", fmt.Errorf("write fallback svg: %w", err)
	}
	outPath := filepath.Join(r.tmpDir, r.uniqueFilename())
	if err := r.manager.ConvertWithFallback(ctx, svgPath, outPath, &ConvertOptions{Width: width, Height: height}); err != nil {
		return "", err
	}
	return outPath, nil
}

func (r *Rasterizer) bakeBgImage(ctx context.Context, e model.BgImage) (model.Element, error) {
	leftPx, topPx := style.InToPx(e.Position.X), style.InToPx(e.Position.Y)
	wPx, hPx := style.InToPx(e.Position.W), style.InToPx(e.Position.H)
	path, err := r.screenshotCSSHelper(leftPx, topPx, wPx, hPx, e.Style)
	if err != nil {
		return nil, err
	}
	return model.Image{Position: e.Position, Src: path}, nil
}

func (r *Rasterizer) bakeGradient(ctx context.Context, e model.Gradient) (model.Element, error) {
	leftPx, topPx := style.InToPx(e.Position.X), style.InToPx(e.Position.Y)
	wPx, hPx := style.InToPx(e.Position.W), style.InToPx(e.Position.H)
	cssStyle := model.CSSBackgroundStyle{BackgroundImage: e.Value, BackgroundRepeat: "no-repeat", BackgroundSize: "cover", BackgroundPosition: "center"}
	if e.Style != nil {
		cssStyle = *e.Style
	}
	path, err := r.screenshotCSSHelper(leftPx, topPx, wPx, hPx, cssStyle)
	if err != nil {
		return nil, err
	}
	return model.Image{Position: e.Position, Src: path}, nil
}

func (r *Rasterizer) bakeImageIfNeeded(ctx context.Context, e model.Image) (model.Element, error) {
	if e.Style == nil {
		return nil, nil
	}
	leftPx, topPx := style.InToPx(e.Position.X), style.InToPx(e.Position.Y)
	wPx, hPx := style.InToPx(e.Position.W), style.InToPx(e.Position.H)
	path, err := r.screenshotImageHelper(leftPx, topPx, wPx, hPx, e.Src, e.Style.ObjectFit, e.Style.ObjectPosition, e.Style.BorderRadius)
	if err != nil {
		return nil, err
	}
	return model.Image{Position: e.Position, Src: path}, nil
}

type helperBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r *Rasterizer) screenshotCSSHelper(left, top, width, height float64, s model.CSSBackgroundStyle) (string, error) {
	if err := r.ensureBlanked(); err != nil {
		return "", err
	}
	arg := struct {
		helperBox
		BackgroundImage    string `json:"backgroundImage"`
		BackgroundRepeat   string `json:"backgroundRepeat"`
		BackgroundSize     string `json:"backgroundSize"`
		BackgroundPosition string `json:"backgroundPosition"`
		BackgroundColor    string `json:"backgroundColor"`
	}{
		helperBox:          helperBox{left, top, width, height},
		BackgroundImage:    s.BackgroundImage,
		BackgroundRepeat:   s.BackgroundRepeat,
		BackgroundSize:     s.BackgroundSize,
		BackgroundPosition: s.BackgroundPosition,
		BackgroundColor:    s.BackgroundColor,
	}
	if err := r.page.EvaluateArg(createCSSHelperScript, arg, nil); err != nil {
		return "", fmt.Errorf("create css helper: %w", err)
	}
	return r.screenshotAndCleanup()
}

func (r *Rasterizer) screenshotSVGHelper(left, top, width, height float64, markup string) (string, error) {
	if err := r.ensureBlanked(); err != nil {
		return "", err
	}
	arg := struct {
		helperBox
		Markup string `json:"markup"`
	}{helperBox{left, top, width, height}, markup}
	if err := r.page.EvaluateArg(createSVGHelperScript, arg, nil); err != nil {
		return "", fmt.Errorf("create svg helper: %w", err)
	}
	return r.screenshotAndCleanup()
}

func (r *Rasterizer) screenshotImageHelper(left, top, width, height float64, src, objectFit, objectPosition, borderRadius string) (string, error) {
	if err := r.ensureBlanked(); err != nil {
		return "", err
	}
	arg := struct {
		helperBox
		Src            string `json:"src"`
		ObjectFit      string `json:"objectFit"`
		ObjectPosition string `json:"objectPosition"`
		BorderRadius   string `json:"borderRadius"`
	}{helperBox{left, top, width, height}, src, objectFit, objectPosition, borderRadius}
	if err := r.page.EvaluateArg(createImageHelperScript, arg, nil); err != nil {
		return "", fmt.Errorf("create image helper: %w", err)
	}
	return r.screenshotAndCleanup()
}

func (r *Rasterizer) screenshotAndCleanup() (string, error) {
	png, err := r.page.ScreenshotSelector(helperSelector)
	if err != nil {
		_ = r.page.Evaluate(removeHelperScript, nil)
		return "", fmt.Errorf("screenshot helper: %w", err)
	}
	if err := r.page.Evaluate(removeHelperScript, nil); err != nil {
		return "", fmt.Errorf("remove helper: %w", err)
	}

	path := filepath.Join(r.tmpDir, r.uniqueFilename())
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write raster: %w", err)
	}
	return path, nil
}

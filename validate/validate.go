// Package validate accumulates every violation the extraction,
// rasterization, and geometry stages produce and raises them together,
// matching the engine's "never silently approximate" policy (§4.9, §7).
package validate

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/style"
)

const (
	CategoryInput    = "input"
	CategoryGeometry = "geometry"
	CategoryResource = "resource"
)

// Errors is the aggregate of every accumulated violation. Its Error()
// implements the exact wire format §6's failure contract specifies.
type Errors struct {
	Items []model.ValidationError
}

func (e *Errors) Len() int { return len(e.Items) }

func (e *Errors) Add(category, format string, args ...any) {
	e.Items = append(e.Items, model.ValidationError{Category: category, Message: fmt.Sprintf(format, args...)})
}

// GroupedBy returns only the items in the given category, in the order
// they were accumulated.
func (e *Errors) GroupedBy(category string) []model.ValidationError {
	var out []model.ValidationError
	for _, it := range e.Items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (e *Errors) Error() string {
	if len(e.Items) == 0 {
		return ""
	}
	if len(e.Items) == 1 {
		return e.Items[0].Message
	}
	var b strings.Builder
	b.WriteString("Multiple validation errors found:\n")
	for i, it := range e.Items {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, it.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Options configures the geometry checks that need context the
// extracted description alone doesn't carry.
type Options struct {
	Dimensions     struct{ WidthPx, HeightPx, ScrollWidthPx, ScrollHeightPx float64 }
	LayoutWidthIn  style.Inches
	LayoutHeightIn style.Inches
	HTMLDir        string
}

// Run validates a fully extracted and rasterized description, returning
// an *Errors (never nil) collecting every violation found. Category 1-3
// violations (§7) all land here; category 4 host failures are returned
// directly by the caller's own pipeline steps and never reach Run.
func Run(desc *model.Description, opts Options) *Errors {
	errs := &Errors{Items: append([]model.ValidationError{}, desc.Errors...)}

	checkOverflow(errs, opts)
	checkLayoutMismatch(errs, opts)
	checkTextNearBottom(errs, desc, opts)
	checkZeroSizeTables(errs, desc)
	checkMissingFiles(errs, desc, opts.HTMLDir)

	return errs
}

func checkOverflow(errs *Errors, opts Options) {
	const tolerancePx = 1.0
	d := opts.Dimensions
	if overflow := d.ScrollWidthPx - d.WidthPx; overflow > tolerancePx {
		errs.Add(CategoryGeometry, "body overflows horizontally by %.1fpt", float64(style.PxToPt(overflow)))
	}
	if overflow := d.ScrollHeightPx - d.HeightPx; overflow > tolerancePx {
		errs.Add(CategoryGeometry, "body overflows vertically by %.1fpt (slide layouts reserve a 0.5in bottom margin)", float64(style.PxToPt(overflow)))
	}
}

func checkLayoutMismatch(errs *Errors, opts Options) {
	const toleranceIn = 0.1
	bodyW := style.PxToIn(opts.Dimensions.WidthPx)
	bodyH := style.PxToIn(opts.Dimensions.HeightPx)
	if diff := absIn(bodyW - opts.LayoutWidthIn); float64(diff) > toleranceIn {
		errs.Add(CategoryGeometry, "body width %.2fin does not match slide layout width %.2fin", float64(bodyW), float64(opts.LayoutWidthIn))
	}
	if diff := absIn(bodyH - opts.LayoutHeightIn); float64(diff) > toleranceIn {
		errs.Add(CategoryGeometry, "body height %.2fin does not match slide layout height %.2fin", float64(bodyH), float64(opts.LayoutHeightIn))
	}
}

func absIn(v style.Inches) style.Inches {
	if v < 0 {
		return -v
	}
	return v
}

func checkTextNearBottom(errs *Errors, desc *model.Description, opts Options) {
	slideBottom := style.PxToIn(opts.Dimensions.HeightPx)
	const marginIn = 0.5
	for _, el := range desc.Elements {
		var pos model.Position
		var fontSize float64
		switch e := el.(type) {
		case model.Text:
			if !e.Tag.IsTextTag() {
				continue
			}
			pos, fontSize = e.Position, e.Style.FontSize
		case model.List:
			pos, fontSize = e.Position, e.Style.FontSize
		default:
			continue
		}
		if fontSize <= 12 {
			continue
		}
		bottom := pos.Y + pos.H
		if float64(slideBottom-bottom) < marginIn {
			errs.Add(CategoryInput, "text element too close to slide bottom (fontSize %.0fpt)", fontSize)
		}
	}
}

func checkZeroSizeTables(errs *Errors, desc *model.Description) {
	for _, el := range desc.Elements {
		tbl, ok := el.(model.Table)
		if !ok {
			continue
		}
		if len(tbl.Rows) == 0 {
			errs.Add(CategoryInput, "table has no rows")
		}
	}
}

func checkMissingFiles(errs *Errors, desc *model.Description, htmlDir string) {
	check := func(ref string) {
		if ref == "" {
			return
		}
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
			return
		}
		path := ref
		if strings.HasPrefix(ref, "file://") {
			if u, err := url.Parse(ref); err == nil {
				path = u.Path
			} else {
				path = strings.TrimPrefix(ref, "file://")
			}
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(htmlDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			errs.Add(CategoryResource, "referenced file does not exist: %s", ref)
		}
	}

	if desc.Background.Kind == model.BackgroundImage {
		check(desc.Background.Path)
	}
	for _, el := range desc.Elements {
		if img, ok := el.(model.Image); ok {
			check(img.Src)
		}
	}
}

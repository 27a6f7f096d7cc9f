package rasterize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyoz/svg"
)

// intrinsicSize reads an SVG document's natural width/height, used to
// pick a sensible raster target size and aspect ratio when the element
// itself didn't carry one. It validates the markup with rustyoz/svg
// first — malformed SVG fails here rather than at screenshot time — then
// falls back to a direct attribute/viewBox scan, since rustyoz/svg does
// not expose the root element's own width/height attributes.
func intrinsicSize(markup string) (width, height float64, err error) {
	if _, parseErr := svg.ParseSvg(markup, "html2slide", 1.0); parseErr != nil {
		return 0, 0, fmt.Errorf("parse svg markup: %w", parseErr)
	}

	if w, ok := extractAttribute(markup, "width"); ok {
		if h, ok := extractAttribute(markup, "height"); ok {
			return w, h, nil
		}
	}

	if vb := extractViewBox(markup); len(vb) == 4 {
		return vb[2], vb[3], nil
	}

	return 0, 0, fmt.Errorf("could not determine intrinsic SVG size")
}

func extractAttribute(svgContent, attrName string) (float64, bool) {
	pattern := attrName + `="`
	start := strings.Index(svgContent, pattern)
	if start == -1 {
		return 0, false
	}
	start += len(pattern)
	end := strings.Index(svgContent[start:], `"`)
	if end == -1 {
		return 0, false
	}
	raw := svgContent[start : start+end]
	raw = strings.TrimSuffix(raw, "px")
	raw = strings.TrimSuffix(raw, "mm")
	raw = strings.TrimSuffix(raw, "cm")
	raw = strings.TrimSuffix(raw, "pt")
	raw = strings.TrimSuffix(raw, "pc")
	raw = strings.TrimSuffix(raw, "in")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractViewBox(svgContent string) []float64 {
	const pattern = `viewBox="`
	start := strings.Index(svgContent, pattern)
	if start == -1 {
		return nil
	}
	start += len(pattern)
	end := strings.Index(svgContent[start:], `"`)
	if end == -1 {
		return nil
	}
	parts := strings.Fields(svgContent[start : start+end])
	if len(parts) != 4 {
		return nil
	}
	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil
		}
		values[i] = v
	}
	return values
}

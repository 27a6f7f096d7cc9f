package style

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rotateDegPattern = regexp.MustCompile(`rotate\(\s*(-?[\d.]+)deg\s*\)`)
	matrixPattern    = regexp.MustCompile(`matrix\(\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*\)`)
)

// Rotation is the extracted, normalised rotation of an element, in degrees
// in [0, 360). A nil *Rotation means "no rotation" (the slide description
// omits the field entirely).
type Rotation float64

// ExtractRotation decomposes a computed `transform` value and a
// `writing-mode` value into a single rotation in degrees, per §4.1.
// Returns nil when the normalised rotation is exactly 0.
func ExtractRotation(transform, writingMode string) *Rotation {
	deg := rotationFromTransform(transform)

	switch strings.TrimSpace(writingMode) {
	case "vertical-rl":
		deg += 90
	case "vertical-lr":
		deg += 270
	}

	deg = normalizeDegrees(deg)
	if deg == 0 {
		return nil
	}
	r := Rotation(deg)
	return &r
}

func rotationFromTransform(transform string) float64 {
	transform = strings.TrimSpace(transform)
	if transform == "" || transform == "none" {
		return 0
	}

	if m := rotateDegPattern.FindStringSubmatch(transform); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}

	if m := matrixPattern.FindStringSubmatch(transform); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[2], 64)
		return math.Atan2(b, a) * 180 / math.Pi
	}

	return 0
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Round(deg)
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// RotatedBox is the axis-aligned box the browser reports for a rotated
// element (getBoundingClientRect), plus the element's own unrotated
// offsetWidth/offsetHeight, both needed to recover the renderer-facing box
// per §4.1's "position under rotation" rule.
type RotatedBox struct {
	RectX, RectY, RectW, RectH   float64
	OffsetW, OffsetH             float64
}

// AdjustForRotation applies the rotation-aware bounding-box correction: for
// 90/270 the browser-reported rect already reflects the swapped
// orientation, so the renderer box swaps width/height back and recenters;
// for any other non-zero rotation the renderer box uses the unrotated
// offsetWidth/offsetHeight centred on the same point as the reported rect.
func AdjustForRotation(box RotatedBox, rotation *Rotation) (x, y, w, h float64) {
	if rotation == nil {
		return box.RectX, box.RectY, box.RectW, box.RectH
	}

	deg := float64(*rotation)
	cx := box.RectX + box.RectW/2
	cy := box.RectY + box.RectH/2

	switch deg {
	case 90, 270:
		w, h = box.RectH, box.RectW
	default:
		w, h = box.OffsetW, box.OffsetH
	}

	x = cx - w/2
	y = cy - h/2
	return x, y, w, h
}

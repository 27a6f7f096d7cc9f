package style

import (
	"math"
	"strconv"
	"strings"
)

// ResolveRectRadius implements §4.6's corner-radius resolution: a
// percentage of 50% or more becomes 1 (the renderer treats 1 as "draw a
// circle"); a smaller percentage scales against the box's smaller
// dimension; absolute pt/px values convert directly to inches.
func ResolveRectRadius(value string, widthPx, heightPx float64) Inches {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if strings.HasSuffix(value, "%") {
		p, _ := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if p >= 50 {
			return 1
		}
		minDim := math.Min(widthPx, heightPx)
		return PxToIn((p / 100) * minDim)
	}

	if strings.HasSuffix(value, "pt") {
		v, _ := strconv.ParseFloat(strings.TrimSuffix(value, "pt"), 64)
		return PtToIn(v)
	}

	if strings.HasSuffix(value, "px") {
		v, _ := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
		return PxToIn(v)
	}

	// Unitless values are treated as px, matching computed-style output.
	v, _ := strconv.ParseFloat(value, 64)
	return PxToIn(v)
}

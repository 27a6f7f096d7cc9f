package extract

import "github.com/domslide/html2slide/browser"

// Dimensions is the body-size/overflow snapshot the dimension prober
// reads before the viewport is forced to match (§2, §4.9).
type Dimensions struct {
	WidthPx, HeightPx             float64
	ScrollWidthPx, ScrollHeightPx float64
}

const probeScript = `({
  width: document.body.clientWidth,
  height: document.body.clientHeight,
  scrollWidth: document.body.scrollWidth,
  scrollHeight: document.body.scrollHeight
})`

// ProbeDimensions reads the body's declared and scrolled size before the
// viewport has been forced to match it, so overflow can be detected
// (§4.9's body-overflow validation category).
func ProbeDimensions(page *browser.Page) (Dimensions, error) {
	var raw struct {
		Width, Height             float64
		ScrollWidth, ScrollHeight float64
	}
	if err := page.Evaluate(probeScript, &raw); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		WidthPx: raw.Width, HeightPx: raw.Height,
		ScrollWidthPx: raw.ScrollWidth, ScrollHeightPx: raw.ScrollHeight,
	}, nil
}

// OverflowsBy reports the horizontal and vertical overflow in pixels
// (scroll size minus declared size; zero or negative means no overflow).
func (d Dimensions) OverflowsBy() (x, y float64) {
	x = d.ScrollWidthPx - d.WidthPx
	y = d.ScrollHeightPx - d.HeightPx
	return
}

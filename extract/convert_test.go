package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/style"
)

func TestConvertBackground_Color(t *testing.T) {
	bg := convertBackground(rawBackground{Kind: "color", Color: "rgb(255, 0, 0)"})
	assert.Equal(t, model.BackgroundColor, bg.Kind)
	assert.Equal(t, "FF0000", bg.Color)
}

func TestConvertBackground_CSS(t *testing.T) {
	bg := convertBackground(rawBackground{Kind: "css", BackgroundImage: "url(bg.png)", BackgroundRepeat: "no-repeat"})
	assert.Equal(t, model.BackgroundCSS, bg.Kind)
	require.NotNil(t, bg.CSSStyle)
	assert.Equal(t, "url(bg.png)", bg.CSSStyle.BackgroundImage)
}

func TestConvertBackground_Gradient(t *testing.T) {
	bg := convertBackground(rawBackground{Kind: "css", BackgroundImage: "linear-gradient(45deg, red, blue)"})
	assert.Equal(t, model.BackgroundGradient, bg.Kind)
	assert.Equal(t, "linear-gradient(45deg, red, blue)", bg.GradientValue)
}

func TestConvertImage_NoStyleWhenDefaults(t *testing.T) {
	img := convertImage(rawElement{
		Rect:           rawRect{Width: 100, Height: 100},
		Src:            "photo.jpg",
		ObjectFit:      "fill",
		ObjectPosition: "center",
		BorderRadius:   "0px",
	})
	assert.Nil(t, img.Style)
}

func TestConvertImage_StylePreservedWhenNonDefault(t *testing.T) {
	img := convertImage(rawElement{
		Rect:      rawRect{Width: 100, Height: 100},
		Src:       "photo.jpg",
		ObjectFit: "cover",
	})
	require.NotNil(t, img.Style)
	assert.Equal(t, "cover", img.Style.ObjectFit)
}

func TestConvertImage_SVGSourceForcesStyleEvenWithDefaults(t *testing.T) {
	img := convertImage(rawElement{
		Rect:           rawRect{Width: 100, Height: 100},
		Src:            "icon.svg",
		ObjectFit:      "fill",
		ObjectPosition: "center",
		BorderRadius:   "0px",
	})
	require.NotNil(t, img.Style)
}

func TestConvertImage_SVGSourceWithQueryStringStillDetected(t *testing.T) {
	img := convertImage(rawElement{
		Rect: rawRect{Width: 100, Height: 100},
		Src:  "icon.SVG?v=2",
	})
	require.NotNil(t, img.Style)
}

func TestConvertShape_FillAndBorder(t *testing.T) {
	fill := "rgba(0, 0, 255, 0.5)"
	border := "rgb(0, 0, 0)"
	shape := convertShape(rawElement{
		Rect:        rawRect{Width: 200, Height: 100},
		Fill:        &fill,
		BorderColor: &border,
		BorderWidth: 2,
	})
	assert.Equal(t, "0000FF", shape.Fill)
	require.NotNil(t, shape.Transparency)
	assert.Equal(t, 50, *shape.Transparency)
	require.NotNil(t, shape.Line)
	assert.Equal(t, "000000", shape.Line.Color)
}

func TestConvertLine_Top(t *testing.T) {
	line := convertLine(rawElement{
		Rect:    rawRect{X: 0, Y: 0, Width: 96, Height: 96},
		Side:    "top",
		WidthPx: 1,
		Color:   "rgb(0,0,0)",
	})
	assert.InDelta(t, 1, float64(line.X2-line.X1), 0.01)
	assert.Equal(t, "000000", line.Color)
}

func TestConvertText_PlainString(t *testing.T) {
	text := convertText(rawElement{
		Tag:       "p",
		Rect:      rawRect{Width: 96, Height: 24},
		PlainText: "hello world",
		Style:     rawTextStyle{FontSize: 16, Color: "rgb(0,0,0)"},
	})
	assert.Equal(t, "hello world", text.Text)
	require.NotNil(t, text.Style.Bold)
	assert.False(t, *text.Style.Bold)
}

func TestConvertText_Runs(t *testing.T) {
	bold := true
	text := convertText(rawElement{
		Tag:  "p",
		Rect: rawRect{Width: 96, Height: 24},
		Runs: []rawRun{
			{Text: "  hello ", Bold: &bold},
			{Text: "world  "},
		},
		Style: rawTextStyle{FontSize: 16},
	})
	runs, ok := text.Text.([]model.Run)
	require.True(t, ok)
	require.Len(t, runs, 2)
	assert.Equal(t, "hello ", runs[0].Text)
	assert.Equal(t, "world", runs[1].Text)
}

func TestConvertText_ArbitraryRotationCentersOnUnrotatedOffsetSize(t *testing.T) {
	text := convertText(rawElement{
		Tag:       "p",
		Rect:      rawRect{X: 0, Y: 0, Width: 140, Height: 140, OffsetWidth: 100, OffsetHeight: 20},
		PlainText: "hello",
		Style:     rawTextStyle{FontSize: 16, Color: "rgb(0,0,0)", Transform: "rotate(45deg)"},
	})
	// bounding rect is centered at (70,70); the unrotated box (100x20)
	// recentres on that same point rather than keeping the rotated
	// bounding box's own 140x140 size.
	assert.InDelta(t, 20.0, float64(style.InToPx(text.Position.X)), 0.01)
	assert.InDelta(t, 60.0, float64(style.InToPx(text.Position.Y)), 0.01)
	assert.InDelta(t, 100.0, float64(style.InToPx(text.Position.W)), 0.01)
	assert.InDelta(t, 20.0, float64(style.InToPx(text.Position.H)), 0.01)
}

func TestConvertTable_ScalesColumnsToRectWidth(t *testing.T) {
	tbl := convertTable(rawElement{
		Rect:              rawRect{Width: 200, Height: 100},
		FirstRowColWidths: []float64{50, 50},
		Rows: []rawTableRow{
			{Height: 100, Cells: []rawCell{{PlainText: strPtr("a")}, {PlainText: strPtr("b")}}},
		},
	})
	require.Len(t, tbl.ColW, 2)
	var sum float64
	for _, w := range tbl.ColW {
		sum += float64(w)
	}
	assert.InDelta(t, float64(tbl.Position.W), sum, 0.001)
}

func TestConvert_DropsNonPositiveElements(t *testing.T) {
	doc := rawDocument{
		Background: rawBackground{Kind: "color", Color: "rgb(255,255,255)"},
		Elements: []rawElement{
			{Kind: "image", Rect: rawRect{Width: 0, Height: 0}, Src: "zero.png"},
			{Kind: "image", Rect: rawRect{Width: 10, Height: 10}, Src: "ok.png"},
		},
	}
	desc := convert(doc, nil)
	require.Len(t, desc.Elements, 1)
	img, ok := desc.Elements[0].(model.Image)
	require.True(t, ok)
	assert.Equal(t, "ok.png", img.Src)
}

func strPtr(s string) *string { return &s }

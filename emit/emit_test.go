package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/slidebuilder"
	"github.com/domslide/html2slide/slidebuilder/jsonslide"
	"github.com/domslide/html2slide/style"
)

func TestRun_EmitsBackgroundThenElementsInOrder(t *testing.T) {
	presentation := jsonslide.New(9144000, 5143500)
	slide := presentation.AddSlide().(*jsonslide.Slide)

	desc := &model.Description{
		Background: model.Background{Kind: model.BackgroundColor, Color: "FFFFFF"},
		Elements: []model.Element{
			model.Image{Position: model.Position{X: 0, Y: 0, W: 1, H: 1}, Src: "a.png"},
			model.Text{Tag: model.TypeP, Position: model.Position{X: 0, Y: 1, W: 2, H: 0.3}, Text: "hi", Style: model.TextStyle{FontSize: 12, Align: "left"}},
		},
	}

	require.NoError(t, Run(slide, desc))
	require.Len(t, slide.Calls, 3)
	assert.Equal(t, "addBackground", slide.Calls[0].Method)
	assert.Equal(t, "addImage", slide.Calls[1].Method)
	assert.Equal(t, "addText", slide.Calls[2].Method)
}

func TestEmitShape_RoundRectWhenRadiusPositive(t *testing.T) {
	presentation := jsonslide.New(9144000, 5143500)
	slide := presentation.AddSlide().(*jsonslide.Slide)

	shape := model.Shape{Position: model.Position{X: 0, Y: 0, W: 1, H: 1}, Fill: "FF0000", RectRadiusIn: 0.1}
	require.NoError(t, emitShape(slide, shape))
	require.Len(t, slide.Calls, 1)

	props, ok := slide.Calls[0].Args.(struct {
		Text  any                    `json:"text"`
		Props slidebuilder.TextProps `json:"props"`
	})
	require.True(t, ok)
	require.NotNil(t, props.Props.Shape)
	assert.Equal(t, slidebuilder.ShapeRoundRect, props.Props.Shape.Type)
}

func TestExpandSingleLine_ExpandsShortBoxRightAligned(t *testing.T) {
	w, h := 2.0, 0.2
	r := slidebuilder.Rect{X: 5, Y: 0, W: &w, H: &h}
	expandSingleLine(&r, "right", 12, nil)
	assert.Greater(t, *r.W, 2.0)
	assert.Less(t, r.X, 5.0)
}

func TestExpandSingleLine_NoOpWhenBoxTallEnoughForMultipleLines(t *testing.T) {
	w, h := 2.0, 2.0
	r := slidebuilder.Rect{X: 5, Y: 0, W: &w, H: &h}
	expandSingleLine(&r, "left", 12, nil)
	assert.Equal(t, 2.0, *r.W)
	assert.Equal(t, 5.0, r.X)
}

func TestEmitTable_OmitsWidthWhenColWPresent(t *testing.T) {
	presentation := jsonslide.New(9144000, 5143500)
	slide := presentation.AddSlide().(*jsonslide.Slide)

	tbl := model.Table{
		Position: model.Position{X: 0, Y: 0, W: 4, H: 1},
		Rows:     [][]model.Cell{{{Text: "a"}}},
		ColW:     []style.Inches{2, 2},
	}
	require.NoError(t, emitTable(slide, tbl))
	require.Len(t, slide.Calls, 1)

	args, ok := slide.Calls[0].Args.(struct {
		Rows  [][]slidebuilder.Cell   `json:"rows"`
		Props slidebuilder.TableProps `json:"props"`
	})
	require.True(t, ok)
	assert.Nil(t, args.Props.Rect.W)
	require.NotNil(t, args.Props.Rect.H)
}

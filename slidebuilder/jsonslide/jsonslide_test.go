package jsonslide

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domslide/html2slide/slidebuilder"
)

func TestPresentation_LayoutAndAddSlide(t *testing.T) {
	p := New(9144000, 5143500)
	assert.Equal(t, slidebuilder.Layout{WidthEMU: 9144000, HeightEMU: 5143500}, p.Layout())

	slide := p.AddSlide()
	require.NotNil(t, slide)
}

func TestSlide_RecordsCallsInOrder(t *testing.T) {
	p := New(9144000, 5143500)
	slide := p.AddSlide().(*Slide)

	color := "FFFFFF"
	require.NoError(t, slide.AddBackground(slidebuilder.Background{Color: &color}))
	require.NoError(t, slide.AddImage("a.png", slidebuilder.Rect{X: 0, Y: 0}))

	require.Len(t, slide.Calls, 2)
	assert.Equal(t, "addBackground", slide.Calls[0].Method)
	assert.Equal(t, "addImage", slide.Calls[1].Method)
}

func TestSlide_MarshalIndentProducesValidJSON(t *testing.T) {
	p := New(9144000, 5143500)
	slide := p.AddSlide().(*Slide)
	color := "000000"
	require.NoError(t, slide.AddBackground(slidebuilder.Background{Color: &color}))

	out, err := slide.MarshalIndent()
	require.NoError(t, err)

	var decoded []Call
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "addBackground", decoded[0].Method)
}

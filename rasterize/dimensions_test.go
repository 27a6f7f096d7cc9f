package rasterize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrinsicSize_FromWidthHeightAttributes(t *testing.T) {
	markup := `<svg width="200" height="100" xmlns="http://www.w3.org/2000/svg"><rect width="200" height="100"/></svg>`
	w, h, err := intrinsicSize(markup)
	require.NoError(t, err)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)
}

func TestIntrinsicSize_FallsBackToViewBox(t *testing.T) {
	markup := `<svg viewBox="0 0 300 150" xmlns="http://www.w3.org/2000/svg"><circle cx="10" cy="10" r="5"/></svg>`
	w, h, err := intrinsicSize(markup)
	require.NoError(t, err)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 150.0, h)
}

func TestExtractAttribute_StripsPxSuffix(t *testing.T) {
	v, ok := extractAttribute(`<svg width="42px">`, "width")
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestExtractAttribute_StripsNonPxUnitSuffixes(t *testing.T) {
	for suffix, value := range map[string]float64{"mm": 10, "cm": 5, "pt": 12, "pc": 3, "in": 2} {
		markup := fmt.Sprintf(`<svg width="%g%s">`, value, suffix)
		v, ok := extractAttribute(markup, "width")
		require.True(t, ok, "suffix %q", suffix)
		assert.Equal(t, value, v, "suffix %q", suffix)
	}
}

func TestExtractViewBox_ReturnsFourValues(t *testing.T) {
	vb := extractViewBox(`<svg viewBox="0 0 64 32">`)
	require.Len(t, vb, 4)
	assert.Equal(t, []float64{0, 0, 64, 32}, vb)
}

func TestExtractViewBox_NilWhenAbsent(t *testing.T) {
	vb := extractViewBox(`<svg width="10">`)
	assert.Nil(t, vb)
}

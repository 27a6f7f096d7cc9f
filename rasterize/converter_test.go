package rasterize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverterError_UnwrapsUnderlyingError(t *testing.T) {
	inner := errors.New("exit status 1")
	err := newConverterError("inkscape", "convert", inner)

	assert.Contains(t, err.Error(), "inkscape")
	assert.Contains(t, err.Error(), "convert")
	assert.ErrorIs(t, err, inner)
}

func TestDefaultConvertOptions_SetsDPI(t *testing.T) {
	opts := DefaultConvertOptions()
	assert.Equal(t, 96, opts.DPI)
}

package rasterize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConverter struct {
	name      string
	available bool
	err       error
}

func (f *fakeConverter) Name() string      { return f.name }
func (f *fakeConverter) IsAvailable() bool { return f.available }
func (f *fakeConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *ConvertOptions) error {
	return f.err
}

func TestConvertWithFallback_UsesFirstSuccessfulConverter(t *testing.T) {
	m := &SVGConverterManager{converters: []SVGConverter{
		&fakeConverter{name: "first", available: true, err: errors.New("boom")},
		&fakeConverter{name: "second", available: true},
	}}
	err := m.ConvertWithFallback(context.Background(), "in.svg", "out.png", nil)
	assert.NoError(t, err)
}

func TestConvertWithFallback_ErrorsWhenAllFail(t *testing.T) {
	m := &SVGConverterManager{converters: []SVGConverter{
		&fakeConverter{name: "only", available: true, err: errors.New("boom")},
	}}
	err := m.ConvertWithFallback(context.Background(), "in.svg", "out.png", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConvertWithFallback_ErrorsWhenNoConvertersRegistered(t *testing.T) {
	m := &SVGConverterManager{}
	err := m.ConvertWithFallback(context.Background(), "in.svg", "out.png", nil)
	assert.Error(t, err)
}

func TestRefreshConverters_PureGoAlwaysAvailable(t *testing.T) {
	m := NewSVGConverterManager()
	require.NotEmpty(t, m.converters)
	last := m.converters[len(m.converters)-1]
	assert.Equal(t, "oksvg", last.Name())
}

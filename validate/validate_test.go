package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/style"
)

func baseOptions() Options {
	var o Options
	o.Dimensions.WidthPx = 960
	o.Dimensions.HeightPx = 540
	o.Dimensions.ScrollWidthPx = 960
	o.Dimensions.ScrollHeightPx = 540
	o.LayoutWidthIn = style.PxToIn(960)
	o.LayoutHeightIn = style.PxToIn(540)
	return o
}

func TestRun_NoErrorsOnCleanDocument(t *testing.T) {
	desc := &model.Description{}
	errs := Run(desc, baseOptions())
	assert.Equal(t, 0, errs.Len())
}

func TestCheckOverflow_FlagsHorizontalOverflow(t *testing.T) {
	opts := baseOptions()
	opts.Dimensions.ScrollWidthPx = 1000
	errs := &Errors{}
	checkOverflow(errs, opts)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, CategoryGeometry, errs.Items[0].Category)
}

func TestCheckOverflow_ToleratesSubPixel(t *testing.T) {
	opts := baseOptions()
	opts.Dimensions.ScrollWidthPx = 960.5
	errs := &Errors{}
	checkOverflow(errs, opts)
	assert.Equal(t, 0, errs.Len())
}

func TestCheckLayoutMismatch_FlagsWidthMismatch(t *testing.T) {
	opts := baseOptions()
	opts.LayoutWidthIn = opts.LayoutWidthIn + 1
	errs := &Errors{}
	checkLayoutMismatch(errs, opts)
	require.Equal(t, 1, errs.Len())
}

func TestCheckTextNearBottom_FlagsLargeListNearBottom(t *testing.T) {
	opts := baseOptions()
	desc := &model.Description{
		Elements: []model.Element{
			model.List{
				Position: model.Position{X: 0, Y: style.PxToIn(500), W: 4, H: style.PxToIn(30)},
				Style:    model.ListStyle{FontSize: 18},
			},
		},
	}
	errs := &Errors{}
	checkTextNearBottom(errs, desc, opts)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, CategoryInput, errs.Items[0].Category)
}

func TestCheckTextNearBottom_IgnoresSmallFontList(t *testing.T) {
	opts := baseOptions()
	desc := &model.Description{
		Elements: []model.Element{
			model.List{
				Position: model.Position{X: 0, Y: style.PxToIn(500), W: 4, H: style.PxToIn(30)},
				Style:    model.ListStyle{FontSize: 10},
			},
		},
	}
	errs := &Errors{}
	checkTextNearBottom(errs, desc, opts)
	assert.Equal(t, 0, errs.Len())
}

func TestCheckZeroSizeTables(t *testing.T) {
	desc := &model.Description{Elements: []model.Element{model.Table{}}}
	errs := &Errors{}
	checkZeroSizeTables(errs, desc)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, CategoryInput, errs.Items[0].Category)
}

func TestCheckMissingFiles_RelativePathResolvedAgainstHTMLDir(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "present.png")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))

	desc := &model.Description{
		Elements: []model.Element{
			model.Image{Src: "present.png"},
			model.Image{Src: "missing.png"},
		},
	}
	errs := &Errors{}
	checkMissingFiles(errs, desc, dir)
	require.Equal(t, 1, errs.Len())
	assert.Contains(t, errs.Items[0].Message, "missing.png")
}

func TestCheckMissingFiles_SkipsRemoteURLs(t *testing.T) {
	desc := &model.Description{
		Elements: []model.Element{model.Image{Src: "https://example.com/a.png"}},
	}
	errs := &Errors{}
	checkMissingFiles(errs, desc, t.TempDir())
	assert.Equal(t, 0, errs.Len())
}

func TestErrors_ErrorFormatsMultipleViolations(t *testing.T) {
	errs := &Errors{}
	errs.Add(CategoryInput, "first problem")
	errs.Add(CategoryGeometry, "second problem")
	msg := errs.Error()
	assert.Contains(t, msg, "1. first problem")
	assert.Contains(t, msg, "2. second problem")
}

func TestErrors_ErrorSingleItemHasNoNumbering(t *testing.T) {
	errs := &Errors{}
	errs.Add(CategoryInput, "only problem")
	assert.Equal(t, "only problem", errs.Error())
}

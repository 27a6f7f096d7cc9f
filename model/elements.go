package model

import "github.com/domslide/html2slide/style"

// ImageStyle carries the CSS an image needs baked in before it can be
// represented as a flat raster (§3).
type ImageStyle struct {
	ObjectFit      string
	ObjectPosition string
	BorderRadius   string
}

// Image is a rasterized or raster-ready picture (§3).
type Image struct {
	Position Position
	Src      string
	Style    *ImageStyle // nil once baked in / not needed
}

func (Image) Type() ElementType  { return TypeImage }
func (e Image) Pos() Position    { return e.Position }

// SVG is inline SVG markup, always rasterized into an Image before
// emission (§3).
type SVG struct {
	Position Position
	Markup   string
}

func (SVG) Type() ElementType { return TypeSVG }
func (e SVG) Pos() Position   { return e.Position }

// BgImage is a styled container's background-image, rasterized into an
// Image before emission (§3).
type BgImage struct {
	Position Position
	Style    CSSBackgroundStyle
}

func (BgImage) Type() ElementType { return TypeBgImage }
func (e BgImage) Pos() Position   { return e.Position }

// Gradient is a CSS gradient applied to a non-body element, rasterized
// into an Image before emission (§3).
type Gradient struct {
	Position Position
	Value    string
	Style    *CSSBackgroundStyle
}

func (Gradient) Type() ElementType { return TypeGradient }
func (e Gradient) Pos() Position   { return e.Position }

// Line is a single straight border edge, derived from non-uniform or
// image-overlapping borders on styled containers (§4.6).
type Line struct {
	X1, Y1, X2, Y2 style.Inches
	WidthPt        float64
	Color          string
}

func (Line) Type() ElementType { return TypeLine }
func (l Line) Pos() Position {
	x := minIn(l.X1, l.X2)
	y := minIn(l.Y1, l.Y2)
	return Position{X: x, Y: y, W: absIn(l.X2 - l.X1), H: absIn(l.Y2 - l.Y1)}
}

func minIn(a, b style.Inches) style.Inches {
	if a < b {
		return a
	}
	return b
}

func absIn(a style.Inches) style.Inches {
	if a < 0 {
		return -a
	}
	return a
}

// ShapeLine describes the uniform border of a styled container's
// background shape (§4.6).
type ShapeLine struct {
	Color   string
	WidthPt float64
}

// Shape is a styled container's background colour and/or uniform border,
// rendered under its child text (§3, §4.6). Its text is always empty —
// any child text is a separate element layered on top.
type Shape struct {
	Position     Position
	Fill         string
	Transparency *int
	Line         *ShapeLine
	RectRadiusIn style.Inches
	Shadow       *style.Shadow
}

func (Shape) Type() ElementType { return TypeShape }
func (e Shape) Pos() Position   { return e.Position }

// CellBorder is one side of a table cell's border.
type CellBorder struct {
	Pt    float64
	Color string
}

// CellOptions is the styling attached to one table cell.
type CellOptions struct {
	FontSize     float64
	FontFace     string
	Color        string
	Bold         bool
	Italic       bool
	Underline    bool
	Align        string
	Valign       string
	LineSpacing  *float64
	Margin       *Margin
	Fill         string
	Border       *[4]*CellBorder // left, right, bottom, top
	Colspan      int
	Rowspan      int
	Transparency *int
}

// Cell is a table cell; Text is either a plain string or a Run sequence
// depending on whether the source markup carried inline formatting (§3).
type Cell struct {
	Text    any // string | []Run
	Options CellOptions
}

// Table is a grid of cells with independently scaled column widths and
// row heights (§3, §4.5).
type Table struct {
	Position Position
	Rows     [][]Cell
	ColW     []style.Inches
	RowH     []style.Inches
}

func (Table) Type() ElementType { return TypeTable }
func (e Table) Pos() Position   { return e.Position }

// ListStyle is the shared styling of every item in a list (§3, §4.7).
type ListStyle struct {
	FontSize        float64
	FontFace        string
	Color           string
	Align           string
	LineSpacing     *float64
	ParaSpaceBefore float64
	ParaSpaceAfter  float64
	Margin          Margin
}

// List is a bulleted or unbulleted list flattened into one run sequence,
// with breakLine runs separating items (§3, §4.7).
type List struct {
	Position Position
	Items    []Run
	Style    ListStyle
}

func (List) Type() ElementType { return TypeList }
func (e List) Pos() Position   { return e.Position }

// TextStyle is the styling of a plain-text or run-formatted text element
// (§4.4).
type TextStyle struct {
	FontSize        float64
	FontFace        string
	Color           string
	Align           string
	LineSpacing     *float64
	ParaSpaceBefore float64
	ParaSpaceAfter  float64
	Margin          Margin
	// Plain-text only (no Run[] text); absent when Text is []Run.
	Bold      *bool
	Italic    *bool
	Underline *bool

	Rotate       *style.Rotation
	Transparency *int
	Valign       string
}

// Text is a p/h1..h6/div/span element. Text is either a plain string or a Run
// sequence (§3, §4.4).
type Text struct {
	Tag      ElementType
	Position Position
	Text     any // string | []Run
	Style    TextStyle
}

func (t Text) Type() ElementType { return t.Tag }
func (t Text) Pos() Position     { return t.Position }

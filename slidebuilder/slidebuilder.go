// Package slidebuilder declares the abstract presentation-builder
// collaborator the engine emits to (§6). The real implementation — the
// library that writes a binary .pptx file — is explicitly out of scope
// (§1); this package only defines the interface boundary and, in
// jsonslide, a reference adapter for tests and CLI debug output.
package slidebuilder

// ShapeType mirrors the three shape kinds the emitter ever requests.
type ShapeType string

const (
	ShapeRect      ShapeType = "rect"
	ShapeRoundRect ShapeType = "roundRect"
	ShapeLine      ShapeType = "line"
)

// Rect is a position in inches, with W/H optional — omitted when a
// table supplies its own colW/rowH arrays instead (§4.10).
type Rect struct {
	X, Y   float64
	W, H   *float64
	Rotate *float64
}

// LineProps describes a shape's or line's stroke.
type LineProps struct {
	Color   string
	WidthPt float64
}

// ShapeProps configures addShape/addText-as-shape calls.
type ShapeProps struct {
	Rect
	Fill          *string
	Transparency  *int
	Line          *LineProps
	RectRadiusIn  float64
	Shadow        *ShadowProps
}

// ShadowProps mirrors style.Shadow in the builder's own vocabulary.
type ShadowProps struct {
	Type      string
	Angle     float64
	BlurPt    float64
	Color     string
	OffsetPt  float64
	Opacity   int
}

// TextProps configures addText calls for text tags, lists, and
// container-overlay text.
type TextProps struct {
	Rect
	FontSize        float64
	FontFace        string
	Color           string
	Align           string
	Valign          string
	LineSpacing     *float64
	ParaSpaceBefore float64
	ParaSpaceAfter  float64
	Margin          [4]float64
	Bold, Italic, Underline *bool
	Transparency    *int
	Inset           *float64
	Shape           *ShapeKind
}

// ShapeKind lets addText double as the styled-container "shape" record
// (§4.10: addText("", {...shape: rect or roundRect...})).
type ShapeKind struct {
	Type         ShapeType
	Fill         *string
	Line         *LineProps
	RectRadiusIn float64
	Shadow       *ShadowProps
}

// TableProps configures addTable calls.
type TableProps struct {
	Rect
	ColW []float64
	RowH []float64
}

// Cell is one table cell as the builder sees it: text plus the same
// per-cell options the model carries.
type Cell struct {
	Text    any
	Options CellOptions
}

type CellOptions struct {
	FontSize                 float64
	FontFace                 string
	Color                    string
	Bold, Italic, Underline  bool
	Align, Valign            string
	LineSpacing              *float64
	Margin                   *[4]float64
	Fill                     *string
	Border                   *[4]*LineProps
	Colspan, Rowspan         int
	Transparency             *int
}

// Background is the emitted slide's background.
type Background struct {
	Color *string
	Path  *string
}

// Slide is the single slide the engine populates.
type Slide interface {
	AddBackground(bg Background) error
	AddImage(path string, r Rect) error
	AddShape(t ShapeType, props ShapeProps) error
	AddText(text any, props TextProps) error
	AddTable(rows [][]Cell, props TableProps) error
}

// Layout is the slide layout's own size, in EMUs, used to validate the
// body/layout size agreement (§4.9) before emission.
type Layout struct {
	WidthEMU, HeightEMU int64
}

// Presentation is the opaque handle passed into Translate (§6).
type Presentation interface {
	AddSlide() Slide
	Layout() Layout
}

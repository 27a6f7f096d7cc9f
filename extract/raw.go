package extract

// The raw* types mirror exactly what extractionScript returns: pixel
// rectangles and unparsed CSS strings. Everything unit-bearing or
// colour-bearing is converted in convert.go using package style, never
// in JavaScript.

type rawRect struct {
	X, Y, Width, Height float64
	// OffsetWidth/OffsetHeight are the element's unrotated
	// offsetWidth/offsetHeight (§4.1's "position under rotation"), unlike
	// Width/Height above which come from the (possibly rotated)
	// getBoundingClientRect.
	OffsetWidth, OffsetHeight float64
}

type rawViewport struct {
	Width, Height             float64
	ScrollWidth, ScrollHeight float64
}

type rawBackground struct {
	Kind                                                                    string
	Color                                                                   string
	BackgroundImage, BackgroundRepeat, BackgroundSize, BackgroundPosition string
	BackgroundColor                                                        string
}

type rawPlaceholder struct {
	ID   string
	Rect rawRect
}

type rawTextStyle struct {
	FontSize                                       float64
	FontFamily                                     string
	Color                                           string
	Align                                           string
	LineHeight                                      string
	MarginTop, MarginBottom                         float64
	PaddingLeft, PaddingRight, PaddingBottom, PaddingTop float64
	Transform                                       string
	WritingMode                                     string
	Weight                                           int
	FontStyle                                       string
	TextDecoration                                   string
}

type rawRun struct {
	Text      string
	Bold      *bool
	Italic    *bool
	Underline *bool
	Color     *string
	FontSize  *float64
	Transform string
	Bullet    *rawBullet
	BreakLine bool
}

type rawBullet struct {
	Indent float64
}

type rawBorderSide struct {
	Width float64
	Color string
	Style string
}

type rawBorders struct {
	Left, Right, Top, Bottom rawBorderSide
}

type rawCell struct {
	PlainText                                               *string
	Runs                                                     []rawRun
	FontSize                                                 float64
	FontFamily                                               string
	Color                                                     string
	Bold, Italic, Underline                                  bool
	Align, Valign                                             string
	LineHeight                                                string
	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom      float64
	Fill                                                      *string
	Border                                                     rawBorders
	Colspan, Rowspan                                          int
}

type rawTableRow struct {
	Height float64
	Cells  []rawCell
}

type rawListStyle struct {
	FontSize     float64
	FontFamily   string
	Color        string
	Align        string
	LineHeight   string
	MarkerMargin float64
}

// rawElement is a loosely-typed envelope; Kind selects which of the
// other fields are populated. JSON decoding into `any` via the browser
// package's Evaluate keeps this simple rather than a discriminated
// union decoder.
type rawElement struct {
	Kind string

	Rect rawRect

	// image
	Src          string
	ObjectFit    string
	ObjectPosition string
	BorderRadius string

	// svg
	Markup string

	// shape
	Fill        *string
	BorderColor *string
	BorderWidth float64
	Shadow      *string

	// bgImage
	BackgroundImage, BackgroundRepeat, BackgroundSize, BackgroundPosition string
	BackgroundColor                                                      string

	// line
	Side    string
	WidthPx float64
	Color   string

	// text
	Tag        string
	Style      rawTextStyle
	Runs       []rawRun
	PlainText  string
	Bold       bool
	Italic     bool
	Underline  bool

	// list
	ListStyle rawListStyle

	// table
	Rows             []rawTableRow
	FirstRowColWidths []float64
}

type rawError struct {
	Category string
	Message  string
}

type rawDocument struct {
	Viewport     rawViewport
	Background   rawBackground
	Placeholders []rawPlaceholder
	Elements     []rawElement
	NodeCount    int
	ClaimedCount int
	Errors       []rawError
}

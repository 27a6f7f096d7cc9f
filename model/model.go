// Package model defines the slide description the translation engine
// produces: background, positioned elements, named placeholders and the
// validation errors accumulated along the way (spec §3).
//
// Elements are a closed set of tagged variants. Each concrete type
// implements Element so the rasterizer and emitter can switch over them.
// Go has no sum types, so a new variant is not caught at compile time:
// the emitter's switch returns an "unhandled element type" error for it,
// and the rasterizer passes variants it does not bake through unchanged.
package model

import "github.com/domslide/html2slide/style"

// ElementType tags the concrete kind of an Element.
type ElementType string

const (
	TypeImage    ElementType = "image"
	TypeSVG      ElementType = "svg"
	TypeBgImage  ElementType = "bgImage"
	TypeGradient ElementType = "gradient"
	TypeLine     ElementType = "line"
	TypeShape    ElementType = "shape"
	TypeTable    ElementType = "table"
	TypeList     ElementType = "list"
	TypeP        ElementType = "p"
	TypeH1       ElementType = "h1"
	TypeH2       ElementType = "h2"
	TypeH3       ElementType = "h3"
	TypeH4       ElementType = "h4"
	TypeH5       ElementType = "h5"
	TypeH6       ElementType = "h6"
	TypeDiv      ElementType = "div"
	TypeSpan     ElementType = "span"
)

// IsTextTag reports whether t is one of the plain-text element tags
// (p, h1..h6, div, span).
func (t ElementType) IsTextTag() bool {
	switch t {
	case TypeP, TypeH1, TypeH2, TypeH3, TypeH4, TypeH5, TypeH6, TypeDiv, TypeSpan:
		return true
	}
	return false
}

// Position is a box in inches, the unit every emitted element uses.
type Position struct {
	X, Y, W, H style.Inches
}

// Positive reports whether the position has strictly positive width and
// height, invariant 3 of §3.
func (p Position) Positive() bool {
	return p.W > 0 && p.H > 0
}

// Margin is the [left, right, bottom, top] padding/margin array, in
// points, in the non-standard order downstream consumers expect (§3).
type Margin [4]float64

// RunOptions carries the per-run styling of a text run.
type RunOptions struct {
	Bold         *bool
	Italic       *bool
	Underline    *bool
	Color        string
	FontSize     *float64
	Transparency *int
	BreakLine    bool
	Bullet       *Bullet
}

// Bullet marks the first run of a bulleted list item.
type Bullet struct {
	Indent float64
}

// Run is a contiguous substring of a text element with uniform inline
// styling (§3, GLOSSARY).
type Run struct {
	Text    string
	Options RunOptions
}

// Element is implemented by every concrete element variant.
type Element interface {
	Type() ElementType
	Pos() Position
}

// Background is the slide's background. Intermediate forms (css, gradient)
// only exist until the rasterizer replaces them; after rasterization a
// Background is always Color or Image (invariant 2, §3/§8).
type Background struct {
	Kind  BackgroundKind
	Color string // hex, for Kind == BackgroundColor
	Path  string // file path, for Kind == BackgroundImage

	// Intermediate-only fields, cleared by the rasterizer.
	CSSStyle      *CSSBackgroundStyle
	GradientValue string
}

type BackgroundKind string

const (
	BackgroundColor    BackgroundKind = "color"
	BackgroundCSS      BackgroundKind = "css"
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundImage    BackgroundKind = "image"
)

// CSSBackgroundStyle holds the raw CSS the rasterizer needs to bake a body
// background (image or repeat/size/position combination) into a PNG.
type CSSBackgroundStyle struct {
	BackgroundImage    string
	BackgroundRepeat   string
	BackgroundSize     string
	BackgroundPosition string
	BackgroundColor    string
}

// NeedsRasterization reports whether this background is one of the
// intermediate forms the rasterizer must replace.
func (b Background) NeedsRasterization() bool {
	return b.Kind == BackgroundCSS || b.Kind == BackgroundGradient
}

// Placeholder is a named rectangular region reserved for non-HTML content
// (§3, GLOSSARY).
type Placeholder struct {
	ID string
	X, Y, W, H style.Inches
}

// Description is the complete translation output of one HTML document
// (§3).
type Description struct {
	Background   Background
	Elements     []Element
	Placeholders []Placeholder
	Errors       []ValidationError

	// NodeCount/ClaimedCount support invariant 1 (§8): the sum of emitted
	// elements' claimed DOM nodes never exceeds the total visited.
	NodeCount    int
	ClaimedCount int
}

// ValidationError is one accumulated violation, tagged by category so
// downstream tooling can group them (§4.9, §7).
type ValidationError struct {
	Category string
	Message  string
}

func (e ValidationError) Error() string { return e.Message }

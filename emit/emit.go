// Package emit drives a slidebuilder.Slide from a validated
// model.Description, in extraction order, applying the rotation-aware
// position adjustments and single-line width expansion the emitter
// (not the extractor) is responsible for (§4.10).
package emit

import (
	"fmt"

	"github.com/flanksource/commons/logger"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/slidebuilder"
)

// SingleLineWidthExpansion is the calibration constant for one specific
// downstream renderer's systematic width underestimation on single-line
// text (§4.4, §9 open questions: a different renderer may need a
// different factor or none — kept fixed rather than configurable since
// no second renderer has ever been wired).
const SingleLineWidthExpansion = 0.02

// Run drives slide with desc's background and elements, in order.
func Run(slide slidebuilder.Slide, desc *model.Description) error {
	if err := emitBackground(slide, desc.Background); err != nil {
		return fmt.Errorf("emit background: %w", err)
	}

	for i, el := range desc.Elements {
		if err := emitElement(slide, el); err != nil {
			return fmt.Errorf("emit element %d (%s): %w", i, el.Type(), err)
		}
		logger.Debugf("emitted %s at (%.2f,%.2f %.2fx%.2f)", el.Type(), float64(el.Pos().X), float64(el.Pos().Y), float64(el.Pos().W), float64(el.Pos().H))
	}

	return nil
}

func emitBackground(slide slidebuilder.Slide, bg model.Background) error {
	switch bg.Kind {
	case model.BackgroundImage:
		path := bg.Path
		return slide.AddBackground(slidebuilder.Background{Path: &path})
	default:
		color := bg.Color
		return slide.AddBackground(slidebuilder.Background{Color: &color})
	}
}

func emitElement(slide slidebuilder.Slide, el model.Element) error {
	switch e := el.(type) {
	case model.Image:
		return slide.AddImage(e.Src, rectOf(e.Position, nil))
	case model.Line:
		x1, y1 := float64(e.X1), float64(e.Y1)
		w, h := float64(e.X2-e.X1), float64(e.Y2-e.Y1)
		return slide.AddShape(slidebuilder.ShapeLine, slidebuilder.ShapeProps{
			Rect: slidebuilder.Rect{X: x1, Y: y1, W: &w, H: &h},
			Line: &slidebuilder.LineProps{Color: e.Color, WidthPt: e.WidthPt},
		})
	case model.Shape:
		return emitShape(slide, e)
	case model.List:
		return emitList(slide, e)
	case model.Table:
		return emitTable(slide, e)
	case model.Text:
		return emitText(slide, e)
	default:
		return fmt.Errorf("unhandled element type %T", e)
	}
}

func rectOf(pos model.Position, rotate *float64) slidebuilder.Rect {
	w, h := float64(pos.W), float64(pos.H)
	return slidebuilder.Rect{X: float64(pos.X), Y: float64(pos.Y), W: &w, H: &h, Rotate: rotate}
}

func emitShape(slide slidebuilder.Slide, e model.Shape) error {
	var line *slidebuilder.LineProps
	if e.Line != nil {
		line = &slidebuilder.LineProps{Color: e.Line.Color, WidthPt: e.Line.WidthPt}
	}
	var fill *string
	if e.Fill != "" {
		fill = &e.Fill
	}
	var shadow *slidebuilder.ShadowProps
	if e.Shadow != nil {
		shadow = &slidebuilder.ShadowProps{
			Type: "outer", Angle: e.Shadow.Angle, BlurPt: e.Shadow.BlurPt,
			Color: e.Shadow.Color, OffsetPt: e.Shadow.OffsetPt, Opacity: e.Shadow.Opacity,
		}
	}
	shapeType := slidebuilder.ShapeRect
	if e.RectRadiusIn > 0 {
		shapeType = slidebuilder.ShapeRoundRect
	}
	return slide.AddText("", slidebuilder.TextProps{
		Rect:  rectOf(e.Position, nil),
		Shape: &slidebuilder.ShapeKind{Type: shapeType, Fill: fill, Line: line, RectRadiusIn: float64(e.RectRadiusIn), Shadow: shadow},
		Transparency: e.Transparency,
	})
}

func emitList(slide slidebuilder.Slide, e model.List) error {
	valign := "top"
	return slide.AddText(e.Items, slidebuilder.TextProps{
		Rect:            rectOf(e.Position, nil),
		FontSize:        e.Style.FontSize,
		FontFace:        e.Style.FontFace,
		Color:           e.Style.Color,
		Align:           e.Style.Align,
		Valign:          valign,
		LineSpacing:     e.Style.LineSpacing,
		ParaSpaceBefore: e.Style.ParaSpaceBefore,
		ParaSpaceAfter:  e.Style.ParaSpaceAfter,
		Margin:          [4]float64(e.Style.Margin),
	})
}

func emitTable(slide slidebuilder.Slide, e model.Table) error {
	rows := make([][]slidebuilder.Cell, len(e.Rows))
	for i, row := range e.Rows {
		cells := make([]slidebuilder.Cell, len(row))
		for j, c := range row {
			cells[j] = cellFor(c)
		}
		rows[i] = cells
	}

	r := slidebuilder.Rect{X: float64(e.Position.X), Y: float64(e.Position.Y)}
	if len(e.ColW) == 0 {
		w := float64(e.Position.W)
		r.W = &w
	}
	if len(e.RowH) == 0 {
		h := float64(e.Position.H)
		r.H = &h
	}

	colW := make([]float64, len(e.ColW))
	for i, w := range e.ColW {
		colW[i] = float64(w)
	}
	rowH := make([]float64, len(e.RowH))
	for i, h := range e.RowH {
		rowH[i] = float64(h)
	}

	return slide.AddTable(rows, slidebuilder.TableProps{Rect: r, ColW: colW, RowH: rowH})
}

func cellFor(c model.Cell) slidebuilder.Cell {
	var border *[4]*slidebuilder.LineProps
	if c.Options.Border != nil {
		var b [4]*slidebuilder.LineProps
		for i, side := range c.Options.Border {
			if side != nil {
				b[i] = &slidebuilder.LineProps{Color: side.Color, WidthPt: side.Pt}
			}
		}
		border = &b
	}
	var margin *[4]float64
	if c.Options.Margin != nil {
		m := [4]float64(*c.Options.Margin)
		margin = &m
	}
	var fill *string
	if c.Options.Fill != "" {
		fill = &c.Options.Fill
	}

	return slidebuilder.Cell{
		Text: c.Text,
		Options: slidebuilder.CellOptions{
			FontSize: c.Options.FontSize, FontFace: c.Options.FontFace, Color: c.Options.Color,
			Bold: c.Options.Bold, Italic: c.Options.Italic, Underline: c.Options.Underline,
			Align: c.Options.Align, Valign: c.Options.Valign, LineSpacing: c.Options.LineSpacing,
			Margin: margin, Fill: fill, Border: border,
			Colspan: c.Options.Colspan, Rowspan: c.Options.Rowspan, Transparency: c.Options.Transparency,
		},
	}
}

func emitText(slide slidebuilder.Slide, e model.Text) error {
	var rotate *float64
	if e.Style.Rotate != nil {
		r := float64(*e.Style.Rotate)
		rotate = &r
	}
	rect := rectOf(e.Position, rotate)
	expandSingleLine(&rect, e.Style.Align, e.Style.FontSize, e.Style.LineSpacing)

	valign := e.Style.Valign
	if valign == "" {
		valign = "top"
	}
	inset := 0.0

	return slide.AddText(e.Text, slidebuilder.TextProps{
		Rect: rect, FontSize: e.Style.FontSize, FontFace: e.Style.FontFace, Color: e.Style.Color,
		Align: e.Style.Align, Valign: valign, LineSpacing: e.Style.LineSpacing,
		ParaSpaceBefore: e.Style.ParaSpaceBefore, ParaSpaceAfter: e.Style.ParaSpaceAfter,
		Margin: [4]float64(e.Style.Margin), Bold: e.Style.Bold, Italic: e.Style.Italic, Underline: e.Style.Underline,
		Transparency: e.Style.Transparency, Inset: &inset,
	})
}

// expandSingleLine implements §4.4's 2% single-line width expansion:
// when the box is short enough to hold only one line, widen it in the
// direction opposite the alignment anchor to compensate for the
// renderer's systematic underestimation.
func expandSingleLine(r *slidebuilder.Rect, align string, fontSizePt float64, lineSpacing *float64) {
	if r.H == nil || r.W == nil {
		return
	}
	lineHeight := fontSizePt * 1.2
	if lineSpacing != nil && *lineSpacing > lineHeight {
		lineHeight = *lineSpacing
	}
	if *r.H > 1.5*lineHeight/72 {
		return
	}

	delta := *r.W * SingleLineWidthExpansion
	switch align {
	case "right":
		x := r.X - delta
		r.X = x
		w := *r.W + delta
		r.W = &w
	case "center":
		x := r.X - delta/2
		r.X = x
		w := *r.W + delta
		r.W = &w
	default:
		w := *r.W + delta
		r.W = &w
	}
}

// Package extract turns a raw, in-page extraction into a model.Description.
// The in-page script (script.go) only sees pixels and CSS strings; every
// unit conversion, colour parse, rotation decomposition, and shadow parse
// happens here using package style (§9: "all subsequent steps run in the
// host").
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domslide/html2slide/model"
	"github.com/domslide/html2slide/style"
)

func posFromRect(r rawRect) model.Position {
	return model.Position{
		X: style.PxToIn(r.X),
		Y: style.PxToIn(r.Y),
		W: style.PxToIn(r.Width),
		H: style.PxToIn(r.Height),
	}
}

func marginFromPadding(leftPx, rightPx, bottomPx, topPx float64) model.Margin {
	return model.Margin{
		float64(style.PxToPt(leftPx)),
		float64(style.PxToPt(rightPx)),
		float64(style.PxToPt(bottomPx)),
		float64(style.PxToPt(topPx)),
	}
}

func lineSpacingFromCSS(lineHeight string, fontSizePx float64) *float64 {
	if lineHeight == "" || lineHeight == "normal" {
		return nil
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(lineHeight, "px"), 64)
	if err != nil {
		return nil
	}
	pt := float64(style.PxToPt(px))
	return &pt
}

// convert turns one raw document into a model.Description, leaving
// rasterization (svg/bgImage/gradient elements, css/gradient background)
// to package rasterize.
func convert(raw rawDocument, errs []model.ValidationError) *model.Description {
	desc := &model.Description{
		NodeCount:    raw.NodeCount,
		ClaimedCount: raw.ClaimedCount,
	}

	for _, e := range raw.Errors {
		errs = append(errs, model.ValidationError{Category: e.Category, Message: e.Message})
	}
	desc.Errors = errs

	desc.Background = convertBackground(raw.Background)

	for _, p := range raw.Placeholders {
		pos := posFromRect(p.Rect)
		desc.Placeholders = append(desc.Placeholders, model.Placeholder{
			ID: p.ID, X: pos.X, Y: pos.Y, W: pos.W, H: pos.H,
		})
	}

	for _, re := range raw.Elements {
		el, err := convertElement(re)
		if err != nil {
			desc.Errors = append(desc.Errors, model.ValidationError{Category: "geometry", Message: err.Error()})
			continue
		}
		if el == nil {
			continue
		}
		if !el.Pos().Positive() {
			continue
		}
		desc.Elements = append(desc.Elements, el)
	}

	return desc
}

func convertBackground(raw rawBackground) model.Background {
	switch raw.Kind {
	case "css":
		cssStyle := &model.CSSBackgroundStyle{
			BackgroundImage:    raw.BackgroundImage,
			BackgroundRepeat:   raw.BackgroundRepeat,
			BackgroundSize:     raw.BackgroundSize,
			BackgroundPosition: raw.BackgroundPosition,
			BackgroundColor:    raw.BackgroundColor,
		}
		if strings.Contains(raw.BackgroundImage, "gradient(") {
			return model.Background{Kind: model.BackgroundGradient, GradientValue: raw.BackgroundImage, CSSStyle: cssStyle}
		}
		return model.Background{Kind: model.BackgroundCSS, CSSStyle: cssStyle}
	default:
		return model.Background{Kind: model.BackgroundColor, Color: style.ParseColor(raw.Color).Hex}
	}
}

func convertElement(re rawElement) (model.Element, error) {
	switch re.Kind {
	case "image":
		return convertImage(re), nil
	case "svg":
		return model.SVG{Position: posFromRect(re.Rect), Markup: re.Markup}, nil
	case "shape":
		return convertShape(re), nil
	case "bgImage":
		cssStyle := model.CSSBackgroundStyle{
			BackgroundImage:    re.BackgroundImage,
			BackgroundRepeat:   re.BackgroundRepeat,
			BackgroundSize:     re.BackgroundSize,
			BackgroundPosition: re.BackgroundPosition,
			BackgroundColor:    re.BackgroundColor,
		}
		if strings.Contains(re.BackgroundImage, "gradient(") {
			return model.Gradient{Position: posFromRect(re.Rect), Value: re.BackgroundImage, Style: &cssStyle}, nil
		}
		return model.BgImage{Position: posFromRect(re.Rect), Style: cssStyle}, nil
	case "line":
		return convertLine(re), nil
	case "text":
		return convertText(re), nil
	case "list":
		return convertList(re), nil
	case "table":
		return convertTable(re), nil
	default:
		return nil, fmt.Errorf("unknown extracted element kind %q", re.Kind)
	}
}

func convertImage(re rawElement) model.Image {
	img := model.Image{Position: posFromRect(re.Rect), Src: re.Src}
	fit := strings.TrimSpace(re.ObjectFit)
	pos := strings.TrimSpace(re.ObjectPosition)
	needsStyle := re.BorderRadius != "" && re.BorderRadius != "0px" || (fit != "" && fit != "fill") || (pos != "" && pos != "50% 50%" && pos != "center")
	// An SVG source must always be baked to a raster before reaching the
	// (raster-only) downstream builder, even with every CSS default (§4.8).
	if needsStyle || isSVGSrc(re.Src) {
		img.Style = &model.ImageStyle{ObjectFit: re.ObjectFit, ObjectPosition: re.ObjectPosition, BorderRadius: re.BorderRadius}
	}
	return img
}

func isSVGSrc(src string) bool {
	if i := strings.IndexAny(src, "?#"); i != -1 {
		src = src[:i]
	}
	return strings.HasSuffix(strings.ToLower(src), ".svg")
}

func convertShape(re rawElement) model.Shape {
	shape := model.Shape{Position: posFromRect(re.Rect)}
	if re.Fill != nil {
		c := style.ParseColor(*re.Fill)
		shape.Fill = c.Hex
		shape.Transparency = lo.ToPtr(c.Transparency)
	}
	if re.BorderColor != nil && re.BorderWidth > 0 {
		c := style.ParseColor(*re.BorderColor)
		shape.Line = &model.ShapeLine{Color: c.Hex, WidthPt: float64(style.PxToPt(re.BorderWidth))}
	}
	shape.RectRadiusIn = style.ResolveRectRadius(re.BorderRadius, re.Rect.Width, re.Rect.Height)
	if re.Shadow != nil {
		if sh, ok := style.ParseBoxShadow(*re.Shadow); ok {
			shape.Shadow = &sh
		}
	}
	return shape
}

func convertLine(re rawElement) model.Line {
	insetPt := re.WidthPx * style.PtPerPx / 2
	insetIn := style.PtToIn(insetPt)
	x, y, w, h := posFromRect(re.Rect).X, posFromRect(re.Rect).Y, posFromRect(re.Rect).W, posFromRect(re.Rect).H
	c := style.ParseColor(re.Color)
	widthPt := float64(style.PxToPt(re.WidthPx))
	switch re.Side {
	case "top":
		return model.Line{X1: x, Y1: y + insetIn, X2: x + w, Y2: y + insetIn, WidthPt: widthPt, Color: c.Hex}
	case "bottom":
		return model.Line{X1: x, Y1: y + h - insetIn, X2: x + w, Y2: y + h - insetIn, WidthPt: widthPt, Color: c.Hex}
	case "left":
		return model.Line{X1: x + insetIn, Y1: y, X2: x + insetIn, Y2: y + h, WidthPt: widthPt, Color: c.Hex}
	default: // right
		return model.Line{X1: x + w - insetIn, Y1: y, X2: x + w - insetIn, Y2: y + h, WidthPt: widthPt, Color: c.Hex}
	}
}

func convertRuns(raw []rawRun) []model.Run {
	runs := make([]model.Run, 0, len(raw))
	for _, r := range raw {
		opts := model.RunOptions{BreakLine: r.BreakLine}
		if r.Bold != nil {
			opts.Bold = lo.ToPtr(*r.Bold)
		}
		if r.Italic != nil {
			opts.Italic = r.Italic
		}
		if r.Underline != nil {
			opts.Underline = r.Underline
		}
		if r.Color != nil {
			opts.Color = style.ParseColor(*r.Color).Hex
		}
		if r.FontSize != nil {
			pt := float64(style.PxToPt(*r.FontSize))
			opts.FontSize = &pt
		}
		if r.Bullet != nil {
			opts.Bullet = &model.Bullet{Indent: float64(style.PxToPt(r.Bullet.Indent))}
		}
		runs = append(runs, model.Run{Text: r.Text, Options: opts})
	}
	return model.TrimRuns(runs)
}

func convertText(re rawElement) model.Text {
	rot := style.ExtractRotation(re.Style.Transform, re.Style.WritingMode)
	x, y, w, h := posFromRect(re.Rect).X, posFromRect(re.Rect).Y, posFromRect(re.Rect).W, posFromRect(re.Rect).H
	if rot != nil {
		adjX, adjY, adjW, adjH := style.AdjustForRotation(style.RotatedBox{
			RectX: float64(re.Rect.X), RectY: float64(re.Rect.Y),
			RectW: float64(re.Rect.Width), RectH: float64(re.Rect.Height),
			OffsetW: re.Rect.OffsetWidth, OffsetH: re.Rect.OffsetHeight,
		}, rot)
		x, y, w, h = style.PxToIn(adjX), style.PxToIn(adjY), style.PxToIn(adjW), style.PxToIn(adjH)
	}

	align := re.Style.Align
	ts := model.TextStyle{
		FontSize:        float64(style.PxToPt(re.Style.FontSize)),
		FontFace:        style.NormalizeFontFamily(re.Style.FontFamily),
		Color:           style.ParseColor(re.Style.Color).Hex,
		Align:           align,
		LineSpacing:     lineSpacingFromCSS(re.Style.LineHeight, re.Style.FontSize),
		ParaSpaceBefore: float64(style.PxToPt(re.Style.MarginTop)),
		ParaSpaceAfter:  float64(style.PxToPt(re.Style.MarginBottom)),
		Margin:          marginFromPadding(re.Style.PaddingLeft, re.Style.PaddingRight, re.Style.PaddingBottom, re.Style.PaddingTop),
		Rotate:          rot,
	}

	t := model.Text{Tag: model.ElementType(re.Tag), Position: model.Position{X: x, Y: y, W: w, H: h}}
	if len(re.Runs) > 0 {
		runs := convertRuns(re.Runs)
		maxFont := ts.FontSize
		for _, r := range runs {
			if r.Options.FontSize != nil && *r.Options.FontSize > maxFont {
				maxFont = *r.Options.FontSize
			}
		}
		if maxFont > ts.FontSize && ts.LineSpacing != nil {
			scaled := *ts.LineSpacing * maxFont / ts.FontSize
			ts.LineSpacing = &scaled
		}
		t.Text = runs
	} else {
		t.Text = style.ApplyTextTransform(re.PlainText, re.Style.Transform)
		ts.Bold = lo.ToPtr(re.Bold && !style.IsSingleWeightFamily(re.Style.FontFamily))
		ts.Italic = lo.ToPtr(re.Italic)
		ts.Underline = lo.ToPtr(re.Underline)
	}
	t.Style = ts
	return t
}

func convertList(re rawElement) model.List {
	return model.List{
		Position: posFromRect(re.Rect),
		Items:    convertRuns(re.Runs),
		Style: model.ListStyle{
			FontSize:    float64(style.PxToPt(re.ListStyle.FontSize)),
			FontFace:    style.NormalizeFontFamily(re.ListStyle.FontFamily),
			Color:       style.ParseColor(re.ListStyle.Color).Hex,
			Align:       re.ListStyle.Align,
			LineSpacing: lineSpacingFromCSS(re.ListStyle.LineHeight, re.ListStyle.FontSize),
			Margin:      model.Margin{float64(style.PxToPt(re.ListStyle.MarkerMargin)), 0, 0, 0},
		},
	}
}

func convertTable(re rawElement) model.Table {
	pos := posFromRect(re.Rect)
	rows := make([][]model.Cell, 0, len(re.Rows))
	rowHeightsPx := make([]float64, 0, len(re.Rows))
	for _, rr := range re.Rows {
		rowHeightsPx = append(rowHeightsPx, rr.Height)
		cells := make([]model.Cell, 0, len(rr.Cells))
		for _, rc := range rr.Cells {
			cells = append(cells, convertCell(rc))
		}
		rows = append(rows, cells)
	}

	colW := scaleToSum(re.FirstRowColWidths, float64(re.Rect.Width))
	rowH := scaleToSum(rowHeightsPx, float64(re.Rect.Height))

	colWIn := make([]style.Inches, len(colW))
	for i, w := range colW {
		colWIn[i] = style.PxToIn(w)
	}
	rowHIn := make([]style.Inches, len(rowH))
	for i, h := range rowH {
		rowHIn[i] = style.PxToIn(h)
	}

	return model.Table{Position: pos, Rows: rows, ColW: colWIn, RowH: rowHIn}
}

// scaleToSum rescales vals proportionally so they sum to exactly target
// (§4.5: "scale the two resulting arrays so they sum to the table's own
// rect width/height").
func scaleToSum(vals []float64, target float64) []float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	if sum == 0 {
		return vals
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v / sum * target
	}
	return out
}

func convertCell(rc rawCell) model.Cell {
	opts := model.CellOptions{
		FontSize:  float64(style.PxToPt(rc.FontSize)),
		FontFace:  style.NormalizeFontFamily(rc.FontFamily),
		Color:     style.ParseColor(rc.Color).Hex,
		Bold:      rc.Bold && !style.IsSingleWeightFamily(rc.FontFamily),
		Italic:    rc.Italic,
		Underline: rc.Underline,
		Align:     rc.Align,
		Valign:    rc.Valign,
		Colspan:   maxInt(rc.Colspan, 1),
		Rowspan:   maxInt(rc.Rowspan, 1),
	}
	if ls := lineSpacingFromCSS(rc.LineHeight, rc.FontSize); ls != nil {
		opts.LineSpacing = ls
	}
	margin := marginFromPadding(rc.PaddingLeft, rc.PaddingRight, rc.PaddingBottom, rc.PaddingTop)
	opts.Margin = &margin
	if rc.Fill != nil {
		c := style.ParseColor(*rc.Fill)
		opts.Fill = c.Hex
		opts.Transparency = lo.ToPtr(c.Transparency)
	}
	opts.Border = convertCellBorder(rc.Border)

	cell := model.Cell{Options: opts}
	if rc.PlainText != nil {
		cell.Text = *rc.PlainText
	} else {
		cell.Text = convertRuns(rc.Runs)
	}
	return cell
}

func convertCellBorder(b rawBorders) *[4]*model.CellBorder {
	side := func(s rawBorderSide) *model.CellBorder {
		if s.Width <= 0 {
			return nil
		}
		c := style.ParseColor(s.Color)
		return &model.CellBorder{Pt: float64(style.PxToPt(s.Width)), Color: c.Hex}
	}
	out := [4]*model.CellBorder{side(b.Left), side(b.Right), side(b.Bottom), side(b.Top)}
	if out[0] == nil && out[1] == nil && out[2] == nil && out[3] == nil {
		return nil
	}
	return &out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

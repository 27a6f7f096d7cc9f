// Package jsonslide is a reference slidebuilder.Presentation that
// records every call it receives as JSON instead of writing a binary
// presentation file. It exists for tests and for the CLI's output,
// where inspecting exactly what the emitter would have sent the real
// builder is more useful than a .pptx on disk.
package jsonslide

import (
	"encoding/json"

	"github.com/domslide/html2slide/slidebuilder"
)

// Call is one recorded builder call, tagged by method name.
type Call struct {
	Method string `json:"method"`
	Args   any    `json:"args"`
}

// Presentation reports a fixed layout and hands out recording slides;
// each AddSlide call returns a fresh *Slide (the engine only ever
// populates one).
type Presentation struct {
	layout slidebuilder.Layout
	slide  *Slide
}

// New returns a Presentation whose layout matches widthEMU/heightEMU.
func New(widthEMU, heightEMU int64) *Presentation {
	return &Presentation{layout: slidebuilder.Layout{WidthEMU: widthEMU, HeightEMU: heightEMU}}
}

func (p *Presentation) AddSlide() slidebuilder.Slide {
	p.slide = &Slide{}
	return p.slide
}

func (p *Presentation) Layout() slidebuilder.Layout { return p.layout }

// Slide records each add call in the order the emitter made it.
type Slide struct {
	Calls []Call `json:"calls"`
}

func (s *Slide) AddBackground(bg slidebuilder.Background) error {
	s.Calls = append(s.Calls, Call{"addBackground", bg})
	return nil
}

func (s *Slide) AddImage(path string, r slidebuilder.Rect) error {
	s.Calls = append(s.Calls, Call{"addImage", struct {
		Path string            `json:"path"`
		Rect slidebuilder.Rect `json:"rect"`
	}{path, r}})
	return nil
}

func (s *Slide) AddShape(t slidebuilder.ShapeType, props slidebuilder.ShapeProps) error {
	s.Calls = append(s.Calls, Call{"addShape", struct {
		Type  slidebuilder.ShapeType  `json:"type"`
		Props slidebuilder.ShapeProps `json:"props"`
	}{t, props}})
	return nil
}

func (s *Slide) AddText(text any, props slidebuilder.TextProps) error {
	s.Calls = append(s.Calls, Call{"addText", struct {
		Text  any                    `json:"text"`
		Props slidebuilder.TextProps `json:"props"`
	}{text, props}})
	return nil
}

func (s *Slide) AddTable(rows [][]slidebuilder.Cell, props slidebuilder.TableProps) error {
	s.Calls = append(s.Calls, Call{"addTable", struct {
		Rows  [][]slidebuilder.Cell   `json:"rows"`
		Props slidebuilder.TableProps `json:"props"`
	}{rows, props}})
	return nil
}

// MarshalIndent renders every recorded call as pretty-printed JSON.
func (s *Slide) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s.Calls, "", "  ")
}

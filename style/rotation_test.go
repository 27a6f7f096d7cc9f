package style

import "testing"

func TestExtractRotation(t *testing.T) {
	cases := []struct {
		name        string
		transform   string
		writingMode string
		want        *Rotation
	}{
		{"none", "none", "", nil},
		{"explicit deg", "rotate(45deg)", "", ptr(45)},
		{"matrix equivalent to 90deg", "matrix(0, 1, -1, 0, 0, 0)", "", ptr(90)},
		{"vertical-rl adds 90", "none", "vertical-rl", ptr(90)},
		{"vertical-lr adds 270", "none", "vertical-lr", ptr(270)},
		{"normalizes negative to positive", "rotate(-90deg)", "", ptr(270)},
		{"360 normalizes to nil", "rotate(360deg)", "", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExtractRotation(c.transform, c.writingMode)
			if (got == nil) != (c.want == nil) {
				t.Fatalf("ExtractRotation() = %v, want %v", got, c.want)
			}
			if got != nil && *got != *c.want {
				t.Errorf("ExtractRotation() = %v, want %v", *got, *c.want)
			}
		})
	}
}

func ptr(r Rotation) *Rotation { return &r }

func TestAdjustForRotation(t *testing.T) {
	box := RotatedBox{RectX: 100, RectY: 100, RectW: 50, RectH: 20, OffsetW: 20, OffsetH: 50}

	t.Run("no rotation passes through rect", func(t *testing.T) {
		x, y, w, h := AdjustForRotation(box, nil)
		if x != 100 || y != 100 || w != 50 || h != 20 {
			t.Errorf("got (%v,%v,%v,%v)", x, y, w, h)
		}
	})

	t.Run("90deg swaps w/h around rect center", func(t *testing.T) {
		r := Rotation(90)
		x, y, w, h := AdjustForRotation(box, &r)
		if w != 20 || h != 50 {
			t.Errorf("want swapped dims 20x50, got %vx%v", w, h)
		}
		cx := x + w/2
		cy := y + h/2
		if cx != 125 || cy != 110 {
			t.Errorf("center moved: (%v,%v)", cx, cy)
		}
	})

	t.Run("other rotation uses offset dims centered on rect center", func(t *testing.T) {
		r := Rotation(30)
		x, y, w, h := AdjustForRotation(box, &r)
		if w != 20 || h != 50 {
			t.Errorf("want offset dims 20x50, got %vx%v", w, h)
		}
		cx := x + w/2
		cy := y + h/2
		if cx != 125 || cy != 110 {
			t.Errorf("center moved: (%v,%v)", cx, cy)
		}
	})
}

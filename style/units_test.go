package style

import "testing"

func TestPxToIn(t *testing.T) {
	cases := []struct {
		px   float64
		want Inches
	}{
		{96, 1},
		{48, 0.5},
		{0, 0},
	}
	for _, c := range cases {
		if got := PxToIn(c.px); got != c.want {
			t.Errorf("PxToIn(%v) = %v, want %v", c.px, got, c.want)
		}
	}
}

func TestPxToPt(t *testing.T) {
	if got := PxToPt(40); got != 30 {
		t.Errorf("PxToPt(40) = %v, want 30", got)
	}
}

func TestInToEMU(t *testing.T) {
	if got := InToEMU(1); got != EMUPerIn {
		t.Errorf("InToEMU(1) = %v, want %v", got, EMUPerIn)
	}
	if got := InToEMU(0.5); got != EMUPerIn/2 {
		t.Errorf("InToEMU(0.5) = %v, want %v", got, EMUPerIn/2)
	}
}

package style

import "testing"

func TestResolveRectRadius(t *testing.T) {
	t.Run("50 percent on a square is a circle", func(t *testing.T) {
		if got := ResolveRectRadius("50%", 100, 100); got != 1 {
			t.Errorf("got %v, want 1", got)
		}
	})

	t.Run("49 percent on 200x100 scales against the smaller dimension", func(t *testing.T) {
		got := ResolveRectRadius("49%", 200, 100)
		want := PxToIn(0.49 * 100)
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("pt value converts directly", func(t *testing.T) {
		if got := ResolveRectRadius("72pt", 0, 0); got != 1 {
			t.Errorf("got %v, want 1in", got)
		}
	})

	t.Run("px value converts directly", func(t *testing.T) {
		if got := ResolveRectRadius("96px", 0, 0); got != 1 {
			t.Errorf("got %v, want 1in", got)
		}
	})

	t.Run("empty value is zero", func(t *testing.T) {
		if got := ResolveRectRadius("", 100, 100); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})
}

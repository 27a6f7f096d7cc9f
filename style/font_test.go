package style

import "testing"

func TestNormalizeFontFamily(t *testing.T) {
	cases := map[string]string{
		`"Helvetica Neue", Arial, sans-serif`: "Helvetica Neue",
		"Impact":                              "Impact",
		" 'Georgia' , serif":                  "Georgia",
	}
	for in, want := range cases {
		if got := NormalizeFontFamily(in); got != want {
			t.Errorf("NormalizeFontFamily(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsSingleWeightFamily(t *testing.T) {
	if !IsSingleWeightFamily("Impact, sans-serif") {
		t.Error("expected Impact to be single-weight")
	}
	if IsSingleWeightFamily("Arial, sans-serif") {
		t.Error("expected Arial not to be single-weight")
	}
}

func TestApplyTextTransform(t *testing.T) {
	cases := []struct {
		text, transform, want string
	}{
		{"Hello World", "uppercase", "HELLO WORLD"},
		{"Hello World", "lowercase", "hello world"},
		{"hello world", "capitalize", "Hello World"},
		{"Hello World", "none", "Hello World"},
		{"Hello World", "", "Hello World"},
	}
	for _, c := range cases {
		if got := ApplyTextTransform(c.text, c.transform); got != c.want {
			t.Errorf("ApplyTextTransform(%q, %q) = %q, want %q", c.text, c.transform, got, c.want)
		}
	}
}

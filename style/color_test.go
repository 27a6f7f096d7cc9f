package style

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Color
	}{
		{"black", "rgb(0, 0, 0)", Color{Hex: "000000", Transparency: 0}},
		{"white", "rgb(255, 255, 255)", Color{Hex: "FFFFFF", Transparency: 0}},
		{"red half alpha", "rgba(255, 0, 0, 0.5)", Color{Hex: "FF0000", Transparency: 50}},
		{"fully transparent black defaults white", "rgba(0, 0, 0, 0)", Color{Hex: "FFFFFF", Transparency: 0}},
		{"literal transparent defaults white", "transparent", Color{Hex: "FFFFFF", Transparency: 0}},
		{"hex passthrough", "#123456", Color{Hex: "123456", Transparency: 0}},
		{"short hex expands", "#abc", Color{Hex: "AABBCC", Transparency: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseColor(c.input)
			if got != c.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", c.input, got, c.want)
			}
		})
	}
}

package colorscale

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var badColor = colorful.Color{R: 0.75, G: 0.75, B: 0.75}

var builtin = map[string]Scale{
	// matplotlib's diverging blue-grey-red map, sampled every eighth.
	"coolwarm": evenly("coolwarm",
		"#3b4cc0", "#6282ea", "#8db0fe", "#b8d0f9", "#dddddd",
		"#f5c4ac", "#f4987a", "#de604d", "#b40426"),
	"viridis": evenly("viridis",
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	"plasma": evenly("plasma",
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	"bwr":   evenly("bwr", "#0000ff", "#ffffff", "#ff0000"),
	"greys": evenly("greys", "#ffffff", "#000000"),
	"rdbu": positioned("rdbu",
		Stop{0, rgb(5, 10, 172)},
		Stop{0.35, rgb(106, 137, 247)},
		Stop{0.5, rgb(190, 190, 190)},
		Stop{0.6, rgb(220, 170, 132)},
		Stop{0.7, rgb(230, 145, 90)},
		Stop{1, rgb(178, 10, 28)},
	),
	"jet": positioned("jet",
		Stop{0, rgb(0, 0, 131)},
		Stop{0.125, rgb(0, 60, 170)},
		Stop{0.375, rgb(5, 255, 255)},
		Stop{0.625, rgb(255, 255, 0)},
		Stop{0.875, rgb(250, 0, 0)},
		Stop{1, rgb(128, 0, 0)},
	),
}

// evenly spaces the given hex colours over [0, 1].
func evenly(name string, hexes ...string) Scale {
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		pos := 0.0
		if len(hexes) > 1 {
			pos = float64(i) / float64(len(hexes)-1)
		}
		stops[i] = Stop{Pos: pos, Color: mustHex(h)}
	}
	return Scale{Name: name, Stops: stops, Bad: badColor}
}

// mustHex parses a colour literal from the tables above.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("colorscale: bad colour %q: %v", s, err))
	}
	return c
}

func positioned(name string, stops ...Stop) Scale {
	return Scale{Name: name, Stops: stops, Bad: badColor}
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

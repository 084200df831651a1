// Package colorscale holds the named colour scales used to colour scatter markers.
package colorscale

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknown is returned by Lookup for a name that is not registered.
var ErrUnknown = errors.New("unknown colour scale")

// reverseSuffix flips a scale, matplotlib style: "coolwarm_r".
const reverseSuffix = "_r"

// Stop is one colour of a scale placed at Pos in [0, 1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Scale maps a normalised value in [0, 1] to a colour. Stops are sorted by Pos.
type Scale struct {
	Name  string
	Stops []Stop
	// Bad is used for NaN values.
	Bad colorful.Color
}

// At returns the colour for t. Values outside [0, 1] are clamped, and the colour is
// interpolated linearly in RGB between the two neighbouring stops.
func (s Scale) At(t float64) colorful.Color {
	if math.IsNaN(t) || len(s.Stops) == 0 {
		return s.Bad
	}
	t = clamp01(t)

	first, last := s.Stops[0], s.Stops[len(s.Stops)-1]
	if t <= first.Pos {
		return first.Color
	}
	if t >= last.Pos {
		return last.Color
	}

	i := sort.Search(len(s.Stops), func(i int) bool { return s.Stops[i].Pos >= t })
	lo, hi := s.Stops[i-1], s.Stops[i]
	span := hi.Pos - lo.Pos
	if span <= 0 {
		return hi.Color
	}
	return lo.Color.BlendRgb(hi.Color, (t-lo.Pos)/span).Clamped()
}

// Low is the colour at the bottom of the scale.
func (s Scale) Low() colorful.Color { return s.At(0) }

// High is the colour at the top of the scale.
func (s Scale) High() colorful.Color { return s.At(1) }

// Reversed returns the scale running from its high end to its low end.
func (s Scale) Reversed() Scale {
	stops := make([]Stop, len(s.Stops))
	for i, st := range s.Stops {
		stops[len(s.Stops)-1-i] = Stop{Pos: 1 - st.Pos, Color: st.Color}
	}
	name := s.Name + reverseSuffix
	if strings.HasSuffix(s.Name, reverseSuffix) {
		name = strings.TrimSuffix(s.Name, reverseSuffix)
	}
	return Scale{Name: name, Stops: stops, Bad: s.Bad}
}

// Lookup resolves a scale by name. Names are case-insensitive, so "Viridis" and
// "viridis" are the same scale, and a trailing "_r" reverses it.
func Lookup(name string) (Scale, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	reverse := false
	if strings.HasSuffix(key, reverseSuffix) {
		key = strings.TrimSuffix(key, reverseSuffix)
		reverse = true
	}

	s, ok := builtin[key]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if reverse {
		return s.Reversed(), nil
	}
	// Таблица общая: отдаём копию, чтобы вызывающий не мог её испортить
	s.Stops = slices.Clone(s.Stops)
	return s, nil
}

// Names lists the registered scales in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

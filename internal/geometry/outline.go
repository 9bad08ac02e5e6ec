package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Outline is an ordered sequence of vertex offsets describing a closed polygon.
// Offsets are relative to the owning shape's translation.
type Outline []Point

// ShipOutline is the default ship template: an arrowhead pointing down.
var ShipOutline = Outline{{0, 24}, {20, -20}, {0, -12}, {-20, -20}, {0, 24}}

var ErrDegenerateOutline = errors.New("outline needs at least three vertices")

// ParseOutline parses whitespace separated "x,y" pairs, e.g. "0,24 20,-20 0,-12".
func ParseOutline(s string) (Outline, error) {
	fields := strings.Fields(s)
	out := make(Outline, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("parse vertex %q: missing comma", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("parse vertex %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("parse vertex %q: %w", f, err)
		}
		out = append(out, Point{X: x, Y: y})
	}
	if len(out) < 3 {
		return nil, ErrDegenerateOutline
	}
	return out, nil
}

// Decode implements envconfig.Decoder.
func (o *Outline) Decode(value string) error {
	parsed, err := ParseOutline(value)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Outline) String() string {
	parts := make([]string, len(o))
	for i, p := range o {
		parts[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// Clone returns a copy that shares no storage with o.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	out := make(Outline, len(o))
	copy(out, o)
	return out
}

// Extent returns the minimum and maximum corners of the outline.
func (o Outline) Extent() (lo, hi Point) {
	for i, p := range o {
		if i == 0 {
			lo, hi = p, p
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}

// Translate returns a copy of o shifted by (dx, dy).
func (o Outline) Translate(dx, dy float64) Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

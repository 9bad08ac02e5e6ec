package scene

import (
	"github.com/shipyard/shipyard/internal/geometry"
	"github.com/shipyard/shipyard/internal/typeid"
)

// Shape is a single ship: an outline placed at a translation.
type Shape struct {
	id string

	outline geometry.Outline // local geometry, offsets from the translation
	origin  geometry.Point   // minimum corner of outline
	width   float64
	height  float64
	tester  geometry.Tester // immutable, may be shared between shapes

	tx, ty   float64
	vertices []geometry.Point // outline + translation
	bounds   Bounds
}

// NewShape places a new ship built from t at (x, y).
func NewShape(t geometry.Template, x, y float64) *Shape {
	s := &Shape{
		id:      typeid.NewShipID(),
		outline: t.Outline.Clone(),
		origin:  t.Origin,
		width:   t.Width,
		height:  t.Height,
		tester:  t.Tester,
		tx:      x,
		ty:      y,
	}
	s.vertices = make([]geometry.Point, len(s.outline))
	for i, p := range s.outline {
		s.vertices[i] = geometry.Point{X: p.X + x, Y: p.Y + y}
	}
	s.recalculateBounds()
	return s
}

func (s *Shape) ID() string { return s.id }

func (s *Shape) ContainsPoint(x, y float64) bool {
	lx := x - s.tx - s.origin.X
	ly := y - s.ty - s.origin.Y
	if lx < 0 || lx > s.width || ly < 0 || ly > s.height {
		return false
	}
	return s.tester.TestPoint(lx, ly)
}

func (s *Shape) Move(dx, dy float64) {
	for i := range s.vertices {
		s.vertices[i].X += dx
		s.vertices[i].Y += dy
	}
	s.tx += dx
	s.ty += dy
	s.recalculateBounds()
}

func (s *Shape) Bounds() Bounds { return s.bounds }

func (s *Shape) IsFullyInside(b Bounds) bool {
	for _, v := range s.vertices {
		if !b.Contains(v.X, v.Y) {
			return false
		}
	}
	return true
}

func (s *Shape) Duplicate() Entity {
	c := *s
	c.id = typeid.NewShipID()
	c.outline = s.outline.Clone()
	c.vertices = make([]geometry.Point, len(s.vertices))
	copy(c.vertices, s.vertices)
	return &c
}

func (s *Shape) HasChildren() bool { return false }

func (s *Shape) Children() []Entity { return nil }

// Translation returns the ship's current offset.
func (s *Shape) Translation() (float64, float64) { return s.tx, s.ty }

// Vertices returns a copy of the displayed vertices.
func (s *Shape) Vertices() []geometry.Point {
	out := make([]geometry.Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

func (s *Shape) recalculateBounds() {
	s.bounds = boundsOf(s.vertices)
}

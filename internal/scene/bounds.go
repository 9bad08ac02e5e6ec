package scene

import "github.com/shipyard/shipyard/internal/geometry"

// Bounds is an axis-aligned bounding box. Left <= Right and Top <= Bottom.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Rect is a rectangle in origin/size form, used for the rubber band.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// boundsOf returns the box spanning pts. pts must not be empty.
func boundsOf(pts []geometry.Point) Bounds {
	b := Bounds{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		b.Left = min(b.Left, p.X)
		b.Top = min(b.Top, p.Y)
		b.Right = max(b.Right, p.X)
		b.Bottom = max(b.Bottom, p.Y)
	}
	return b
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Contains checks if a point is inside the box, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Left:   min(b.Left, other.Left),
		Top:    min(b.Top, other.Top),
		Right:  max(b.Right, other.Right),
		Bottom: max(b.Bottom, other.Bottom),
	}
}

// Rect converts the box to origin/size form.
func (b Bounds) Rect() Rect {
	return Rect{Left: b.Left, Top: b.Top, Width: b.Width(), Height: b.Height()}
}

// RectFromCorners returns the normalized rectangle spanning two corners in any order.
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Left:   min(x0, x1),
		Top:    min(y0, y1),
		Width:  max(x0, x1) - min(x0, x1),
		Height: max(y0, y1) - min(y0, y1),
	}
}

// Bounds converts the rectangle to edge form.
func (r Rect) Bounds() Bounds {
	return Bounds{Left: r.Left, Top: r.Top, Right: r.Left + r.Width, Bottom: r.Top + r.Height}
}

// UnionAll returns the union of the bounds of es, and false if es is empty.
func UnionAll(es []Entity) (Bounds, bool) {
	if len(es) == 0 {
		return Bounds{}, false
	}
	b := es[0].Bounds()
	for _, e := range es[1:] {
		b = b.Union(e.Bounds())
	}
	return b, true
}

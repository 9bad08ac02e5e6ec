package geometry

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Tester answers point containment queries in a template's local frame, whose origin is the
// outline's minimum corner.
type Tester interface {
	TestPoint(x, y float64) bool
}

// TesterFunc adapts a plain function to Tester.
type TesterFunc func(x, y float64) bool

func (f TesterFunc) TestPoint(x, y float64) bool { return f(x, y) }

// PolygonTester tests points against the exact outline. Points on an edge count as inside.
type PolygonTester struct {
	vertices Outline
}

// NewPolygonTester builds a tester for o, shifted into the local frame.
func NewPolygonTester(o Outline) *PolygonTester {
	lo, _ := o.Extent()
	return &PolygonTester{vertices: o.Translate(-lo.X, -lo.Y)}
}

func (p *PolygonTester) TestPoint(x, y float64) bool {
	return Contains(p.vertices, x, y)
}

// Contains reports whether (x, y) lies inside or on the boundary of poly (even-odd rule).
func Contains(poly Outline, x, y float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if onSegment(a, b, x, y) {
			return true
		}
		if (a.Y > y) != (b.Y > y) {
			xi := (b.X-a.X)*(y-a.Y)/(b.Y-a.Y) + a.X
			if x < xi {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b Point, x, y float64) bool {
	const eps = 1e-9
	cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
	if math.Abs(cross) > eps*(1+math.Abs(b.X-a.X)+math.Abs(b.Y-a.Y)) {
		return false
	}
	return x >= min(a.X, b.X)-eps && x <= max(a.X, b.X)+eps &&
		y >= min(a.Y, b.Y)-eps && y <= max(a.Y, b.Y)+eps
}

// edgeMargin is how far outside a painted pixel a point on the outline may fall and still hit.
// Thin spikes such as a ship's tip cover less than half a pixel, so coverage alone misses them.
const edgeMargin = 0.5

// RasterTester fills the outline into a bitmap once and answers queries by reading pixel
// coverage, so each query costs a single pixel lookup.
type RasterTester struct {
	img      image.Image
	vertices Outline
	width    int
	height   int
}

// NewRasterTester rasterizes o into a bitmap covering its extent.
func NewRasterTester(o Outline) *RasterTester {
	lo, hi := o.Extent()
	w := int(math.Ceil(hi.X-lo.X)) + 1
	h := int(math.Ceil(hi.Y-lo.Y)) + 1

	dc := gg.NewContext(w, h)
	for i, p := range o {
		if i == 0 {
			dc.MoveTo(p.X-lo.X, p.Y-lo.Y)
		} else {
			dc.LineTo(p.X-lo.X, p.Y-lo.Y)
		}
	}
	dc.ClosePath()
	dc.SetRGB(0, 0, 0)
	dc.FillPreserve()
	dc.SetLineWidth(1)
	dc.Stroke()

	return &RasterTester{
		img:      dc.Image(),
		vertices: o.Translate(-lo.X, -lo.Y),
		width:    w,
		height:   h,
	}
}

func (r *RasterTester) TestPoint(x, y float64) bool {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if px >= 0 && py >= 0 && px < r.width && py < r.height {
		if _, _, _, a := r.img.At(px, py).RGBA(); a >= 0x8000 {
			return true
		}
	}
	return nearOutline(r.vertices, x, y, edgeMargin)
}

// nearOutline reports whether (x, y) lies within tol of any edge of poly.
func nearOutline(poly Outline, x, y, tol float64) bool {
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if segmentDistance(poly[j], poly[i], x, y) <= tol {
			return true
		}
	}
	return false
}

func segmentDistance(a, b Point, x, y float64) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	t := 0.0
	if l := dx*dx + dy*dy; l > 0 {
		t = math.Max(0, math.Min(1, ((x-a.X)*dx+(y-a.Y)*dy)/l))
	}
	return math.Hypot(x-(a.X+t*dx), y-(a.Y+t*dy))
}

// Size returns the bitmap dimensions in pixels.
func (r *RasterTester) Size() (int, int) {
	return r.width, r.height
}

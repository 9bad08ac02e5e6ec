package engine

import (
	"math"

	"github.com/shipyard/shipyard/internal/scene"
)

// Matrix2D is the affine map from world space to the screen, stored column-major in the
// order a canvas setTransform call takes it:
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]
type Matrix2D [6]float64

func Identity() Matrix2D { return Matrix2D{1, 0, 0, 1, 0, 0} }

func Translate(dx, dy float64) Matrix2D { return Matrix2D{1, 0, 0, 1, dx, dy} }

func Scale(sx, sy float64) Matrix2D { return Matrix2D{sx, 0, 0, sy, 0, 0} }

// ScaleAt zooms by s while keeping the screen point (cx, cy) fixed.
func ScaleAt(s, cx, cy float64) Matrix2D {
	return Matrix2D{s, 0, 0, s, cx - s*cx, cy - s*cy}
}

// Multiply composes two maps. The result applies n first and m second.
func (m Matrix2D) Multiply(n Matrix2D) Matrix2D {
	var out Matrix2D
	out[0], out[1] = m.apply(n[0], n[1])
	out[2], out[3] = m.apply(n[2], n[3])
	out[4], out[5] = m.TransformPoint(n[4], n[5])
	return out
}

// apply maps a direction, ignoring translation.
func (m Matrix2D) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y, m[1]*x + m[3]*y
}

func (m Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	tx, ty := m.apply(x, y)
	return tx + m[4], ty + m[5]
}

// TransformBounds maps the four corners of b and returns the box enclosing them.
func (m Matrix2D) TransformBounds(b scene.Bounds) scene.Bounds {
	out := scene.Bounds{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
	for _, c := range [4][2]float64{
		{b.Left, b.Top}, {b.Right, b.Top}, {b.Right, b.Bottom}, {b.Left, b.Bottom},
	} {
		x, y := m.TransformPoint(c[0], c[1])
		out.Left, out.Right = min(out.Left, x), max(out.Right, x)
		out.Top, out.Bottom = min(out.Top, y), max(out.Bottom, y)
	}
	return out
}

func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsFinite reports whether every entry is a real number.
func (m Matrix2D) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Inverse returns the map back from the screen to world space. ok is false when m is
// singular or the inverse would not be finite.
func (m Matrix2D) Inverse() (inv Matrix2D, ok bool) {
	det := m.Determinant()
	if det == 0 || !m.IsFinite() {
		return Identity(), false
	}
	k := 1 / det
	inv = Matrix2D{
		m[3] * k, -m[1] * k,
		-m[2] * k, m[0] * k,
		(m[2]*m[5] - m[3]*m[4]) * k, (m[1]*m[4] - m[0]*m[5]) * k,
	}
	if !inv.IsFinite() {
		return Identity(), false
	}
	return inv, true
}

// Invertible reports whether m can serve as a view.
func (m Matrix2D) Invertible() bool {
	_, ok := m.Inverse()
	return ok
}

func (m Matrix2D) ToSlice() []float64 { return m[:] }

// IsIdentity ignores rounding noise left by composing and undoing transforms.
func (m Matrix2D) IsIdentity() bool {
	id := Identity()
	for i := range m {
		if math.Abs(m[i]-id[i]) >= 1e-10 {
			return false
		}
	}
	return true
}

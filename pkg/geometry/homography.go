package geometry

import "math"

// Homography represents a 3x3 projective transformation matrix.
// [a b c]
// [d e f]
// [g h i]
type Homography struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// IdentityHomography returns the identity transform.
func IdentityHomography() Homography {
	return Homography{A: 1, E: 1, I: 1}
}

// TranslationHomography returns a pure translation transform.
func TranslationHomography(tx, ty float64) Homography {
	return Homography{A: 1, C: tx, E: 1, F: ty, I: 1}
}

// Apply applies the transform to a point, performing the perspective divide.
// A point whose homogeneous weight maps to zero is returned unchanged.
func (t Homography) Apply(p Point2D) Point2D {
	w := t.G*p.X + t.H*p.Y + t.I
	if math.Abs(w) < 1e-12 {
		return p
	}
	return Point2D{
		X: (t.A*p.X + t.B*p.Y + t.C) / w,
		Y: (t.D*p.X + t.E*p.Y + t.F) / w,
	}
}

// ApplyAll applies the transform to a slice of points.
func (t Homography) ApplyAll(points []Point2D) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// Mul returns this transform composed with another (this * other), so that
// applying the result is equivalent to applying other first, then this.
func (t Homography) Mul(o Homography) Homography {
	return Homography{
		A: t.A*o.A + t.B*o.D + t.C*o.G,
		B: t.A*o.B + t.B*o.E + t.C*o.H,
		C: t.A*o.C + t.B*o.F + t.C*o.I,
		D: t.D*o.A + t.E*o.D + t.F*o.G,
		E: t.D*o.B + t.E*o.E + t.F*o.H,
		F: t.D*o.C + t.E*o.F + t.F*o.I,
		G: t.G*o.A + t.H*o.D + t.I*o.G,
		H: t.G*o.B + t.H*o.E + t.I*o.H,
		I: t.G*o.C + t.H*o.F + t.I*o.I,
	}
}

// Det returns the determinant of the matrix.
func (t Homography) Det() float64 {
	return t.A*(t.E*t.I-t.F*t.H) -
		t.B*(t.D*t.I-t.F*t.G) +
		t.C*(t.D*t.H-t.E*t.G)
}

// Inverse returns the inverse transform, if it exists.
func (t Homography) Inverse() (Homography, bool) {
	det := t.Det()
	if math.Abs(det) < 1e-12 {
		return Homography{}, false
	}
	inv := 1.0 / det
	return Homography{
		A: (t.E*t.I - t.F*t.H) * inv,
		B: (t.C*t.H - t.B*t.I) * inv,
		C: (t.B*t.F - t.C*t.E) * inv,
		D: (t.F*t.G - t.D*t.I) * inv,
		E: (t.A*t.I - t.C*t.G) * inv,
		F: (t.C*t.D - t.A*t.F) * inv,
		G: (t.D*t.H - t.E*t.G) * inv,
		H: (t.B*t.G - t.A*t.H) * inv,
		I: (t.A*t.E - t.B*t.D) * inv,
	}, true
}

// ToMatrix returns the transform as a [3][3]float64 array.
func (t Homography) ToMatrix() [3][3]float64 {
	return [3][3]float64{
		{t.A, t.B, t.C},
		{t.D, t.E, t.F},
		{t.G, t.H, t.I},
	}
}

// HomographyFromMatrix creates a Homography from a [3][3]float64 array.
func HomographyFromMatrix(m [3][3]float64) Homography {
	return Homography{
		A: m[0][0], B: m[0][1], C: m[0][2],
		D: m[1][0], E: m[1][1], F: m[1][2],
		G: m[2][0], H: m[2][1], I: m[2][2],
	}
}

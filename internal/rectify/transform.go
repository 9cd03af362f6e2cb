package rectify

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"gallery-wall/pkg/geometry"
)

// ComputeHomography computes the unique projective transform mapping four
// source points onto four destination points. With the bottom-right matrix
// entry fixed at 1, the remaining eight coefficients follow from the linear
// system built from the four correspondences:
//
//	x' = (a*x + b*y + c) / (g*x + h*y + 1)
//	y' = (d*x + e*y + f) / (g*x + h*y + 1)
func ComputeHomography(src, dst [4]geometry.Point2D) (geometry.Homography, error) {
	A := mat.NewDense(8, 8, nil)
	B := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		// x' row
		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		A.Set(i*2, 6, -x*xp)
		A.Set(i*2, 7, -y*xp)
		B.SetVec(i*2, xp)

		// y' row
		A.Set(i*2+1, 3, x)
		A.Set(i*2+1, 4, y)
		A.Set(i*2+1, 5, 1)
		A.Set(i*2+1, 6, -x*yp)
		A.Set(i*2+1, 7, -y*yp)
		B.SetVec(i*2+1, yp)
	}

	var params mat.VecDense
	if err := params.SolveVec(A, B); err != nil {
		return geometry.Homography{}, fmt.Errorf("degenerate point configuration: %w", err)
	}

	return geometry.Homography{
		A: params.AtVec(0), B: params.AtVec(1), C: params.AtVec(2),
		D: params.AtVec(3), E: params.AtVec(4), F: params.AtVec(5),
		G: params.AtVec(6), H: params.AtVec(7), I: 1,
	}, nil
}

// RectCorners returns the corners of an axis-aligned w x h rectangle in
// top-left, top-right, bottom-right, bottom-left order.
func RectCorners(width, height float64) [4]geometry.Point2D {
	return [4]geometry.Point2D{
		{X: 0, Y: 0},
		{X: width - 1, Y: 0},
		{X: width - 1, Y: height - 1},
		{X: 0, Y: height - 1},
	}
}

package geometry

// OrderCorners sorts 4 points into top-left, top-right, bottom-right,
// bottom-left order using the coordinate sum/difference heuristic:
// top-left has the smallest x+y, bottom-right the largest x+y, top-right the
// smallest x-y difference (y-x), bottom-left the largest.
func OrderCorners(points []Point2D) [4]Point2D {
	var ordered [4]Point2D
	if len(points) != 4 {
		copy(ordered[:], points)
		return ordered
	}

	minSum, maxSum := 0, 0
	minDiff, maxDiff := 0, 0
	for i := 1; i < 4; i++ {
		sum := points[i].X + points[i].Y
		diff := points[i].Y - points[i].X
		if sum < points[minSum].X+points[minSum].Y {
			minSum = i
		}
		if sum > points[maxSum].X+points[maxSum].Y {
			maxSum = i
		}
		if diff < points[minDiff].Y-points[minDiff].X {
			minDiff = i
		}
		if diff > points[maxDiff].Y-points[maxDiff].X {
			maxDiff = i
		}
	}

	ordered[0] = points[minSum]  // top-left
	ordered[1] = points[minDiff] // top-right
	ordered[2] = points[maxSum]  // bottom-right
	ordered[3] = points[maxDiff] // bottom-left
	return ordered
}

// QuadArea computes the enclosed area of a polygon using the shoelace
// formula. The result is always non-negative.
func QuadArea(points []Point2D) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	if area < 0 {
		area = -area
	}
	return area / 2.0
}

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func IsConvex(polygon []Point2D) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	sign := 0
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		c := polygon[(i+2)%n]
		cross := crossProduct(a, b, c)
		if cross != 0 {
			s := 1
			if cross < 0 {
				s = -1
			}
			if sign == 0 {
				sign = s
			} else if sign != s {
				return false
			}
		}
	}
	return true
}

// crossProduct returns the z-component of (b-a) x (c-a).
func crossProduct(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

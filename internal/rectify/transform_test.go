package rectify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-wall/pkg/geometry"
)

func TestComputeHomographyIdentity(t *testing.T) {
	corners := RectCorners(640, 480)
	h, err := ComputeHomography(corners, corners)
	require.NoError(t, err)

	for _, p := range corners {
		got := h.Apply(p)
		assert.InDelta(t, p.X, got.X, 1e-6)
		assert.InDelta(t, p.Y, got.Y, 1e-6)
	}

	// Interior points map to themselves too.
	mid := geometry.Point2D{X: 320, Y: 240}
	got := h.Apply(mid)
	assert.InDelta(t, mid.X, got.X, 1e-6)
	assert.InDelta(t, mid.Y, got.Y, 1e-6)
}

func TestComputeHomographyMapsCorners(t *testing.T) {
	src := [4]geometry.Point2D{
		{X: 120, Y: 80},
		{X: 520, Y: 60},
		{X: 560, Y: 420},
		{X: 100, Y: 400},
	}
	dst := RectCorners(400, 300)

	h, err := ComputeHomography(src, dst)
	require.NoError(t, err)

	for i := range src {
		got := h.Apply(src[i])
		assert.InDelta(t, dst[i].X, got.X, 1e-6)
		assert.InDelta(t, dst[i].Y, got.Y, 1e-6)
	}
}

func TestComputeHomographyDegenerate(t *testing.T) {
	// Three collinear points make the system singular.
	src := [4]geometry.Point2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10},
	}
	_, err := ComputeHomography(src, RectCorners(100, 100))
	assert.Error(t, err)
}

func TestValidateCorners(t *testing.T) {
	valid := []geometry.Point2D{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	assert.NoError(t, ValidateCorners(valid))

	assert.Error(t, ValidateCorners(valid[:3]))

	collinear := []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}
	assert.Error(t, ValidateCorners(collinear))
}

func TestCorrectedDimensions(t *testing.T) {
	w, h := CorrectedDimensions(200, 100, 2000)
	assert.Equal(t, 2000, w)
	assert.Equal(t, 1000, h)

	w, h = CorrectedDimensions(100, 200, 2000)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 2000, h)

	// Default cap when maxSize is unset.
	w, h = CorrectedDimensions(100, 100, 0)
	assert.Equal(t, 2000, w)
	assert.Equal(t, 2000, h)

	// Unknown physical size falls back to a square.
	w, h = CorrectedDimensions(0, 0, 500)
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)
}

func TestRectCorners(t *testing.T) {
	c := RectCorners(100, 50)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, c[0])
	assert.Equal(t, geometry.Point2D{X: 99, Y: 0}, c[1])
	assert.Equal(t, geometry.Point2D{X: 99, Y: 49}, c[2])
	assert.Equal(t, geometry.Point2D{X: 0, Y: 49}, c[3])
}

package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-wall/pkg/geometry"
)

func TestSaveLoadPNGRoundTrip(t *testing.T) {
	img := NewFilled(8, 6, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(3, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(img, path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, img.Pix, back.Pix)
}

func TestSaveJPEGFlattensAlpha(t *testing.T) {
	// Fully transparent input encodes as white, not black.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "out.jpg")
	require.NoError(t, SaveJPEG(img, path, 95))

	back, err := Load(path)
	require.NoError(t, err)
	r, g, b, _ := back.At(1, 1).RGBA()
	assert.Greater(t, r, uint32(0xF000))
	assert.Greater(t, g, uint32(0xF000))
	assert.Greater(t, b, uint32(0xF000))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 14))
	src.SetRGBA(10, 10, color.RGBA{R: 9, A: 255})

	out := ToRGBA(src)
	assert.Equal(t, image.Point{}, out.Bounds().Min)
	assert.Equal(t, uint8(9), out.Pix[0])
}

func TestAlphaCompositeOpaque(t *testing.T) {
	dst := NewFilled(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src := NewFilled(2, 2, color.RGBA{R: 255, A: 255})

	AlphaComposite(dst, src, 1, 1)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, dst.RGBAAt(3, 3))
}

func TestAlphaCompositeBlends(t *testing.T) {
	dst := NewFilled(1, 1, color.RGBA{A: 255}) // opaque black
	src := NewFilled(1, 1, color.RGBA{R: 255, A: 128})

	AlphaComposite(dst, src, 0, 0)

	got := dst.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), got.A)
	assert.InDelta(t, 128, got.R, 2)
	assert.Equal(t, uint8(0), got.G)
}

func TestAlphaCompositeClipsToDst(t *testing.T) {
	dst := NewFilled(2, 2, color.RGBA{A: 255})
	src := NewFilled(4, 4, color.RGBA{G: 255, A: 255})

	// Mostly off-canvas; must not panic.
	AlphaComposite(dst, src, -3, -3)
	AlphaComposite(dst, src, 1, 1)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, dst.RGBAAt(1, 1))
}

func TestFlattenOnWhite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{A: 0})
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	flat := FlattenOnWhite(img)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, flat.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flat.RGBAAt(1, 1))
}

func TestFlattenOnWhiteOffsetOrigin(t *testing.T) {
	// Content must land at the flattened buffer's origin, not shift twice.
	img := image.NewRGBA(image.Rect(10, 10, 12, 12))
	img.SetRGBA(10, 10, color.RGBA{R: 255, A: 255})

	flat := FlattenOnWhite(img)
	assert.Equal(t, image.Point{}, flat.Bounds().Min)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flat.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, flat.RGBAAt(1, 1))
}

func TestResize(t *testing.T) {
	img := NewFilled(10, 20, color.RGBA{B: 255, A: 255})
	out := Resize(img, 5, 10)
	assert.Equal(t, 5, out.Bounds().Dx())
	assert.Equal(t, 10, out.Bounds().Dy())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, out.RGBAAt(2, 5))

	// Degenerate targets yield a minimal buffer, not a panic.
	out = Resize(img, 0, -3)
	assert.Equal(t, 1, out.Bounds().Dx())
	assert.Equal(t, 1, out.Bounds().Dy())
}

func TestResizeToFit(t *testing.T) {
	img := NewFilled(100, 50, color.RGBA{A: 255})
	out := ResizeToFit(img, 40)
	assert.Equal(t, 40, out.Bounds().Dx())
	assert.Equal(t, 20, out.Bounds().Dy())

	// Already small enough: unchanged.
	assert.Same(t, img, ResizeToFit(img, 200))
}

func TestCrop(t *testing.T) {
	img := NewFilled(10, 10, color.RGBA{A: 255})
	img.SetRGBA(4, 4, color.RGBA{R: 7, A: 255})

	out := Crop(img, geometry.RectInt{X: 2, Y: 2, Width: 5, Height: 5})
	assert.Equal(t, 5, out.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 7, A: 255}, out.RGBAAt(2, 2))

	// Out-of-bounds rects clamp.
	out = Crop(img, geometry.RectInt{X: 8, Y: 8, Width: 10, Height: 10})
	assert.Equal(t, 2, out.Bounds().Dx())
	assert.Equal(t, 2, out.Bounds().Dy())
}

func TestFlipHorizontal(t *testing.T) {
	img := NewFilled(3, 1, color.RGBA{A: 255})
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 3, A: 255})

	out := FlipHorizontal(img)
	assert.Equal(t, uint8(3), out.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(1), out.RGBAAt(2, 0).R)
}

func TestAdjustWhiteBalanceNeutralIsNoOp(t *testing.T) {
	img := NewFilled(3, 3, color.RGBA{R: 120, G: 60, B: 200, A: 255})
	out := AdjustWhiteBalance(img, 0, 0, 0, 1.0, 1.0)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestAdjustWhiteBalanceBrightness(t *testing.T) {
	img := NewFilled(2, 2, color.RGBA{R: 100, G: 100, B: 100, A: 200})
	out := AdjustWhiteBalance(img, 0, 0, 50, 1.0, 1.0)

	got := out.RGBAAt(0, 0)
	assert.Equal(t, uint8(150), got.R)
	assert.Equal(t, uint8(200), got.A, "alpha preserved")
}

func TestAdjustWhiteBalanceContrastPivot(t *testing.T) {
	// Mid-gray 128 is the contrast pivot and must not move.
	img := NewFilled(1, 1, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	out := AdjustWhiteBalance(img, 0, 0, 0, 1.8, 1.0)
	assert.Equal(t, uint8(128), out.RGBAAt(0, 0).R)
}

func TestAdjustWhiteBalanceSaturationToGray(t *testing.T) {
	img := NewFilled(1, 1, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	out := AdjustWhiteBalance(img, 0, 0, 0, 1.0, 0.0)

	// Fully desaturated red collapses to its Rec. 601 luma.
	got := out.RGBAAt(0, 0)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)
	assert.InDelta(t, 76, got.R, 1)
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("photo.JPG"))
	assert.True(t, IsSupportedFormat("/a/b/wall.png"))
	assert.True(t, IsSupportedFormat("scan.tiff"))
	assert.False(t, IsSupportedFormat("doc.pdf"))
	assert.False(t, IsSupportedFormat("noext"))
}

package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-wall/internal/model"
)

func noShadowConfig() *model.FrameConfig {
	cfg := model.DefaultFrameConfig()
	cfg.FrameShadow.Enabled = false
	cfg.MatShadow.Enabled = false
	return cfg
}

func testArtwork(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestTotalDimensions(t *testing.T) {
	// Bare artwork.
	w, h := TotalDimensions(20, 25, nil)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 25.0, h)

	// Frame only: 2cm on each side.
	cfg := model.DefaultFrameConfig()
	w, h = TotalDimensions(20, 25, cfg)
	assert.Equal(t, 24.0, w)
	assert.Equal(t, 29.0, h)

	// Mat borders add per side.
	cfg.Mat = &model.MatConfig{TopWidthCm: 1, BottomWidthCm: 2, LeftWidthCm: 3, RightWidthCm: 4, Color: "#FFFFFF"}
	w, h = TotalDimensions(20, 25, cfg)
	assert.Equal(t, 20.0+3+4+4, w)
	assert.Equal(t, 25.0+1+2+4, h)
}

func TestRenderFramedBare(t *testing.T) {
	framed := RenderFramed(testArtwork(10, 10), 20, 25, nil, 2.0)
	assert.Equal(t, 40, framed.Image.Bounds().Dx())
	assert.Equal(t, 50, framed.Image.Bounds().Dy())
	assert.Equal(t, 0, framed.ContentOffsetX)
	assert.Equal(t, 0, framed.ContentOffsetY)
}

func TestRenderFramedMatchesFootprint(t *testing.T) {
	cfg := noShadowConfig()
	cfg.Mat = model.UniformMat(5, "#FFFFF0")

	scale := 2.0
	framed := RenderFramed(testArtwork(10, 10), 20, 25, cfg, scale)

	wCm, hCm := TotalDimensions(20, 25, cfg)
	assert.Equal(t, int(wCm*scale), framed.Image.Bounds().Dx())
	assert.Equal(t, int(hCm*scale), framed.Image.Bounds().Dy())
	assert.Equal(t, 0, framed.ContentOffsetX)
}

func TestRenderFramedFrameColor(t *testing.T) {
	cfg := noShadowConfig()
	cfg.FrameColor = "#FF0000"

	framed := RenderFramed(testArtwork(10, 10), 20, 20, cfg, 1.0)

	// A corner pixel lies on the frame border.
	r, g, b, a := framed.Image.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestRenderFramedDropShadowEnlargesCanvas(t *testing.T) {
	cfg := model.DefaultFrameConfig()
	cfg.MatShadow.Enabled = false
	cfg.FrameShadow.Blur = 0 // skip the gocv inset pass, keep the drop shadow
	cfg.FrameShadow.OffsetX = 0
	cfg.FrameShadow.OffsetY = 0

	framed := RenderFramed(testArtwork(10, 10), 20, 20, cfg, 1.0)

	// Footprint 24x24 at scale 1; margin blur*2 = 0 on both sides.
	assert.GreaterOrEqual(t, framed.Image.Bounds().Dx(), 24)
	assert.Equal(t, framed.ContentOffsetX, framed.ContentOffsetY)
}

func TestCache(t *testing.T) {
	c := NewCache()
	framed := &Framed{Image: testArtwork(2, 2)}

	c.Put("a1", 1, 1.0, framed)
	assert.Same(t, framed, c.Get("a1", 1, 1.0))

	// Zoom bucketing is to hundredths.
	assert.Same(t, framed, c.Get("a1", 1, 1.001))
	assert.Nil(t, c.Get("a1", 1, 1.25))

	// Content version misses.
	assert.Nil(t, c.Get("a1", 2, 1.0))

	c.Put("a1", 1, 1.25, framed)
	c.Put("a2", 1, 1.0, framed)
	require.Equal(t, 3, c.Len())

	c.Invalidate("a1")
	assert.Equal(t, 1, c.Len())
	assert.Nil(t, c.Get("a1", 1, 1.0))
	assert.NotNil(t, c.Get("a2", 1, 1.0))

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

package figure

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
	xdraw "golang.org/x/image/draw"
)

// luminance returns the 8-bit perceived brightness of c.
func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
}

// hasDarkPixel reports whether any pixel of img inside rect is darker than limit.
func hasDarkPixel(img image.Image, rect image.Rectangle, limit uint32) bool {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if luminance(img.At(x, y)) < limit {
				return true
			}
		}
	}
	return false
}

func TestDrawLabelBoxBackground(t *testing.T) {
	for _, scale := range []float64{1, 2} {
		dst := image.NewRGBA(image.Rect(0, 0, 200, 60))
		xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)

		drawLabelBox(dst, "Root 38.3%", 10, 10, scale)

		// Just inside the border, within the padding before the text starts.
		inset := max(1, int(scale/2))
		px := dst.RGBAAt(10+inset+1, 10+inset+1)
		assert.GreaterOrEqual(t, px.R, uint8(200), "scale %v: %v", scale, px)
		assert.GreaterOrEqual(t, px.G, uint8(200), "scale %v: %v", scale, px)
		assert.GreaterOrEqual(t, px.B, uint8(200), "scale %v: %v", scale, px)

		size := textSize("Root 38.3%", scale)
		pad := int(3 * scale)
		text := image.Rect(10+pad, 10+pad, 10+pad+size.X, 10+pad+size.Y)
		assert.True(t, hasDarkPixel(dst, text, 100), "scale %v: label text missing", scale)
	}
}

func TestBarPanelLabelsFit(t *testing.T) {
	panel := barPanel{
		title:  "Influence",
		yLabel: "Influence Percentage (%)",
		bars: []bar{
			{label: "Root 38.3%", value: 38.3, color: drawing.ColorFromHex("FF0000")},
			{label: "Third Eye 1.6%", value: 1.6, color: drawing.ColorFromHex("4B0082")},
		},
	}
	const w, h = 800, 300
	for _, dpi := range []float64{72, 144} {
		img, err := panel.render(w, h, dpi)
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

		// Labels are drawn from just below the tick marks down to the bottom edge.
		p := barLabelPadding(dpi)
		band := image.Rect(0, h-2*p+15, w/2, h)
		require.False(t, band.Empty(), "dpi %v: no room for labels", dpi)
		assert.True(t, hasDarkPixel(img, band, 100), "dpi %v: bar labels not drawn", dpi)
		assert.False(t, hasDarkPixel(img, image.Rect(0, h-2, w, h), 100), "dpi %v: bar labels clipped at bottom", dpi)
	}
}

package figure

import (
	"image"
	"image/color"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type align int

const (
	alignLeft align = iota
	alignCenter
)

// textScale is the upscale factor applied to the 7x13 bitmap face so captions
// keep a similar physical size at any DPI.
func textScale(dpi float64) float64 {
	return max(1, dpi/80)
}

// rasterize draws s with the bitmap face onto a tight transparent image.
func rasterize(s string, col color.Color) *image.RGBA {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := max(d.MeasureString(s).Ceil(), 1)
	h := face.Metrics().Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Src = image.NewUniform(col)
	d.Dot = fixed.P(0, face.Metrics().Ascent.Ceil())
	d.DrawString(s)
	return img
}

// textSize returns the scaled pixel size of one line of text.
func textSize(s string, scale float64) image.Point {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil()
	h := face.Metrics().Height.Ceil()
	return image.Pt(int(float64(w)*scale), int(float64(h)*scale))
}

// drawText stamps text onto dst. Lines are split on '\n'. With alignLeft, (x, y)
// is the top-left corner of the block; with alignCenter it is the block center.
func drawText(dst xdraw.Image, s string, x, y int, scale float64, col color.Color, a align) {
	lines := strings.Split(s, "\n")
	lineH := textSize("Ag", scale).Y
	top := y
	if a == alignCenter {
		top = y - lineH*len(lines)/2
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		src := rasterize(line, col)
		size := textSize(line, scale)
		left := x
		if a == alignCenter {
			left = x - size.X/2
		}
		rect := image.Rect(left, top+i*lineH, left+size.X, top+i*lineH+size.Y)
		xdraw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
	}
}

// drawLabelBox draws text on a white box with a thin gray border.
func drawLabelBox(dst xdraw.Image, s string, x, y int, scale float64) {
	size := textSize(s, scale)
	pad := int(3 * scale)
	box := image.Rect(x, y, x+size.X+2*pad, y+size.Y+2*pad)
	xdraw.Draw(dst, box, image.NewUniform(color.RGBA{R: 160, G: 160, B: 160, A: 255}), image.Point{}, xdraw.Src)
	xdraw.Draw(dst, box.Inset(max(1, int(scale/2))), image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 230}), image.Point{}, xdraw.Over)
	drawText(dst, s, x+pad, y+pad, scale, color.Black, alignLeft)
}

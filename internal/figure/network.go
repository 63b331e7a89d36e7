package figure

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Geometry of the topology diagram in data units. The view spans [-1.5, 1.5].
const (
	networkExtent = 1.5
	nodeRadius    = 0.15
	centerRadius  = 0.2
)

var goldColor = drawing.ColorFromHex("FFD700")

// node is one signal in the topology diagram.
type node struct {
	label string
	color drawing.Color
}

// renderNetwork draws the signal nodes on a unit circle with spokes to a
// central decision node, using the raw go-chart raster renderer.
func renderNetwork(nodes []node, title string, w, h int, dpi float64) (image.Image, error) {
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("network renderer: %w", err)
	}
	r.SetDPI(dpi)

	scale := textScale(dpi)
	header := int(float64(textSize("Ag", scale).Y) * 2)
	side := min(w, h-header)
	unit := float64(side) / (2 * networkExtent)
	cx := w / 2
	cy := header + (h-header)/2
	toPx := func(x, y float64) (int, int) {
		return cx + int(x*unit), cy - int(y*unit)
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()

	centers := make([]image.Point, len(nodes))
	for i := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(len(nodes))
		x, y := toPx(math.Cos(angle), math.Sin(angle))
		centers[i] = image.Pt(x, y)

		r.SetStrokeColor(drawing.ColorBlack.WithAlpha(77))
		r.SetStrokeWidth(points(1, dpi))
		r.MoveTo(cx, cy)
		r.LineTo(x, y)
		r.Stroke()
	}
	for i, n := range nodes {
		r.SetFillColor(n.color.WithAlpha(179))
		r.Circle(nodeRadius*unit, centers[i].X, centers[i].Y)
		r.Fill()
	}
	r.SetFillColor(goldColor.WithAlpha(230))
	r.Circle(centerRadius*unit, cx, cy)
	r.Fill()

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("save network: %w", err)
	}
	decoded, err := decode(&buf)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(decoded.Bounds())
	draw.Draw(img, img.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	drawText(img, title, w/2, header/2, scale, color.Black, alignCenter)
	for i, n := range nodes {
		drawText(img, n.label, centers[i].X, centers[i].Y, scale*0.8, color.White, alignCenter)
	}
	drawText(img, "AI\nDecision", cx, cy, scale*0.8, color.Black, alignCenter)
	return img, nil
}

package figure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("DDDDDD"),
	StrokeWidth: 1,
}

// line is one series of a line panel.
type line struct {
	name   string
	x, y   []float64
	color  drawing.Color
	width  float64 // points
	fill   bool
	dashed bool
	alpha  uint8
}

// linePanel describes one go-chart line plot.
type linePanel struct {
	title  string
	xLabel string
	yLabel string
	lines  []line
	legend bool
}

// decode turns go-chart PNG bytes into an image.
func decode(buf *bytes.Buffer) (image.Image, error) {
	img, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel: %w", err)
	}
	return img, nil
}

// paddedRange returns a padded [min, max] over every series. A flat range is
// widened so go-chart never sees a zero span.
func paddedRange(series [][]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, ys := range series {
		for _, v := range ys {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return -1, 1
	}
	span := hi - lo
	if span < 1e-12 {
		return lo - 1, hi + 1
	}
	return lo - 0.05*span, hi + 0.05*span
}

func panelBackground(dpi float64) chart.Style {
	p := int(points(6, dpi))
	return chart.Style{Padding: chart.Box{Top: p, Left: p, Right: p, Bottom: p}}
}

// render draws the panel at w x h pixels.
func (p linePanel) render(w, h int, dpi float64) (image.Image, error) {
	series := make([]chart.Series, 0, len(p.lines))
	xs := make([][]float64, 0, len(p.lines))
	ys := make([][]float64, 0, len(p.lines))
	for _, l := range p.lines {
		alpha := l.alpha
		if alpha == 0 {
			alpha = 204
		}
		style := chart.Style{
			StrokeColor: l.color.WithAlpha(alpha),
			StrokeWidth: points(l.width, dpi),
		}
		if l.fill {
			style.FillColor = l.color.WithAlpha(77)
		}
		if l.dashed {
			d := points(4, dpi)
			style.StrokeDashArray = []float64{d, d}
		}
		series = append(series, chart.ContinuousSeries{Name: l.name, XValues: l.x, YValues: l.y, Style: style})
		xs = append(xs, l.x)
		ys = append(ys, l.y)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: panel %q has no series", ErrInvalidInput, p.title)
	}

	xMin, xMax := bounds(xs)
	yMin, yMax := paddedRange(ys)
	ch := chart.Chart{
		Title:      p.title,
		TitleStyle: chart.Style{FontSize: 11},
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: panelBackground(dpi),
		XAxis: chart.XAxis{
			Name:           p.xLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           p.yLabel,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	if p.legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel %q: %w", p.title, err)
	}
	return decode(&buf)
}

// bounds returns the exact [min, max] of the x vectors.
func bounds(series [][]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, xs := range series {
		if len(xs) == 0 {
			continue
		}
		lo = math.Min(lo, xs[0])
		hi = math.Max(hi, xs[len(xs)-1])
	}
	if hi <= lo {
		return lo - 1, lo + 1
	}
	return lo, hi
}

// bar is one bar of a bar panel.
type bar struct {
	label string
	value float64
	color drawing.Color
}

// barPanel describes one go-chart bar chart.
type barPanel struct {
	title  string
	yLabel string
	bars   []bar
}

// barLabelPadding is the bottom padding that keeps bar labels on the canvas.
func barLabelPadding(dpi float64) int {
	return int(points(24, dpi))
}

func (p barPanel) render(w, h int, dpi float64) (image.Image, error) {
	if len(p.bars) == 0 {
		return nil, fmt.Errorf("%w: bar panel %q has no bars", ErrInvalidInput, p.title)
	}
	values := make([]chart.Value, len(p.bars))
	top := 0.0
	for i, b := range p.bars {
		values[i] = chart.Value{
			Label: b.label,
			Value: b.value,
			Style: chart.Style{
				FillColor:   b.color.WithAlpha(179),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: points(0.8, dpi),
			},
		}
		top = math.Max(top, b.value)
	}
	if top <= 0 {
		top = 1
	}

	// Category labels sit below the axis inside the bottom padding.
	bg := panelBackground(dpi)
	bg.Padding.Bottom = barLabelPadding(dpi)

	slot := w / (len(p.bars) + 1)
	bc := chart.BarChart{
		Title:      p.title,
		TitleStyle: chart.Style{FontSize: 12},
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: bg,
		BarWidth:   slot * 2 / 3,
		BarSpacing: slot / 3,
		YAxis: chart.YAxis{
			Name:           p.yLabel,
			Range:          &chart.ContinuousRange{Min: 0, Max: top * 1.15},
			GridMajorStyle: gridStyle,
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bars %q: %w", p.title, err)
	}
	return decode(&buf)
}

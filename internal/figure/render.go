package figure

import (
	"fmt"
	"image"
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/huangsam/chakra/schema"
)

// Figure sizes in inches.
const (
	individualWidth, individualHeight = 15.0, 12.0
	overviewWidth, overviewHeight     = 14.0, 10.0
)

func signalColor(info schema.ChakraInfo) drawing.Color {
	return drawing.ColorFromHex(info.Color)
}

func signalInfos() []schema.ChakraInfo {
	infos := make([]schema.ChakraInfo, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		infos[i] = schema.MustInfo(name)
	}
	return infos
}

// captionHeight is the band reserved above a panel for a bitmap caption.
func captionHeight(dpi float64) int {
	return textSize("Ag", textScale(dpi)).Y * 3 / 2
}

// RenderIndividual writes a 3x3 grid with one filled activation panel per signal.
// The last two cells stay blank.
func RenderIndividual(in *Input, path string, opts Options) error {
	if err := in.validate(); err != nil {
		return err
	}
	dpi := opts.dpi()
	c := newCanvas(individualWidth, individualHeight, 3, 3, dpi)
	scale := textScale(dpi)
	caption := captionHeight(dpi)

	for k, info := range signalInfos() {
		cell := c.cell(k/3, k%3)
		body := image.Rect(cell.Min.X, cell.Min.Y+caption, cell.Max.X, cell.Max.Y)
		p := linePanel{
			title:  fmt.Sprintf("Chakra %d: %s", info.Index, info.Short),
			xLabel: "Time (t)",
			yLabel: fmt.Sprintf("E%d'(t)", info.Index),
			lines: []line{{
				name:  string(info.Name),
				x:     in.Time,
				y:     in.Signals[k],
				color: signalColor(info),
				width: 2.5,
				fill:  true,
			}},
		}
		panel, err := p.render(body.Dx(), body.Dy(), dpi)
		if err != nil {
			return err
		}
		c.place(panel, body)

		subtitle := fmt.Sprintf("%s - %s", info.Syllable, info.Function)
		drawText(c.img, subtitle, cell.Min.X+cell.Dx()/2, cell.Min.Y+caption/2, scale, color.Black, alignCenter)
		annotation := fmt.Sprintf("Influence: %.1f%%", in.Influences[k]*100)
		inset := int(points(40, dpi))
		drawLabelBox(c.img, annotation, body.Min.X+inset, body.Min.Y+inset, scale*0.8)
	}
	return c.save(path)
}

// RenderCombined writes the overlaid activations above a bar chart of influences.
func RenderCombined(in *Input, path string, opts Options) error {
	if err := in.validate(); err != nil {
		return err
	}
	dpi := opts.dpi()
	c := newCanvas(overviewWidth, overviewHeight, 2, 1, dpi)

	infos := signalInfos()
	lines := make([]line, len(infos))
	bars := make([]bar, len(infos))
	for k, info := range infos {
		pct := in.Influences[k] * 100
		lines[k] = line{
			name:  fmt.Sprintf("%s (%.1f%%)", info.Display, pct),
			x:     in.Time,
			y:     in.Signals[k],
			color: signalColor(info),
			width: 2,
		}
		bars[k] = bar{
			label: fmt.Sprintf("%s %.1f%%", info.Display, pct),
			value: pct,
			color: signalColor(info),
		}
	}

	top := c.cell(0, 0)
	overview := linePanel{
		title:  "Nuvidya: All Chakra Activations Over Time",
		xLabel: "Time (t)",
		yLabel: "Chakra Energy E_k'(t)",
		lines:  lines,
		legend: true,
	}
	img, err := overview.render(top.Dx(), top.Dy(), dpi)
	if err != nil {
		return err
	}
	c.place(img, top)

	bottom := c.cell(1, 0)
	weights := barPanel{
		title:  "Chakra Influence Weights (α_k)",
		yLabel: "Influence Percentage (%)",
		bars:   bars,
	}
	img, err = weights.render(bottom.Dx(), bottom.Dy(), dpi)
	if err != nil {
		return err
	}
	c.place(img, bottom)
	return c.save(path)
}

// RenderDecisionFlow writes the 2x2 decision flow figure: reasoning curves,
// their weighted sum, cumulative energy and the network topology.
func RenderDecisionFlow(in *Input, path string, opts Options) error {
	if err := in.validate(); err != nil {
		return err
	}
	dpi := opts.dpi()
	c := newCanvas(overviewWidth, overviewHeight, 2, 2, dpi)
	infos := signalInfos()
	d := in.Decision

	reasoning := linePanel{
		title:  "Individual Chakra Reasoning Functions f_k(x)",
		xLabel: "Input x",
		yLabel: "f_k(x)",
		legend: true,
	}
	weighted := linePanel{
		title:  "Weighted AI Decision Output",
		xLabel: "Input x",
		yLabel: "Weighted Output",
		legend: true,
	}
	energy := linePanel{
		title:  "Cumulative Energy Integration: W_k = ∫ E_k'(t) dt",
		xLabel: "Time (t)",
		yLabel: "Integrated Energy W_k",
		legend: true,
	}
	nodes := make([]node, len(infos))
	for k, info := range infos {
		col := signalColor(info)
		reasoning.lines = append(reasoning.lines, line{name: info.Short, x: d.X, y: d.Functions[k], color: col, width: 2, alpha: 179})
		weighted.lines = append(weighted.lines, line{name: info.Short, x: d.X, y: d.Contributions[k], color: col, width: 1, dashed: true, alpha: 153})
		energy.lines = append(energy.lines, line{name: info.Display, x: in.Time, y: in.CumulativeEnergy[k], color: col, width: 2})
		nodes[k] = node{label: abbreviate(info.Short), color: col}
	}
	weighted.lines = append(weighted.lines, line{
		name:  "Final AI Output: Σ(α_k × f_k(x))",
		x:     d.X,
		y:     d.Output,
		color: drawing.ColorBlack,
		width: 3,
		alpha: 255,
	})

	panels := []linePanel{reasoning, weighted, energy}
	for i, p := range panels {
		cell := c.cell(i/2, i%2)
		img, err := p.render(cell.Dx(), cell.Dy(), dpi)
		if err != nil {
			return err
		}
		c.place(img, cell)
	}

	cell := c.cell(1, 1)
	img, err := renderNetwork(nodes, "Chakra Network Topology", cell.Dx(), cell.Dy(), dpi)
	if err != nil {
		return err
	}
	c.place(img, cell)
	return c.save(path)
}

// abbreviate keeps the first three letters of a name.
func abbreviate(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// Package figure renders the chakra charts as PNG files.
//
// Every chart is a grid of panels. go-chart draws each panel, the panels are
// composed onto one RGBA canvas and bitmap captions are stamped on top. The
// canvas size is the figure size in inches times the configured DPI.
package figure

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/huangsam/chakra/schema"
)

var (
	// ErrOutputDirMissing is returned when the chart directory does not exist.
	// The directory is never created on the caller's behalf.
	ErrOutputDirMissing = errors.New("output directory does not exist")

	// ErrInvalidInput is returned when the render input has inconsistent shapes.
	ErrInvalidInput = errors.New("invalid figure input")
)

// Options controls rasterization.
type Options struct {
	DPI int
}

func (o Options) dpi() float64 {
	if o.DPI <= 0 {
		return 300
	}
	return float64(o.DPI)
}

// Input is everything the renderers draw. All per-signal slices are in signal order.
type Input struct {
	Time             []float64
	Signals          [][]float64
	Influences       []float64
	CumulativeEnergy [][]float64
	Decision         schema.DecisionFlow
}

func (in *Input) validate() error {
	if in == nil {
		return fmt.Errorf("%w: nil input", ErrInvalidInput)
	}
	n := schema.SignalCount
	if len(in.Signals) != n || len(in.Influences) != n || len(in.CumulativeEnergy) != n {
		return fmt.Errorf("%w: expected %d signals, influences and energy curves", ErrInvalidInput, n)
	}
	if len(in.Time) < 2 {
		return fmt.Errorf("%w: time vector needs at least 2 samples", ErrInvalidInput)
	}
	for k := range n {
		if len(in.Signals[k]) != len(in.Time) || len(in.CumulativeEnergy[k]) != len(in.Time) {
			return fmt.Errorf("%w: signal %d does not match the time vector", ErrInvalidInput, k+1)
		}
	}
	d := in.Decision
	if len(d.Functions) != n || len(d.Contributions) != n || len(d.Output) != len(d.X) || len(d.X) < 2 {
		return fmt.Errorf("%w: decision flow is incomplete", ErrInvalidInput)
	}
	return nil
}

// CheckOutputDir verifies that dir exists and is a directory.
func CheckOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}
	if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputDirMissing, dir)
	}
	return nil
}

// Artifact describes a file written by one of the renderers.
func Artifact(path string) (schema.ChartArtifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return schema.ChartArtifact{}, fmt.Errorf("chart %s was not written: %w", path, err)
	}
	return schema.ChartArtifact{Path: path, Bytes: info.Size()}, nil
}

// canvas is a white figure split into a rows x cols grid.
type canvas struct {
	img        *image.RGBA
	rows, cols int
	dpi        float64
}

func newCanvas(widthIn, heightIn float64, rows, cols int, dpi float64) *canvas {
	w := int(widthIn * dpi)
	h := int(heightIn * dpi)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{img: img, rows: rows, cols: cols, dpi: dpi}
}

// cell returns the pixel rectangle of grid cell (row, col).
func (c *canvas) cell(row, col int) image.Rectangle {
	b := c.img.Bounds()
	cw := b.Dx() / c.cols
	ch := b.Dy() / c.rows
	return image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
}

// place draws a rendered panel into rect.
func (c *canvas) place(panel image.Image, rect image.Rectangle) {
	draw.Draw(c.img, rect, panel, panel.Bounds().Min, draw.Over)
}

func (c *canvas) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, c.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// points converts a typographic size to pixels at the canvas DPI.
func points(pt, dpi float64) float64 {
	return pt * dpi / 72
}

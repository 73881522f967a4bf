// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cookiecats/gatetest/stats"
)

// Default plot size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// densityPoints is the number of points each density curve is
// evaluated at.
const densityPoints = 200

// Series is one named density in a DensityPlot.
type Series struct {
	Name string
	Dist stats.Dist
}

// DensityPlot draws one or more densities over their combined bounds,
// such as the KDEs of the bootstrap means of each arm.
type DensityPlot struct {
	Title  string
	XLabel string
	Series []Series

	// Width and Height default to DefaultWidth and DefaultHeight.
	Width, Height int
}

// Render writes p as a PNG to w.
func (p DensityPlot) Render(w io.Writer) error {
	if len(p.Series) == 0 {
		return errors.New("density plot has no series")
	}

	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		lo, hi := s.Dist.Bounds()
		xmin, xmax = math.Min(xmin, lo), math.Max(xmax, hi)
	}
	if !(xmax > xmin) {
		return errors.Errorf("density plot %q has empty bounds [%g, %g]", p.Title, xmin, xmax)
	}

	xs := stats.Linspace(xmin, xmax, densityPoints)
	curves := make([][]float64, len(p.Series))
	ymax := 0.0
	for i, s := range p.Series {
		curves[i] = stats.PDFEach(s.Dist, xs)
		for _, y := range curves[i] {
			ymax = math.Max(ymax, y)
		}
	}
	if !(ymax > 0) || math.IsInf(ymax, 0) {
		return errors.Errorf("density plot %q has no finite mass", p.Title)
	}

	c, err := newCanvas(p.Width, p.Height, p.Title, p.XLabel, "density")
	if err != nil {
		return err
	}
	c.axes(xmin, xmax, 0, ymax*1.05)
	names := make([]string, len(p.Series))
	for i, ys := range curves {
		c.polyline(xs, ys, palette[i%len(palette)])
		names[i] = p.Series[i].Name
	}
	c.legend(names)
	return c.dc.EncodePNG(w)
}

// LinePlot draws a single line through the points (X[i], Y[i]), such
// as the number of players per count of game rounds played.
type LinePlot struct {
	Title, XLabel, YLabel string
	X, Y                  []float64

	// Width and Height default to DefaultWidth and DefaultHeight.
	Width, Height int
}

// Render writes p as a PNG to w.
func (p LinePlot) Render(w io.Writer) error {
	if len(p.X) != len(p.Y) {
		return errors.Errorf("line plot %q has %d x values and %d y values", p.Title, len(p.X), len(p.Y))
	}
	if len(p.X) < 2 {
		return errors.Errorf("line plot %q needs at least 2 points", p.Title)
	}
	xmin, xmax := stats.Sample{Xs: p.X}.Bounds()
	_, ymax := stats.Sample{Xs: p.Y}.Bounds()
	if xmax == xmin {
		return errors.Errorf("line plot %q has a single x value", p.Title)
	}
	if ymax <= 0 {
		ymax = 1
	}

	c, err := newCanvas(p.Width, p.Height, p.Title, p.XLabel, p.YLabel)
	if err != nil {
		return err
	}
	c.axes(xmin, xmax, 0, ymax*1.05)
	c.polyline(p.X, p.Y, palette[0])
	return c.dc.EncodePNG(w)
}

type rgb struct{ r, g, b float64 }

var palette = []rgb{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
}

// canvas is an image with a plot area and the data-to-pixel mapping
// set by axes.
type canvas struct {
	dc                       *gg.Context
	title, xlabel, ylabel    string
	regular, bold            font.Face
	left, right, top, bottom float64
	xmin, xmax, ymin, ymax   float64
}

func newCanvas(width, height int, title, xlabel, ylabel string) (*canvas, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	regular, err := loadFont(goregular.TTF, 12)
	if err != nil {
		return nil, errors.Wrap(err, "loading font")
	}
	bold, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, errors.Wrap(err, "loading font")
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &canvas{
		dc:      dc,
		title:   title,
		xlabel:  xlabel,
		ylabel:  ylabel,
		regular: regular,
		bold:    bold,
		left:    70,
		right:   float64(width) - 20,
		top:     40,
		bottom:  float64(height) - 50,
	}, nil
}

func (c *canvas) px(x float64) float64 {
	return c.left + (x-c.xmin)/(c.xmax-c.xmin)*(c.right-c.left)
}

func (c *canvas) py(y float64) float64 {
	return c.bottom - (y-c.ymin)/(c.ymax-c.ymin)*(c.bottom-c.top)
}

// axes fixes the data ranges and draws the frame, ticks, title and
// axis labels.
func (c *canvas) axes(xmin, xmax, ymin, ymax float64) {
	c.xmin, c.xmax, c.ymin, c.ymax = xmin, xmax, ymin, ymax
	dc := c.dc

	dc.SetFontFace(c.bold)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(c.title, (c.left+c.right)/2, c.top/2, 0.5, 0.5)

	dc.SetFontFace(c.regular)
	dc.SetLineWidth(1)
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawRectangle(c.left, c.top, c.right-c.left, c.bottom-c.top)
	dc.Stroke()

	for _, x := range ticks(xmin, xmax, 8) {
		X := c.px(x)
		dc.DrawLine(X, c.bottom, X, c.bottom+5)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(x), X, c.bottom+8, 0.5, 1)
	}
	for _, y := range ticks(ymin, ymax, 6) {
		Y := c.py(y)
		dc.DrawLine(c.left-5, Y, c.left, Y)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(y), c.left-8, Y, 1, 0.5)
	}

	dc.DrawStringAnchored(c.xlabel, (c.left+c.right)/2, float64(dc.Height())-10, 0.5, 0)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 15, (c.top+c.bottom)/2)
	dc.DrawStringAnchored(c.ylabel, 15, (c.top+c.bottom)/2, 0.5, 0.5)
	dc.Pop()
}

func (c *canvas) polyline(xs, ys []float64, col rgb) {
	dc := c.dc
	dc.SetRGB(col.r, col.g, col.b)
	dc.SetLineWidth(2)
	for i := range xs {
		if i == 0 {
			dc.MoveTo(c.px(xs[i]), c.py(ys[i]))
		} else {
			dc.LineTo(c.px(xs[i]), c.py(ys[i]))
		}
	}
	dc.Stroke()
}

func (c *canvas) legend(names []string) {
	dc := c.dc
	dc.SetFontFace(c.regular)
	x, y := c.right-150, c.top+20
	for i, name := range names {
		col := palette[i%len(palette)]
		dc.SetRGB(col.r, col.g, col.b)
		dc.SetLineWidth(3)
		dc.DrawLine(x, y, x+20, y)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(name, x+28, y, 0, 0.5)
		y += 18
	}
}

// ticks returns about n round values spanning [lo, hi].
func ticks(lo, hi float64, n int) []float64 {
	if !(hi > lo) || n < 1 {
		return nil
	}
	raw := (hi - lo) / float64(n)
	step := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step*m >= raw {
			step *= m
			break
		}
	}
	var ts []float64
	for t := math.Ceil(lo/step) * step; t <= hi+step*1e-9; t += step {
		ts = append(ts, t)
	}
	return ts
}

func tickLabel(x float64) string {
	if math.Abs(x) < 1e-12 {
		x = 0
	}
	return fmt.Sprintf("%.4g", x)
}

func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return face, nil
}

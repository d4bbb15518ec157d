package render

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tiancaiamao/memlat-chart"
)

// GoChart renders PNG or SVG through go-chart. go-chart has no log axis, so a
// log x scale is drawn on log10(x) with one labelled tick per decade.
type GoChart struct {
	Format        string
	Width, Height int
}

func NewGoChart(format string) (*GoChart, error) {
	if format != "png" && format != "svg" {
		return nil, errors.Errorf("gochart: unsupported image format %q", format)
	}
	return &GoChart{Format: format, Width: Width, Height: Height}, nil
}

func (g *GoChart) Render(w io.Writer, spec memlat.ChartSpec) error {
	c := g.Chart(spec)
	provider := chart.PNG
	if g.Format == "svg" {
		provider = chart.SVG
	}
	return c.Render(provider, w)
}

// Chart builds the go-chart value for spec.
func (g *GoChart) Chart(spec memlat.ChartSpec) *chart.Chart {
	xf := func(x float64) float64 { return x }
	xMin, xMax := spec.XRange()
	xAxis := chart.XAxis{Name: spec.XLabel}
	if spec.XScale == memlat.Log {
		xf = math.Log10
		lo, hi := math.Floor(math.Log10(xMin)), math.Ceil(math.Log10(xMax))
		if hi == lo {
			hi = lo + 1
		}
		xAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
		for k := lo; k <= hi; k++ {
			xAxis.Ticks = append(xAxis.Ticks, chart.Tick{Value: k, Label: fmt.Sprintf("1e%d", int(k))})
		}
	}

	top := spec.YMax() * 1.05
	if top <= 0 {
		top = 1
	}

	var series []chart.Series
	for i, s := range spec.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = xf(p.X)
			ys[j] = p.Y
		}
		if len(xs) == 1 {
			// go-chart needs two points to draw a line.
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: parseColor(seriesColor(i)),
				StrokeWidth: 2,
			},
		})
	}
	for _, m := range spec.Markers {
		x := xf(m.X)
		series = append(series, chart.ContinuousSeries{
			Name:    m.Label,
			XValues: []float64{x, x},
			YValues: []float64{0, top},
			Style: chart.Style{
				StrokeColor: parseColor(m.Color),
				StrokeWidth: 2,
			},
		})
	}

	c := &chart.Chart{
		Title:  spec.Title,
		Width:  g.Width,
		Height: g.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  xAxis,
		YAxis:  chart.YAxis{Name: spec.YLabel, Range: &chart.ContinuousRange{Min: 0, Max: top}},
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(c)}
	return c
}

package render

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tiancaiamao/memlat-chart"
)

const pngDPI = 96

var gonumFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// Gonum renders image files through gonum/plot.
type Gonum struct {
	Format        string
	Width, Height int
}

func NewGonum(format string) (*Gonum, error) {
	if !gonumFormats[format] {
		return nil, errors.Errorf("gonum: unsupported image format %q", format)
	}
	return &Gonum{Format: format, Width: Width, Height: Height}, nil
}

func (g *Gonum) Render(w io.Writer, spec memlat.ChartSpec) error {
	p, err := g.Plot(spec)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(pixels(g.Width), pixels(g.Height), g.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Plot builds the gonum plot for spec without drawing it.
func (g *Gonum) Plot(spec memlat.ChartSpec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	if spec.XScale == memlat.Log {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	lines, err := g.lines(spec)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		p.Add(l.line)
		p.Legend.Add(l.name, l.line)
	}
	return p, nil
}

// namedLine is one legend entry of the plot.
type namedLine struct {
	name string
	line *plotter.Line
}

// lines returns the data series followed by the marker lines, in legend order.
func (g *Gonum) lines(spec memlat.ChartSpec) ([]namedLine, error) {
	out := make([]namedLine, 0, len(spec.Series)+len(spec.Markers))
	for i, s := range spec.Series {
		pts := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			pts[j].X = pt.X
			pts[j].Y = pt.Y
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "series %s", s.Name)
		}
		l.LineStyle.Color = parseColor(seriesColor(i))
		l.LineStyle.Width = vg.Points(1.5)
		out = append(out, namedLine{name: s.Name, line: l})
	}

	top := spec.YMax() * 1.05
	if top <= 0 {
		top = 1
	}
	for _, m := range spec.Markers {
		l, err := plotter.NewLine(plotter.XYs{{X: m.X, Y: 0}, {X: m.X, Y: top}})
		if err != nil {
			return nil, errors.Wrapf(err, "marker %s", m.Label)
		}
		l.LineStyle.Color = parseColor(m.Color)
		l.LineStyle.Width = vg.Points(1.5)
		out = append(out, namedLine{name: m.Label, line: l})
	}
	return out, nil
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pngDPI
}

package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tiancaiamao/memlat-chart"
)

// ECharts renders a standalone HTML page.
type ECharts struct {
	Width, Height int
}

func NewECharts() *ECharts {
	return &ECharts{Width: Width, Height: Height}
}

func (e *ECharts) Render(w io.Writer, spec memlat.ChartSpec) error {
	return e.LineChart(spec).Render(w)
}

// LineChart builds the go-echarts line chart for spec. Each marker becomes an
// empty series carrying a vertical markLine so it gets its own legend entry.
func (e *ECharts) LineChart(spec memlat.ChartSpec) *charts.Line {
	line := charts.NewLine()
	xType := "value"
	if spec.XScale == memlat.Log {
		xType = "log"
	}
	xMin, xMax := spec.XRange()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Width:     fmt.Sprintf("%dpx", e.Width),
			Height:    fmt.Sprintf("%dpx", e.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: spec.XLabel,
			Type: xType,
			Min:  xMin,
			Max:  xMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: spec.YLabel,
			Type: "value",
		}),
	)

	for i, s := range spec.Series {
		data := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
		}
		c := seriesColor(i)
		line.AddSeries(s.Name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: c, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c}),
		)
	}

	for _, m := range spec.Markers {
		line.AddSeries(m.Label, []opts.LineData{},
			charts.WithLineStyleOpts(opts.LineStyle{Color: m.Color, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: m.Color}),
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  m.Label,
				XAxis: m.X,
			}),
			markLineStyle,
		)
	}
	return line
}

// markLineStyle draws marker lines without end arrows and labels them with
// the marker name. It must follow the markLine item option, which allocates
// MarkLines.
func markLineStyle(s *charts.SingleSeries) {
	s.MarkLines.MarkLineStyle = opts.MarkLineStyle{
		Symbol: []string{"none", "none"},
		Label:  &opts.Label{Show: true, Formatter: "{b}"},
	}
}

package memlat

// Measurement is one line of the latency tool output.
type Measurement struct {
	ArraySize    uint64
	RandomNs     float64
	SequentialNs float64
}

// Table holds the measurements of one run, in file order.
type Table struct {
	Source string
	rows   []Measurement
}

// NewTable copies rows into a Table.
func NewTable(source string, rows []Measurement) Table {
	return Table{
		Source: source,
		rows:   append([]Measurement(nil), rows...),
	}
}

func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the measurements.
func (t Table) Rows() []Measurement {
	return append([]Measurement(nil), t.rows...)
}

// CacheBoundary marks the capacity of one cache level on the chart.
type CacheBoundary struct {
	Label string
	Size  uint64
	// Color is a #rrggbb hex string.
	Color string
}

type Scale int

const (
	Linear Scale = iota
	Log
)

type Point struct {
	X, Y float64
}

type Series struct {
	Name   string
	Points []Point
}

// Marker is a vertical reference line at X.
type Marker struct {
	Label string
	X     float64
	Color string
}

// ChartSpec is everything a backend needs to draw the latency chart.
type ChartSpec struct {
	Title   string
	XLabel  string
	YLabel  string
	XScale  Scale
	Series  []Series
	Markers []Marker
}

// XRange returns the smallest and largest x over series and markers.
func (c ChartSpec) XRange() (min, max float64) {
	first := true
	visit := func(x float64) {
		if first {
			min, max = x, x
			first = false
			return
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	for _, s := range c.Series {
		for _, p := range s.Points {
			visit(p.X)
		}
	}
	for _, m := range c.Markers {
		visit(m.X)
	}
	return
}

// YMax returns the largest latency in the chart, or 0 for an empty chart.
func (c ChartSpec) YMax() float64 {
	var max float64
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Y > max {
				max = p.Y
			}
		}
	}
	return max
}

package memlat

const (
	Title          = "Latency as a function of array size on AMD Ryzen 9 6900HS"
	XLabel         = "Bytes allocated (log scale)"
	YLabel         = "Latency (ns)"
	RandomName     = "Random access"
	SequentialName = "Sequential access"
)

// BuildChart lays out the random and sequential latency series against array
// size and adds one marker per cache boundary.
func BuildChart(t Table, boundaries []CacheBoundary) ChartSpec {
	random := make([]Point, 0, t.Len())
	sequential := make([]Point, 0, t.Len())
	for _, m := range t.rows {
		x := float64(m.ArraySize)
		random = append(random, Point{X: x, Y: m.RandomNs})
		sequential = append(sequential, Point{X: x, Y: m.SequentialNs})
	}

	markers := make([]Marker, 0, len(boundaries))
	for _, b := range boundaries {
		markers = append(markers, Marker{
			Label: b.Label,
			X:     float64(b.Size),
			Color: b.Color,
		})
	}

	return ChartSpec{
		Title:  Title,
		XLabel: XLabel,
		YLabel: YLabel,
		XScale: Log,
		Series: []Series{
			{Name: RandomName, Points: random},
			{Name: SequentialName, Points: sequential},
		},
		Markers: markers,
	}
}

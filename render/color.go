package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Line colors for the random and sequential series.
const (
	randomColor     = "#1f77b4"
	sequentialColor = "#ff7f0e"
)

func seriesColor(i int) string {
	if i == 0 {
		return randomColor
	}
	return sequentialColor
}

func parseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

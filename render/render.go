// Package render draws a memlat.ChartSpec with one of several chart libraries.
package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/tiancaiamao/memlat-chart"
)

// Renderer writes a chart to w.
type Renderer interface {
	Render(w io.Writer, spec memlat.ChartSpec) error
}

// Backend names accepted by ForFile.
const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// Default output size in pixels.
const (
	Width  = 1024
	Height = 640
)

// ForFile picks a renderer from the extension of path. HTML always goes to
// echarts; images go to backend, gonum when empty.
func ForFile(path, backend string) (Renderer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "html" || ext == "htm" {
		return NewECharts(), nil
	}
	switch backend {
	case "", BackendGonum:
		return NewGonum(ext)
	case BackendGoChart:
		return NewGoChart(ext)
	}
	return nil, errors.Errorf("unknown backend %q", backend)
}

// WriteFile renders spec into path. Nothing is left at path if rendering fails.
func WriteFile(path, backend string, spec memlat.ChartSpec) error {
	r, err := ForFile(path, backend)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(out, spec); err != nil {
		out.Close()
		os.Remove(path)
		return errors.Wrapf(err, "render %s", path)
	}
	return out.Close()
}

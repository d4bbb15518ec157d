package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiancaiamao/memlat-chart"
	"github.com/tiancaiamao/memlat-chart/render"
)

func TestCacheLevel(t *testing.T) {
	assert.Equal(t, "L1", cacheLevel(100))
	assert.Equal(t, "L1", cacheLevel(memlat.L1Size))
	assert.Equal(t, "L2", cacheLevel(memlat.L1Size+1))
	assert.Equal(t, "L3", cacheLevel(memlat.L3Size))
	assert.Equal(t, "DRAM", cacheLevel(memlat.L3Size+1))
}

func TestWriteTable(t *testing.T) {
	tbl := memlat.NewTable("t", []memlat.Measurement{
		{ArraySize: 65536, RandomNs: 10, SequentialNs: 2},
		{ArraySize: 33554432, RandomNs: 210.5, SequentialNs: 51.25},
	})
	var buf bytes.Buffer
	writeTable(&buf, tbl)

	out := buf.String()
	assert.Contains(t, out, "65536")
	assert.Contains(t, out, "210.50")
	assert.Contains(t, out, "51.25")
	assert.Contains(t, out, "DRAM")
}

func TestRenderChart(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "output.csv")
	require.NoError(t, os.WriteFile(in, []byte("65536,10.0,2.0\n131072,15.0,3.0\n16777216,200.0,50.0\n"), 0644))

	out := filepath.Join(dir, "latency.png")
	require.NoError(t, renderChart(in, out, render.BackendGonum))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderChartMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "latency.png")

	err := renderChart(filepath.Join(dir, "missing.csv"), out, render.BackendGonum)
	assert.True(t, errors.Is(err, memlat.ErrFileNotFound))
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing rendered")
}

func TestPrintTableParseError(t *testing.T) {
	in := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(in, []byte("abc,1.0,2.0\n"), 0644))

	var buf bytes.Buffer
	err := printTable(&buf, in)
	assert.True(t, errors.Is(err, memlat.ErrParse))
	assert.Zero(t, buf.Len())
}

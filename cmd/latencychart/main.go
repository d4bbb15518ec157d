package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tiancaiamao/memlat-chart"
	"github.com/tiancaiamao/memlat-chart/render"
)

var (
	app      = kingpin.New("latencychart", "Plot memory access latency against array size.")
	logLevel = app.Flag("log-level", "Log level: debug, info, warn, error.").Default("info").Envar("LATENCYCHART_LOG").String()
	header   = app.Flag("header", "Skip the first row of the CSV.").Bool()

	renderCmd = app.Command("render", "Render the chart to an image or HTML file.").Default()
	backend   = renderCmd.Flag("backend", "Image backend: gonum or gochart.").Default(render.BackendGonum).Enum(render.BackendGonum, render.BackendGoChart)
	output    = renderCmd.Flag("out", "Output file; the extension selects the format.").Short('o').Default("latency.png").String()
	renderCSV = renderCmd.Arg("csv", "Measurements: size,random,sequential per line.").Required().String()

	tableCmd = app.Command("table", "Print the parsed measurements.")
	tableCSV = tableCmd.Arg("csv", "Measurements: size,random,sequential per line.").Required().String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	switch cmd {
	case renderCmd.FullCommand():
		err = renderChart(*renderCSV, *output, *backend)
	case tableCmd.FullCommand():
		err = printTable(os.Stdout, *tableCSV)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func renderChart(csvPath, out, backend string) error {
	t, err := memlat.LoadFile(csvPath, memlat.LoadOptions{Header: *header})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": csvPath, "rows": t.Len()}).Debug("loaded measurements")

	spec := memlat.BuildChart(t, memlat.DefaultBoundaries())
	if err := render.WriteFile(out, backend, spec); err != nil {
		return err
	}
	log.WithField("out", out).Info("chart written")
	return nil
}

func printTable(w io.Writer, csvPath string) error {
	t, err := memlat.LoadFile(csvPath, memlat.LoadOptions{Header: *header})
	if err != nil {
		return err
	}
	writeTable(w, t)
	return nil
}

func writeTable(w io.Writer, t memlat.Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bytes", "Random (ns)", "Sequential (ns)", "Cache"})
	for _, m := range t.Rows() {
		table.Append([]string{
			strconv.FormatUint(m.ArraySize, 10),
			fmt.Sprintf("%.2f", m.RandomNs),
			fmt.Sprintf("%.2f", m.SequentialNs),
			cacheLevel(m.ArraySize),
		})
	}
	table.Render()
}

// cacheLevel names the smallest cache the array fits in.
func cacheLevel(size uint64) string {
	for _, b := range memlat.DefaultBoundaries() {
		if size <= b.Size {
			return b.Label[:2]
		}
	}
	return "DRAM"
}

package main

import (
	"bytes"
	"net/http"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tiancaiamao/memlat-chart"
	"github.com/tiancaiamao/memlat-chart/render"
)

var (
	app     = kingpin.New("web", "Serve the memory latency chart until interrupted.")
	addr    = app.Flag("addr", "Listen address.").Default(":18081").Envar("LATENCYCHART_ADDR").String()
	header  = app.Flag("header", "Skip the first row of the CSV.").Bool()
	csvPath = app.Arg("csv", "Measurements: size,random,sequential per line.").Required().String()
)

type server struct {
	mainPage *components.Page
	png      []byte
}

func newServer(spec memlat.ChartSpec) (*server, error) {
	page := components.NewPage()
	page.PageTitle = spec.Title
	page.AddCharts(render.NewECharts().LineChart(spec))

	g, err := render.NewGonum("png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := g.Render(&buf, spec); err != nil {
		return nil, err
	}
	return &server{mainPage: page, png: buf.Bytes()}, nil
}

func (s *server) mainHandle(w http.ResponseWriter, _ *http.Request) {
	if err := s.mainPage.Render(w); err != nil {
		log.WithError(err).Error("render page")
	}
}

func (s *server) imageHandle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(s.png); err != nil {
		log.WithError(err).Error("write chart image")
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.mainHandle)
	mux.HandleFunc("/chart.png", s.imageHandle)
	return mux
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	t, err := memlat.LoadFile(*csvPath, memlat.LoadOptions{Header: *header})
	if err != nil {
		log.Fatal(err)
	}
	s, err := newServer(memlat.BuildChart(t, memlat.DefaultBoundaries()))
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{"addr": *addr, "rows": t.Len()}).Info("serving chart")
	log.Fatal(http.ListenAndServe(*addr, s.routes()))
}

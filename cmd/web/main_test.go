package main

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiancaiamao/memlat-chart"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	tbl := memlat.NewTable("t", []memlat.Measurement{
		{ArraySize: 65536, RandomNs: 10, SequentialNs: 2},
		{ArraySize: 16777216, RandomNs: 200, SequentialNs: 50},
	})
	s, err := newServer(memlat.BuildChart(tbl, memlat.DefaultBoundaries()))
	require.NoError(t, err)
	return s
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(newTestServer(t).routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestMainPage(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), memlat.Title)
	assert.Contains(t, string(body), "L1 (64 KB)")
}

func TestChartImage(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/chart.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	_, err := png.Decode(bytes.NewReader(body))
	assert.NoError(t, err)
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestChartImageWriteFailureIsLogged(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	w := &brokenWriter{ResponseRecorder: httptest.NewRecorder()}
	newTestServer(t).imageHandle(w, httptest.NewRequest(http.MethodGet, "/chart.png", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
	assert.Equal(t, "write chart image", entry.Message)
	assert.EqualError(t, entry.Data[log.ErrorKey].(error), "connection reset")
}

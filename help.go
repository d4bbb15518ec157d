package memlat

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadOptions controls how the CSV is read.
type LoadOptions struct {
	// Header skips the first row without looking at it.
	Header bool
}

// LoadFile reads a measurement table from path.
func LoadFile(path string, opt LoadOptions) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, &OpenError{Path: path, Err: err}
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return Table{}, &OpenError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return Table{}, &OpenError{Path: path, Err: errors.New("is a directory")}
	}

	t, err := Load(f, opt)
	if err != nil {
		return Table{}, errors.Wrapf(err, "load %s", path)
	}
	t.Source = path
	return t, nil
}

// Load parses size,random,sequential rows from r.
func Load(r io.Reader, opt LoadOptions) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var rows []Measurement
	skip := opt.Header
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return Table{}, &RowError{Line: pe.Line, Reason: err.Error()}
			}
			return Table{}, errors.Wrap(err, "read measurements")
		}
		line, _ := cr.FieldPos(0)
		if skip {
			skip = false
			continue
		}
		m, err := parseRow(rec)
		if err != nil {
			return Table{}, &RowError{
				Line:   line,
				Fields: append([]string(nil), rec...),
				Reason: err.Error(),
			}
		}
		rows = append(rows, m)
	}
	if len(rows) == 0 {
		return Table{}, &RowError{Reason: "no measurements"}
	}
	return Table{rows: rows}, nil
}

func parseRow(rec []string) (Measurement, error) {
	if len(rec) != 3 {
		return Measurement{}, errors.Errorf("want 3 fields, got %d", len(rec))
	}
	size, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return Measurement{}, errors.Wrap(err, "array size")
	}
	if size == 0 {
		return Measurement{}, errors.New("array size must be positive")
	}
	random, err := parseLatency(rec[1])
	if err != nil {
		return Measurement{}, errors.Wrap(err, "random latency")
	}
	sequential, err := parseLatency(rec[2])
	if err != nil {
		return Measurement{}, errors.Wrap(err, "sequential latency")
	}
	return Measurement{ArraySize: size, RandomNs: random, SequentialNs: sequential}, nil
}

func parseLatency(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.Errorf("%q is not a non-negative latency", s)
	}
	return v, nil
}

package memlat

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrFileNotFound is returned when the input path cannot be opened.
	ErrFileNotFound = errors.New("measurement file not found")
	// ErrParse is returned when a row does not hold three numeric fields.
	ErrParse = errors.New("malformed measurement")
)

// RowError describes the row that failed to parse.
type RowError struct {
	Line   int
	Fields []string
	Reason string
}

func (e *RowError) Error() string {
	if e.Line == 0 {
		return e.Reason
	}
	if e.Fields == nil {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d %q: %s", e.Line, strings.Join(e.Fields, ","), e.Reason)
}

func (e *RowError) Is(target error) bool {
	return target == ErrParse
}

// OpenError is returned when the measurement file cannot be read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	cause := e.Err
	var pe *os.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%v: %s: %v", ErrFileNotFound, e.Path, cause)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

func (e *OpenError) Is(target error) bool {
	return target == ErrFileNotFound
}

// Package terminal queries the controlling terminal's size and reports when
// it changes.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/llehouerou/imprev/internal/fit"
)

var (
	// ErrQuery wraps every failure to read the terminal size.
	ErrQuery = errors.New("query terminal size")
	// ErrNoGeometry is returned when the terminal reports a zero dimension.
	ErrNoGeometry = errors.New("terminal reported no geometry")
)

// Geometry is the terminal size in character cells.
type Geometry struct {
	Cols int
	Rows int
}

// Cells returns the geometry as a fit.Size.
func (g Geometry) Cells() fit.Size {
	return fit.Size{Width: g.Cols, Height: g.Rows}
}

// Sizer reports the current terminal geometry.
type Sizer interface {
	Size() (Geometry, error)
}

// SizerFunc adapts a function to Sizer.
type SizerFunc func() (Geometry, error)

// Size calls f.
func (f SizerFunc) Size() (Geometry, error) {
	return f()
}

// Stdout queries the terminal attached to standard output.
var Stdout Sizer = FdSizer(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int

// FdSizer queries the terminal behind a file descriptor.
type FdSizer int

// Size returns the current geometry. It is never cached.
func (fd FdSizer) Size() (Geometry, error) {
	cols, rows, err := term.GetSize(int(fd))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return checked(cols, rows)
}

func checked(cols, rows int) (Geometry, error) {
	if cols <= 0 || rows <= 0 {
		return Geometry{}, fmt.Errorf("%w: %w (%dx%d)", ErrQuery, ErrNoGeometry, cols, rows)
	}
	return Geometry{Cols: cols, Rows: rows}, nil
}

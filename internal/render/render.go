// Package render writes palette grids to a terminal as colored blocks.
package render

import (
	"bytes"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/imprev/internal/frame"
)

// DefaultHint is printed below every frame.
const DefaultHint = "Press Ctrl-C to Exit"

const (
	bgPrefix   = "\x1b[48;5;"
	cellSuffix = "m \x1b[0m"
	cursorHome = "\x1b[1;1H"
)

// Frame writes g row by row, one background-colored blank per cell, followed
// by the hint line if hint is not empty. The frame is assembled in memory and
// written in a single call so a partial frame never reaches w.
func Frame(w io.Writer, g frame.Grid, hint string) error {
	size := g.Size()
	var buf bytes.Buffer
	// Worst case per cell: prefix + 3 digits + suffix.
	buf.Grow(size.Height*(size.Width*(len(bgPrefix)+3+len(cellSuffix))+1) + len(hint) + 1)

	var num [3]byte
	for _, row := range g {
		for _, idx := range row {
			buf.WriteString(bgPrefix)
			buf.Write(strconv.AppendUint(num[:0], uint64(idx), 10))
			buf.WriteString(cellSuffix)
		}
		buf.WriteByte('\n')
	}
	if hint != "" {
		buf.WriteString(hint)
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Clear erases the screen and moves the cursor to the top-left corner.
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansi.EraseEntireScreen+cursorHome)
	return err
}

// Package frame turns a decoded image into a grid of palette indices sized
// for the terminal.
package frame

import (
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"github.com/llehouerou/imprev/internal/fit"
	"github.com/llehouerou/imprev/internal/palette"
)

var (
	// ErrInvalidDimensions is returned for a target with a non-positive axis.
	ErrInvalidDimensions = errors.New("invalid target dimensions")
	// ErrSizeMismatch is returned when the resampler does not produce the
	// requested dimensions.
	ErrSizeMismatch = errors.New("resampled image has unexpected size")
)

// BuildError reports a frame that could not be built. No partial grid is
// ever returned alongside it.
type BuildError struct {
	Target fit.Size
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %dx%d frame: %v", e.Target.Width, e.Target.Height, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Grid holds one palette index per terminal cell, row-major.
type Grid [][]uint8

// Size returns the grid dimensions in cells.
func (g Grid) Size() fit.Size {
	if len(g) == 0 {
		return fit.Size{}
	}
	return fit.Size{Width: len(g[0]), Height: len(g)}
}

// Build resamples img to target and quantizes every resampled pixel.
// img is never modified.
func Build(img image.Image, target fit.Size, filter resize.InterpolationFunction) (Grid, error) {
	if !target.Valid() {
		return nil, &BuildError{Target: target, Err: ErrInvalidDimensions}
	}
	if img == nil || img.Bounds().Empty() {
		return nil, &BuildError{Target: target, Err: errors.New("empty source image")}
	}

	resized := resize.Resize(uint(target.Width), uint(target.Height), img, filter) //nolint:gosec // target validated positive above

	b := resized.Bounds()
	if b.Dx() != target.Width || b.Dy() != target.Height {
		return nil, &BuildError{
			Target: target,
			Err:    fmt.Errorf("%w: got %dx%d", ErrSizeMismatch, b.Dx(), b.Dy()),
		}
	}

	grid := make(Grid, target.Height)
	for row := range grid {
		cells := make([]uint8, target.Width)
		for col := range cells {
			cells[col] = palette.FromColor(resized.At(b.Min.X+col, b.Min.Y+row))
		}
		grid[row] = cells
	}
	return grid, nil
}

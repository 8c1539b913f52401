// Package viewer keeps an image fitted to the terminal: it renders once and
// then re-renders after every resize notification.
package viewer

import (
	"context"
	"image"
	"io"
	"log"

	"github.com/nfnt/resize"

	"github.com/llehouerou/imprev/internal/errmsg"
	"github.com/llehouerou/imprev/internal/fit"
	"github.com/llehouerou/imprev/internal/frame"
	"github.com/llehouerou/imprev/internal/render"
	"github.com/llehouerou/imprev/internal/terminal"
)

// Options tunes a Controller. A zero Compression selects
// fit.DefaultCompression; an empty Hint prints no hint line.
type Options struct {
	Compression float64
	Filter      resize.InterpolationFunction
	Hint        string
}

// Controller owns the render loop for a single image.
// The image is shared read-only across passes and never modified.
type Controller struct {
	img   image.Image
	size  fit.Size
	sizer terminal.Sizer
	out   io.Writer
	log   *log.Logger
	opts  Options
}

// New creates a controller that renders img to out, sizing each pass with
// sizer and reporting pass failures to logger.
func New(img image.Image, sizer terminal.Sizer, out io.Writer, logger *log.Logger, opts Options) *Controller {
	if opts.Compression <= 0 {
		opts.Compression = fit.DefaultCompression
	}
	b := img.Bounds()
	return &Controller{
		img:   img,
		size:  fit.Size{Width: b.Dx(), Height: b.Dy()},
		sizer: sizer,
		out:   out,
		log:   logger,
		opts:  opts,
	}
}

// RenderPass queries the terminal, fits, builds and draws one frame.
// Failures are reported and the pass is abandoned; it returns whether a
// frame was written.
func (c *Controller) RenderPass() bool {
	geo, err := c.sizer.Size()
	if err != nil {
		c.log.Print(errmsg.Format(errmsg.OpQuerySize, err))
		return false
	}

	target := fit.Fit(geo.Cells(), c.size, c.opts.Compression)

	grid, err := frame.Build(c.img, target, c.opts.Filter)
	if err != nil {
		c.log.Print(errmsg.Format(errmsg.OpBuildFrame, err))
		return false
	}

	if err := render.Frame(c.out, grid, c.opts.Hint); err != nil {
		c.log.Print(errmsg.Format(errmsg.OpWriteFrame, err))
		return false
	}
	return true
}

// Run handles resize notifications one at a time: each clears the screen and
// runs a full pass before the next is read. It blocks until ctx is done or
// events is closed. The initial render is the caller's job.
func (c *Controller) Run(ctx context.Context, events <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			if err := render.Clear(c.out); err != nil {
				c.log.Print(errmsg.Format(errmsg.OpClear, err))
			}
			c.RenderPass()
		}
	}
}

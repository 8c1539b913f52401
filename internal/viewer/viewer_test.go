package viewer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/nfnt/resize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/imprev/internal/fit"
	"github.com/llehouerou/imprev/internal/frame"
	"github.com/llehouerou/imprev/internal/render"
	"github.com/llehouerou/imprev/internal/terminal"
)

const clearSeq = "\x1b[2J\x1b[1;1H"

type sizeResult struct {
	geo terminal.Geometry
	err error
}

// scriptedSizer returns its results in order and repeats the last one.
type scriptedSizer struct {
	results []sizeResult
	calls   int
}

func (s *scriptedSizer) Size() (terminal.Geometry, error) {
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r.geo, r.err
}

func sizes(geos ...terminal.Geometry) *scriptedSizer {
	s := &scriptedSizer{}
	for _, g := range geos {
		s.results = append(s.results, sizeResult{geo: g})
	}
	return s
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

func expectedFrame(t *testing.T, img image.Image, geo terminal.Geometry) string {
	t.Helper()
	b := img.Bounds()
	target := fit.Fit(geo.Cells(), fit.Size{Width: b.Dx(), Height: b.Dy()}, fit.DefaultCompression)
	grid, err := frame.Build(img, target, resize.Bilinear)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Frame(&buf, grid, render.DefaultHint))
	return buf.String()
}

func newController(img image.Image, sizer terminal.Sizer) (*Controller, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	c := New(img, sizer, &out, log.New(&logs, "", 0), Options{
		Filter: resize.Bilinear,
		Hint:   render.DefaultHint,
	})
	return c, &out, &logs
}

func TestRenderPass_InitialFrame(t *testing.T) {
	img := gradient(192, 108)
	c, out, logs := newController(img, sizes(terminal.Geometry{Cols: 80, Rows: 24}))

	require.True(t, c.RenderPass())
	assert.Equal(t, expectedFrame(t, img, terminal.Geometry{Cols: 80, Rows: 24}), out.String())
	assert.Empty(t, logs.String())

	// 21 colored cells per row, 24 rows, then the hint.
	assert.Equal(t, 21*24, strings.Count(out.String(), "\x1b[48;5;"))
	assert.Equal(t, 25, strings.Count(out.String(), "\n"))
}

func TestRenderPass_SolidRed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 255, 255
	}
	c, out, _ := newController(img, sizes(terminal.Geometry{Cols: 10, Rows: 10}))

	require.True(t, c.RenderPass())

	row := strings.Repeat("\x1b[48;5;196m \x1b[0m", 5) + "\n"
	assert.Equal(t, strings.Repeat(row, 10)+render.DefaultHint+"\n", out.String())
}

func TestRenderPass_Idempotent(t *testing.T) {
	img := gradient(64, 48)
	geo := terminal.Geometry{Cols: 50, Rows: 20}

	c1, out1, _ := newController(img, sizes(geo))
	c2, out2, _ := newController(img, sizes(geo))
	require.True(t, c1.RenderPass())
	require.True(t, c2.RenderPass())

	assert.Equal(t, out1.String(), out2.String())
}

func TestRenderPass_QueryFailureSkipsPass(t *testing.T) {
	sizer := &scriptedSizer{results: []sizeResult{{err: terminal.ErrQuery}}}
	c, out, logs := newController(gradient(10, 10), sizer)

	assert.False(t, c.RenderPass())
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Failed to query terminal size")
}

func TestRenderPass_BuildFailureAbandonsPass(t *testing.T) {
	c, out, logs := newController(image.NewRGBA(image.Rect(0, 0, 0, 0)), sizes(terminal.Geometry{Cols: 80, Rows: 24}))

	assert.False(t, c.RenderPass())
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "Failed to build frame")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRenderPass_WriteFailure(t *testing.T) {
	var logs bytes.Buffer
	c := New(gradient(8, 8), sizes(terminal.Geometry{Cols: 8, Rows: 8}), failingWriter{}, log.New(&logs, "", 0), Options{})

	assert.False(t, c.RenderPass())
	assert.Contains(t, logs.String(), "Failed to write frame: broken pipe")
}

func TestRun_ResizeTriggersOneClearedPass(t *testing.T) {
	img := gradient(192, 108)
	initial := terminal.Geometry{Cols: 80, Rows: 24}
	resized := terminal.Geometry{Cols: 40, Rows: 12}
	sizer := sizes(initial, resized)
	c, out, logs := newController(img, sizer)

	require.True(t, c.RenderPass())

	events := make(chan struct{}, 1)
	events <- struct{}{}
	close(events)
	c.Run(context.Background(), events)

	want := expectedFrame(t, img, initial) + clearSeq + expectedFrame(t, img, resized)
	assert.Equal(t, want, out.String())
	assert.Equal(t, 2, sizer.calls)
	assert.Equal(t, 2, strings.Count(out.String(), render.DefaultHint))
	assert.Empty(t, logs.String())
}

func TestRun_SurvivesQueryFailure(t *testing.T) {
	img := gradient(30, 30)
	good := terminal.Geometry{Cols: 40, Rows: 12}
	sizer := &scriptedSizer{results: []sizeResult{
		{err: terminal.ErrQuery},
		{geo: good},
	}}
	c, out, logs := newController(img, sizer)

	events := make(chan struct{}, 2)
	events <- struct{}{}
	events <- struct{}{}
	close(events)
	c.Run(context.Background(), events)

	assert.Equal(t, clearSeq+clearSeq+expectedFrame(t, img, good), out.String())
	assert.Equal(t, 1, strings.Count(logs.String(), "Failed to query terminal size"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	c, out, _ := newController(gradient(4, 4), sizes(terminal.Geometry{Cols: 8, Rows: 8}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, make(chan struct{}))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Empty(t, out.String())
}

func TestNew_DefaultCompression(t *testing.T) {
	c := New(gradient(4, 4), sizes(terminal.Geometry{Cols: 8, Rows: 8}), &bytes.Buffer{}, log.New(&bytes.Buffer{}, "", 0), Options{})
	assert.InDelta(t, fit.DefaultCompression, c.opts.Compression, 1e-9)
	assert.Equal(t, fit.Size{Width: 4, Height: 4}, c.size)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/imprev/internal/config"
	"github.com/llehouerou/imprev/internal/errmsg"
	"github.com/llehouerou/imprev/internal/frame"
	"github.com/llehouerou/imprev/internal/picture"
	"github.com/llehouerou/imprev/internal/terminal"
	"github.com/llehouerou/imprev/internal/viewer"
)

const (
	appName = "imprev"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// reporter prints startup failures to stderr, in red when stderr is a
// color terminal.
type reporter struct {
	w     io.Writer
	style lipgloss.Style
}

func newReporter(w io.Writer) reporter {
	r := lipgloss.NewRenderer(w)
	return reporter{
		w:     w,
		style: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (r reporter) Println(msg string) {
	fmt.Fprintln(r.w, r.style.Render(msg))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	report := newReporter(stderr)

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log decoded image details to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-v] <image>\n", appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() < 1 {
		report.Println("Please provide a target image path.")
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		report.Println(errmsg.Format(errmsg.OpLoadConfig, err))
		return exitError
	}
	filter, err := frame.ParseFilter(cfg.Filter)
	if err != nil {
		report.Println(errmsg.Format(errmsg.OpLoadConfig, err))
		return exitError
	}

	pic, err := picture.Load(path)
	if err != nil {
		report.Println(errmsg.Format(errmsg.OpLoadImage, err))
		return exitError
	}

	logger := log.New(stderr, "", 0)
	if *verbose {
		size := pic.Size()
		logger.Printf("%s: %s %dx%d, %s", pic.Path, pic.Format, size.Width, size.Height,
			humanize.Bytes(uint64(pic.Bytes))) //nolint:gosec // file sizes are non-negative
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Subscribe before the first render so a resize during it is not lost.
	events := terminal.Watch(ctx)

	ctrl := viewer.New(pic.Image, terminal.Stdout, stdout, logger, viewer.Options{
		Compression: cfg.Compression(),
		Filter:      filter,
		Hint:        cfg.HintText(),
	})
	ctrl.RenderPass()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.Run(ctx, events)
	}()
	<-done

	return exitOK
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/campusdraw/internal/config"
	"github.com/vanshika/campusdraw/internal/logging"
	"github.com/vanshika/campusdraw/internal/notify"
	"github.com/vanshika/campusdraw/internal/render"
	"github.com/vanshika/campusdraw/internal/service"
	"github.com/vanshika/campusdraw/internal/tui"
)

func main() {
	var (
		outPath = flag.String("out", "lines.svg", "File the drawing is written to (.svg or .png)")
		scale   = flag.Float64("scale", render.DefaultOptions().Scale, "Pixels per coordinate unit for PNG output")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewWithWriter(cfg.Logging, os.Stderr).With("component", "lines")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := render.DefaultOptions()
	opts.Scale = *scale

	form := &tui.LinesForm{
		Driver:  tui.SurveyDriver{},
		Session: service.NewLinesSession(notify.Writer{Out: os.Stdout, Logger: logger}),
		Surface: tui.Surfaces{
			tui.FileSurface{Path: *outPath, Options: opts},
			tui.ListSurface{Out: os.Stdout},
		},
	}
	if err := form.Run(ctx); err != nil {
		logger.Error("lines form failed", "error", err)
		os.Exit(1)
	}
}

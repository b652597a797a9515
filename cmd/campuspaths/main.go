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
	"github.com/vanshika/campusdraw/internal/source"
	"github.com/vanshika/campusdraw/internal/tui"
)

func main() {
	var (
		outPath = flag.String("out", "campus-path.svg", "File the drawn path is written to (.svg or .png)")
		list    = flag.Bool("list", true, "Also print the drawn segments")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewWithWriter(cfg.Logging, os.Stderr).With("component", "campuspaths")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pathSource, err := source.Open(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open path source", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := pathSource.Close(context.Background()); err != nil {
			logger.Warn("closing path source failed", "error", err)
		}
	}()

	surfaces := tui.Surfaces{tui.FileSurface{Path: *outPath, Options: render.DefaultOptions()}}
	if *list {
		surfaces = append(surfaces, tui.ListSurface{Out: os.Stdout})
	}

	form := &tui.CampusForm{
		Driver:  tui.SurveyDriver{},
		Session: service.NewCampusSession(pathSource, notify.Writer{Out: os.Stdout, Logger: logger}),
		Surface: surfaces,
	}
	if err := form.Run(ctx); err != nil {
		logger.Error("campus form failed", "error", err)
		os.Exit(1)
	}
}

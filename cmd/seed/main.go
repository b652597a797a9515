package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/vanshika/campusdraw/internal/config"
	"github.com/vanshika/campusdraw/internal/generator"
	"github.com/vanshika/campusdraw/internal/logging"
	"github.com/vanshika/campusdraw/internal/repository"
	"github.com/vanshika/campusdraw/internal/service"
	"github.com/vanshika/campusdraw/internal/source"
)

var errMissingDataset = errors.New("dataset not found")

func main() {
	var (
		datasetDir    = flag.String("dataset-dir", "./data", "Directory containing campus_buildings.csv and campus_paths.csv")
		buildingsPath = flag.String("buildings", "", "Path to the buildings CSV (overrides dataset-dir)")
		walkwaysPath  = flag.String("paths", "", "Path to the walkways CSV (overrides dataset-dir)")
		workers       = flag.Int("workers", 4, "Number of concurrent workers for loading")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "seed")

	buildingsFile, walkwaysFile, err := resolveDatasetPaths(*datasetDir, *buildingsPath, *walkwaysPath)
	if err != nil {
		logger.Error("dataset resolution failed", "error", err)
		os.Exit(1)
	}

	dataset, err := generator.ReadDataset(buildingsFile, walkwaysFile)
	if err != nil {
		logger.Error("failed to read dataset", "error", err)
		os.Exit(1)
	}
	if len(dataset.Buildings) == 0 {
		logger.Error("buildings dataset empty", "path", buildingsFile)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := source.OpenGraph(ctx, logger, cfg.Graph)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	loader := service.NewBulkLoader(repository.New(graphClient), *workers)

	start := time.Now()
	logger.Info("loading buildings", "count", len(dataset.Buildings), "workers", *workers)
	if err := loader.LoadBuildings(ctx, dataset.Buildings); err != nil {
		logger.Error("building load failed", "error", err)
		os.Exit(1)
	}

	logger.Info("loading walkways", "count", len(dataset.Walkways))
	if err := loader.LoadWalkways(ctx, dataset.Walkways); err != nil {
		logger.Error("walkway load failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete", "duration", time.Since(start).String(), "buildings", len(dataset.Buildings), "walkways", len(dataset.Walkways))
}

func resolveDatasetPaths(baseDir, buildingsPath, walkwaysPath string) (string, string, error) {
	resolve := func(explicitPath, fallbackFile string) (string, error) {
		if explicitPath != "" {
			if _, err := os.Stat(explicitPath); err != nil {
				return "", fmt.Errorf("stat %s: %w", explicitPath, err)
			}
			return explicitPath, nil
		}
		path := filepath.Join(baseDir, fallbackFile)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", errMissingDataset, path)
		}
		return path, nil
	}

	buildings, err := resolve(buildingsPath, generator.BuildingsFile)
	if err != nil {
		return "", "", err
	}
	walkways, err := resolve(walkwaysPath, generator.WalkwaysFile)
	if err != nil {
		return "", "", err
	}
	return buildings, walkways, nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/campusdraw/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		buildings  = flag.Int("buildings", cfg.NumBuildings, "number of buildings to place")
		neighbours = flag.Int("neighbours", cfg.Neighbours, "walkways from each building to its nearest neighbours")
		waypoints  = flag.Int("waypoints", cfg.Waypoints, "waypoints inserted along each walkway")
		seed       = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir  = flag.String("output-dir", "data", "directory to write campus_buildings.csv and campus_paths.csv")
		toStdout   = flag.Bool("stdout", false, "write the dataset to stdout as JSON instead of files")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(generator.Config{
		NumBuildings: *buildings,
		Neighbours:   *neighbours,
		Waypoints:    *waypoints,
		Seed:         *seed,
	})
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *toStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d buildings and %d walkways to %s\n", len(dataset.Buildings), len(dataset.Walkways), *outputDir)
}

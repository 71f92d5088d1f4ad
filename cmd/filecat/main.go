package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/docker/go-units"

	"github.com/mgorski/filecat/app"
)

func main() {
	configPath := flag.String("config", "filecat.yaml", "Path to configuration file")
	flag.Parse()

	dir := flag.Arg(0)
	if dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: filecat [-config filecat.yaml] <directory>")
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := app.OpenStore(cfg.Catalog.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	extractor := app.NewExtractor(cfg.Catalog.Tools)
	scanner := app.NewScanner(store, extractor, cfg.Catalog.ExcludePaths, cfg.Catalog.ScanWorkers)

	summary, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	fmt.Printf("Cataloged %d files under %s (%d images, %d documents)\n",
		summary.FilesCataloged, summary.Root, summary.Images, summary.Documents)

	if len(summary.Failures) > 0 {
		fmt.Printf("Skipped %d files:\n", len(summary.Failures))
		for _, f := range summary.Failures {
			fmt.Printf("  %s: %s\n", f.Path, f.Reason)
		}
	}

	if total, err := store.TotalSize(); err == nil {
		fmt.Printf("Catalog now holds %s in total\n", units.BytesSize(float64(total)))
	}
}

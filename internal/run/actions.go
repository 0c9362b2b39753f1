// Package run implements the default command: the full
// scrape, classify, join, render pipeline.
package run

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/name-atlas/models"
	"github.com/dtnitsch/name-atlas/pkg/cache"
	"github.com/dtnitsch/name-atlas/pkg/classify"
	"github.com/dtnitsch/name-atlas/pkg/db"
	"github.com/dtnitsch/name-atlas/pkg/geo"
	"github.com/dtnitsch/name-atlas/pkg/render"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	store := cache.NewStore(config.CachePath)

	// A present cache file is the sole source of truth: no staleness
	// check, no partial merge. Only --force-fetch bypasses it.
	var records []models.CountryRecord
	fromCache := false
	if !c.Bool("force-fetch") {
		cached, ok, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to read cache: %w", err)
		}
		if ok {
			records = cached
			fromCache = true
			logger.Info("using cached dataset", "path", config.CachePath, "countries", len(records))
		}
	}

	runID, err := database.InsertRun(fromCache)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	okCount, failedCount := len(records), 0
	if !fromCache {
		records, failedCount = scrape(c.Context, logger, config, database, runID)
		okCount = len(records)

		// An empty table would suppress re-fetching forever; leave
		// the cache absent so the next run scrapes again.
		if okCount == 0 {
			logger.Warn("scrape produced no records, leaving cache absent")
		} else {
			if err := store.Save(records); err != nil {
				return fmt.Errorf("failed to write cache: %w", err)
			}
			logger.Info("dataset cached", "path", config.CachePath, "countries", len(records))
		}
	}

	ratios := classify.Records(records, config.Thresholds)
	logger.Info("classified countries", "classified", len(ratios), "dropped", len(records)-len(ratios))

	fc, err := geo.Load(config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to load boundary dataset: %w", err)
	}
	joined := geo.Join(fc, ratios)

	err = render.Map(joined, render.Options{
		Palette:      config.Palette,
		Unclassified: config.Unclassified,
		LegendLabels: config.LegendLabels,
		OutputPath:   config.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}

	if err := database.FinishRun(runID, time.Since(startTime), okCount+failedCount, okCount, failedCount); err != nil {
		logger.Error("failed to finish run record", "error", err)
	}

	fmt.Printf("Map written to %s (%d polygons, %d classified)\n", config.OutputPath, len(joined), len(ratios))
	return nil
}

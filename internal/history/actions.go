// Package history implements the runs command.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/name-atlas/models"
	dbpkg "github.com/dtnitsch/name-atlas/pkg/db"
)

func RunsAction(c *cli.Context) error {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := dbpkg.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-10s %-7s %-10s %-8s %-8s\n",
		"ID", "Started", "Duration", "Source", "Countries", "OK", "Failed")
	fmt.Println(strings.Repeat("-", 74))

	for _, r := range runs {
		source := "fetch"
		if r.FromCache {
			source = "cache"
		}
		fmt.Printf("%-6d %-20s %-10s %-7s %-10d %-8d %-8d\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			(time.Duration(r.DurationMS) * time.Millisecond).String(),
			source,
			r.CountryCount,
			r.OKCount,
			r.FailedCount,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

package run

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dtnitsch/name-atlas/models"
	"github.com/dtnitsch/name-atlas/pkg/countries"
	"github.com/dtnitsch/name-atlas/pkg/db"
	"github.com/dtnitsch/name-atlas/pkg/fetcher"
	"github.com/dtnitsch/name-atlas/pkg/parser"
)

// scrape walks the country list in order, fetching and parsing both
// count pages for each one. Fetch and parse failures skip the country;
// everything else is handled by the caller. Returns the scraped
// records and the number of skipped countries.
func scrape(ctx context.Context, logger *slog.Logger, config *models.Config, database *db.DB, runID int64) ([]models.CountryRecord, int) {
	f := fetcher.New(config.BaseURL, config.UserAgent, time.Duration(config.TimeoutSeconds)*time.Second)
	targets := countries.All()
	logger.Info("starting scrape", "countries", len(targets))

	var records []models.CountryRecord
	failed := 0
	for _, country := range targets {
		record, err := scrapeCountry(ctx, f, country)
		if err != nil {
			failed++
			logger.Warn("skipping country", "country", country.Slug, "alpha3", country.Alpha3, "error", err)
			recordCountry(logger, database, runID, country.Alpha3, err)
			continue
		}
		records = append(records, record)
		recordCountry(logger, database, runID, country.Alpha3, nil)
		logger.Info("country scraped", "country", country.Slug,
			"surnames", record.SurnameCount, "forenames", record.ForenameCount)
	}
	return records, failed
}

func scrapeCountry(ctx context.Context, f *fetcher.Fetcher, country countries.Country) (models.CountryRecord, error) {
	surnames, err := count(ctx, f, country.Slug, fetcher.Surnames)
	if err != nil {
		return models.CountryRecord{}, err
	}
	forenames, err := count(ctx, f, country.Slug, fetcher.Forenames)
	if err != nil {
		return models.CountryRecord{}, err
	}
	return models.CountryRecord{
		Alpha3:        country.Alpha3,
		Name:          country.Name,
		SurnameCount:  surnames,
		ForenameCount: forenames,
	}, nil
}

func count(ctx context.Context, f *fetcher.Fetcher, slug string, kind fetcher.Kind) (int, error) {
	html, err := f.CountryPage(ctx, slug, kind)
	if err != nil {
		return 0, err
	}
	return parser.Count(slug, html)
}

// errorType maps a scrape error onto the taxonomy label stored with
// the run.
func errorType(err error) string {
	var netErr *fetcher.NetworkError
	if errors.As(err, &netErr) {
		return "network_error"
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return "parse_error"
	}
	return "error"
}

func recordCountry(logger *slog.Logger, database *db.DB, runID int64, alpha3 string, scrapeErr error) {
	result := db.CountryResult{
		RunID:  runID,
		Alpha3: alpha3,
		Status: "success",
	}
	if scrapeErr != nil {
		result.Status = "failed"
		result.ErrorType = errorType(scrapeErr)
		result.ErrorMessage = scrapeErr.Error()
	}
	if err := database.InsertCountryResult(result); err != nil {
		logger.Error("failed to record country result", "alpha3", alpha3, "error", err)
	}
}

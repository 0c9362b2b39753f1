package db

import (
	"fmt"
	"time"
)

// Run is one pipeline invocation.
type Run struct {
	RunID        int64
	StartedAt    time.Time
	DurationMS   int64
	FromCache    bool
	CountryCount int
	OKCount      int
	FailedCount  int
}

// CountryResult is one country's outcome within a run.
type CountryResult struct {
	RunID        int64
	Alpha3       string
	Status       string // "success" or "failed"
	ErrorType    string // "network_error", "parse_error" or ""
	ErrorMessage string
}

// InsertRun creates a new run row and returns its ID.
func (db *DB) InsertRun(fromCache bool) (int64, error) {
	result, err := db.Exec("INSERT INTO runs (from_cache) VALUES (?)", fromCache)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return result.LastInsertId()
}

// InsertCountryResult records one country's outcome within a run.
// Re-inserting the same country updates the existing row.
func (db *DB) InsertCountryResult(r CountryResult) error {
	_, err := db.Exec(`
		INSERT INTO run_countries (run_id, alpha3, status, error_type, error_message)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, alpha3) DO UPDATE SET
			status = excluded.status,
			error_type = excluded.error_type,
			error_message = excluded.error_message`,
		r.RunID, r.Alpha3, r.Status, r.ErrorType, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert country result: %w", err)
	}
	return nil
}

// FinishRun fills in the final counters for a run.
func (db *DB) FinishRun(runID int64, duration time.Duration, countryCount, okCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET duration_ms = ?, country_count = ?, ok_count = ?, failed_count = ?
		WHERE run_id = ?`,
		duration.Milliseconds(), countryCount, okCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, started_at, COALESCE(duration_ms, 0),
		       from_cache, country_count, ok_count, failed_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.DurationMS,
			&r.FromCache, &r.CountryCount, &r.OKCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetCountryResults returns the per-country outcomes for a run.
func (db *DB) GetCountryResults(runID int64) ([]CountryResult, error) {
	rows, err := db.Query(`
		SELECT run_id, alpha3, status,
		       COALESCE(error_type, ''), COALESCE(error_message, '')
		FROM run_countries
		WHERE run_id = ?
		ORDER BY alpha3`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query country results: %w", err)
	}
	defer rows.Close()

	var results []CountryResult
	for rows.Next() {
		var r CountryResult
		if err := rows.Scan(&r.RunID, &r.Alpha3, &r.Status, &r.ErrorType, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan country result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

package store

import (
	"fmt"
	"time"
)

// Comparison is one recorded comparison run.
type Comparison struct {
	ID        int64
	Original  string
	Copy      string
	Score     float64
	CreatedAt time.Time
}

// RecordComparison appends a comparison result to the history.
func (d *DB) RecordComparison(original, copyPath string, score float64) error {
	_, err := d.db.Exec(
		`INSERT INTO comparisons (original, copy, score) VALUES (?, ?, ?)`,
		original, copyPath, score,
	)
	if err != nil {
		return fmt.Errorf("recording comparison: %w", err)
	}
	return nil
}

// RecentComparisons returns up to limit comparisons, newest first.
func (d *DB) RecentComparisons(limit int) ([]Comparison, error) {
	rows, err := d.db.Query(`
		SELECT id, original, copy, score, created_at
		FROM comparisons
		ORDER BY id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying comparisons: %w", err)
	}
	defer rows.Close()

	var comparisons []Comparison
	for rows.Next() {
		var c Comparison
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Original, &c.Copy, &c.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning comparison: %w", err)
		}
		// The driver returns CURRENT_TIMESTAMP values in RFC3339 form.
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		comparisons = append(comparisons, c)
	}
	return comparisons, rows.Err()
}

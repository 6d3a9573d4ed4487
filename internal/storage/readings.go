// ABOUTME: Clinical reading persistence for SQLite storage.
// ABOUTME: Upserts by (kind, date) to mirror the store's merge invariant.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/harperreed/medtrack/internal/models"
)

// SaveReading upserts a reading by its (kind, date) identity. A later
// save for the same identity replaces the earlier values.
func (d *DB) SaveReading(r *models.Reading) error {
	values, err := json.Marshal(r.Values)
	if err != nil {
		return fmt.Errorf("marshal reading values: %w", err)
	}

	query := `
		INSERT INTO readings (kind, date, field_values)
		VALUES (?, ?, ?)
		ON CONFLICT (kind, date) DO UPDATE SET field_values = excluded.field_values
	`
	if _, err := d.db.Exec(query, string(r.Kind), r.Date, string(values)); err != nil {
		return fmt.Errorf("save reading: %w", err)
	}
	return nil
}

// ListReadings retrieves readings ordered by date ascending, optionally
// filtered by kind.
func (d *DB) ListReadings(kind *models.MetricKind, limit int) ([]*models.Reading, error) {
	query := `SELECT kind, date, field_values FROM readings`
	var args []interface{}

	if kind != nil {
		query += ` WHERE kind = ?`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY date ASC, kind ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var readings []*models.Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}

	return readings, rows.Err()
}

func scanReading(rows *sql.Rows) (*models.Reading, error) {
	var r models.Reading
	var kind, values string

	if err := rows.Scan(&kind, &r.Date, &values); err != nil {
		return nil, fmt.Errorf("scan reading: %w", err)
	}

	r.Kind = models.MetricKind(kind)
	if err := json.Unmarshal([]byte(values), &r.Values); err != nil {
		return nil, fmt.Errorf("unmarshal reading values: %w", err)
	}

	return &r, nil
}

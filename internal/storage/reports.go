// ABOUTME: Report persistence for SQLite storage.
// ABOUTME: Reports are append-only; analysis and metadata stored as JSON.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/medtrack/internal/models"
)

// SaveReport stores a report. Saving the same ID again replaces the row,
// which keeps retries of a failed submission idempotent.
func (d *DB) SaveReport(r *models.Report) error {
	analysis, err := json.Marshal(r.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	metadata, err := json.Marshal(r.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO reports (id, filename, upload_date, extracted_text, analysis, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		r.ID,
		r.Filename,
		r.UploadDate.Format(time.RFC3339),
		r.ExtractedText,
		string(analysis),
		string(metadata),
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// ListReports retrieves reports in insertion order (oldest first).
func (d *DB) ListReports(limit int) ([]*models.Report, error) {
	query := `
		SELECT id, filename, upload_date, extracted_text, analysis, metadata
		FROM reports
		ORDER BY id ASC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, rows.Err()
}

func scanReport(rows *sql.Rows) (*models.Report, error) {
	var r models.Report
	var uploadDate, analysis, metadata string

	if err := rows.Scan(&r.ID, &r.Filename, &uploadDate, &r.ExtractedText, &analysis, &metadata); err != nil {
		return nil, fmt.Errorf("scan report: %w", err)
	}

	r.UploadDate, _ = time.Parse(time.RFC3339, uploadDate)
	if err := json.Unmarshal([]byte(analysis), &r.Analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &r.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}

	return &r, nil
}

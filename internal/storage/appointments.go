// ABOUTME: Appointment persistence for SQLite storage.
// ABOUTME: Doctor details stored as a JSON column.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/medtrack/internal/models"
)

// SaveAppointment stores a booked appointment.
func (d *DB) SaveAppointment(a *models.Appointment) error {
	doctor, err := json.Marshal(a.Doctor)
	if err != nil {
		return fmt.Errorf("marshal doctor: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO appointments
		(id, appointment_id, facility_name, date, time, service, status, patient_name, phone, reason, doctor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		a.ID.String(),
		a.AppointmentID,
		a.FacilityName,
		a.Date,
		a.Time,
		a.Service,
		a.Status,
		a.PatientName,
		a.Phone,
		a.Reason,
		string(doctor),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

// ListAppointments retrieves appointments, most recent first.
func (d *DB) ListAppointments(limit int) ([]*models.Appointment, error) {
	query := `
		SELECT id, appointment_id, facility_name, date, time, service, status, patient_name, phone, reason, doctor, created_at
		FROM appointments
		ORDER BY created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	return appointments, rows.Err()
}

func scanAppointment(rows *sql.Rows) (*models.Appointment, error) {
	var a models.Appointment
	var idStr, doctor, createdAt string

	err := rows.Scan(&idStr, &a.AppointmentID, &a.FacilityName, &a.Date, &a.Time,
		&a.Service, &a.Status, &a.PatientName, &a.Phone, &a.Reason, &doctor, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan appointment: %w", err)
	}

	a.ID, _ = uuid.Parse(idStr)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if err := json.Unmarshal([]byte(doctor), &a.Doctor); err != nil {
		return nil, fmt.Errorf("unmarshal doctor: %w", err)
	}

	return &a, nil
}

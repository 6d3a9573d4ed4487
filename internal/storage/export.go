// ABOUTME: Export functionality for the session archive.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/medtrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for session data.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Reports      []*models.Report      `json:"reports" yaml:"reports"`
	Readings     []*models.Reading     `json:"readings" yaml:"readings"`
	Appointments []*models.Appointment `json:"appointments" yaml:"appointments"`
	ChatHistory  []*models.ChatMessage `json:"chat_history" yaml:"chat_history"`
}

// GetAllData retrieves all archived data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	reports, err := d.ListReports(0)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	readings, err := d.ListReadings(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	appointments, err := d.ListAppointments(0)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	messages, err := d.ListChatMessages(0)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "medtrack",
		Reports:      reports,
		Readings:     readings,
		Appointments: appointments,
		ChatHistory:  messages,
	}, nil
}

// ExportJSON exports all session data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all session data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// MarshalIndentJSON renders an ExportData snapshot as indented JSON.
// Shared by backends that assemble their ExportData without a DB handle.
func (e *ExportData) MarshalIndentJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// MarshalYAMLBytes renders an ExportData snapshot as YAML.
func (e *ExportData) MarshalYAMLBytes() ([]byte, error) {
	return yaml.Marshal(e)
}

// ABOUTME: Repository interface for the session archive.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import "github.com/harperreed/medtrack/internal/models"

// Repository is the optional session archive behind the in-memory store.
// The store stays authoritative; backends record transitions write-through
// and replay them to restore a session.
type Repository interface {
	// Report operations
	SaveReport(r *models.Report) error
	ListReports(limit int) ([]*models.Report, error)

	// Reading operations. SaveReading upserts by (kind, date).
	SaveReading(r *models.Reading) error
	ListReadings(kind *models.MetricKind, limit int) ([]*models.Reading, error)

	// Appointment operations
	SaveAppointment(a *models.Appointment) error
	ListAppointments(limit int) ([]*models.Appointment, error)

	// Chat operations
	SaveChatMessage(m *models.ChatMessage) error
	ListChatMessages(limit int) ([]*models.ChatMessage, error)
	ClearChatHistory() error

	// Export
	GetAllData() (*ExportData, error)

	// Lifecycle
	Close() error
}

// ABOUTME: Session archive operations for Charm KV storage.
// ABOUTME: Type-prefixed keys with client-side filtering and sorting.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/medtrack/internal/models"
	"github.com/harperreed/medtrack/internal/storage"
)

// SaveReport stores an uploaded report. Keys are zero-padded so report
// order survives lexicographic key listing.
func (c *Client) SaveReport(r *models.Report) error {
	key := fmt.Sprintf("%s%020d", ReportPrefix, r.ID)
	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return c.set(key, data)
}

// ListReports retrieves reports in insertion order (ascending ID).
func (c *Client) ListReports(limit int) ([]*models.Report, error) {
	allData, err := c.listByPrefix(ReportPrefix)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	var reports []*models.Report
	for _, data := range allData {
		r, err := unmarshalJSON[models.Report](data)
		if err != nil {
			continue // Skip invalid entries
		}
		reports = append(reports, r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID < reports[j].ID
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}

	return reports, nil
}

// SaveReading upserts a reading. The key embeds (kind, date), so a later
// save for the same identity overwrites the earlier one.
func (c *Client) SaveReading(r *models.Reading) error {
	key := fmt.Sprintf("%s%s:%s", ReadingPrefix, r.Kind, r.Date)
	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	return c.set(key, data)
}

// ListReadings retrieves readings ordered by date ascending, optionally
// filtered by kind.
func (c *Client) ListReadings(kind *models.MetricKind, limit int) ([]*models.Reading, error) {
	allData, err := c.listByPrefix(ReadingPrefix)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	var readings []*models.Reading
	for _, data := range allData {
		r, err := unmarshalJSON[models.Reading](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if kind != nil && r.Kind != *kind {
			continue
		}
		readings = append(readings, r)
	}

	sort.Slice(readings, func(i, j int) bool {
		if readings[i].Date != readings[j].Date {
			return readings[i].Date < readings[j].Date
		}
		return readings[i].Kind < readings[j].Kind
	})

	if limit > 0 && len(readings) > limit {
		readings = readings[:limit]
	}

	return readings, nil
}

// SaveAppointment stores a booked appointment.
func (c *Client) SaveAppointment(a *models.Appointment) error {
	key := AppointmentPrefix + a.ID.String()
	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("marshal appointment: %w", err)
	}
	return c.set(key, data)
}

// ListAppointments retrieves appointments, most recent first.
func (c *Client) ListAppointments(limit int) ([]*models.Appointment, error) {
	allData, err := c.listByPrefix(AppointmentPrefix)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	var appointments []*models.Appointment
	for _, data := range allData {
		a, err := unmarshalJSON[models.Appointment](data)
		if err != nil {
			continue // Skip invalid entries
		}
		appointments = append(appointments, a)
	}

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})

	if limit > 0 && len(appointments) > limit {
		appointments = appointments[:limit]
	}

	return appointments, nil
}

// SaveChatMessage appends a chat message.
func (c *Client) SaveChatMessage(m *models.ChatMessage) error {
	key := ChatPrefix + m.ID.String()
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal chat message: %w", err)
	}
	return c.set(key, data)
}

// ListChatMessages retrieves chat messages in sent order (oldest first).
func (c *Client) ListChatMessages(limit int) ([]*models.ChatMessage, error) {
	allData, err := c.listByPrefix(ChatPrefix)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	var messages []*models.ChatMessage
	for _, data := range allData {
		m, err := unmarshalJSON[models.ChatMessage](data)
		if err != nil {
			continue // Skip invalid entries
		}
		messages = append(messages, m)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})

	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}

	return messages, nil
}

// ClearChatHistory removes all chat messages.
func (c *Client) ClearChatHistory() error {
	if err := c.deleteByPrefix(ChatPrefix); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

// GetAllData retrieves all archived data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	reports, err := c.ListReports(0)
	if err != nil {
		return nil, err
	}
	readings, err := c.ListReadings(nil, 0)
	if err != nil {
		return nil, err
	}
	appointments, err := c.ListAppointments(0)
	if err != nil {
		return nil, err
	}
	messages, err := c.ListChatMessages(0)
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "medtrack",
		Reports:      reports,
		Readings:     readings,
		Appointments: appointments,
		ChatHistory:  messages,
	}, nil
}

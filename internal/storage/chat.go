// ABOUTME: Chat history persistence for SQLite storage.
// ABOUTME: Append and list in sent order; clearable as a whole.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/medtrack/internal/models"
)

// SaveChatMessage appends a chat message to the archive.
func (d *DB) SaveChatMessage(m *models.ChatMessage) error {
	query := `
		INSERT OR REPLACE INTO chat_messages (id, role, text, sent_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Role,
		m.Text,
		m.SentAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save chat message: %w", err)
	}
	return nil
}

// ListChatMessages retrieves chat messages in sent order (oldest first).
func (d *DB) ListChatMessages(limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, role, text, sent_at
		FROM chat_messages
		ORDER BY sent_at ASC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		m, err := scanChatMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// ClearChatHistory removes all chat messages.
func (d *DB) ClearChatHistory() error {
	if _, err := d.db.Exec("DELETE FROM chat_messages"); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

func scanChatMessage(rows *sql.Rows) (*models.ChatMessage, error) {
	var m models.ChatMessage
	var idStr, sentAt string

	if err := rows.Scan(&idStr, &m.Role, &m.Text, &sentAt); err != nil {
		return nil, fmt.Errorf("scan chat message: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.SentAt, _ = time.Parse(time.RFC3339Nano, sentAt)

	return &m, nil
}

// ABOUTME: ChatMessage and User models for the AI assistant session.
// ABOUTME: Chat history is append-only and clearable as a whole.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single entry in the assistant conversation.
type ChatMessage struct {
	ID     uuid.UUID `json:"id"`
	Role   string    `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// NewChatMessage creates a chat message timestamped now.
func NewChatMessage(role, text string) ChatMessage {
	return ChatMessage{
		ID:     uuid.New(),
		Role:   role,
		Text:   text,
		SentAt: time.Now(),
	}
}

// User identifies the session owner.
type User struct {
	Name string `json:"name"`
}

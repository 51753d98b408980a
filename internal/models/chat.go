package models

import "github.com/google/uuid"

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderBot    Sender = "bot"
	SenderSystem Sender = "system"
)

// Message is one line of a user's chat transcript.
type Message struct {
	ID     string   `json:"id"`
	Sender Sender   `json:"sender"`
	Text   string   `json:"text"`
	Plan   []string `json:"plan,omitempty"`
}

// NewMessage creates a message with a fresh id.
func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:     uuid.New().String(),
		Sender: sender,
		Text:   text,
	}
}

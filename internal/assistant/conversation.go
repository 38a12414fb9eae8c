// Package assistant manages the NexusCoach conversation: a single serialized
// chat transcript backed by a model provider, with fixed fallback replies
// when the provider misbehaves.
package assistant

import (
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	"github.com/google/uuid"
)

// Message is one entry in the coach transcript.
type Message struct {
	ID        string         `json:"id"`
	Role      enums.ChatRole `json:"role"`
	Text      string         `json:"text"`
	Timestamp time.Time      `json:"timestamp"`
}

func newMessage(role enums.ChatRole, text string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: at.UTC(),
	}
}

// welcomeText opens every fresh conversation before the user says anything.
const welcomeText = "Hello! I'm NexusCoach. I can help you build a workout plan, find equipment, or answer nutrition questions. How can I assist your gains today?"

func welcomeMessage(at time.Time) Message {
	return newMessage(enums.ChatRoleAssistant, welcomeText, at)
}

package messages

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the role of a message sender
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Validate validates that a role is one of the allowed values
func (r MessageRole) Validate() error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("invalid role: %s", r)
	}
}

// Message is one turn of a stored conversation as returned by the
// conversation accessors.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Validate checks required-field presence
func (m *Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	return m.Role.Validate()
}

// NewUserMessage creates a local user message with a generated ID, useful
// when echoing the query into a locally rendered transcript.
func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Conversation is a stored conversation thread.
type Conversation struct {
	ID             string    `json:"id"`
	Title          *string   `json:"title,omitempty"`
	ExternalUserID string    `json:"externalUserId"`
	Messages       []Message `json:"messages,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate checks required-field presence on the conversation and every
// embedded message
func (c *Conversation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conversation id is required")
	}
	for i := range c.Messages {
		if err := c.Messages[i].Validate(); err != nil {
			return fmt.Errorf("invalid message at index %d: %w", i, err)
		}
	}
	return nil
}

// LastMessage returns the most recent message in the conversation, or nil
// when the thread is empty or was fetched without messages.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

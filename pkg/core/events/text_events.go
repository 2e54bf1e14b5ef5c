package events

// TextDeltaEvent carries one increment of streaming reply text
type TextDeltaEvent struct {
	Delta string `json:"delta"`
}

// NewTextDeltaEvent creates a new text delta event
func NewTextDeltaEvent(delta string) *TextDeltaEvent {
	return &TextDeltaEvent{Delta: delta}
}

// Type returns the event type
func (e *TextDeltaEvent) Type() EventType { return EventTypeTextDelta }

// ToJSON serializes the event to its wire envelope
func (e *TextDeltaEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

package events

import (
	"encoding/json"
	"fmt"
)

// EventType represents the type of halap stream event
type EventType string

// Stream event type constants - matching the wire protocol
const (
	EventTypeTextDelta  EventType = "text-delta"
	EventTypeToolCall   EventType = "tool-call"
	EventTypeToolResult EventType = "tool-result"
	EventTypeArtifacts  EventType = "artifacts"
	EventTypeCost       EventType = "cost"
	EventTypeDone       EventType = "done"
	EventTypeError      EventType = "error"
)

// validEventTypes is a map for O(1) lookup of valid event types
var validEventTypes = map[EventType]bool{
	EventTypeTextDelta:  true,
	EventTypeToolCall:   true,
	EventTypeToolResult: true,
	EventTypeArtifacts:  true,
	EventTypeCost:       true,
	EventTypeDone:       true,
	EventTypeError:      true,
}

// IsValidEventType checks if the given event type is part of the closed set
func IsValidEventType(eventType EventType) bool {
	return validEventTypes[eventType]
}

// Event defines the common interface for all halap stream events
type Event interface {
	// Type returns the event type
	Type() EventType

	// ToJSON serializes the event to its wire envelope {"type":...,"data":...}
	ToJSON() ([]byte, error)
}

// envelope is the wire representation of every event.
type envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// marshalEvent wraps an event payload in its wire envelope.
func marshalEvent(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.Type(), err)
	}

	return json.Marshal(envelope{Type: event.Type(), Data: data})
}

// EventFromJSON parses an event from its wire envelope
func EventFromJSON(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse event envelope: %w", err)
	}

	// Create the appropriate event type based on the type field
	var event Event
	switch env.Type {
	case EventTypeTextDelta:
		event = &TextDeltaEvent{}
	case EventTypeToolCall:
		event = &ToolCallEvent{}
	case EventTypeToolResult:
		event = &ToolResultEvent{}
	case EventTypeArtifacts:
		event = &ArtifactsEvent{}
	case EventTypeCost:
		event = &CostEvent{}
	case EventTypeDone:
		event = &DoneEvent{}
	case EventTypeError:
		event = &ErrorEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %q", env.Type)
	}

	// Unmarshal the payload into the specific event type
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
		}
	}

	return event, nil
}

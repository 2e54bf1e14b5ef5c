package events

import "encoding/json"

// ToolCallEvent signals that the server started invoking a tool while
// composing the reply
type ToolCallEvent struct {
	ToolName string          `json:"toolName"`
	Args     json.RawMessage `json:"args,omitempty"`
}

// NewToolCallEvent creates a new tool call event
func NewToolCallEvent(toolName string, args json.RawMessage) *ToolCallEvent {
	return &ToolCallEvent{ToolName: toolName, Args: args}
}

// Type returns the event type
func (e *ToolCallEvent) Type() EventType { return EventTypeToolCall }

// ToJSON serializes the event to its wire envelope
func (e *ToolCallEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

// ToolResultEvent carries the outcome of a completed tool invocation
type ToolResultEvent struct {
	ToolName string          `json:"toolName"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// NewToolResultEvent creates a new tool result event
func NewToolResultEvent(toolName string, result json.RawMessage) *ToolResultEvent {
	return &ToolResultEvent{ToolName: toolName, Result: result}
}

// Type returns the event type
func (e *ToolResultEvent) Type() EventType { return EventTypeToolResult }

// ToJSON serializes the event to its wire envelope
func (e *ToolResultEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

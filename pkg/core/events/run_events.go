package events

// TokenTotals breaks the token accounting of a reply into input and output
type TokenTotals struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

// CostEvent reports incremental cost accounting while the reply streams
type CostEvent struct {
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	TotalCost    float64 `json:"totalCost"`
}

// NewCostEvent creates a new cost event
func NewCostEvent(inputTokens, outputTokens int, totalCost float64) *CostEvent {
	return &CostEvent{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalCost:    totalCost,
	}
}

// Type returns the event type
func (e *CostEvent) Type() EventType { return EventTypeCost }

// ToJSON serializes the event to its wire envelope
func (e *CostEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

// DoneEvent marks the completion of a streamed reply
type DoneEvent struct {
	MessageID       string      `json:"messageId"`
	ConversationID  string      `json:"conversationId"`
	TotalTokens     TokenTotals `json:"totalTokens"`
	ExecutionTimeMs int64       `json:"executionTimeMs"`
}

// NewDoneEvent creates a new done event
func NewDoneEvent(messageID, conversationID string, totals TokenTotals, executionTimeMs int64) *DoneEvent {
	return &DoneEvent{
		MessageID:       messageID,
		ConversationID:  conversationID,
		TotalTokens:     totals,
		ExecutionTimeMs: executionTimeMs,
	}
}

// Type returns the event type
func (e *DoneEvent) Type() EventType { return EventTypeDone }

// ToJSON serializes the event to its wire envelope
func (e *DoneEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

// ErrorEvent reports a server-side failure delivered in-stream
type ErrorEvent struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorEvent creates a new error event
func NewErrorEvent(code, message string) *ErrorEvent {
	return &ErrorEvent{Code: code, Message: message}
}

// Type returns the event type
func (e *ErrorEvent) Type() EventType { return EventTypeError }

// ToJSON serializes the event to its wire envelope
func (e *ErrorEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

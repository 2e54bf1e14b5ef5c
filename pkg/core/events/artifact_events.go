package events

import "github.com/halap/go-sdk/pkg/artifacts"

// ArtifactsEvent delivers the recommended content attached to the reply
type ArtifactsEvent struct {
	artifacts.Artifacts
}

// NewArtifactsEvent creates a new artifacts event
func NewArtifactsEvent(a artifacts.Artifacts) *ArtifactsEvent {
	return &ArtifactsEvent{Artifacts: a}
}

// Type returns the event type
func (e *ArtifactsEvent) Type() EventType { return EventTypeArtifacts }

// ToJSON serializes the event to its wire envelope
func (e *ArtifactsEvent) ToJSON() ([]byte, error) {
	return marshalEvent(e)
}

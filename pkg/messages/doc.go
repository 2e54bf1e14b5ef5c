// Package messages defines the conversation history records returned by the
// halap conversation accessors.
package messages

// Package events defines the typed event union carried by the halap chat
// stream.
//
// Every event travels as a single-line JSON envelope {"type": ..., "data": ...}
// where type is drawn from a fixed closed set. EventFromJSON dispatches on the
// tag and returns the concrete payload type; ToJSON on each event restores the
// envelope, so a decoded event re-encodes to an equivalent record.
//
// Events are immutable once constructed and carry no identity beyond their
// position in the stream.
package events

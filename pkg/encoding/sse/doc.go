// Package sse decodes the halap chat stream: a newline-delimited byte
// stream whose data records are lines of the form
//
//	data: {"type": ..., "data": ...}
//
// The decoder buffers raw bytes, so records split across transport chunks -
// including splits inside a multi-byte character - reassemble correctly. One
// malformed record never aborts the stream: it is logged and skipped, and
// every later well-formed record is still produced in order.
package sse

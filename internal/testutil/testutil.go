// Package testutil provides test doubles shared by the SDK's package tests.
package testutil

import (
	"io"
	"net/http"
	"sync/atomic"
)

// ChunkReader is an io.ReadCloser that returns one scripted chunk per Read
// call, then io.EOF (or FinalErr when set). It records how many times Close
// ran so tests can assert single release.
type ChunkReader struct {
	Chunks   [][]byte
	FinalErr error

	pos        int
	closeCount atomic.Int32
}

// NewChunkReader scripts a reader from string chunks.
func NewChunkReader(chunks ...string) *ChunkReader {
	r := &ChunkReader{}
	for _, chunk := range chunks {
		r.Chunks = append(r.Chunks, []byte(chunk))
	}
	return r
}

func (r *ChunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.Chunks) {
		if r.FinalErr != nil {
			return 0, r.FinalErr
		}
		return 0, io.EOF
	}

	chunk := r.Chunks[r.pos]
	n := copy(p, chunk)
	if n < len(chunk) {
		// Carry the remainder into the next Read.
		r.Chunks[r.pos] = chunk[n:]
		return n, nil
	}

	r.pos++
	return n, nil
}

func (r *ChunkReader) Close() error {
	r.closeCount.Add(1)
	return nil
}

// CloseCount reports how many times Close has been called.
func (r *ChunkReader) CloseCount() int {
	return int(r.closeCount.Load())
}

// RoundTripFunc adapts a function to http.RoundTripper for canned client
// transports.
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

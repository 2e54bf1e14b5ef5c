package sse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/halap/go-sdk/pkg/core"
	"github.com/halap/go-sdk/pkg/core/events"
)

// dataPrefix marks a data record; lines without it are keep-alive or comment
// lines and are ignored.
const dataPrefix = "data: "

// Response headers carrying the stream identifiers.
const (
	HeaderConversationID = "X-Conversation-Id"
	HeaderMessageID      = "X-Message-Id"
)

const defaultReadSize = 4096

// StreamResult is the terminal value of a decode operation. Both identifiers
// come from response headers captured before decoding begins; a nil field
// means the corresponding header was absent.
type StreamResult struct {
	ConversationID *string
	MessageID      *string
}

// ResultFromHeader captures the stream identifiers from the response headers.
func ResultFromHeader(h http.Header) StreamResult {
	var result StreamResult
	if v := h.Get(HeaderConversationID); v != "" {
		result.ConversationID = &v
	}
	if v := h.Get(HeaderMessageID); v != "" {
		result.MessageID = &v
	}
	return result
}

// Option configures a Stream.
type Option func(*Stream)

// WithLogger sets the logger used to report skipped frames.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Stream) {
		s.logger = logger
	}
}

// Stream decodes a line-framed event stream into an ordered sequence of
// typed events. It is a single-use pull iterator:
//
//	stream, err := sse.NewStream(ctx, resp.Body, sse.ResultFromHeader(resp.Header))
//	if err != nil { ... }
//	defer stream.Close()
//	for stream.Next() {
//	    handle(stream.Current())
//	}
//	if err := stream.Err(); err != nil { ... }
//	result := stream.Result()
//
// A Stream is not safe for concurrent use; each streaming call owns its own
// Stream and its own body exclusively.
type Stream struct {
	ctx    context.Context
	body   io.ReadCloser
	logger logrus.FieldLogger

	buf   []byte // undecoded carry-over; never contains a newline
	chunk []byte // scratch read buffer

	cur    events.Event
	err    error
	srcErr error // pending read failure; acted on after the buffer drains
	done   bool

	result StreamResult

	closeOnce sync.Once
	closeErr  error
}

// NewStream wraps a response body in a decoding stream. The result carries
// the identifiers captured from the response headers before any byte is
// read. A nil body fails immediately: the stream never starts.
func NewStream(ctx context.Context, body io.ReadCloser, result StreamResult, opts ...Option) (*Stream, error) {
	if body == nil {
		return nil, core.ErrNoResponseBody
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Stream{
		ctx:    ctx,
		body:   body,
		logger: logrus.StandardLogger(),
		chunk:  make([]byte, defaultReadSize),
		result: result,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Next advances to the next decodable event, reading from the body as
// needed. It returns false when the stream is exhausted, cancelled, closed,
// or broken; check Err afterwards to distinguish a broken stream.
//
// A frame whose payload fails to parse is skipped (logged only) and decoding
// continues with the next frame. A final record lacking its trailing newline
// is discarded at end of stream.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}

	for {
		if s.ctx.Err() != nil {
			s.finish(nil)
			return false
		}

		// Drain complete frames already buffered. A final read may deliver
		// bytes together with its error, so draining comes before the error
		// is acted on: terminated records from the last chunk still count.
		for {
			i := bytes.IndexByte(s.buf, '\n')
			if i < 0 {
				break
			}
			line := s.buf[:i]
			s.buf = s.buf[i+1:]

			if event, ok := s.decodeFrame(line); ok {
				s.cur = event
				return true
			}
		}

		if s.srcErr != nil {
			switch {
			case errors.Is(s.srcErr, io.EOF):
				s.finish(nil)
			case s.ctx.Err() != nil:
				// Cancellation is not a stream error; the caller observes
				// it through the context.
				s.finish(nil)
			default:
				s.finish(fmt.Errorf("failed to read stream: %w", s.srcErr))
			}
			return false
		}

		n, err := s.body.Read(s.chunk)
		if n > 0 {
			s.buf = append(s.buf, s.chunk[:n]...)
		}
		if err != nil {
			s.srcErr = err
		}
	}
}

// decodeFrame decodes one newline-delimited line. Lines without the data
// prefix are keep-alive or comment lines and are dropped silently; data
// lines with unparseable payloads are dropped with a log entry.
func (s *Stream) decodeFrame(line []byte) (events.Event, bool) {
	if !bytes.HasPrefix(line, []byte(dataPrefix)) {
		return nil, false
	}

	event, err := events.EventFromJSON(line[len(dataPrefix):])
	if err != nil {
		s.logger.WithError(err).WithField("frameBytes", len(line)).
			Debug("skipping undecodable stream frame")
		return nil, false
	}

	return event, true
}

// finish ends iteration and releases the body. Any residual unterminated
// buffer content is discarded, not treated as a final frame.
func (s *Stream) finish(err error) {
	s.done = true
	s.buf = nil
	if err != nil {
		s.err = err
	}
	_ = s.Close()
}

// Current returns the event produced by the last successful call to Next.
func (s *Stream) Current() events.Event {
	return s.cur
}

// Err returns the error that terminated the stream, if any. It is nil after
// normal completion, after Close, and after cancellation via the context.
func (s *Stream) Err() error {
	return s.err
}

// Result returns the terminal summary value. It is meaningful once Next has
// returned false.
func (s *Stream) Result() StreamResult {
	return s.result
}

// Close releases the underlying body. It is safe to call multiple times and
// runs on every exit path - normal completion, error, or early abandonment -
// but releases the body exactly once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.done = true
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}

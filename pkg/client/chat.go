package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/halap/go-sdk/pkg/core"
	"github.com/halap/go-sdk/pkg/encoding/sse"
)

// chatStreamPath is the streaming chat endpoint.
const chatStreamPath = "/api/halap/chat/stream"

// ChatRequest describes one streaming chat query.
type ChatRequest struct {
	// Query is the user's message
	Query string `json:"query"`

	// ConversationID continues an existing conversation when set
	ConversationID *string `json:"conversationId,omitempty"`

	// ExternalUserID identifies the end user. When empty, a fresh UUID is
	// generated for the request.
	ExternalUserID string `json:"externalUserId"`

	// Metadata is passed through to the service untouched
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ChatStream sends a chat query and returns the decoded event stream. The
// caller must drain or Close the returned stream; cancelling ctx aborts
// in-flight reads and still releases the response body.
//
// A non-2xx response or an absent body fails here, before any event is
// produced.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) (*sse.Stream, error) {
	if req.Query == "" {
		return nil, &core.ValidationError{
			Field:   "Query",
			Message: "query cannot be empty",
			Value:   req.Query,
		}
	}
	if req.ExternalUserID == "" {
		req.ExternalUserID = uuid.New().String()
	}

	cfg, err := c.resolveConfig(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, cfg, http.MethodPost, chatStreamPath, nil, req)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat stream: request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := handleErrorResponse("chat stream", resp)
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, err
	}

	stream, err := sse.NewStream(ctx, resp.Body, sse.ResultFromHeader(resp.Header), sse.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	return stream, nil
}

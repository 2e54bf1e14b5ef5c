package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/halap/go-sdk/pkg/core"
	"github.com/halap/go-sdk/pkg/messages"
)

const conversationsPath = "/api/halap/conversations"

// ConversationsParams filters the conversation listing.
type ConversationsParams struct {
	// Limit caps the number of conversations returned; zero means the
	// server default
	Limit int

	// ExternalUserID scopes the listing to one end user
	ExternalUserID string
}

// Conversations lists stored conversations, most recent first.
func (c *Client) Conversations(ctx context.Context, params ConversationsParams) ([]messages.Conversation, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.ExternalUserID != "" {
		query.Set("externalUserId", params.ExternalUserID)
	}

	var conversations []messages.Conversation
	if err := c.doJSON(ctx, "list conversations", http.MethodGet, conversationsPath, query, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// Conversation fetches one conversation with its messages.
func (c *Client) Conversation(ctx context.Context, id string) (*messages.Conversation, error) {
	if id == "" {
		return nil, &core.ValidationError{
			Field:   "id",
			Message: "conversation id cannot be empty",
			Value:   id,
		}
	}

	var conversation messages.Conversation
	if err := c.doJSON(ctx, "get conversation", http.MethodGet, conversationsPath+"/"+url.PathEscape(id), nil, nil, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

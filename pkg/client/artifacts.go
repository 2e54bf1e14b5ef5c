package client

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/halap/go-sdk/pkg/artifacts"
	"github.com/halap/go-sdk/pkg/core"
)

const (
	bookArtifactsPath     = "/api/halap/artifacts/books/"
	musicArtifactsPath    = "/api/halap/artifacts/music/"
	bookPresentationsPath = "/api/halap/books/presentations"
)

// ISBN batch bounds enforced locally before any request is sent.
const (
	minPresentationISBNs = 1
	maxPresentationISBNs = 100
)

// BookArtifacts fetches the book artifacts produced for a message.
func (c *Client) BookArtifacts(ctx context.Context, messageID string) ([]artifacts.Book, error) {
	if messageID == "" {
		return nil, &core.ValidationError{
			Field:   "messageID",
			Message: "message id cannot be empty",
			Value:   messageID,
		}
	}

	var books []artifacts.Book
	if err := c.doJSON(ctx, "get book artifacts", http.MethodGet, bookArtifactsPath+url.PathEscape(messageID), nil, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// MusicArtifacts fetches the music artifacts produced for a message.
func (c *Client) MusicArtifacts(ctx context.Context, messageID string) (artifacts.MusicList, error) {
	if messageID == "" {
		return nil, &core.ValidationError{
			Field:   "messageID",
			Message: "message id cannot be empty",
			Value:   messageID,
		}
	}

	var music artifacts.MusicList
	if err := c.doJSON(ctx, "get music artifacts", http.MethodGet, musicArtifactsPath+url.PathEscape(messageID), nil, nil, &music); err != nil {
		return nil, err
	}
	return music, nil
}

// Artifacts fetches the book and music artifacts for a message concurrently
// and returns them as one record. Either list may be empty.
func (c *Client) Artifacts(ctx context.Context, messageID string) (*artifacts.Artifacts, error) {
	if messageID == "" {
		return nil, &core.ValidationError{
			Field:   "messageID",
			Message: "message id cannot be empty",
			Value:   messageID,
		}
	}

	var combined artifacts.Artifacts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		books, err := c.BookArtifacts(gctx, messageID)
		if err != nil {
			return err
		}
		combined.Books = books
		return nil
	})
	g.Go(func() error {
		music, err := c.MusicArtifacts(gctx, messageID)
		if err != nil {
			return err
		}
		combined.Music = music
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &combined, nil
}

// presentationsRequest is the JSON body of the presentation endpoint.
type presentationsRequest struct {
	ISBN13s []string `json:"isbn13s"`
}

// CreateBookPresentations requests presentation material for a batch of
// books. The batch size must be within [1,100]; an out-of-bounds batch fails
// locally without any request being sent.
func (c *Client) CreateBookPresentations(ctx context.Context, isbn13s []string) error {
	if len(isbn13s) < minPresentationISBNs || len(isbn13s) > maxPresentationISBNs {
		return &core.ValidationError{
			Field:   "isbn13s",
			Message: "batch size must be between 1 and 100",
			Value:   len(isbn13s),
		}
	}

	return c.doJSON(ctx, "create book presentations", http.MethodPost, bookPresentationsPath, nil, presentationsRequest{ISBN13s: isbn13s}, nil)
}

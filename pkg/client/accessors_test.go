package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halap/go-sdk/internal/testutil"
	"github.com/halap/go-sdk/pkg/core"
)

func TestClient_Conversations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/halap/conversations" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q", got)
		}
		if got := r.URL.Query().Get("externalUserId"); got != "user-1" {
			t.Errorf("externalUserId = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"c1","externalUserId":"user-1","createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:05:00Z"},
			{"id":"c2","externalUserId":"user-1","createdAt":"2026-08-28T09:00:00Z","updatedAt":"2026-08-28T09:01:00Z"}
		]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	conversations, err := c.Conversations(context.Background(), ConversationsParams{Limit: 5, ExternalUserID: "user-1"})
	if err != nil {
		t.Fatalf("Conversations() error = %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("Expected 2 conversations, got %d", len(conversations))
	}
	if conversations[0].ID != "c1" || conversations[1].ID != "c2" {
		t.Errorf("Conversations = %+v", conversations)
	}
}

func TestClient_Conversation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/halap/conversations/c1" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"c1","externalUserId":"user-1",
			"messages":[
				{"id":"m1","role":"user","content":"hi","createdAt":"2026-08-29T10:00:00Z"},
				{"id":"m2","role":"assistant","content":"hello","createdAt":"2026-08-29T10:00:03Z"}
			],
			"createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:00:03Z"
		}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	conversation, err := c.Conversation(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Conversation() error = %v", err)
	}
	if err := conversation.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if len(conversation.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(conversation.Messages))
	}
	last := conversation.LastMessage()
	if last == nil || last.Content != "hello" {
		t.Errorf("LastMessage = %+v", last)
	}
}

func TestClient_Conversation_EmptyID(t *testing.T) {
	c := newTestClient(t, "http://localhost:8080")

	_, err := c.Conversation(context.Background(), "")
	var validationErr *core.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *core.ValidationError, got %T", err)
	}
}

func TestClient_Artifacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/halap/artifacts/books/m1":
			_, _ = w.Write([]byte(`[{"isbn13":"9780000000001","title":"A Love Supreme on Paper","author":"C. Writer"}]`))
		case "/api/halap/artifacts/music/m1":
			_, _ = w.Write([]byte(`[{"type":"album","title":"A Love Supreme","artist":"John Coltrane"}]`))
		default:
			t.Errorf("Unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	combined, err := c.Artifacts(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Artifacts() error = %v", err)
	}
	if len(combined.Books) != 1 || combined.Books[0].ISBN13 != "9780000000001" {
		t.Errorf("Books = %+v", combined.Books)
	}
	if len(combined.Music) != 1 {
		t.Errorf("Music = %+v", combined.Music)
	}
	if len(combined.Suggestions) != 0 {
		t.Errorf("Suggestions = %+v", combined.Suggestions)
	}
}

func TestClient_Artifacts_PropagatesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/halap/artifacts/music/m1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Artifacts(context.Background(), "m1")
	var apiErr *core.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *core.APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
}

func TestClient_CreateBookPresentations(t *testing.T) {
	var gotBody presentationsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/halap/books/presentations" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	if err := c.CreateBookPresentations(context.Background(), []string{"9780000000001"}); err != nil {
		t.Fatalf("CreateBookPresentations() error = %v", err)
	}
	if len(gotBody.ISBN13s) != 1 {
		t.Errorf("ISBN13s = %v", gotBody.ISBN13s)
	}
}

func TestClient_CreateBookPresentations_BoundsCheckedLocally(t *testing.T) {
	requests := 0
	doer := &http.Client{Transport: testutil.RoundTripFunc(func(*http.Request) (*http.Response, error) {
		requests++
		return nil, errors.New("transport must not be reached")
	})}

	c, err := New(
		StaticProvider{Cfg: Config{APIURL: "http://localhost:8080", APIToken: "tok"}},
		WithDoer(doer),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	tooMany := make([]string, 101)
	for i := range tooMany {
		tooMany[i] = "9780000000001"
	}

	tests := []struct {
		name    string
		isbn13s []string
	}{
		{name: "empty batch", isbn13s: nil},
		{name: "oversized batch", isbn13s: tooMany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.CreateBookPresentations(context.Background(), tt.isbn13s)
			var validationErr *core.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected *core.ValidationError, got %T (%v)", err, err)
			}
		})
	}

	if requests != 0 {
		t.Errorf("Expected no network calls, got %d", requests)
	}
}

package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halap/go-sdk/pkg/artifacts"
)

func TestEventFromJSON_DispatchesOnTypeTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{
			name:  "text delta",
			input: `{"type":"text-delta","data":{"delta":"Hi"}}`,
			want:  NewTextDeltaEvent("Hi"),
		},
		{
			name:  "tool call",
			input: `{"type":"tool-call","data":{"toolName":"search_books","args":{"q":"jazz"}}}`,
			want:  NewToolCallEvent("search_books", json.RawMessage(`{"q":"jazz"}`)),
		},
		{
			name:  "tool result",
			input: `{"type":"tool-result","data":{"toolName":"search_books","result":[1,2]}}`,
			want:  NewToolResultEvent("search_books", json.RawMessage(`[1,2]`)),
		},
		{
			name:  "cost",
			input: `{"type":"cost","data":{"inputTokens":10,"outputTokens":20,"totalCost":0.003}}`,
			want:  NewCostEvent(10, 20, 0.003),
		},
		{
			name:  "done",
			input: `{"type":"done","data":{"messageId":"m1","conversationId":"c1","totalTokens":{"input":1,"output":2},"executionTimeMs":5}}`,
			want:  NewDoneEvent("m1", "c1", TokenTotals{Input: 1, Output: 2}, 5),
		},
		{
			name:  "error",
			input: `{"type":"error","data":{"code":"E","message":"bad"}}`,
			want:  NewErrorEvent("E", "bad"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := EventFromJSON([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, event)
		})
	}
}

func TestEventFromJSON_ArtifactsPayload(t *testing.T) {
	input := `{"type":"artifacts","data":{
		"books":[{"isbn13":"9780000000001","title":"Kind of Blue Stories","author":"A. Writer"}],
		"music":[
			{"type":"album","title":"Kind of Blue","artist":"Miles Davis","year":1959},
			{"type":"track","title":"So What","artist":"Miles Davis","album":"Kind of Blue"}
		],
		"suggestions":[{"text":"more modal jazz?"}]
	}}`

	event, err := EventFromJSON([]byte(input))
	require.NoError(t, err)

	artifactsEvent, ok := event.(*ArtifactsEvent)
	require.True(t, ok)
	require.Len(t, artifactsEvent.Books, 1)
	assert.Equal(t, "9780000000001", artifactsEvent.Books[0].ISBN13)

	require.Len(t, artifactsEvent.Music, 2)
	album, ok := artifactsEvent.Music[0].(artifacts.Album)
	require.True(t, ok)
	assert.Equal(t, "Kind of Blue", album.Title)
	require.NotNil(t, album.Year)
	assert.Equal(t, 1959, *album.Year)

	track, ok := artifactsEvent.Music[1].(artifacts.Track)
	require.True(t, ok)
	assert.Equal(t, "So What", track.Title)

	require.Len(t, artifactsEvent.Suggestions, 1)
	assert.Equal(t, "more modal jazz?", artifactsEvent.Suggestions[0].Text)
}

func TestEventFromJSON_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `{not json}`},
		{name: "unknown type", input: `{"type":"telemetry","data":{}}`},
		{name: "missing type tag", input: `{"data":{"delta":"x"}}`},
		{name: "payload shape mismatch", input: `{"type":"text-delta","data":{"delta":42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EventFromJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEventToJSON_RoundTrip(t *testing.T) {
	eventsToCheck := []Event{
		NewTextDeltaEvent("Hi"),
		NewToolCallEvent("lookup", json.RawMessage(`{"x":1}`)),
		NewToolResultEvent("lookup", json.RawMessage(`"ok"`)),
		NewCostEvent(1, 2, 0.5),
		NewDoneEvent("m1", "c1", TokenTotals{Input: 1, Output: 2}, 5),
		NewErrorEvent("E", "bad"),
	}

	for _, original := range eventsToCheck {
		t.Run(string(original.Type()), func(t *testing.T) {
			encoded, err := original.ToJSON()
			require.NoError(t, err)

			decoded, err := EventFromJSON(encoded)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}
}

func TestIsValidEventType(t *testing.T) {
	for _, eventType := range []EventType{
		EventTypeTextDelta, EventTypeToolCall, EventTypeToolResult,
		EventTypeArtifacts, EventTypeCost, EventTypeDone, EventTypeError,
	} {
		assert.True(t, IsValidEventType(eventType))
	}

	assert.False(t, IsValidEventType("telemetry"))
	assert.False(t, IsValidEventType(""))
}

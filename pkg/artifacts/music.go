package artifacts

import (
	"encoding/json"
	"fmt"
)

// MusicType discriminates the two music artifact shapes
type MusicType string

const (
	MusicTypeAlbum MusicType = "album"
	MusicTypeTrack MusicType = "track"
)

// Music is the closed union over album and track artifacts. The only
// implementations are Album and Track; a payload carrying any other type tag
// is rejected during decoding rather than passed through.
type Music interface {
	// Type returns the music artifact type tag
	Type() MusicType

	// musicItem restricts implementations to this package
	musicItem()
}

// Album describes a recommended album.
type Album struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Year     *int    `json:"year,omitempty"`
	CoverURL *string `json:"coverUrl,omitempty"`
}

// Type returns MusicTypeAlbum
func (Album) Type() MusicType { return MusicTypeAlbum }

func (Album) musicItem() {}

// Track describes a recommended track.
type Track struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      *string `json:"album,omitempty"`
	DurationMs *int    `json:"durationMs,omitempty"`
}

// Type returns MusicTypeTrack
func (Track) Type() MusicType { return MusicTypeTrack }

func (Track) musicItem() {}

// MusicList is a slice of music artifacts that knows how to decode the tagged
// wire representation {"type": "album"|"track", ...}.
type MusicList []Music

// UnmarshalJSON decodes each element according to its type tag. An unknown
// tag fails the whole list: the union is closed, and silently accepting a
// third shape would hide a protocol change.
func (ml *MusicList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("failed to parse music list: %w", err)
	}

	items := make(MusicList, 0, len(raws))
	for i, raw := range raws {
		var tag struct {
			Type MusicType `json:"type"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return fmt.Errorf("failed to parse music item %d type: %w", i, err)
		}

		switch tag.Type {
		case MusicTypeAlbum:
			var album Album
			if err := json.Unmarshal(raw, &album); err != nil {
				return fmt.Errorf("failed to parse album at index %d: %w", i, err)
			}
			items = append(items, album)
		case MusicTypeTrack:
			var track Track
			if err := json.Unmarshal(raw, &track); err != nil {
				return fmt.Errorf("failed to parse track at index %d: %w", i, err)
			}
			items = append(items, track)
		default:
			return fmt.Errorf("unknown music type %q at index %d", tag.Type, i)
		}
	}

	*ml = items
	return nil
}

// MarshalJSON encodes each element with its type tag restored.
func (ml MusicList) MarshalJSON() ([]byte, error) {
	encoded := make([]json.RawMessage, 0, len(ml))
	for i, item := range ml {
		fields, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal music item %d: %w", i, err)
		}

		// Re-open the object to prepend the type tag.
		tagged := fmt.Sprintf(`{"type":%q,%s`, item.Type(), fields[1:])
		if len(fields) == 2 { // empty object
			tagged = fmt.Sprintf(`{"type":%q}`, item.Type())
		}
		encoded = append(encoded, json.RawMessage(tagged))
	}
	return json.Marshal(encoded)
}

package artifacts

// Book describes a recommended book artifact.
type Book struct {
	ISBN13      string  `json:"isbn13"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   *string `json:"publisher,omitempty"`
	CoverURL    *string `json:"coverUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Suggestion is a follow-up query the server recommends to the user.
type Suggestion struct {
	Text string `json:"text"`
}

// Artifacts groups the recommended content delivered alongside a chat reply,
// either embedded in an artifacts event or fetched via the artifact accessors.
type Artifacts struct {
	Books       []Book       `json:"books,omitempty"`
	Music       MusicList    `json:"music,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Package artifacts defines the recommended-content records the halap
// service attaches to chat replies: books, music (a closed album/track
// union), and follow-up suggestions.
package artifacts

// Package models defines the documents persisted by PathPradarshak and the
// session value passed between the client and the services.
package models

import "fmt"

// Stream is one of the three career streams used for quiz scoring and post
// categorisation.
type Stream string

const (
	StreamScience  Stream = "Science"
	StreamCommerce Stream = "Commerce"
	StreamArts     Stream = "Arts"
)

// Streams lists every stream in declaration order. Quiz ties resolve in
// this order, so it must not change.
var Streams = []Stream{StreamScience, StreamCommerce, StreamArts}

var streamEmoji = map[Stream]string{
	StreamScience:  "🧪",
	StreamCommerce: "💼",
	StreamArts:     "🎨",
}

// Valid reports whether s is one of the declared streams.
func (s Stream) Valid() bool {
	_, ok := streamEmoji[s]
	return ok
}

// Emoji returns the display icon of s, or "" for an unknown stream.
func (s Stream) Emoji() string {
	return streamEmoji[s]
}

// ParseStream accepts a stream name in any letter case.
func ParseStream(name string) (Stream, error) {
	for _, s := range Streams {
		if equalFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown stream %q", name)
}

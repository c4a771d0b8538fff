// Package quiz holds the career-stream questionnaire and its scoring.
package quiz

import "github.com/Roop3005/path-darshak/internal/models"

// Length is the number of answers a completed quiz has.
const Length = 10

// Option is one answer to a question and the stream it counts towards.
type Option struct {
	Text   string
	Stream models.Stream
}

type Question struct {
	Text    string
	Options []Option
}

// Score returns the stream chosen most often. Ties go to the stream
// declared first in models.Streams. Unknown streams are not counted.
func Score(answers []models.Stream) models.Stream {
	counts := make(map[models.Stream]int, len(models.Streams))
	for _, a := range answers {
		counts[a]++
	}

	best := models.Streams[0]
	for _, s := range models.Streams[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// Complete reports whether answers is a full set of valid answers.
func Complete(answers []models.Stream) bool {
	if len(answers) != Length {
		return false
	}
	for _, a := range answers {
		if !a.Valid() {
			return false
		}
	}
	return true
}

package quiz

import "github.com/Roop3005/path-darshak/internal/models"

func opts(science, commerce, arts string) []Option {
	return []Option{
		{Text: science, Stream: models.StreamScience},
		{Text: commerce, Stream: models.StreamCommerce},
		{Text: arts, Stream: models.StreamArts},
	}
}

var questions = []Question{
	{"Which school subject do you enjoy the most?", opts("Physics or Biology", "Accounts or Economics", "History or Literature")},
	{"How do you like to spend a free afternoon?", opts("Building or fixing gadgets", "Planning a small business idea", "Drawing, writing or music")},
	{"Which of these problems would you rather solve?", opts("Why a bridge collapsed", "Why a shop is losing money", "Why a society changed over time")},
	{"Pick a dream workplace.", opts("A research lab or hospital", "A bank or a startup office", "A studio, newsroom or museum")},
	{"What kind of books or videos do you pick first?", opts("Science and technology", "Business and finance", "Stories, art and culture")},
	{"In a group project you usually take on...", opts("The experiments and calculations", "The budget and the schedule", "The presentation and the design")},
	{"Which skill would you most like to master?", opts("Coding or lab techniques", "Negotiation and investing", "Public speaking or creative writing")},
	{"Which achievement would make you proudest?", opts("Discovering a cure or an invention", "Running a successful company", "Publishing a book or holding an exhibition")},
	{"What do you notice first in a news story?", opts("The data and the evidence", "The market and the money", "The people and their stories")},
	{"Where do you see yourself in ten years?", opts("Doctor, engineer or scientist", "Chartered accountant, manager or entrepreneur", "Lawyer, designer, journalist or teacher")},
}

// Questions returns the question bank in display order. The caller owns
// the returned slice.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

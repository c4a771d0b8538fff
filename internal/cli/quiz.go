package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/quiz"
)

// takeQuiz stops asking at the first unanswered question, which leaves the
// answers incomplete.
func (a *App) takeQuiz(ctx context.Context, _ []string) error {
	questions := quiz.Questions()
	answers := make([]models.Stream, 0, len(questions))

	for i, q := range questions {
		a.println(a.styles.title.Render(fmt.Sprintf("%d. %s", i+1, q.Text)))
		for j, o := range q.Options {
			a.println(fmt.Sprintf("   %d) %s", j+1, o.Text))
		}
		answer, err := a.ask("Your choice")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(q.Options) {
			break
		}
		answers = append(answers, q.Options[n-1].Stream)
	}

	stream, err := a.quiz.Complete(ctx, &a.session, answers)
	if err != nil {
		return err
	}
	a.println(a.styles.accent.Render("Suggested Stream: " + streamLabel(stream)))
	return nil
}

// roadmap shows the given stream, else the quiz result, else every stream.
func (a *App) roadmap(_ context.Context, args []string) error {
	var streams []models.Stream
	switch {
	case len(args) > 0:
		s, err := models.ParseStream(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		streams = []models.Stream{s}
	case a.session.User.QuizResult != nil:
		streams = []models.Stream{*a.session.User.QuizResult}
	default:
		streams = models.Streams
	}

	for _, s := range streams {
		a.println(a.styles.title.Render("Roadmap: " + streamLabel(s)))
		for i, step := range quiz.Roadmap(s) {
			a.println(fmt.Sprintf("  %d. %s", i+1, step))
		}
	}
	return nil
}

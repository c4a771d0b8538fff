package services

import (
	"context"
	"fmt"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/quiz"
)

type QuizService interface {
	Complete(ctx context.Context, s *models.Session, answers []models.Stream) (models.Stream, error)
}

type quizService struct {
	base
	docs *docstore.Documents
}

func NewQuizService(docs *docstore.Documents, opts ...Option) QuizService {
	return &quizService{base: newBase(opts), docs: docs}
}

// Complete scores a full set of answers and stores the result on the
// session user's record and on the session itself.
func (q *quizService) Complete(ctx context.Context, session *models.Session, answers []models.Stream) (models.Stream, error) {
	if session == nil || !session.LoggedIn {
		return "", common.ErrNotLoggedIn
	}
	if !quiz.Complete(answers) {
		return "", fmt.Errorf("%w: answer every question", common.ErrIncomplete)
	}

	result := quiz.Score(answers)
	var updated models.User
	err := q.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		found := users.Update(session.Email(), func(u *models.User) {
			u.QuizResult = &result
			updated = *u
		})
		if !found {
			return fmt.Errorf("%w: no account for %s", common.ErrNotFound, session.Email())
		}
		if err := tx.PutUsers(ctx, users); err != nil {
			return err
		}
		return tx.PutSession(ctx, models.Session{LoggedIn: true, User: updated})
	})
	if err != nil {
		q.log.Warn(ctx, "quiz result not saved", "email", session.Email(), "error", err)
		return "", err
	}

	session.User = updated
	q.log.Info(ctx, "quiz completed", "email", updated.Email, "stream", result)
	return result, nil
}

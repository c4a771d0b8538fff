package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/quiz"
)

func TestQuizComplete(t *testing.T) {
	docs, _ := newDocs(t)
	ctx := context.Background()
	sessions := NewSessionService(docs)
	svc := NewQuizService(docs)

	require.NoError(t, sessions.Register(ctx, "alice", "a@x", "p", "p"))
	s, err := sessions.Login(ctx, "a@x", "p")
	require.NoError(t, err)

	answers := make([]models.Stream, 0, quiz.Length)
	for range 6 {
		answers = append(answers, models.StreamScience)
	}
	for range 3 {
		answers = append(answers, models.StreamCommerce)
	}
	answers = append(answers, models.StreamArts)

	_, err = svc.Complete(ctx, &s, answers[:9])
	require.ErrorIs(t, err, common.ErrIncomplete)
	var out models.Session
	_, err = svc.Complete(ctx, &out, answers)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	got, err := svc.Complete(ctx, &s, answers)
	require.NoError(t, err)
	assert.Equal(t, models.StreamScience, got)
	require.NotNil(t, s.User.QuizResult)
	assert.Equal(t, models.StreamScience, *s.User.QuizResult)

	restored, err := sessions.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored.User.QuizResult)
	assert.Equal(t, models.StreamScience, *restored.User.QuizResult)

	users := storedUsers(t, docs)
	require.NotNil(t, users[0].QuizResult)
	assert.Equal(t, models.StreamScience, *users[0].QuizResult)
}

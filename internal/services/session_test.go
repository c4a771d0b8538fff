package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

func newSessionService(t *testing.T) (SessionService, *docstore.Documents) {
	t.Helper()
	docs, _ := newDocs(t)
	return NewSessionService(docs), docs
}

func storedUsers(t *testing.T, docs *docstore.Documents) []models.User {
	t.Helper()
	var out []models.User
	require.NoError(t, docs.View(context.Background(), func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		out = users.Items()
		return nil
	}))
	return out
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	tests := []struct {
		name                            string
		username, email, pass, confirm string
	}{
		{"blank username", "  ", "a@x", "p", "p"},
		{"blank email", "alice", " ", "p", "p"},
		{"blank password", "alice", "a@x", "", ""},
		{"mismatch", "alice", "a@x", "p1", "p2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.email, tt.pass, tt.confirm)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_TrimsAndRejectsDuplicateEmail(t *testing.T) {
	svc, docs := newSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, " alice ", " a@x.com ", " pw ", " pw "))
	err := svc.Register(ctx, "other", "a@x.com", "x", "x")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	want := []models.User{{Username: "alice", Email: "a@x.com", Password: " pw "}}
	if diff := cmp.Diff(want, storedUsers(t, docs)); diff != "" {
		t.Fatalf("users mismatch (-want +got):\n%s", diff)
	}

	signed, err := NewPrefsService(docs).HasSignedUp(ctx)
	require.NoError(t, err)
	assert.True(t, signed)
}

func TestLogin(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "a@x.com", "Secret", "Secret"))

	_, err := svc.Login(ctx, "a@x.com", "secret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "b@x.com", "Secret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	s, err := svc.Login(ctx, "  a@x.com ", "Secret")
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, "alice", s.User.Username)
	assert.Nil(t, s.User.QuizResult)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, restored)
}

func TestLogout_IsIdempotent(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "a@x", "p", "p"))
	s, err := svc.Login(ctx, "a@x", "p")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, &s))
	assert.False(t, s.LoggedIn)
	require.NoError(t, svc.Logout(ctx, &s))
	require.NoError(t, svc.Logout(ctx, nil))

	_, err = svc.Restore(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "a@x", "old", "old"))
	s, err := svc.Login(ctx, "a@x", "old")
	require.NoError(t, err)

	require.ErrorIs(t, svc.ResetPassword(ctx, "nobody@x", "new"), common.ErrNotFound)
	require.ErrorIs(t, svc.ResetPassword(ctx, "a@x", ""), common.ErrValidation)
	require.NoError(t, svc.ResetPassword(ctx, " a@x ", "new"))

	_, err = svc.Login(ctx, "a@x", "old")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@x", "new")
	require.NoError(t, err)

	// The earlier session keeps its snapshot.
	assert.Equal(t, "old", s.User.Password)
}

func TestUpdateProfile_UpdatesRecordAndSnapshot(t *testing.T) {
	svc, docs := newSessionService(t)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "a@x", "p", "p"))
	s, err := svc.Login(ctx, "a@x", "p")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, &s, "ally", ""))
	assert.Equal(t, "ally", s.User.Username)
	assert.Equal(t, "", s.User.Password)

	users := storedUsers(t, docs)
	require.Len(t, users, 1)
	assert.Equal(t, "ally", users[0].Username)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, restored)

	var out models.Session
	require.ErrorIs(t, svc.UpdateProfile(ctx, &out, "x", "y"), common.ErrNotLoggedIn)
	require.ErrorIs(t, svc.UpdateProfile(ctx, nil, "x", "y"), common.ErrNotLoggedIn)
}

func TestUpdateProfile_RewritesDuplicateLegacyRecords(t *testing.T) {
	docs, store := newDocs(t)
	svc := NewSessionService(docs)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, docstore.KeyUsers, []byte(`[
		{"username":"a","email":"a@x.com","password":"old"},
		{"username":"b","email":"b@x.com","password":"pw"},
		{"username":"a","email":"a@x.com","password":"old"}
	]`)))

	s, err := svc.Login(ctx, "a@x.com", "old")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateProfile(ctx, &s, "ann", "new"))

	_, err = svc.Login(ctx, "a@x.com", "old")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@x.com", "new")
	require.NoError(t, err)

	users := storedUsers(t, docs)
	require.Len(t, users, 3)
	for _, u := range []models.User{users[0], users[2]} {
		assert.Equal(t, "ann", u.Username)
		assert.Equal(t, "new", u.Password)
	}
	assert.Equal(t, "pw", users[1].Password)
}

func TestUpdateProfile_MissingRecord(t *testing.T) {
	svc, _ := newSessionService(t)
	ghost := models.Session{LoggedIn: true, User: models.User{Email: "ghost@x"}}
	require.ErrorIs(t, svc.UpdateProfile(context.Background(), &ghost, "x", "y"), common.ErrNotFound)
}

func TestDeleteAccount_KeepsAuthoredContent(t *testing.T) {
	svc, docs := newSessionService(t)
	posts := NewPostService(docs, WithClock(stepClock()))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "a@x", "p", "p"))
	require.NoError(t, svc.Register(ctx, "bob", "b@x", "p", "p"))
	s, err := svc.Login(ctx, "a@x", "p")
	require.NoError(t, err)
	_, err = posts.Create(ctx, "T", "C", models.StreamArts, "a@x")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, &s))
	assert.False(t, s.LoggedIn)

	users := storedUsers(t, docs)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x", users[0].Email)

	_, err = svc.Restore(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	list, err := posts.List(ctx, Filter{}, SortNewest)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@x", list[0].Author)

	require.ErrorIs(t, svc.DeleteAccount(ctx, &s), common.ErrNotLoggedIn)
}

func TestUsernames(t *testing.T) {
	svc, _ := newSessionService(t)
	ctx := context.Background()

	names, err := svc.Usernames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, svc.Register(ctx, "alice", "a@x", "p", "p"))
	require.NoError(t, svc.Register(ctx, "bob", "b@x", "p", "p"))

	names, err = svc.Usernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a@x": "alice", "b@x": "bob"}, names)
}

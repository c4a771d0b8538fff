// Package docstore stores the app's documents as JSON values in a kv.Store
// under fixed keys, one key per collection or flag.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/repositories/kv"
)

// Storage keys. They match what the browser build wrote to localStorage.
const (
	KeyUsers         = "users"
	KeyPosts         = "posts"
	KeyAlumniStories = "alumniStories"
	KeyLoggedIn      = "loggedIn"
	KeyCurrentUser   = "currentUser"
	KeyTheme         = "theme"
	KeyHasSignedUp   = "hasSignedUp"
)

const flagTrue = "true"

type (
	Users   = Index[string, models.User]
	Posts   = Index[int64, models.Post]
	Stories = Index[int64, models.AlumniStory]
)

type Documents struct {
	store kv.Store
}

func New(store kv.Store) *Documents {
	return &Documents{store: store}
}

// View runs fn over the current documents without a transaction.
func (d *Documents) View(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	return fn(ctx, &Tx{r: d.store})
}

// Update runs fn as one atomic read-modify-write. Nothing fn writes is
// kept if it returns an error.
func (d *Documents) Update(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	return d.store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		return fn(ctx, &Tx{r: r})
	})
}

// Tx gives typed access to the documents of one View or Update.
type Tx struct {
	r kv.Repository
}

func getJSON[T any](ctx context.Context, r kv.Repository, key string) (T, bool, error) {
	var v T
	raw, err := r.Get(ctx, key)
	if err != nil || raw == nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, true, nil
}

func putJSON[T any](ctx context.Context, r kv.Repository, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.Set(ctx, key, raw)
}

func (tx *Tx) Users(ctx context.Context) (*Users, error) {
	users, _, err := getJSON[[]models.User](ctx, tx.r, KeyUsers)
	if err != nil {
		return nil, err
	}
	return NewIndex(users, func(u models.User) string { return u.Email }), nil
}

func (tx *Tx) PutUsers(ctx context.Context, users *Users) error {
	return putJSON(ctx, tx.r, KeyUsers, users.Items())
}

func (tx *Tx) Posts(ctx context.Context) (*Posts, error) {
	posts, _, err := getJSON[[]models.Post](ctx, tx.r, KeyPosts)
	if err != nil {
		return nil, err
	}
	return NewIndex(posts, func(p models.Post) int64 { return p.ID }), nil
}

func (tx *Tx) PutPosts(ctx context.Context, posts *Posts) error {
	return putJSON(ctx, tx.r, KeyPosts, posts.Items())
}

func (tx *Tx) Stories(ctx context.Context) (*Stories, error) {
	stories, _, err := getJSON[[]models.AlumniStory](ctx, tx.r, KeyAlumniStories)
	if err != nil {
		return nil, err
	}
	return NewIndex(stories, func(s models.AlumniStory) int64 { return s.ID }), nil
}

func (tx *Tx) PutStories(ctx context.Context, stories *Stories) error {
	return putJSON(ctx, tx.r, KeyAlumniStories, stories.Items())
}

// Session reads the persisted login flags. A missing or unreadable
// currentUser yields a logged-out session.
func (tx *Tx) Session(ctx context.Context) (models.Session, error) {
	flag, err := tx.r.Get(ctx, KeyLoggedIn)
	if err != nil {
		return models.Session{}, err
	}
	if string(flag) != flagTrue {
		return models.Session{}, nil
	}

	user, ok, err := getJSON[models.User](ctx, tx.r, KeyCurrentUser)
	if err != nil || !ok {
		return models.Session{}, err
	}
	return models.Session{LoggedIn: true, User: user}, nil
}

// PutSession persists s, or clears the flags when s is logged out.
func (tx *Tx) PutSession(ctx context.Context, s models.Session) error {
	if !s.LoggedIn {
		return tx.ClearSession(ctx)
	}
	if err := tx.r.Set(ctx, KeyLoggedIn, []byte(flagTrue)); err != nil {
		return err
	}
	return putJSON(ctx, tx.r, KeyCurrentUser, s.User)
}

func (tx *Tx) ClearSession(ctx context.Context) error {
	if err := tx.r.Delete(ctx, KeyLoggedIn); err != nil {
		return err
	}
	return tx.r.Delete(ctx, KeyCurrentUser)
}

// Theme is stored as a bare string. Unknown values read as light.
func (tx *Tx) Theme(ctx context.Context) (models.Theme, error) {
	raw, err := tx.r.Get(ctx, KeyTheme)
	if err != nil {
		return "", err
	}
	theme, err := models.ParseTheme(string(raw))
	if err != nil {
		return models.ThemeLight, nil
	}
	return theme, nil
}

func (tx *Tx) PutTheme(ctx context.Context, theme models.Theme) error {
	return tx.r.Set(ctx, KeyTheme, []byte(theme))
}

func (tx *Tx) HasSignedUp(ctx context.Context) (bool, error) {
	raw, err := tx.r.Get(ctx, KeyHasSignedUp)
	return string(raw) == flagTrue, err
}

func (tx *Tx) MarkSignedUp(ctx context.Context) error {
	return tx.r.Set(ctx, KeyHasSignedUp, []byte(flagTrue))
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

// SessionService manages accounts and the persisted login session.
//
// Operations that act for a user take the caller's *models.Session and
// keep it in step with what they persist.
type SessionService interface {
	Register(ctx context.Context, username, email, password, confirmPassword string) error
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context, s *models.Session) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	UpdateProfile(ctx context.Context, s *models.Session, newUsername, newPassword string) error
	DeleteAccount(ctx context.Context, s *models.Session) error
	Restore(ctx context.Context) (models.Session, error)
	Usernames(ctx context.Context) (map[string]string, error)
}

type sessionService struct {
	base
	docs *docstore.Documents
}

func NewSessionService(docs *docstore.Documents, opts ...Option) SessionService {
	return &sessionService{base: newBase(opts), docs: docs}
}

// Register adds a new account. Username and email are trimmed; passwords
// are taken as typed.
func (s *sessionService) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return fmt.Errorf("%w: please fill out all fields", common.ErrValidation)
	}
	if password != confirmPassword {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		if !users.Append(models.User{Username: username, Email: email, Password: password}) {
			return fmt.Errorf("%w: %s", common.ErrDuplicateEmail, email)
		}
		if err := tx.PutUsers(ctx, users); err != nil {
			return err
		}
		return tx.MarkSignedUp(ctx)
	})
	if err != nil {
		s.log.Warn(ctx, "register failed", "email", email, "error", err)
		return err
	}

	s.log.Info(ctx, "user registered", "email", email)
	return nil
}

// Login checks the exact (email, password) pair and persists the session.
func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	var session models.Session
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users.Items() {
			if u.Email == email && u.Password == password {
				session = models.Session{LoggedIn: true, User: u}
				return tx.PutSession(ctx, session)
			}
		}
		return common.ErrInvalidCredentials
	})
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return models.Session{}, err
	}

	s.log.Info(ctx, "user logged in", "email", email)
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context, session *models.Session) error {
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		return tx.ClearSession(ctx)
	})
	if err != nil {
		return err
	}

	if session != nil {
		s.log.Info(ctx, "user logged out", "email", session.Email())
		*session = models.Session{}
	}
	return nil
}

// ResetPassword overwrites the password of the account with email. Other
// sessions stay valid.
func (s *sessionService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.TrimSpace(email)
	if newPassword == "" {
		return fmt.Errorf("%w: new password is empty", common.ErrValidation)
	}

	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		if !users.Update(email, func(u *models.User) { u.Password = newPassword }) {
			return fmt.Errorf("%w: no account for %s", common.ErrNotFound, email)
		}
		return tx.PutUsers(ctx, users)
	})
	if err != nil {
		s.log.Warn(ctx, "password reset failed", "email", email, "error", err)
		return err
	}

	s.log.Info(ctx, "password reset", "email", email)
	return nil
}

// UpdateProfile sets the username and password of the logged-in user.
// Values are stored as given.
func (s *sessionService) UpdateProfile(ctx context.Context, session *models.Session, newUsername, newPassword string) error {
	if session == nil || !session.LoggedIn {
		return common.ErrNotLoggedIn
	}

	var updated models.User
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		// Legacy data can hold the same email more than once. Login accepts
		// any of them, so all are rewritten.
		n := users.UpdateAll(session.Email(), func(u *models.User) {
			u.Username = newUsername
			u.Password = newPassword
		})
		if n == 0 {
			return fmt.Errorf("%w: no account for %s", common.ErrNotFound, session.Email())
		}
		updated, _ = users.Get(session.Email())
		if err := tx.PutUsers(ctx, users); err != nil {
			return err
		}
		return tx.PutSession(ctx, models.Session{LoggedIn: true, User: updated})
	})
	if err != nil {
		s.log.Warn(ctx, "profile update failed", "email", session.Email(), "error", err)
		return err
	}

	session.User = updated
	s.log.Info(ctx, "profile updated", "email", updated.Email)
	return nil
}

// DeleteAccount removes every account with the session's email and logs
// out. Posts, comments and stories by the user are kept.
func (s *sessionService) DeleteAccount(ctx context.Context, session *models.Session) error {
	if session == nil || !session.LoggedIn {
		return common.ErrNotLoggedIn
	}

	email := session.Email()
	err := s.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		for users.Has(email) {
			users.Remove(email)
		}
		if err := tx.PutUsers(ctx, users); err != nil {
			return err
		}
		return tx.ClearSession(ctx)
	})
	if err != nil {
		s.log.Error(ctx, "account deletion failed", "email", email, "error", err)
		return err
	}

	*session = models.Session{}
	s.log.Info(ctx, "account deleted", "email", email)
	return nil
}

// Restore returns the session persisted by an earlier Login.
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		var err error
		session, err = tx.Session(ctx)
		return err
	})
	if err != nil {
		return models.Session{}, err
	}
	if !session.LoggedIn {
		return models.Session{}, common.ErrNotLoggedIn
	}
	return session, nil
}

// Usernames maps every registered email to its username.
func (s *sessionService) Usernames(ctx context.Context) (map[string]string, error) {
	names := make(map[string]string)
	err := s.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		users, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users.Items() {
			if _, ok := names[u.Email]; !ok {
				names[u.Email] = u.Username
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

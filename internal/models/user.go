package models

// User is a registered account. Email is the unique key; the password is
// kept in plaintext as the app has always done.
type User struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	QuizResult *Stream `json:"quizResult"`
}

// Session is the identity an operation acts for. User is a snapshot, not a
// live reference: whoever changes the stored user must refresh it too.
type Session struct {
	LoggedIn bool
	User     User
}

// Email returns the acting user's email, or "" when logged out.
func (s Session) Email() string {
	if !s.LoggedIn {
		return ""
	}
	return s.User.Email
}

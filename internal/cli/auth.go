package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/nav"
)

func (a *App) register(ctx context.Context, _ []string) error {
	username, err := a.ask("Username")
	if err != nil {
		return err
	}
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}
	confirmPassword, err := a.askPassword("Confirm Password")
	if err != nil {
		return err
	}

	if err := a.sessions.Register(ctx, username, email, password, confirmPassword); err != nil {
		return err
	}
	a.println("Registration successful! Please log in.")
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := a.ask("Enter your email")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Enter your password")
	if err != nil {
		return err
	}

	s, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.session = s
	a.println(a.styles.title.Render(fmt.Sprintf("Welcome back, %s!", s.User.Username)))
	return nil
}

// forgot asks for the new password only after the email is known to exist.
func (a *App) forgot(ctx context.Context, _ []string) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	names, err := a.sessions.Usernames(ctx)
	if err != nil {
		return err
	}
	if _, ok := names[email]; !ok {
		a.println(a.styles.err.Render("Email not found."))
		return nil
	}

	password, err := a.askPassword("Enter your new password")
	if err != nil {
		return err
	}
	err = a.sessions.ResetPassword(ctx, email, password)
	if errors.Is(err, common.ErrValidation) {
		a.println("Password unchanged.")
		return nil
	}
	if err != nil {
		return err
	}
	a.println("Password updated successfully! Please log in with your new password.")
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.sessions.Logout(ctx, &a.session); err != nil {
		return err
	}
	a.nav = nav.Navigator{}
	a.println("Logged out.")
	return nil
}

func (a *App) profile(_ context.Context, args []string) error {
	reveal := false
	if len(args) > 0 {
		if args[0] != "show" {
			return fmt.Errorf("%w: usage: profile [show]", common.ErrValidation)
		}
		reveal = true
	}
	a.println(a.styles.profile(a.session.User, reveal))
	return nil
}

// editProfile keeps a field unchanged when its prompt is left blank.
func (a *App) editProfile(ctx context.Context, _ []string) error {
	username, err := a.ask(fmt.Sprintf("New username (blank keeps %q)", a.session.User.Username))
	if err != nil {
		return err
	}
	password, err := a.askPassword("New password (blank keeps current)")
	if err != nil {
		return err
	}
	if username == "" {
		username = a.session.User.Username
	}
	if password == "" {
		password = a.session.User.Password
	}

	if err := a.sessions.UpdateProfile(ctx, &a.session, username, password); err != nil {
		return err
	}
	a.println("Profile updated successfully!")
	return nil
}

func (a *App) deleteAccount(ctx context.Context, _ []string) error {
	ok, err := confirm(a.reader, "Are you sure you want to permanently delete your account? This cannot be undone.", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.sessions.DeleteAccount(ctx, &a.session); err != nil {
		return err
	}
	a.nav = nav.Navigator{}
	a.println("Your account has been deleted permanently.")
	return nil
}

// setTheme toggles the theme, or sets it when one is named.
func (a *App) setTheme(ctx context.Context, args []string) error {
	var (
		theme models.Theme
		err   error
	)
	if len(args) > 0 {
		theme = models.Theme(args[0])
		err = a.prefs.SetTheme(ctx, theme)
	} else {
		theme, err = a.prefs.ToggleTheme(ctx)
	}
	if err != nil {
		return err
	}
	a.styles = newStyles(a.out, theme)
	a.println(a.styles.accent.Render("Theme: " + string(theme)))
	return nil
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/config"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/logging"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/nav"
	"github.com/Roop3005/path-darshak/internal/repositories/kv"
	"github.com/Roop3005/path-darshak/internal/services"
	"github.com/Roop3005/path-darshak/internal/storage"
)

type App struct {
	store    kv.Store
	sessions services.SessionService
	posts    services.PostService
	quiz     services.QuizService
	alumni   services.AlumniService
	prefs    services.PrefsService
	log      logging.Logger

	session models.Session
	nav     nav.Navigator
	reader  *bufio.Reader
	out     io.Writer
	styles  styles
}

// NewApp opens the configured store and wires the services over it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.StorageOptions(), log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return newApp(store, log, os.Stdin, os.Stdout), nil
}

func newApp(store kv.Store, log logging.Logger, in io.Reader, out io.Writer, opts ...services.Option) *App {
	docs := docstore.New(store)
	opts = append([]services.Option{services.WithLogger(log)}, opts...)

	return &App{
		store:    store,
		sessions: services.NewSessionService(docs, opts...),
		posts:    services.NewPostService(docs, opts...),
		quiz:     services.NewQuizService(docs, opts...),
		alumni:   services.NewAlumniService(docs, opts...),
		prefs:    services.NewPrefsService(docs, opts...),
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		styles:   newStyles(out, models.ThemeLight),
	}
}

// Run restores the previous session and theme, then serves commands until
// the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)
	a.println("Welcome to PathPradarshak (type 'help' for commands)")
	switch {
	case a.session.LoggedIn:
		a.println(a.styles.title.Render(fmt.Sprintf("Welcome back, %s!", a.session.User.Username)))
	case a.signedUp(ctx):
		a.println("Type 'login' to continue.")
	default:
		a.println("New here? Type 'register' to get started.")
	}
	runREPL(ctx, a, a.log, a.status, a.reader)
}

func (a *App) signedUp(ctx context.Context) bool {
	ok, err := a.prefs.HasSignedUp(ctx)
	if err != nil {
		a.log.Warn(ctx, "load signup flag", "error", err)
	}
	return ok
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) restore(ctx context.Context) {
	if theme, err := a.prefs.Theme(ctx); err != nil {
		a.log.Warn(ctx, "load theme", "error", err)
	} else {
		a.styles = newStyles(a.out, theme)
	}

	s, err := a.sessions.Restore(ctx)
	switch {
	case err == nil:
		a.session = s
	case errors.Is(err, common.ErrNotLoggedIn):
	default:
		a.log.Warn(ctx, "restore session", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn
}

func (a *App) status() string {
	var parts []string
	if a.session.LoggedIn {
		parts = append(parts, a.session.User.Username)
	}
	if active := a.nav.Active(); active != nav.Home {
		parts = append(parts, string(active))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, " ") + ")"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword(prompt string) (string, error) {
	return GetPassword(a.reader, prompt, a.out)
}

// describe turns a command error into the message shown to the user.
func (a *App) describe(err error) string {
	msg := func(sentinel error) string {
		return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	}
	var text string
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		text = "Email already registered."
	case errors.Is(err, common.ErrInvalidCredentials):
		text = "Invalid email or password. Please try again."
	case errors.Is(err, common.ErrNotLoggedIn):
		text = "Please log in first."
	case errors.Is(err, common.ErrPermission):
		text = "You can only change your own content."
	case errors.Is(err, common.ErrValidation):
		text = msg(common.ErrValidation)
	case errors.Is(err, common.ErrIncomplete):
		text = msg(common.ErrIncomplete)
	case errors.Is(err, common.ErrNotFound):
		text = "Not found: " + msg(common.ErrNotFound)
	case errors.Is(err, io.EOF):
		text = "Input closed."
	default:
		text = "Error: " + err.Error()
	}
	return a.styles.err.Render(text)
}

func (a *App) commands() []command {
	return []command{
		{name: "register", help: "create an account", guestOnly: true, run: a.register},
		{name: "login", help: "log in", guestOnly: true, run: a.login},
		{name: "forgot", help: "reset a forgotten password", guestOnly: true, run: a.forgot},
		{name: "theme", usage: "[light|dark]", help: "switch between light and dark", run: a.setTheme},

		{name: "logout", help: "log out", needsLogin: true, run: a.logout},
		{name: "profile", usage: "[show]", help: "show your profile, with the password if asked", needsLogin: true, run: a.profile},
		{name: "edit-profile", help: "change username and password", needsLogin: true, run: a.editProfile},
		{name: "delete-account", help: "delete your account", needsLogin: true, run: a.deleteAccount},

		{name: "quiz", help: "take the career stream quiz", needsLogin: true, run: a.takeQuiz},
		{name: "roadmap", usage: "[stream]", help: "next steps for a stream", needsLogin: true, run: a.roadmap},

		{name: "feed", usage: "[stream] [newest|popular] [others]", help: "list posts", needsLogin: true, run: a.feed},
		{name: "mine", help: "list your posts", needsLogin: true, run: a.mine},
		{name: "search", usage: "[text]", help: "search posts", needsLogin: true, run: a.search},
		{name: "post", help: "write a post", needsLogin: true, run: a.createPost},
		{name: "like", usage: "<id>", help: "like or unlike a post", needsLogin: true, run: a.like},
		{name: "edit-post", usage: "<id>", help: "edit your post", needsLogin: true, run: a.editPost},
		{name: "delete-post", usage: "<id>", help: "delete your post", needsLogin: true, run: a.deletePost},
		{name: "comment", usage: "<id> [text]", help: "comment on a post", needsLogin: true, run: a.comment},
		{name: "edit-comment", usage: "<id> <n>", help: "edit your comment", needsLogin: true, run: a.editComment},
		{name: "delete-comment", usage: "<id> <n>", help: "delete your comment", needsLogin: true, run: a.deleteComment},

		{name: "stories", help: "read alumni stories", needsLogin: true, run: a.stories},
		{name: "share-story", help: "share your own story", needsLogin: true, run: a.shareStory},
		{name: "edit-story", usage: "<id>", help: "edit your story", needsLogin: true, run: a.editStory},
		{name: "delete-story", usage: "<id>", help: "delete your story", needsLogin: true, run: a.deleteStory},

		{name: "go", usage: "<section>", help: "open a section, again to close it", needsLogin: true, run: a.goTo},
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Roop3005/path-darshak/internal/models"
)

const (
	deletedAccount = "deleted account"
	anonymous      = "anonymous"
	timeLayout     = "02 Jan 2006 15:04"
)

type styles struct {
	title  lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

type palette struct {
	title, accent, muted, err string
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {title: "#1D3557", accent: "#2A9D8F", muted: "#6C757D", err: "#C1121F"},
	models.ThemeDark:  {title: "#F1FAEE", accent: "#80ED99", muted: "#ADB5BD", err: "#FF6B6B"},
}

// newStyles builds the styles for theme. Colours are dropped when w is not
// a terminal.
func newStyles(w io.Writer, theme models.Theme) styles {
	r := lipgloss.NewRenderer(w)
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeLight]
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.title)),
		accent: r.NewStyle().Foreground(lipgloss.Color(p.accent)),
		muted:  r.NewStyle().Foreground(lipgloss.Color(p.muted)),
		err:    r.NewStyle().Foreground(lipgloss.Color(p.err)),
	}
}

// authorName resolves an author email for display.
func authorName(email string, names map[string]string) string {
	if email == "" {
		return anonymous
	}
	if name, ok := names[email]; ok {
		return name
	}
	return deletedAccount
}

func streamLabel(s models.Stream) string {
	if e := s.Emoji(); e != "" {
		return string(s) + " " + e
	}
	return string(s)
}

func (st styles) post(p models.Post, me string, names map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", st.accent.Render(fmt.Sprintf("#%d", p.ID)), st.title.Render(p.Title))
	if p.Content != "" {
		fmt.Fprintln(&b, p.Content)
	}

	heart := "♡"
	if p.Likes.Has(me) {
		heart = "♥"
	}
	meta := fmt.Sprintf("Stream: %s · by %s · %s · %s %d",
		streamLabel(p.Stream), authorName(p.Author, names), p.Timestamp.Local().Format(timeLayout), heart, len(p.Likes))
	fmt.Fprintln(&b, st.muted.Render(meta))

	for i, c := range p.Comments {
		fmt.Fprintf(&b, "  💬 %d. %s", i+1, c.Text)
		if c.IsLegacy() {
			fmt.Fprintln(&b)
			continue
		}
		fmt.Fprintln(&b, st.muted.Render(fmt.Sprintf(" (%s, %s)", authorName(c.Author, names), c.Timestamp.Local().Format(timeLayout))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (st styles) feed(posts []models.Post, me string, names map[string]string) string {
	if len(posts) == 0 {
		return st.muted.Render("No posts yet.")
	}
	cards := make([]string, len(posts))
	for i, p := range posts {
		cards[i] = st.post(p, me, names)
	}
	return strings.Join(cards, "\n\n")
}

func (st styles) story(s models.AlumniStory, names map[string]string) string {
	var b strings.Builder

	who := s.AlumniName
	if who == "" {
		who = authorName(s.Author, names)
	}
	fmt.Fprintf(&b, "%s %s\n", st.accent.Render(fmt.Sprintf("#%d", s.ID)), st.title.Render(who+" · "+streamLabel(s.Stream)))
	for _, f := range []struct{ label, text string }{
		{"Why this stream", s.WhyStream},
		{"Any regrets", s.Regret},
		{"Now", s.CurrentStatus},
	} {
		if f.text != "" {
			fmt.Fprintf(&b, "%s %s\n", st.muted.Render(f.label+":"), f.text)
		}
	}
	fmt.Fprint(&b, st.muted.Render("Shared "+time.UnixMilli(s.ID).Local().Format(timeLayout)))
	return b.String()
}

// profile masks the password unless reveal is set.
func (st styles) profile(u models.User, reveal bool) string {
	password := "••••••••"
	if reveal {
		password = u.Password
	}
	result := "not taken yet"
	if u.QuizResult != nil {
		result = streamLabel(*u.QuizResult)
	}
	return strings.Join([]string{
		st.title.Render("Profile"),
		st.muted.Render("Username: ") + u.Username,
		st.muted.Render("Email:    ") + u.Email,
		st.muted.Render("Password: ") + password,
		st.muted.Render("Stream:   ") + result,
	}, "\n")
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/nav"
	"github.com/Roop3005/path-darshak/internal/services"
)

func sectionNames() string {
	names := make([]string, len(nav.Sections))
	for i, s := range nav.Sections {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// goTo switches section and renders every panel that becomes visible.
func (a *App) goTo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: go <section>, one of %s", common.ErrValidation, sectionNames())
	}
	section, err := nav.ParseSection(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	if a.nav.Select(section) == nav.Home {
		a.println(a.styles.muted.Render("Home"))
		return nil
	}

	for _, panel := range a.nav.Visible() {
		if panel == nav.Posts {
			continue
		}
		if err := a.showPanel(ctx, panel); err != nil {
			return err
		}
	}
	if a.nav.ShowsFeed() {
		return a.showPosts(ctx, services.Filter{}, services.SortNewest, nil)
	}
	return nil
}

func (a *App) showPanel(ctx context.Context, panel nav.Section) error {
	switch panel {
	case nav.Profile:
		return a.profile(ctx, nil)
	case nav.Roadmaps:
		return a.roadmap(ctx, nil)
	case nav.AlumniExperience:
		return a.stories(ctx, nil)
	case nav.Quiz:
		a.println("Type 'quiz' to start the career quiz.")
	case nav.CreatePost:
		a.println("Type 'post' to write a new post.")
	case nav.Search:
		a.println("Type 'search <text>' to find posts.")
	case nav.AlumniStart, nav.AlumniStreamQ, nav.AlumniDetailsQ:
		a.println("Type 'share-story' to tell your story.")
	}
	return nil
}

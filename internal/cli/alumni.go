package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
	"github.com/Roop3005/path-darshak/internal/services"
)

func (a *App) stories(ctx context.Context, _ []string) error {
	list, err := a.alumni.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println(a.styles.muted.Render("No stories yet. Be the first: share-story"))
		return nil
	}

	names, err := a.sessions.Usernames(ctx)
	if err != nil {
		return err
	}
	for i, s := range list {
		if i > 0 {
			a.println()
		}
		a.println(a.styles.story(s, names))
	}
	return nil
}

func (a *App) shareStory(ctx context.Context, _ []string) error {
	var in services.StoryInput
	var err error

	if in.Stream, err = a.askStream("Which stream did you choose", models.StreamScience); err != nil {
		return err
	}
	if in.WhyStream, err = a.ask("Why did you choose it?"); err != nil {
		return err
	}
	if in.Regret, err = a.ask("Any regrets?"); err != nil {
		return err
	}
	if in.CurrentStatus, err = a.ask("What are you doing now?"); err != nil {
		return err
	}
	if in.AlumniName, err = a.ask("Your name (optional)"); err != nil {
		return err
	}

	s, err := a.alumni.Share(ctx, in, a.session.Email())
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Story #%d shared. Thank you!", s.ID))
	return nil
}

func (a *App) editStory(ctx context.Context, args []string) error {
	id, err := parseID(args, "story")
	if err != nil {
		return err
	}

	list, err := a.alumni.List(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(list, func(s models.AlumniStory) bool { return s.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: story %d", common.ErrNotFound, id)
	}
	current := list[i]
	if !current.OwnedBy(a.session.Email()) {
		return fmt.Errorf("%w: story %d", common.ErrPermission, id)
	}

	var patch models.StoryPatch
	stream, err := a.optional("Stream", string(current.Stream))
	if err != nil {
		return err
	}
	if stream != nil {
		s, err := models.ParseStream(*stream)
		if err != nil {
			s = models.Stream(*stream)
		}
		patch.Stream = &s
	}
	if patch.WhyStream, err = a.optional("Why this stream", current.WhyStream); err != nil {
		return err
	}
	if patch.Regret, err = a.optional("Any regrets", current.Regret); err != nil {
		return err
	}
	if patch.CurrentStatus, err = a.optional("Now", current.CurrentStatus); err != nil {
		return err
	}
	if patch.AlumniName, err = a.optional("Name", current.AlumniName); err != nil {
		return err
	}

	if err := a.alumni.Edit(ctx, id, a.session.Email(), patch); err != nil {
		return err
	}
	a.println("Story updated.")
	return nil
}

func (a *App) deleteStory(ctx context.Context, args []string) error {
	id, err := parseID(args, "story")
	if err != nil {
		return err
	}
	if err := a.alumni.Delete(ctx, id, a.session.Email()); err != nil {
		return err
	}
	a.println("Story deleted.")
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

// StoryInput is what an alumnus fills in when sharing a story.
type StoryInput struct {
	Stream        models.Stream
	WhyStream     string
	Regret        string
	CurrentStatus string
	AlumniName    string
}

type AlumniService interface {
	Share(ctx context.Context, in StoryInput, authorEmail string) (models.AlumniStory, error)
	List(ctx context.Context) ([]models.AlumniStory, error)
	Edit(ctx context.Context, id int64, actorEmail string, patch models.StoryPatch) error
	Delete(ctx context.Context, id int64, actorEmail string) error
}

type alumniService struct {
	base
	docs *docstore.Documents
}

func NewAlumniService(docs *docstore.Documents, opts ...Option) AlumniService {
	return &alumniService{base: newBase(opts), docs: docs}
}

func (a *alumniService) Share(ctx context.Context, in StoryInput, authorEmail string) (models.AlumniStory, error) {
	if !in.Stream.Valid() {
		return models.AlumniStory{}, fmt.Errorf("%w: unknown stream %q", common.ErrValidation, in.Stream)
	}
	if strings.TrimSpace(in.WhyStream+in.Regret+in.CurrentStatus) == "" {
		return models.AlumniStory{}, fmt.Errorf("%w: the story is empty", common.ErrValidation)
	}

	var story models.AlumniStory
	err := a.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		stories, err := tx.Stories(ctx)
		if err != nil {
			return err
		}

		var maxID int64
		for _, s := range stories.Items() {
			maxID = max(maxID, s.ID)
		}
		story = models.AlumniStory{
			ID:            nextID(a.now(), maxID),
			Author:        authorEmail,
			Stream:        in.Stream,
			WhyStream:     in.WhyStream,
			Regret:        in.Regret,
			CurrentStatus: in.CurrentStatus,
			AlumniName:    strings.TrimSpace(in.AlumniName),
		}
		stories.Append(story)
		return tx.PutStories(ctx, stories)
	})
	if err != nil {
		a.log.Error(ctx, "share story failed", "author", authorEmail, "error", err)
		return models.AlumniStory{}, err
	}

	a.log.Info(ctx, "story shared", "id", story.ID, "author", authorEmail)
	return story, nil
}

// List returns every story in the order it was shared.
func (a *alumniService) List(ctx context.Context) ([]models.AlumniStory, error) {
	var out []models.AlumniStory
	err := a.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		stories, err := tx.Stories(ctx)
		if err != nil {
			return err
		}
		out = stories.Items()
		return nil
	})
	return out, err
}

func (a *alumniService) Edit(ctx context.Context, id int64, actorEmail string, patch models.StoryPatch) error {
	if patch.Stream != nil && !patch.Stream.Valid() {
		return fmt.Errorf("%w: unknown stream %q", common.ErrValidation, *patch.Stream)
	}
	return a.mutateOwned(ctx, "edit story", id, actorEmail, func(stories *docstore.Stories) {
		stories.Update(id, func(s *models.AlumniStory) { patch.Apply(s) })
	})
}

func (a *alumniService) Delete(ctx context.Context, id int64, actorEmail string) error {
	return a.mutateOwned(ctx, "delete story", id, actorEmail, func(stories *docstore.Stories) {
		stories.Remove(id)
	})
}

func (a *alumniService) mutateOwned(ctx context.Context, op string, id int64, actorEmail string, fn func(stories *docstore.Stories)) error {
	err := a.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		stories, err := tx.Stories(ctx)
		if err != nil {
			return err
		}
		s, ok := stories.Get(id)
		if !ok {
			return fmt.Errorf("%w: story %d", common.ErrNotFound, id)
		}
		if !s.OwnedBy(actorEmail) {
			return fmt.Errorf("%w: story %d is not yours", common.ErrPermission, id)
		}
		fn(stories)
		return tx.PutStories(ctx, stories)
	})
	if err != nil {
		a.log.Warn(ctx, op+" failed", "id", id, "actor", actorEmail, "error", err)
		return err
	}

	a.log.Info(ctx, op, "id", id, "actor", actorEmail)
	return nil
}

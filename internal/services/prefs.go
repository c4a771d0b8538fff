package services

import (
	"context"
	"fmt"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

// PrefsService holds device-level preferences that outlive sessions.
type PrefsService interface {
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
	ToggleTheme(ctx context.Context) (models.Theme, error)
	HasSignedUp(ctx context.Context) (bool, error)
}

type prefsService struct {
	base
	docs *docstore.Documents
}

func NewPrefsService(docs *docstore.Documents, opts ...Option) PrefsService {
	return &prefsService{base: newBase(opts), docs: docs}
}

func (p *prefsService) Theme(ctx context.Context) (models.Theme, error) {
	var theme models.Theme
	err := p.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		var err error
		theme, err = tx.Theme(ctx)
		return err
	})
	return theme, err
}

func (p *prefsService) SetTheme(ctx context.Context, theme models.Theme) error {
	if _, err := models.ParseTheme(string(theme)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return p.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		return tx.PutTheme(ctx, theme)
	})
}

func (p *prefsService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	var theme models.Theme
	err := p.docs.Update(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		current, err := tx.Theme(ctx)
		if err != nil {
			return err
		}
		theme = current.Toggle()
		return tx.PutTheme(ctx, theme)
	})
	if err != nil {
		return "", err
	}

	p.log.Debug(ctx, "theme switched", "theme", theme)
	return theme, nil
}

func (p *prefsService) HasSignedUp(ctx context.Context) (bool, error) {
	var signed bool
	err := p.docs.View(ctx, func(ctx context.Context, tx *docstore.Tx) error {
		var err error
		signed, err = tx.HasSignedUp(ctx)
		return err
	})
	return signed, err
}

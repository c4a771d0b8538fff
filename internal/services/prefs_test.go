package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/models"
)

func TestPrefs_Theme(t *testing.T) {
	docs, _ := newDocs(t)
	ctx := context.Background()
	svc := NewPrefsService(docs)

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)

	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)

	require.NoError(t, svc.SetTheme(ctx, models.ThemeLight))
	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	require.ErrorIs(t, svc.SetTheme(ctx, "sepia"), common.ErrValidation)

	signed, err := svc.HasSignedUp(ctx)
	require.NoError(t, err)
	assert.False(t, signed)
}

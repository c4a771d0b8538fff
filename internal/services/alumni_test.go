package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roop3005/path-darshak/internal/common"
	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/models"
)

func TestAlumni_ShareListEditDelete(t *testing.T) {
	docs, store := newDocs(t)
	ctx := context.Background()
	svc := NewAlumniService(docs, WithClock(frozenClock()))

	_, err := svc.Share(ctx, StoryInput{Stream: "Sports", WhyStream: "x"}, "a@x")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = svc.Share(ctx, StoryInput{Stream: models.StreamArts, Regret: "  "}, "a@x")
	require.ErrorIs(t, err, common.ErrValidation)

	first, err := svc.Share(ctx, StoryInput{
		Stream:        models.StreamCommerce,
		WhyStream:     "family business",
		Regret:        "none",
		CurrentStatus: "CA final",
	}, "a@x")
	require.NoError(t, err)
	second, err := svc.Share(ctx, StoryInput{Stream: models.StreamArts, WhyStream: "loved history", AlumniName: " Ravi "}, "b@x")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "Ravi", second.AlumniName)

	raw, err := store.Get(ctx, docstore.KeyAlumniStories)
	require.NoError(t, err)
	var docsOnDisk []map[string]any
	require.NoError(t, json.Unmarshal(raw, &docsOnDisk))
	require.Len(t, docsOnDisk, 2)
	assert.NotContains(t, docsOnDisk[0], "alumniName")
	assert.Equal(t, "Ravi", docsOnDisk[1]["alumniName"])

	require.ErrorIs(t, svc.Edit(ctx, first.ID, "b@x", models.StoryPatch{Regret: ptr("x")}), common.ErrPermission)
	require.ErrorIs(t, svc.Edit(ctx, 1, "a@x", models.StoryPatch{}), common.ErrNotFound)
	bad := models.Stream("Sports")
	require.ErrorIs(t, svc.Edit(ctx, first.ID, "a@x", models.StoryPatch{Stream: &bad}), common.ErrValidation)

	require.NoError(t, svc.Edit(ctx, first.ID, "a@x", models.StoryPatch{
		Stream: ptr(models.StreamScience),
		Regret: ptr(""),
	}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, models.StreamScience, list[0].Stream)
	assert.Equal(t, "", list[0].Regret)
	assert.Equal(t, "family business", list[0].WhyStream)

	require.ErrorIs(t, svc.Delete(ctx, second.ID, "a@x"), common.ErrPermission)
	require.NoError(t, svc.Delete(ctx, second.ID, "b@x"))
	require.ErrorIs(t, svc.Delete(ctx, second.ID, "b@x"), common.ErrNotFound)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_StartsAtHome(t *testing.T) {
	var n Navigator
	assert.Equal(t, Home, n.Active())
	assert.Empty(t, n.Visible())
	assert.False(t, n.ShowsFeed())
}

func TestNavigator_SelectTogglesBackHome(t *testing.T) {
	var n Navigator

	assert.Equal(t, Profile, n.Select(Profile))
	assert.Equal(t, []Section{Profile}, n.Visible())

	assert.Equal(t, Quiz, n.Select(Quiz))
	assert.Equal(t, []Section{Quiz}, n.Visible())

	assert.Equal(t, Home, n.Select(Quiz))
	assert.Empty(t, n.Visible())

	assert.Equal(t, Home, n.Select(Home))
}

func TestNavigator_FeedPanels(t *testing.T) {
	tests := []struct {
		section Section
		visible []Section
		feed    bool
	}{
		{Posts, []Section{Posts}, true},
		{CreatePost, []Section{CreatePost, Posts}, true},
		{Search, []Section{Search, Posts}, true},
		{Roadmaps, []Section{Roadmaps}, false},
		{AlumniStreamQ, []Section{AlumniStreamQ}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			var n Navigator
			n.Select(tt.section)
			assert.Equal(t, tt.visible, n.Visible())
			assert.Equal(t, tt.feed, n.ShowsFeed())
		})
	}
}

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, err := ParseSection(" " + string(s) + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseSection("Create-Post")
	require.NoError(t, err)
	assert.Equal(t, CreatePost, got)

	_, err = ParseSection("settings")
	assert.Error(t, err)
}

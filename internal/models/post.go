package models

import (
	"encoding/json"
	"slices"
	"time"
)

// Post is a feed entry. ID is the creation time in Unix milliseconds and
// doubles as a recency key. Author is empty for posts written before posts
// had owners.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Stream    Stream    `json:"stream"`
	Author    string    `json:"author,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Likes     LikeSet   `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// OwnedBy reports whether email may edit or delete p. Posts without an
// author belong to nobody.
func (p Post) OwnedBy(email string) bool {
	return p.Author != "" && p.Author == email
}

// Matches reports whether the title or content contains query, ignoring case.
func (p Post) Matches(query string) bool {
	return containsFold(p.Title, query) || containsFold(p.Content, query)
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	p.Likes = slices.Clone(p.Likes)
	p.Comments = slices.Clone(p.Comments)
	return p
}

// UnmarshalJSON fills in what older documents lack: a timestamp derived
// from the id, and empty likes and comments.
func (p *Post) UnmarshalJSON(data []byte) error {
	type raw Post
	var r struct {
		raw
		Timestamp *time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	*p = Post(r.raw)
	if r.Timestamp != nil {
		p.Timestamp = *r.Timestamp
	} else {
		p.Timestamp = time.UnixMilli(p.ID).UTC()
	}
	if p.Likes == nil {
		p.Likes = LikeSet{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	return nil
}

// LikeSet holds the emails of users who liked a post, each at most once,
// in the order they liked it.
type LikeSet []string

// Has reports whether email is in the set.
func (l LikeSet) Has(email string) bool {
	return slices.Contains(l, email)
}

// Toggle removes email if present and adds it otherwise. It returns the new
// set and whether email is now included.
func (l LikeSet) Toggle(email string) (LikeSet, bool) {
	if i := slices.Index(l, email); i >= 0 {
		return slices.Delete(slices.Clone(l), i, i+1), false
	}
	return append(slices.Clone(l), email), true
}

// UnmarshalJSON drops duplicate emails left by older writers.
func (l *LikeSet) UnmarshalJSON(data []byte) error {
	var emails []string
	if err := json.Unmarshal(data, &emails); err != nil {
		return err
	}
	out := make(LikeSet, 0, len(emails))
	for _, e := range emails {
		if !out.Has(e) {
			out = append(out, e)
		}
	}
	*l = out
	return nil
}

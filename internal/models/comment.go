package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Comment is either a legacy comment, stored as a bare string with no
// owner, or an authored comment with author and timestamp. Each kind is
// written back in the shape it was read.
type Comment struct {
	Text      string
	Author    string
	Timestamp time.Time

	legacy bool
}

// NewComment returns an authored comment.
func NewComment(text, author string, at time.Time) Comment {
	return Comment{Text: text, Author: author, Timestamp: at}
}

// LegacyComment returns an owner-less comment.
func LegacyComment(text string) Comment {
	return Comment{Text: text, legacy: true}
}

// IsLegacy reports whether c predates comment ownership.
func (c Comment) IsLegacy() bool {
	return c.legacy
}

// OwnedBy reports whether email may edit or delete c. Legacy comments
// belong to nobody.
func (c Comment) OwnedBy(email string) bool {
	return !c.legacy && c.Author != "" && c.Author == email
}

type authoredComment struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

func (c Comment) MarshalJSON() ([]byte, error) {
	if c.legacy {
		return json.Marshal(c.Text)
	}
	return json.Marshal(authoredComment{Text: c.Text, Author: c.Author, Timestamp: c.Timestamp})
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty comment")
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*c = LegacyComment(text)
		return nil
	}

	var a authoredComment
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("comment: %w", err)
	}
	*c = NewComment(a.Text, a.Author, a.Timestamp)
	return nil
}

// Package nav tracks which section of the client is on screen. Exactly
// one section is active; Home means every panel is hidden.
package nav

import (
	"fmt"
	"strings"
)

type Section string

const (
	Home             Section = "home"
	Profile          Section = "profile"
	Quiz             Section = "quiz"
	Roadmaps         Section = "roadmaps"
	Posts            Section = "posts"
	CreatePost       Section = "create-post"
	Search           Section = "search"
	AlumniExperience Section = "alumni"
	AlumniStart      Section = "alumni-start"
	AlumniStreamQ    Section = "alumni-stream"
	AlumniDetailsQ   Section = "alumni-details"
)

var Sections = []Section{
	Home, Profile, Quiz, Roadmaps, Posts, CreatePost, Search,
	AlumniExperience, AlumniStart, AlumniStreamQ, AlumniDetailsQ,
}

// panels lists what each section shows besides itself.
var panels = map[Section][]Section{
	CreatePost: {Posts},
	Search:     {Posts},
}

func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// Navigator is the zero-value-ready navigation state, starting at Home.
type Navigator struct {
	active Section
}

func (n *Navigator) Active() Section {
	if n.active == "" {
		return Home
	}
	return n.active
}

// Select activates s, or returns to Home when s is already active.
func (n *Navigator) Select(s Section) Section {
	if s == n.Active() {
		n.active = Home
	} else {
		n.active = s
	}
	return n.active
}

// Visible lists the panels on screen. It is empty at Home.
func (n *Navigator) Visible() []Section {
	active := n.Active()
	if active == Home {
		return nil
	}
	return append([]Section{active}, panels[active]...)
}

// ShowsFeed reports whether the post feed is on screen.
func (n *Navigator) ShowsFeed() bool {
	for _, s := range n.Visible() {
		if s == Posts {
			return true
		}
	}
	return false
}

package models

// AlumniStory is a former student's account of their stream choice.
type AlumniStory struct {
	ID            int64  `json:"id"`
	Author        string `json:"author"`
	Stream        Stream `json:"stream"`
	WhyStream     string `json:"whyStream"`
	Regret        string `json:"regret"`
	CurrentStatus string `json:"currentStatus"`
	AlumniName    string `json:"alumniName,omitempty"`
}

// OwnedBy reports whether email may edit or delete s.
func (s AlumniStory) OwnedBy(email string) bool {
	return s.Author != "" && s.Author == email
}

// StoryPatch lists story fields to overwrite; nil fields are left alone.
type StoryPatch struct {
	Stream        *Stream
	WhyStream     *string
	Regret        *string
	CurrentStatus *string
	AlumniName    *string
}

// Apply overwrites the fields of s that p sets.
func (p StoryPatch) Apply(s *AlumniStory) {
	if p.Stream != nil {
		s.Stream = *p.Stream
	}
	if p.WhyStream != nil {
		s.WhyStream = *p.WhyStream
	}
	if p.Regret != nil {
		s.Regret = *p.Regret
	}
	if p.CurrentStatus != nil {
		s.CurrentStatus = *p.CurrentStatus
	}
	if p.AlumniName != nil {
		s.AlumniName = *p.AlumniName
	}
}

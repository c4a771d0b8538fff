package quiz

import "github.com/Roop3005/path-darshak/internal/models"

var roadmaps = map[models.Stream][]string{
	models.StreamScience: {
		"Class 11-12: Physics, Chemistry and Mathematics or Biology",
		"Entrance exams such as JEE, NEET or state CETs",
		"Degree in engineering, medicine or pure sciences",
		"Careers: engineer, doctor, researcher, data scientist",
	},
	models.StreamCommerce: {
		"Class 11-12: Accountancy, Business Studies and Economics",
		"Courses such as B.Com, BBA, CA Foundation or CS",
		"Internships in finance, audit or marketing",
		"Careers: chartered accountant, banker, analyst, entrepreneur",
	},
	models.StreamArts: {
		"Class 11-12: History, Political Science, Psychology or Fine Arts",
		"Degrees such as BA, BFA, mass communication or law (CLAT)",
		"Build a portfolio through writing, design or volunteering",
		"Careers: lawyer, journalist, designer, civil servant, teacher",
	},
}

// Roadmap lists the next steps for a stream, or nil for an unknown one.
func Roadmap(s models.Stream) []string {
	return append([]string(nil), roadmaps[s]...)
}

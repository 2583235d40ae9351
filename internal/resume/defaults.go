package resume

const defaultSkillItem = "New Skill"

// NewExperience returns the placeholder entry appended by the editor.
func NewExperience() Experience {
	return Experience{
		Title:           "Job Title",
		CompanyName:     "Company Name",
		Date:            "Start - End Date",
		CompanyLocation: "Location",
		Accomplishment:  "• Key accomplishment\n• Another achievement",
	}
}

// NewEducation returns the placeholder entry appended by the editor.
func NewEducation() Education {
	return Education{
		Degree:      "Degree/Certificate",
		Institution: "Institution Name",
		Duration:    "Start - End Date",
		Location:    "Location",
		Description: "Add your educational achievements, relevant coursework, or thesis details here.",
	}
}

// NewSkillGroup returns the placeholder group appended by the editor.
func NewSkillGroup() SkillGroup {
	return SkillGroup{
		Category: "New Category",
		Items:    []string{defaultSkillItem},
	}
}

// NewLanguage returns the placeholder language appended by the editor.
func NewLanguage() Language {
	return Language{
		Name:  "Language",
		Level: LevelIntermediate,
		Dots:  3,
	}
}

// Package resume defines the resume document model and the editing
// operations on it. The document is the sole persisted entity: a set of
// free-text profile fields plus ordered lists of experience, education,
// skills and languages. Every operation is copy-on-write; callers never
// observe a partially mutated document.
package resume

// Document is the canonical in-memory shape of a resume. All fields are
// optional; the zero value is a valid (empty) resume. JSON field names
// match the wire format the web client persists.
type Document struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
	Summary  string `json:"summary"`

	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []SkillGroup `json:"skills"`
	Languages  []Language   `json:"languages"`
}

// Experience is one work history entry. Entries have no identity beyond
// their position in the list; order is display order.
type Experience struct {
	Title           string `json:"title"`
	CompanyName     string `json:"companyName"`
	Date            string `json:"date"`
	CompanyLocation string `json:"companyLocation"`
	Accomplishment  string `json:"accomplishment"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// SkillGroup is a labeled group of skill items (a two-level list).
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Language is a spoken language with a proficiency label and a dot count.
// Dots range over [0,5]; see ProficiencyLevel for the label mapping.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Dots  int    `json:"dots"`
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d Document) Clone() Document {
	out := d

	if d.Experience != nil {
		out.Experience = make([]Experience, len(d.Experience))
		copy(out.Experience, d.Experience)
	}
	if d.Education != nil {
		out.Education = make([]Education, len(d.Education))
		copy(out.Education, d.Education)
	}
	if d.Skills != nil {
		out.Skills = make([]SkillGroup, len(d.Skills))
		for i, g := range d.Skills {
			out.Skills[i] = g.clone()
		}
	}
	if d.Languages != nil {
		out.Languages = make([]Language, len(d.Languages))
		copy(out.Languages, d.Languages)
	}

	return out
}

func (g SkillGroup) clone() SkillGroup {
	out := g
	if g.Items != nil {
		out.Items = make([]string, len(g.Items))
		copy(out.Items, g.Items)
	}
	return out
}

// Normalize returns a copy with every nil list replaced by an empty slice
// and every language's dot count clamped to [0,5]. Documents loaded from
// storage pass through here so consuming code never sees null lists.
func (d Document) Normalize() Document {
	out := d.Clone()

	if out.Experience == nil {
		out.Experience = []Experience{}
	}
	if out.Education == nil {
		out.Education = []Education{}
	}
	if out.Skills == nil {
		out.Skills = []SkillGroup{}
	}
	for i := range out.Skills {
		if out.Skills[i].Items == nil {
			out.Skills[i].Items = []string{}
		}
	}
	if out.Languages == nil {
		out.Languages = []Language{}
	}
	for i := range out.Languages {
		out.Languages[i].Dots = ClampDots(out.Languages[i].Dots)
	}

	return out
}

// IsZero reports whether the document carries no content at all.
func (d Document) IsZero() bool {
	return d.Name == "" && d.Role == "" && d.Phone == "" && d.Email == "" &&
		d.LinkedIn == "" && d.Location == "" && d.Summary == "" &&
		len(d.Experience) == 0 && len(d.Education) == 0 &&
		len(d.Skills) == 0 && len(d.Languages) == 0
}

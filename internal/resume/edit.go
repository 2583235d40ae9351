package resume

import (
	"errors"
	"fmt"
)

// The editing surface is a pure reducer: every user interaction is an
// explicit Action applied to the current document, producing a new value.
// The input document is never mutated, so an action that fails leaves the
// caller holding the document it started with.

// Editing errors.
var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown field")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Section identifies one of the document's list sections.
type Section string

// List sections of the document.
const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionLanguages  Section = "languages"
)

// Action is one editing operation. Actions are applied with Apply and
// never mutate the document they are given.
type Action interface {
	apply(Document) (Document, error)
}

// Apply runs an action against a document and returns the updated copy.
// On error the returned document is the (unchanged) input.
func Apply(d Document, a Action) (Document, error) {
	if a == nil {
		return d, errors.New("nil action")
	}
	out, err := a.apply(d.Clone())
	if err != nil {
		return d, err
	}
	return out, nil
}

// CommitField commits an edited scalar profile field. There is no draft
// state: the commit takes effect immediately.
type CommitField struct {
	Field string
	Value string
}

func (a CommitField) apply(d Document) (Document, error) {
	switch a.Field {
	case "name":
		d.Name = a.Value
	case "role":
		d.Role = a.Value
	case "phone":
		d.Phone = a.Value
	case "email":
		d.Email = a.Value
	case "linkedin":
		d.LinkedIn = a.Value
	case "location":
		d.Location = a.Value
	case "summary":
		d.Summary = a.Value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
	}
	return d, nil
}

// AppendItem appends the default placeholder item to a list section.
type AppendItem struct {
	Section Section
}

func (a AppendItem) apply(d Document) (Document, error) {
	switch a.Section {
	case SectionExperience:
		d.Experience = append(d.Experience, NewExperience())
	case SectionEducation:
		d.Education = append(d.Education, NewEducation())
	case SectionSkills:
		d.Skills = append(d.Skills, NewSkillGroup())
	case SectionLanguages:
		d.Languages = append(d.Languages, NewLanguage())
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, a.Section)
	}
	return d, nil
}

// RemoveItem deletes the item at Index from a list section.
type RemoveItem struct {
	Section Section
	Index   int
}

func (a RemoveItem) apply(d Document) (Document, error) {
	switch a.Section {
	case SectionExperience:
		if a.Index < 0 || a.Index >= len(d.Experience) {
			return d, fmt.Errorf("%w: experience[%d]", ErrIndexOutOfRange, a.Index)
		}
		d.Experience = append(d.Experience[:a.Index], d.Experience[a.Index+1:]...)
	case SectionEducation:
		if a.Index < 0 || a.Index >= len(d.Education) {
			return d, fmt.Errorf("%w: education[%d]", ErrIndexOutOfRange, a.Index)
		}
		d.Education = append(d.Education[:a.Index], d.Education[a.Index+1:]...)
	case SectionSkills:
		if a.Index < 0 || a.Index >= len(d.Skills) {
			return d, fmt.Errorf("%w: skills[%d]", ErrIndexOutOfRange, a.Index)
		}
		d.Skills = append(d.Skills[:a.Index], d.Skills[a.Index+1:]...)
	case SectionLanguages:
		if a.Index < 0 || a.Index >= len(d.Languages) {
			return d, fmt.Errorf("%w: languages[%d]", ErrIndexOutOfRange, a.Index)
		}
		d.Languages = append(d.Languages[:a.Index], d.Languages[a.Index+1:]...)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, a.Section)
	}
	return d, nil
}

// UpdateItem commits one edited field of a list item. Field names match
// the JSON names of the item type. No structural validation is applied to
// the value; duplicate or empty entries are allowed.
type UpdateItem struct {
	Section Section
	Index   int
	Field   string
	Value   string
}

func (a UpdateItem) apply(d Document) (Document, error) {
	switch a.Section {
	case SectionExperience:
		if a.Index < 0 || a.Index >= len(d.Experience) {
			return d, fmt.Errorf("%w: experience[%d]", ErrIndexOutOfRange, a.Index)
		}
		e := &d.Experience[a.Index]
		switch a.Field {
		case "title":
			e.Title = a.Value
		case "companyName":
			e.CompanyName = a.Value
		case "date":
			e.Date = a.Value
		case "companyLocation":
			e.CompanyLocation = a.Value
		case "accomplishment":
			e.Accomplishment = a.Value
		default:
			return d, fmt.Errorf("%w: experience.%s", ErrUnknownField, a.Field)
		}
	case SectionEducation:
		if a.Index < 0 || a.Index >= len(d.Education) {
			return d, fmt.Errorf("%w: education[%d]", ErrIndexOutOfRange, a.Index)
		}
		e := &d.Education[a.Index]
		switch a.Field {
		case "degree":
			e.Degree = a.Value
		case "institution":
			e.Institution = a.Value
		case "duration":
			e.Duration = a.Value
		case "location":
			e.Location = a.Value
		case "description":
			e.Description = a.Value
		default:
			return d, fmt.Errorf("%w: education.%s", ErrUnknownField, a.Field)
		}
	case SectionSkills:
		if a.Index < 0 || a.Index >= len(d.Skills) {
			return d, fmt.Errorf("%w: skills[%d]", ErrIndexOutOfRange, a.Index)
		}
		switch a.Field {
		case "category":
			d.Skills[a.Index].Category = a.Value
		default:
			return d, fmt.Errorf("%w: skills.%s", ErrUnknownField, a.Field)
		}
	case SectionLanguages:
		if a.Index < 0 || a.Index >= len(d.Languages) {
			return d, fmt.Errorf("%w: languages[%d]", ErrIndexOutOfRange, a.Index)
		}
		l := &d.Languages[a.Index]
		switch a.Field {
		case "name":
			l.Name = a.Value
		case "level":
			l.Level = a.Value
		default:
			return d, fmt.Errorf("%w: languages.%s", ErrUnknownField, a.Field)
		}
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, a.Section)
	}
	return d, nil
}

// ReorderItem moves the item at From to position To within a section.
type ReorderItem struct {
	Section Section
	From    int
	To      int
}

func (a ReorderItem) apply(d Document) (Document, error) {
	switch a.Section {
	case SectionExperience:
		return d, reorder(d.Experience, a.From, a.To)
	case SectionEducation:
		return d, reorder(d.Education, a.From, a.To)
	case SectionSkills:
		return d, reorder(d.Skills, a.From, a.To)
	case SectionLanguages:
		return d, reorder(d.Languages, a.From, a.To)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, a.Section)
	}
}

func reorder[T any](items []T, from, to int) error {
	if from < 0 || from >= len(items) {
		return fmt.Errorf("%w: from %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= len(items) {
		return fmt.Errorf("%w: to %d", ErrIndexOutOfRange, to)
	}
	item := items[from]
	copy(items[from:], items[from+1:])
	copy(items[to+1:], items[to:])
	items[to] = item
	return nil
}

// SetLanguageProficiency sets a language's dot count (clamped to [0,5])
// and derives its level label from the fixed 5-tier mapping.
type SetLanguageProficiency struct {
	Index int
	Dots  int
}

func (a SetLanguageProficiency) apply(d Document) (Document, error) {
	if a.Index < 0 || a.Index >= len(d.Languages) {
		return d, fmt.Errorf("%w: languages[%d]", ErrIndexOutOfRange, a.Index)
	}
	dots := ClampDots(a.Dots)
	d.Languages[a.Index].Dots = dots
	d.Languages[a.Index].Level = ProficiencyLevel(dots)
	return d, nil
}

// AppendSkillItem adds the default skill item to a skill group.
type AppendSkillItem struct {
	Group int
}

func (a AppendSkillItem) apply(d Document) (Document, error) {
	if a.Group < 0 || a.Group >= len(d.Skills) {
		return d, fmt.Errorf("%w: skills[%d]", ErrIndexOutOfRange, a.Group)
	}
	d.Skills[a.Group].Items = append(d.Skills[a.Group].Items, defaultSkillItem)
	return d, nil
}

// RemoveSkillItem deletes one item from a skill group.
type RemoveSkillItem struct {
	Group int
	Item  int
}

func (a RemoveSkillItem) apply(d Document) (Document, error) {
	if a.Group < 0 || a.Group >= len(d.Skills) {
		return d, fmt.Errorf("%w: skills[%d]", ErrIndexOutOfRange, a.Group)
	}
	items := d.Skills[a.Group].Items
	if a.Item < 0 || a.Item >= len(items) {
		return d, fmt.Errorf("%w: skills[%d].items[%d]", ErrIndexOutOfRange, a.Group, a.Item)
	}
	d.Skills[a.Group].Items = append(items[:a.Item], items[a.Item+1:]...)
	return d, nil
}

// CommitSkillItem commits the edited text of one skill item.
type CommitSkillItem struct {
	Group int
	Item  int
	Value string
}

func (a CommitSkillItem) apply(d Document) (Document, error) {
	if a.Group < 0 || a.Group >= len(d.Skills) {
		return d, fmt.Errorf("%w: skills[%d]", ErrIndexOutOfRange, a.Group)
	}
	items := d.Skills[a.Group].Items
	if a.Item < 0 || a.Item >= len(items) {
		return d, fmt.Errorf("%w: skills[%d].items[%d]", ErrIndexOutOfRange, a.Group, a.Item)
	}
	d.Skills[a.Group].Items[a.Item] = a.Value
	return d, nil
}

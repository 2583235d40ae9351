package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptoskills/resume-builder/internal/enhance"
	"github.com/uptoskills/resume-builder/internal/resume"
)

// Session owns the live in-memory document for one editing session. All
// edits go through Dispatch; server sync is whole-document. A Session is
// not safe for concurrent use.
type Session struct {
	client *Client
	userID string
	doc    resume.Document
}

// NewSession starts an editing session for a user with an empty document.
// Call Load to pull a previously saved resume.
func NewSession(c *Client, userID string) *Session {
	return &Session{client: c, userID: userID, doc: resume.Document{}.Normalize()}
}

// Document returns a copy of the current document. Mutating the copy does
// not affect the session.
func (s *Session) Document() resume.Document {
	return s.doc.Clone()
}

// SetDocument replaces the session document wholesale.
func (s *Session) SetDocument(doc resume.Document) {
	s.doc = doc.Clone().Normalize()
}

// Dispatch applies an edit action to the session document. A failed
// action leaves the document unchanged.
func (s *Session) Dispatch(a resume.Action) error {
	next, err := resume.Apply(s.doc, a)
	if err != nil {
		return err
	}
	s.doc = next
	return nil
}

// Save pushes the current document to the server.
func (s *Session) Save(ctx context.Context) error {
	_, err := s.client.SaveResume(ctx, s.userID, s.doc)
	return err
}

// Load replaces the session document with the user's saved resume.
func (s *Session) Load(ctx context.Context) error {
	rec, err := s.client.GetResume(ctx, s.userID)
	if err != nil {
		return err
	}
	s.doc = rec.Document.Normalize()
	return nil
}

// EnhanceField rewrites one textual field via the AI gateway. The
// document is saved before the enhancement call so unsaved edits survive
// a provider failure; on success only the targeted field is replaced.
// index selects the experience or education entry and is ignored for the
// summary.
func (s *Session) EnhanceField(ctx context.Context, section string, index int) error {
	current, set, err := s.fieldAccess(section, index)
	if err != nil {
		return err
	}
	if current == "" {
		return fmt.Errorf("nothing to enhance in section %q", section)
	}

	if err := s.Save(ctx); err != nil {
		return err
	}

	text, err := s.client.EnhanceSection(ctx, section, current)
	if err != nil {
		return err
	}
	set(text)
	return nil
}

// fieldAccess resolves a section name to the current field value and a
// setter into the session document.
func (s *Session) fieldAccess(section string, index int) (string, func(string), error) {
	switch section {
	case "summary":
		return s.doc.Summary, func(v string) { s.doc.Summary = v }, nil
	case "experience":
		if index < 0 || index >= len(s.doc.Experience) {
			return "", nil, fmt.Errorf("experience index %d out of range", index)
		}
		return s.doc.Experience[index].Accomplishment,
			func(v string) { s.doc.Experience[index].Accomplishment = v }, nil
	case "education":
		if index < 0 || index >= len(s.doc.Education) {
			return "", nil, fmt.Errorf("education index %d out of range", index)
		}
		return s.doc.Education[index].Description,
			func(v string) { s.doc.Education[index].Description = v }, nil
	default:
		return "", nil, fmt.Errorf("unknown section %q", section)
	}
}

// EnhanceSkills round-trips the skills list through the AI gateway. A
// response that does not parse back into the skills structure is
// discarded and the prior list kept; transport and provider failures are
// returned.
func (s *Session) EnhanceSkills(ctx context.Context) error {
	if len(s.doc.Skills) == 0 {
		return nil
	}

	if err := s.Save(ctx); err != nil {
		return err
	}

	groups, err := enhance.EnhanceSkills(ctx, remoteEnhancer{s.client}, s.doc.Skills)
	if err != nil {
		var parseErr *enhance.ParseError
		if errors.As(err, &parseErr) {
			return nil
		}
		return err
	}
	s.doc.Skills = groups
	return nil
}

// AutoEnhance rewrites every textual field of the document. The session
// document is replaced only when the whole pass succeeds.
func (s *Session) AutoEnhance(ctx context.Context) error {
	if err := s.Save(ctx); err != nil {
		return err
	}

	enhanced, err := s.client.AutoEnhance(ctx, s.doc)
	if err != nil {
		return err
	}
	s.doc = enhanced.Normalize()
	return nil
}

// remoteEnhancer adapts the HTTP client to the enhancement gateway
// interface so the skills round-trip shares its parsing.
type remoteEnhancer struct {
	c *Client
}

func (r remoteEnhancer) EnhanceSection(ctx context.Context, section, inputText string) (string, error) {
	return r.c.EnhanceSection(ctx, section, inputText)
}

func (r remoteEnhancer) Configured() bool { return true }
func (r remoteEnhancer) Close() error     { return nil }

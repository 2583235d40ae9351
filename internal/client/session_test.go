package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptoskills/resume-builder/internal/resume"
)

func newTestSession(t *testing.T) (*Session, *fakeBackend) {
	t.Helper()
	c, backend := newTestClient(t)
	return NewSession(c, "user-1"), backend
}

func TestSession_DispatchUpdatesDocument(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "name", Value: "Ada"}))
	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionExperience}))

	doc := s.Document()
	assert.Equal(t, "Ada", doc.Name)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Job Title", doc.Experience[0].Title)
}

func TestSession_DispatchFailureLeavesDocument(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Dispatch(resume.CommitField{Field: "name", Value: "Ada"}))

	err := s.Dispatch(resume.RemoveItem{Section: resume.SectionExperience, Index: 0})
	require.Error(t, err)
	assert.Equal(t, "Ada", s.Document().Name, "failed dispatch must not touch the document")
}

func TestSession_DocumentReturnsCopy(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionExperience}))

	doc := s.Document()
	doc.Experience[0].Title = "Mutated"
	assert.Equal(t, "Job Title", s.Document().Experience[0].Title)
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	s, backend := newTestSession(t)
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "summary", Value: "ships software"}))
	require.NoError(t, s.Save(ctx))
	assert.Equal(t, 1, backend.saveCalls)

	fresh, _ := newTestSession(t)
	fresh.client = s.client // same backend
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, "ships software", fresh.Document().Summary)
	assert.NotNil(t, fresh.Document().Skills, "loaded documents are normalized")
}

func TestSession_EnhanceField_SavesFirstThenReplaces(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceReply = "a sharper summary"
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "summary", Value: "draft"}))
	require.NoError(t, s.EnhanceField(ctx, "summary", 0))

	assert.Equal(t, "a sharper summary", s.Document().Summary)
	require.Equal(t, 1, backend.saveCalls)
	assert.Equal(t, "draft", backend.saved["user-1"].Summary, "pre-enhancement text was saved")
}

func TestSession_EnhanceField_FailureKeepsDocumentButSaved(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceStatus = http.StatusServiceUnavailable
	backend.enhanceBody = `{"error":"unavailable","aiUnavailable":true}`
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "summary", Value: "draft"}))
	err := s.EnhanceField(ctx, "summary", 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.AIUnavailable)
	assert.Equal(t, "draft", s.Document().Summary)
	assert.Equal(t, 1, backend.saveCalls, "edits were saved before the failed call")
}

func TestSession_EnhanceField_TargetsOneEntry(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceReply = "polished"
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionExperience}))
	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionExperience}))
	require.NoError(t, s.Dispatch(resume.UpdateItem{
		Section: resume.SectionExperience, Index: 1, Field: "accomplishment", Value: "raw notes",
	}))

	require.NoError(t, s.EnhanceField(ctx, "experience", 1))

	doc := s.Document()
	assert.Equal(t, "polished", doc.Experience[1].Accomplishment)
	assert.NotEqual(t, "polished", doc.Experience[0].Accomplishment)
}

func TestSession_EnhanceField_Validation(t *testing.T) {
	s, backend := newTestSession(t)
	ctx := t.Context()

	assert.Error(t, s.EnhanceField(ctx, "experience", 0), "index out of range")
	assert.Error(t, s.EnhanceField(ctx, "hobbies", 0), "unknown section")
	assert.Error(t, s.EnhanceField(ctx, "summary", 0), "empty field")
	assert.Equal(t, 0, backend.saveCalls, "validation failures never hit the network")
}

func TestSession_EnhanceSkills_ParseFailureKeepsPrior(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceReply = "this is prose, not JSON"
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionSkills}))
	before := s.Document().Skills

	require.NoError(t, s.EnhanceSkills(ctx), "a garbled response is absorbed")
	assert.Equal(t, before, s.Document().Skills)
}

func TestSession_EnhanceSkills_AppliesParsedList(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceReply = "```json\n[{\"category\":\"Languages\",\"items\":[\"Go\",\"SQL\"]}]\n```"
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.AppendItem{Section: resume.SectionSkills}))
	require.NoError(t, s.EnhanceSkills(ctx))

	skills := s.Document().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, "Languages", skills[0].Category)
	assert.Equal(t, []string{"Go", "SQL"}, skills[0].Items)
}

func TestSession_EnhanceSkills_EmptyListNoop(t *testing.T) {
	s, backend := newTestSession(t)
	require.NoError(t, s.EnhanceSkills(t.Context()))
	assert.Equal(t, 0, backend.saveCalls)
}

func TestSession_AutoEnhance(t *testing.T) {
	s, backend := newTestSession(t)
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "summary", Value: "draft"}))
	require.NoError(t, s.AutoEnhance(ctx))

	assert.Equal(t, "enhanced draft", s.Document().Summary)
	assert.Equal(t, 1, backend.saveCalls)
}

func TestSession_AutoEnhance_FailureKeepsDocument(t *testing.T) {
	s, backend := newTestSession(t)
	backend.enhanceStatus = http.StatusInternalServerError
	backend.enhanceBody = `{"error":"provider exploded","aiUnavailable":false}`
	ctx := t.Context()

	require.NoError(t, s.Dispatch(resume.CommitField{Field: "summary", Value: "draft"}))
	require.Error(t, s.AutoEnhance(ctx))
	assert.Equal(t, "draft", s.Document().Summary)
}

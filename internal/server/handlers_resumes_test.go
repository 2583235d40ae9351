package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, s *testServer, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestSaveResume_ThenGet_RoundTrip(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A","summary":"x"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var saveResp SaveResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saveResp))
	assert.True(t, saveResp.Success)
	require.NotNil(t, saveResp.Resume)
	assert.Equal(t, "u1", saveResp.Resume.OwnerID)

	req := httptest.NewRequest(http.MethodGet, "/api/get-resume/u1", nil)
	req.SetPathValue("userId", "u1")
	w2 := httptest.NewRecorder()
	s.handleGetResume(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var getResp GetResumeResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &getResp))
	doc := getResp.Resume.Document
	assert.Equal(t, "A", doc.Name)
	assert.Equal(t, "x", doc.Summary)

	// Missing list fields come back as empty sequences, never null.
	assert.NotNil(t, doc.Experience)
	assert.Empty(t, doc.Experience)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Languages)
}

func TestSaveResume_SecondSaveOverwrites(t *testing.T) {
	s := newTestServer()

	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"First"}}`)
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"Second"}}`)

	rec := s.store.records["u1"]
	require.NotNil(t, rec)
	assert.Equal(t, "Second", rec.Document.Name)
	assert.Len(t, s.store.records, 1)
}

func TestSaveResume_MissingFields(t *testing.T) {
	s := newTestServer()

	for name, body := range map[string]string{
		"no user id":     `{"resumeData":{"name":"A"}}`,
		"no resume data": `{"userId":"u1"}`,
		"empty body":     `{}`,
	} {
		w := postJSON(t, s, s.handleSaveResume, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.Empty(t, s.store.records)
}

func TestSaveResume_StoreFailure(t *testing.T) {
	s := newTestServer()
	s.store.failure = assert.AnError

	w := postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetResume_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/get-resume/ghost", nil)
	req.SetPathValue("userId", "ghost")
	w := httptest.NewRecorder()
	s.handleGetResume(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateShareLink_NoSavedResume(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/generate-share-link/ghost", nil)
	req.SetPathValue("userId", "ghost")
	w := httptest.NewRecorder()
	s.handleGenerateShareLink(w, req)

	// 404, and no record gets created as a side effect.
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, s.store.records)
}

func TestGenerateShareLink_NoExpiry(t *testing.T) {
	s := newTestServer()
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A"}}`)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-share-link/u1", nil)
	req.SetPathValue("userId", "u1")
	req.Host = "resume.example.com"
	w := httptest.NewRecorder()
	s.handleGenerateShareLink(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ShareLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.ExpiryDate)
	assert.Contains(t, resp.ShareURL, "http://resume.example.com/share/")
}

func TestGenerateShareLink_WithExpiry(t *testing.T) {
	s := newTestServer()
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A"}}`)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-share-link/u1?expiryDays=7", nil)
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	s.handleGenerateShareLink(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ShareLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ExpiryDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *resp.ExpiryDate, time.Minute)
}

func TestGenerateShareLink_InvalidExpiryDays(t *testing.T) {
	s := newTestServer()
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A"}}`)

	for _, q := range []string{"expiryDays=abc", "expiryDays=-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/generate-share-link/u1?"+q, nil)
		req.SetPathValue("userId", "u1")
		w := httptest.NewRecorder()
		s.handleGenerateShareLink(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestShareURL_BaseOverride(t *testing.T) {
	s := newTestServer()
	s.shareBaseURL = "https://resumes.uptoskills.com"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "https://resumes.uptoskills.com/share/tok", s.shareURL(req, "tok"))
}

func TestShareURL_ForwardedProto(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "app.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://app.example.com/share/tok", s.shareURL(req, "tok"))
}

func TestSharedResume_Lifecycle(t *testing.T) {
	s := newTestServer()
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A","summary":"x"}}`)

	token, _, err := s.store.CreateShareLink(t.Context(), "u1", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/shared-resume/"+token, nil)
	req.SetPathValue("token", token)
	w := httptest.NewRecorder()
	s.handleSharedResume(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SharedResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.ResumeData.Name)
	assert.NotNil(t, resp.ResumeData.Languages)
}

func TestSharedResume_UnknownToken(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/shared-resume/nope", nil)
	req.SetPathValue("token", "nope")
	w := httptest.NewRecorder()
	s.handleSharedResume(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSharedResume_Expired(t *testing.T) {
	s := newTestServer()
	postJSON(t, s, s.handleSaveResume, `{"userId":"u1","resumeData":{"name":"A"}}`)

	token, _, err := s.store.CreateShareLink(t.Context(), "u1", 1)
	require.NoError(t, err)

	// Force the link into the past.
	past := time.Now().Add(-time.Hour)
	s.store.records["u1"].ShareExpiry = &past

	req := httptest.NewRequest(http.MethodGet, "/api/shared-resume/"+token, nil)
	req.SetPathValue("token", token)
	w := httptest.NewRecorder()
	s.handleSharedResume(w, req)

	// Expired is 410, distinct from an unknown token's 404.
	assert.Equal(t, http.StatusGone, w.Code)
}

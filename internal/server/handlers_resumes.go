package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/uptoskills/resume-builder/internal/db"
	"github.com/uptoskills/resume-builder/internal/resume"
)

// SaveResumeRequest is the request body for /api/save-resume
type SaveResumeRequest struct {
	UserID     string           `json:"userId"`
	ResumeData *resume.Document `json:"resumeData"`
}

// SaveResumeResponse is the success response for /api/save-resume
type SaveResumeResponse struct {
	Success bool             `json:"success"`
	Resume  *db.ResumeRecord `json:"resume"`
}

// handleSaveResume persists the whole document for a user. Create or full
// overwrite; concurrent saves for the same user resolve last write wins.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	var req SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.UserID == "" || req.ResumeData == nil {
		s.errorResponse(w, http.StatusBadRequest, "User ID and resume data are required")
		return
	}

	rec, err := s.store.UpsertResume(r.Context(), req.UserID, req.ResumeData.Normalize())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, SaveResumeResponse{Success: true, Resume: rec})
}

// GetResumeResponse is the success response for /api/get-resume
type GetResumeResponse struct {
	Resume *db.ResumeRecord `json:"resume"`
}

// handleGetResume loads a user's saved resume
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	rec, err := s.store.GetResumeByOwner(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	// Older rows may predate list defaults; never hand the client nulls.
	rec.Document = rec.Document.Normalize()
	s.jsonResponse(w, http.StatusOK, GetResumeResponse{Resume: rec})
}

// ShareLinkResponse is the success response for /api/generate-share-link
type ShareLinkResponse struct {
	ShareURL   string     `json:"shareUrl"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

// handleGenerateShareLink creates a read-only share link for an existing
// resume. A user with nothing saved gets a 404, not an empty share.
func (s *Server) handleGenerateShareLink(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	expiryDays := 0
	if v := r.URL.Query().Get("expiryDays"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid expiryDays")
			return
		}
		expiryDays = n
	}

	token, expiry, err := s.store.CreateShareLink(r.Context(), userID, expiryDays)
	if err != nil {
		if errors.Is(err, db.ErrResumeNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate share link")
		return
	}

	s.jsonResponse(w, http.StatusOK, ShareLinkResponse{
		ShareURL:   s.shareURL(r, token),
		ExpiryDate: expiry,
	})
}

// shareURL builds the public link for a token from the configured base
// URL, falling back to the request's host.
func (s *Server) shareURL(r *http.Request, token string) string {
	base := s.shareBaseURL
	if base == "" {
		scheme := "http"
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/share/" + token
}

// SharedResumeResponse is the success response for /api/shared-resume
type SharedResumeResponse struct {
	ResumeData resume.Document `json:"resumeData"`
}

// handleSharedResume resolves a share token into read-only resume data.
// Expired links are 410, unknown tokens 404.
func (s *Server) handleSharedResume(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		s.errorResponse(w, http.StatusBadRequest, "Share token is required")
		return
	}

	rec, err := s.store.GetResumeByShareToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, db.ErrShareLinkExpired) {
			s.errorResponse(w, http.StatusGone, "Share link has expired")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get shared resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Shared resume not found or link expired")
		return
	}

	s.jsonResponse(w, http.StatusOK, SharedResumeResponse{ResumeData: rec.Document.Normalize()})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/uptoskills/resume-builder/internal/enhance"
	"github.com/uptoskills/resume-builder/internal/resume"
)

// EnhanceSectionRequest is the request body for /api/enhance-section
type EnhanceSectionRequest struct {
	Section   string `json:"section"`
	InputText string `json:"inputText"`
}

// EnhanceSectionResponse is the success response for /api/enhance-section
type EnhanceSectionResponse struct {
	EnhancedText string `json:"enhancedText"`
}

// handleEnhanceSection rewrites one section's text via the AI gateway
func (s *Server) handleEnhanceSection(w http.ResponseWriter, r *http.Request) {
	var req EnhanceSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Section == "" || req.InputText == "" {
		s.errorResponse(w, http.StatusBadRequest, "Section and input text are required")
		return
	}

	text, err := s.enhancer.EnhanceSection(r.Context(), req.Section, req.InputText)
	if err != nil {
		s.enhanceErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, EnhanceSectionResponse{EnhancedText: text})
}

// AutoEnhanceRequest is the request body for /api/auto-enhance-resume
type AutoEnhanceRequest struct {
	ResumeData *resume.Document `json:"resumeData"`
}

// AutoEnhanceResponse is the success response for /api/auto-enhance-resume
type AutoEnhanceResponse struct {
	EnhancedResume resume.Document `json:"enhancedResume"`
}

// handleAutoEnhanceResume rewrites every textual field of the document.
// All-or-nothing: the client receives either a fully enhanced resume or
// an error, never a partially enhanced one.
func (s *Server) handleAutoEnhanceResume(w http.ResponseWriter, r *http.Request) {
	var req AutoEnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.ResumeData == nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume data is required")
		return
	}

	enhanced, err := enhance.EnhanceDocument(r.Context(), s.enhancer, *req.ResumeData)
	if err != nil {
		s.enhanceErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AutoEnhanceResponse{EnhancedResume: enhanced.Normalize()})
}

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// GeneratePDFRequest is the request body for /api/generate-pdf
type GeneratePDFRequest struct {
	ResumeData *resume.Document `json:"resumeData"`
}

// handleGeneratePDF streams the resume as a downloadable PDF. The layout
// is fixed and non-configurable.
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	var req GeneratePDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.ResumeData == nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume data is required")
		return
	}

	pdfBytes, err := s.renderer.RenderPDF(r.Context(), *req.ResumeData)
	if err != nil {
		log.Printf("Error generating PDF: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("Error streaming PDF: %v", err)
	}
}

package server

import (
	"errors"
	"net/http"

	"github.com/uptoskills/resume-builder/internal/db"
	"github.com/uptoskills/resume-builder/internal/enhance"
)

// HTTPStatus returns the appropriate HTTP status code for a store error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrResumeNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrShareLinkExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// enhanceErrorResponse converts an enhancement failure to its HTTP shape.
// Unavailability and credential problems are 503 with the aiUnavailable
// flag so the client can park its AI controls; anything else is a 500.
func (s *Server) enhanceErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, enhance.ErrUnavailable) {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
			"error":         enhance.UnavailableMessage,
			"aiUnavailable": true,
		})
		return
	}

	var provErr *enhance.ProviderError
	if errors.As(err, &provErr) {
		if provErr.CredentialRelated() {
			s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
				"error":         provErr.Error(),
				"aiUnavailable": true,
			})
			return
		}
		s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
			"error":         provErr.Error(),
			"aiUnavailable": false,
		})
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

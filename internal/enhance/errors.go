package enhance

import (
	"errors"
	"fmt"
	"strings"
)

// UnavailableMessage is the fixed advisory returned when no valid AI
// credential is configured.
const UnavailableMessage = "AI enhancement is currently unavailable. Please check your Gemini API key."

// ErrUnavailable indicates enhancement was requested while the gateway is
// not configured. Callers should degrade gracefully, never crash.
var ErrUnavailable = errors.New(UnavailableMessage)

// ProviderError wraps a failure returned by the external text-completion
// provider.
type ProviderError struct {
	Section string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error enhancing %s: %v", e.Section, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CredentialRelated reports whether the provider failure looks like a bad
// or rejected credential, so callers can surface it as unavailability
// rather than a hard server error.
func (e *ProviderError) CredentialRelated() bool {
	msg := strings.ToLower(e.Err.Error())
	for _, hint := range []string{"api key", "api_key", "credential", "unauthenticated", "permission_denied", "permission denied"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// ParseError indicates the provider's response for a structured section
// (skills) was not well-formed. The caller keeps its prior value.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse enhanced skills: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

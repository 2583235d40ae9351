// Package enhance bridges resume text to an external text-completion
// provider. Availability is decided once, when the gateway is built, so a
// missing or malformed credential degrades every call uniformly instead of
// failing mid-batch.
package enhance

import "strings"

// acceptedKeyPrefix is the prefix Google API keys carry. Anything else is
// treated as misconfigured and the gateway stays unavailable.
const acceptedKeyPrefix = "AIza"

// Config holds the gateway credential. It is constructed once at process
// start and injected; there is no module-level state.
type Config struct {
	APIKey string
}

// Configured reports whether a plausible credential is present. This is a
// format check only; a key that later turns out to be revoked surfaces as
// a ProviderError on the first call.
func (c Config) Configured() bool {
	return c.APIKey != "" && strings.HasPrefix(c.APIKey, acceptedKeyPrefix)
}

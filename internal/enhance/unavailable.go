package enhance

import "context"

// unavailableEnhancer stands in when no valid credential is configured.
// Every call fails with ErrUnavailable, an explicit error value — never a
// fake completion that smuggles the failure inside a success payload.
type unavailableEnhancer struct{}

var _ Enhancer = unavailableEnhancer{}

func (unavailableEnhancer) EnhanceSection(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

func (unavailableEnhancer) Configured() bool { return false }

func (unavailableEnhancer) Close() error { return nil }

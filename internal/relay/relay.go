// Package relay delivers leads to the third-party form relay.
package relay

import (
	"fmt"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/lead"
)

// New creates and returns a relay based on the configuration.
func New(cfg config.Provider) (lead.Relay, error) {
	switch cfg.GetRelayProvider() {
	case "log":
		return &LogRelay{}, nil
	case "web3forms":
		if cfg.GetRelayEndpoint() == "" {
			return nil, fmt.Errorf("relay provider is 'web3forms' but RELAY_ENDPOINT is not set")
		}
		return NewWeb3Forms(cfg.GetRelayEndpoint(), WithTimeout(cfg.GetRelayTimeout())), nil
	default:
		return nil, fmt.Errorf("unknown relay provider: %s", cfg.GetRelayProvider())
	}
}

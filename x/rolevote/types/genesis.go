package types

import (
	"fmt"
)

// GenesisState is the full exportable state of the module.
type GenesisState struct {
	Dao     string           `json:"dao,omitempty"`
	Config  *Config          `json:"config,omitempty"`
	Pending *PendingCreation `json:"pending,omitempty"`
	Tokens  []RoleToken      `json:"tokens"`
}

// DefaultGenesis returns an empty, unconfigured genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Tokens: []RoleToken{},
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.Config != nil && gs.Pending != nil {
		return fmt.Errorf("genesis cannot be both configured and pending")
	}
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}
	if gs.Dao != "" {
		if _, err := ValidateAddress(gs.Dao); err != nil {
			return fmt.Errorf("invalid dao address: %w", err)
		}
	}
	seen := make(map[string]struct{}, len(gs.Tokens))
	for _, token := range gs.Tokens {
		if token.TokenID == "" {
			return fmt.Errorf("genesis token with empty id")
		}
		if _, dup := seen[token.TokenID]; dup {
			return fmt.Errorf("duplicate token %s", token.TokenID)
		}
		seen[token.TokenID] = struct{}{}
		if _, err := ValidateAddress(token.Owner); err != nil {
			return fmt.Errorf("invalid owner for token %s: %w", token.TokenID, err)
		}
	}
	return nil
}

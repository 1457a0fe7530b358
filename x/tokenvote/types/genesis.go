package types

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/ismellike/dao-contracts/x/voting"
)

// GenesisState is the full exportable state of the module.
type GenesisState struct {
	Dao             string                  `json:"dao,omitempty"`
	Config          *Config                 `json:"config,omitempty"`
	Pending         *PendingCreation        `json:"pending,omitempty"`
	Issuer          string                  `json:"issuer,omitempty"`
	ActiveThreshold *voting.ActiveThreshold `json:"active_threshold,omitempty"`
	Stakers         []GenesisStaker         `json:"stakers"`
}

// GenesisStaker is one staker's balance and outstanding claims.
type GenesisStaker struct {
	Address string   `json:"address"`
	Staked  math.Int `json:"staked"`
	Claims  []Claim  `json:"claims,omitempty"`
}

// DefaultGenesis returns an empty, unconfigured genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Stakers: []GenesisStaker{},
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
	if gs.ActiveThreshold != nil {
		if err := gs.ActiveThreshold.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(gs.Stakers))
	for i, staker := range gs.Stakers {
		if _, err := ValidateAddress(staker.Address); err != nil {
			return fmt.Errorf("invalid staker address at index %d: %w", i, err)
		}
		if _, dup := seen[staker.Address]; dup {
			return fmt.Errorf("duplicate staker %s", staker.Address)
		}
		seen[staker.Address] = struct{}{}
		if staker.Staked.IsNil() || staker.Staked.IsNegative() {
			return fmt.Errorf("staker %s has invalid staked amount", staker.Address)
		}
		if len(staker.Claims) > MaxClaims {
			return fmt.Errorf("staker %s exceeds claim limit", staker.Address)
		}
		for _, claim := range staker.Claims {
			if claim.Amount.IsNil() || !claim.Amount.IsPositive() {
				return fmt.Errorf("staker %s has invalid claim amount", staker.Address)
			}
		}
	}
	return nil
}

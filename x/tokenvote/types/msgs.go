package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/ismellike/dao-contracts/x/voting"
)

// MsgInitialize configures the module at creation time. Sent exactly once by
// the owning DAO.
type MsgInitialize struct {
	// Dao is the address of the DAO this module powers.
	Dao string `json:"dao"`
	// Token selects the backing denom: attach to an existing one or
	// provision a new token-factory denom.
	Token TokenSource `json:"token"`
	// UnbondingBlocks delays token release after unstaking.
	UnbondingBlocks uint64 `json:"unbonding_blocks"`
	// ActiveThreshold optionally gates DAO activity on total power.
	ActiveThreshold *voting.ActiveThreshold `json:"active_threshold,omitempty"`
}

// ValidateBasic performs stateless validation.
func (m MsgInitialize) ValidateBasic() error {
	if _, err := ValidateAddress(m.Dao); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "dao: %s", err)
	}
	set := 0
	if m.Token.Existing != nil {
		set++
	}
	if m.Token.New != nil {
		set++
	}
	if set != 1 {
		return ErrInvalidTokenSource
	}
	if existing := m.Token.Existing; existing != nil {
		if existing.Denom == "" {
			return errorsmod.Wrap(ErrInvalidTokenSource, "existing denom cannot be empty")
		}
	}
	if newToken := m.Token.New; newToken != nil {
		if newToken.IssuerCodeID == 0 {
			return errorsmod.Wrap(ErrInvalidTokenSource, "issuer code id cannot be zero")
		}
		if newToken.Subdenom == "" {
			return errorsmod.Wrap(ErrInvalidTokenSource, "subdenom cannot be empty")
		}
		if len(newToken.InitialBalances) == 0 {
			return ErrEmptyInitialAllocation
		}
		for _, balance := range newToken.InitialBalances {
			if _, err := ValidateAddress(balance.Address); err != nil {
				return errorsmod.Wrapf(ErrInvalidAddress, "initial balance: %s", err)
			}
			if balance.Amount.IsNil() || !balance.Amount.IsPositive() {
				return errorsmod.Wrap(ErrInvalidAmount, "initial balance")
			}
		}
		if newToken.InitialDaoBalance != nil && newToken.InitialDaoBalance.IsNegative() {
			return errorsmod.Wrap(ErrInvalidAmount, "initial dao balance")
		}
	}
	if m.ActiveThreshold != nil {
		if err := m.ActiveThreshold.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MsgStake locks tokens and credits the sender's voting power.
type MsgStake struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation.
func (m MsgStake) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// MsgUnstake starts unbonding part of the sender's stake. Voting power drops
// immediately; the tokens release after the unbonding period.
type MsgUnstake struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

// ValidateBasic performs stateless validation.
func (m MsgUnstake) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// MsgClaim releases every mature unbonding claim of the sender.
type MsgClaim struct {
	Sender string `json:"sender"`
}

// ValidateBasic performs stateless validation.
func (m MsgClaim) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	return nil
}

// MsgUpdateConfig changes the unbonding duration. Only the DAO may send it.
type MsgUpdateConfig struct {
	Sender          string `json:"sender"`
	UnbondingBlocks uint64 `json:"unbonding_blocks"`
}

// ValidateBasic performs stateless validation.
func (m MsgUpdateConfig) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	return nil
}

// MsgUpdateActiveThreshold replaces or clears the activation threshold. Only
// the DAO may send it.
type MsgUpdateActiveThreshold struct {
	Sender          string                  `json:"sender"`
	ActiveThreshold *voting.ActiveThreshold `json:"active_threshold,omitempty"`
}

// ValidateBasic performs stateless validation.
func (m MsgUpdateActiveThreshold) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.ActiveThreshold != nil {
		if err := m.ActiveThreshold.Validate(); err != nil {
			return err
		}
	}
	return nil
}

package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module sentinel errors
var (
	ErrInvalidAmount          = errorsmod.Register(ModuleName, 2, "amount must be greater than zero")
	ErrInsufficientStake      = errorsmod.Register(ModuleName, 3, "amount exceeds staked balance")
	ErrNothingToClaim         = errorsmod.Register(ModuleName, 4, "no claims are due")
	ErrTooManyClaims          = errorsmod.Register(ModuleName, 5, "too many pending claims")
	ErrNotYetConfigured       = errorsmod.Register(ModuleName, 6, "module is awaiting token creation")
	ErrEmptyInitialAllocation = errorsmod.Register(ModuleName, 7, "initial balances cannot be empty")
	ErrMalformedReplyPayload  = errorsmod.Register(ModuleName, 8, "reply payload does not carry a contract address")
	ErrUnexpectedReply        = errorsmod.Register(ModuleName, 9, "no token creation is pending")
	ErrInvalidAddress         = errorsmod.Register(ModuleName, 10, "invalid address")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 11, "unauthorized")
	ErrInvalidTokenSource     = errorsmod.Register(ModuleName, 12, "exactly one token source must be set")
	ErrAlreadyConfigured      = errorsmod.Register(ModuleName, 13, "module is already configured")
)

package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module sentinel errors
var (
	ErrDuplicateToken         = errorsmod.Register(ModuleName, 2, "token id already exists")
	ErrTokenNotFound          = errorsmod.Register(ModuleName, 3, "token id does not exist")
	ErrNotYetConfigured       = errorsmod.Register(ModuleName, 4, "module is awaiting collection creation")
	ErrEmptyInitialAllocation = errorsmod.Register(ModuleName, 5, "initial token list cannot be empty")
	ErrMalformedReplyPayload  = errorsmod.Register(ModuleName, 6, "reply payload does not carry a contract address")
	ErrUnexpectedReply        = errorsmod.Register(ModuleName, 7, "no collection creation is pending")
	ErrInvalidAddress         = errorsmod.Register(ModuleName, 8, "invalid address")
	ErrUnauthorized           = errorsmod.Register(ModuleName, 9, "unauthorized")
	ErrInvalidNftSource       = errorsmod.Register(ModuleName, 10, "exactly one collection source must be set")
	ErrAlreadyConfigured      = errorsmod.Register(ModuleName, 11, "module is already configured")
	ErrInvalidTokenID         = errorsmod.Register(ModuleName, 12, "token id cannot be empty")
)

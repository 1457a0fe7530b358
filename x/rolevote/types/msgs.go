package types

import (
	errorsmod "cosmossdk.io/errors"
)

// MsgInitialize configures the module at creation time. Sent exactly once by
// the owning DAO.
type MsgInitialize struct {
	// Dao is the address of the DAO this module powers.
	Dao string `json:"dao"`
	// Nft selects the backing collection: attach to an existing one or
	// provision a new role NFT collection.
	Nft NftSource `json:"nft"`
}

// ValidateBasic performs stateless validation.
func (m MsgInitialize) ValidateBasic() error {
	if _, err := ValidateAddress(m.Dao); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "dao: %s", err)
	}
	set := 0
	if m.Nft.Existing != nil {
		set++
	}
	if m.Nft.New != nil {
		set++
	}
	if set != 1 {
		return ErrInvalidNftSource
	}
	if existing := m.Nft.Existing; existing != nil {
		if _, err := ValidateAddress(existing.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidAddress, "existing collection: %s", err)
		}
	}
	if collection := m.Nft.New; collection != nil {
		if collection.CodeID == 0 {
			return errorsmod.Wrap(ErrInvalidNftSource, "code id cannot be zero")
		}
		if collection.Name == "" || collection.Symbol == "" {
			return errorsmod.Wrap(ErrInvalidNftSource, "collection name and symbol cannot be empty")
		}
		if len(collection.InitialTokens) == 0 {
			return ErrEmptyInitialAllocation
		}
		seen := make(map[string]struct{}, len(collection.InitialTokens))
		for _, token := range collection.InitialTokens {
			if token.TokenID == "" {
				return ErrInvalidTokenID
			}
			if _, dup := seen[token.TokenID]; dup {
				return errorsmod.Wrap(ErrDuplicateToken, token.TokenID)
			}
			seen[token.TokenID] = struct{}{}
			if _, err := ValidateAddress(token.Owner); err != nil {
				return errorsmod.Wrapf(ErrInvalidAddress, "token %s owner: %s", token.TokenID, err)
			}
		}
	}
	return nil
}

// MsgMintToken mints a new role token to an owner. Only the DAO may send it.
type MsgMintToken struct {
	Sender   string  `json:"sender"`
	TokenID  string  `json:"token_id"`
	Owner    string  `json:"owner"`
	Weight   uint64  `json:"weight"`
	Role     *string `json:"role,omitempty"`
	TokenURI string  `json:"token_uri,omitempty"`
}

// ValidateBasic performs stateless validation.
func (m MsgMintToken) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.TokenID == "" {
		return ErrInvalidTokenID
	}
	if _, err := ValidateAddress(m.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "owner: %s", err)
	}
	return nil
}

// MsgTransferToken moves a role token and its weight to a new owner. The
// current owner or the DAO may send it.
type MsgTransferToken struct {
	Sender   string `json:"sender"`
	TokenID  string `json:"token_id"`
	NewOwner string `json:"new_owner"`
}

// ValidateBasic performs stateless validation.
func (m MsgTransferToken) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.TokenID == "" {
		return ErrInvalidTokenID
	}
	if _, err := ValidateAddress(m.NewOwner); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "new owner: %s", err)
	}
	return nil
}

// MsgBurnToken destroys a role token. Only the DAO may send it.
type MsgBurnToken struct {
	Sender  string `json:"sender"`
	TokenID string `json:"token_id"`
}

// ValidateBasic performs stateless validation.
func (m MsgBurnToken) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.TokenID == "" {
		return ErrInvalidTokenID
	}
	return nil
}

// MsgUpdateTokenWeight changes a role token's weight in place. Only the DAO
// may send it.
type MsgUpdateTokenWeight struct {
	Sender  string `json:"sender"`
	TokenID string `json:"token_id"`
	Weight  uint64 `json:"weight"`
}

// ValidateBasic performs stateless validation.
func (m MsgUpdateTokenWeight) ValidateBasic() error {
	if _, err := ValidateAddress(m.Sender); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "sender: %s", err)
	}
	if m.TokenID == "" {
		return ErrInvalidTokenID
	}
	return nil
}

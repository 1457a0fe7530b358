package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Config binds the module to the NFT collection whose tokens carry role
// weights. It is written exactly once: either during initialization when
// attaching to an existing collection, or by the instantiation reply when a
// new collection is created.
type Config struct {
	// NftAddress is the role NFT collection backing voting power.
	NftAddress string `json:"nft_address"`
}

// Validate checks config invariants.
func (c Config) Validate() error {
	if _, err := ValidateAddress(c.NftAddress); err != nil {
		return fmt.Errorf("invalid nft address: %w", err)
	}
	return nil
}

// RoleToken is one role NFT. Its weight counts toward the owner's voting
// power for as long as they hold the token.
type RoleToken struct {
	TokenID string `json:"token_id"`
	Owner   string `json:"owner"`
	// Weight is the voting power the token grants its owner. Zero-weight
	// tokens are valid membership markers that carry no power.
	Weight uint64 `json:"weight"`
	// Role optionally labels the position the token represents.
	Role *string `json:"role,omitempty"`
	// TokenURI optionally points at off-chain metadata.
	TokenURI string `json:"token_uri,omitempty"`
}

// NftSource selects how the module obtains its backing collection. Exactly
// one field is set.
type NftSource struct {
	Existing *ExistingCollection `json:"existing,omitempty"`
	New      *NewCollection      `json:"new,omitempty"`
}

// ExistingCollection attaches the module to a collection that already exists.
type ExistingCollection struct {
	Address string `json:"address"`
}

// NewCollection asks the module to provision a fresh role NFT collection
// instantiated during module setup.
type NewCollection struct {
	// CodeID is the stored code of the NFT collection contract.
	CodeID uint64 `json:"code_id"`
	// Label is the on-chain label for the collection instance.
	Label string `json:"label"`
	// Name and Symbol describe the collection.
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	// InitialTokens seeds the new collection. Must be non-empty; a
	// collection nobody holds can never produce voting power.
	InitialTokens []InitialToken `json:"initial_tokens"`
}

// InitialToken is a single entry of a new collection's initial mint list.
type InitialToken struct {
	TokenID  string  `json:"token_id"`
	Owner    string  `json:"owner"`
	Weight   uint64  `json:"weight"`
	Role     *string `json:"role,omitempty"`
	TokenURI string  `json:"token_uri,omitempty"`
}

// PendingCreation is the single outstanding collection-creation request. Its
// presence marks the module as awaiting the instantiation reply; it is
// removed when the reply finalizes the config and mints the initial tokens.
type PendingCreation struct {
	CodeID        uint64         `json:"code_id"`
	InitialTokens []InitialToken `json:"initial_tokens"`
}

// InstantiateReply is the payload delivered by the host runtime when a
// requested contract instantiation completes.
type InstantiateReply struct {
	ContractAddress string `json:"contract_address"`
}

// ValidateAddress checks bech32 address formatting and returns the
// normalized form.
func ValidateAddress(address string) (string, error) {
	addr, err := sdk.AccAddressFromBech32(strings.TrimSpace(address))
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxClaims caps the number of concurrent unbonding claims per staker so a
// single claim sweep stays bounded.
const MaxClaims = 100

// Config binds the module to the token denom it derives power from. It is
// written exactly once: either during initialization when attaching to an
// existing denom, or by the instantiation reply when a new denom is created.
type Config struct {
	// Denom is the fungible token denom whose stake backs voting power.
	Denom string `json:"denom"`
	// UnbondingBlocks is the number of blocks between unstaking and the
	// tokens becoming claimable. Zero means tokens release immediately.
	UnbondingBlocks uint64 `json:"unbonding_blocks"`
}

// Validate checks config invariants.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Denom) == "" {
		return fmt.Errorf("config denom cannot be empty")
	}
	return nil
}

// Claim is a pending unbonding entry. The staked tokens backing it stopped
// counting toward voting power when the claim was created.
type Claim struct {
	Amount        math.Int `json:"amount"`
	ReleaseHeight uint64   `json:"release_height"`
}

// TokenSource selects how the module obtains its backing denom. Exactly one
// field is set.
type TokenSource struct {
	Existing *ExistingToken `json:"existing,omitempty"`
	New      *NewToken      `json:"new,omitempty"`
}

// ExistingToken attaches the module to a denom that already exists.
type ExistingToken struct {
	Denom string `json:"denom"`
}

// NewToken asks the module to provision a fresh token-factory denom through
// an issuer contract instantiated during module setup.
type NewToken struct {
	// IssuerCodeID is the stored code of the token-factory issuer contract.
	IssuerCodeID uint64 `json:"issuer_code_id"`
	// Subdenom names the denom under the issuer's factory namespace.
	Subdenom string `json:"subdenom"`
	// Label is the on-chain label for the issuer contract instance.
	Label string `json:"label"`
	// InitialBalances seeds the new denom. Must be non-empty; a token
	// nobody holds can never produce voting power.
	InitialBalances []InitialBalance `json:"initial_balances"`
	// InitialDaoBalance optionally mints an extra allocation to the DAO.
	InitialDaoBalance *math.Int `json:"initial_dao_balance,omitempty"`
}

// InitialBalance is a single entry of a new token's initial allocation.
type InitialBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// PendingCreation is the single outstanding token-creation request. Its
// presence marks the module as awaiting the instantiation reply; it is
// removed when the reply finalizes the config.
type PendingCreation struct {
	IssuerCodeID    uint64 `json:"issuer_code_id"`
	Subdenom        string `json:"subdenom"`
	UnbondingBlocks uint64 `json:"unbonding_blocks"`
}

// InstantiateReply is the payload delivered by the host runtime when a
// requested contract instantiation completes.
type InstantiateReply struct {
	ContractAddress string `json:"contract_address"`
}

// StakerBalance is one entry of the staker listing query.
type StakerBalance struct {
	Address string   `json:"address"`
	Staked  math.Int `json:"staked"`
}

// FactoryDenom builds the token-factory denom owned by an issuer contract.
func FactoryDenom(issuer, subdenom string) string {
	return fmt.Sprintf("factory/%s/%s", issuer, subdenom)
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

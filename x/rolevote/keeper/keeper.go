package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/internal/snapshots"
	"github.com/ismellike/dao-contracts/x/rolevote/types"
)

// Keeper manages NFT-role voting power for one DAO.
type Keeper struct {
	cdc          codec.Codec
	storeService store.KVStoreService
	logger       log.Logger

	instantiator types.ContractInstantiator

	Dao     collections.Item[string]
	Config  collections.Item[string]
	Pending collections.Item[string]
	Tokens  collections.Map[string, string]

	ledger snapshots.Ledger
}

// NewKeeper creates a new rolevote keeper.
func NewKeeper(
	cdc codec.Codec,
	storeService store.KVStoreService,
	logger log.Logger,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		logger:       logger,
		Dao: collections.NewItem(
			sb,
			collections.NewPrefix(types.DaoKey),
			"dao",
			collections.StringValue,
		),
		Config: collections.NewItem(
			sb,
			collections.NewPrefix(types.ConfigKey),
			"config",
			collections.StringValue,
		),
		Pending: collections.NewItem(
			sb,
			collections.NewPrefix(types.PendingCreationKey),
			"pending_creation",
			collections.StringValue,
		),
		Tokens: collections.NewMap(
			sb,
			collections.NewPrefix(types.TokensKeyPrefix),
			"tokens",
			collections.StringKey,
			collections.StringValue,
		),
		ledger: snapshots.NewLedger(
			sb,
			collections.NewPrefix(types.PowerKeyPrefix),
			collections.NewPrefix(types.TotalPowerKeyPrefix),
			"power",
		),
	}

	if _, err := sb.Build(); err != nil {
		panic(fmt.Errorf("building %s schema: %w", types.ModuleName, err))
	}

	return k
}

// SetContractInstantiator wires the host-runtime collaborator that emits
// contract-instantiation sub-messages.
func (k *Keeper) SetContractInstantiator(instantiator types.ContractInstantiator) {
	k.instantiator = instantiator
}

// Logger returns the module logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// blockHeight extracts the current height from the context.
func blockHeight(ctx context.Context) uint64 {
	return uint64(sdk.UnwrapSDKContext(ctx).BlockHeight())
}

// getConfig loads the finalized config, failing while the module still
// awaits its collection creation reply.
func (k Keeper) getConfig(ctx context.Context) (types.Config, error) {
	raw, err := k.Config.Get(ctx)
	if err != nil {
		return types.Config{}, types.ErrNotYetConfigured
	}
	var cfg types.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (k Keeper) setConfig(ctx context.Context, cfg types.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return k.Config.Set(ctx, string(raw))
}

func (k Keeper) getPending(ctx context.Context) (*types.PendingCreation, error) {
	raw, err := k.Pending.Get(ctx)
	if err != nil {
		return nil, nil
	}
	var pending types.PendingCreation
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, fmt.Errorf("decode pending creation: %w", err)
	}
	return &pending, nil
}

func (k Keeper) setPending(ctx context.Context, pending types.PendingCreation) error {
	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return k.Pending.Set(ctx, string(raw))
}

func (k Keeper) getToken(ctx context.Context, tokenID string) (types.RoleToken, error) {
	raw, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		return types.RoleToken{}, types.ErrTokenNotFound
	}
	var token types.RoleToken
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return types.RoleToken{}, fmt.Errorf("decode token %s: %w", tokenID, err)
	}
	return token, nil
}

func (k Keeper) setToken(ctx context.Context, token types.RoleToken) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return k.Tokens.Set(ctx, token.TokenID, string(raw))
}

// requireDao checks that sender is the owning DAO. The sender is normalized
// first so any valid bech32 spelling of the DAO address passes.
func (k Keeper) requireDao(ctx context.Context, sender string) error {
	dao, err := k.Dao.Get(ctx)
	if err != nil {
		return types.ErrNotYetConfigured
	}
	normalized, err := types.ValidateAddress(sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}
	if normalized != dao {
		return types.ErrUnauthorized
	}
	return nil
}

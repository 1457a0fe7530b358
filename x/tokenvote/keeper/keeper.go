package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/internal/snapshots"
	"github.com/ismellike/dao-contracts/x/tokenvote/types"
	"github.com/ismellike/dao-contracts/x/voting"
)

// Keeper manages token-staked voting power for one DAO.
type Keeper struct {
	cdc          codec.Codec
	storeService store.KVStoreService
	logger       log.Logger

	bankKeeper   types.BankKeeper
	instantiator types.ContractInstantiator
	hooks        types.StakingHooks

	Dao             collections.Item[string]
	Config          collections.Item[string]
	Pending         collections.Item[string]
	Issuer          collections.Item[string]
	ActiveThreshold collections.Item[string]
	Staked          collections.Map[string, sdkmath.Int]
	Claims          collections.Map[string, string]

	ledger snapshots.Ledger
}

// NewKeeper creates a new tokenvote keeper.
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
		Issuer: collections.NewItem(
			sb,
			collections.NewPrefix(types.IssuerKey),
			"issuer",
			collections.StringValue,
		),
		ActiveThreshold: collections.NewItem(
			sb,
			collections.NewPrefix(types.ActiveThresholdKey),
			"active_threshold",
			collections.StringValue,
		),
		Staked: collections.NewMap(
			sb,
			collections.NewPrefix(types.StakedKeyPrefix),
			"staked",
			collections.StringKey,
			sdk.IntValue,
		),
		Claims: collections.NewMap(
			sb,
			collections.NewPrefix(types.ClaimsKeyPrefix),
			"claims",
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

// SetBankKeeper wires the bank keeper used for supply lookups.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bankKeeper = bankKeeper
}

// SetContractInstantiator wires the host-runtime collaborator that emits
// contract-instantiation sub-messages.
func (k *Keeper) SetContractInstantiator(instantiator types.ContractInstantiator) {
	k.instantiator = instantiator
}

// SetHooks wires the staking hooks receiver.
func (k *Keeper) SetHooks(hooks types.StakingHooks) {
	k.hooks = hooks
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
// awaits its token creation reply.
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

func (k Keeper) getClaims(ctx context.Context, staker string) ([]types.Claim, error) {
	raw, err := k.Claims.Get(ctx, staker)
	if err != nil {
		return nil, nil
	}
	var claims []types.Claim
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("decode claims for %s: %w", staker, err)
	}
	return claims, nil
}

func (k Keeper) setClaims(ctx context.Context, staker string, claims []types.Claim) error {
	if len(claims) == 0 {
		return k.Claims.Remove(ctx, staker)
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return err
	}
	return k.Claims.Set(ctx, staker, string(raw))
}

func (k Keeper) getActiveThreshold(ctx context.Context) (*voting.ActiveThreshold, error) {
	raw, err := k.ActiveThreshold.Get(ctx)
	if err != nil {
		return nil, nil
	}
	var threshold voting.ActiveThreshold
	if err := json.Unmarshal([]byte(raw), &threshold); err != nil {
		return nil, fmt.Errorf("decode active threshold: %w", err)
	}
	return &threshold, nil
}

func (k Keeper) setActiveThreshold(ctx context.Context, threshold *voting.ActiveThreshold) error {
	if threshold == nil {
		return k.ActiveThreshold.Remove(ctx)
	}
	raw, err := json.Marshal(threshold)
	if err != nil {
		return err
	}
	return k.ActiveThreshold.Set(ctx, string(raw))
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

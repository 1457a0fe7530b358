package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/x/tokenvote/types"
)

// issuerInstantiateMsg is the init payload sent to a freshly stored
// token-factory issuer contract.
type issuerInstantiateMsg struct {
	Subdenom          string                 `json:"subdenom"`
	InitialBalances   []types.InitialBalance `json:"initial_balances"`
	InitialDaoBalance *sdkmath.Int           `json:"initial_dao_balance,omitempty"`
}

// Initialize runs the module's one-time setup. Attaching to an existing
// denom finalizes the config immediately; provisioning a new denom emits an
// issuer instantiation request and leaves the module pending until the reply
// arrives through OnInstantiateReply.
func (k Keeper) Initialize(ctx context.Context, msg types.MsgInitialize) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if _, err := k.Config.Get(ctx); err == nil {
		return types.ErrAlreadyConfigured
	}
	if pending, err := k.getPending(ctx); err != nil {
		return err
	} else if pending != nil {
		return types.ErrAlreadyConfigured
	}

	dao, err := types.ValidateAddress(msg.Dao)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "dao: %s", err)
	}
	if err := k.Dao.Set(ctx, dao); err != nil {
		return err
	}
	if err := k.setActiveThreshold(ctx, msg.ActiveThreshold); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if existing := msg.Token.Existing; existing != nil {
		cfg := types.Config{
			Denom:           existing.Denom,
			UnbondingBlocks: msg.UnbondingBlocks,
		}
		if err := k.setConfig(ctx, cfg); err != nil {
			return err
		}

		k.logger.Info("token voting initialized", "denom", cfg.Denom, "dao", dao)
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			EventTypeInitialized,
			sdk.NewAttribute(AttributeKeyDao, dao),
			sdk.NewAttribute(AttributeKeyDenom, cfg.Denom),
		))
		return nil
	}

	newToken := msg.Token.New
	if k.instantiator == nil {
		return fmt.Errorf("contract instantiator is not configured for token creation")
	}

	initMsg, err := json.Marshal(issuerInstantiateMsg{
		Subdenom:          newToken.Subdenom,
		InitialBalances:   newToken.InitialBalances,
		InitialDaoBalance: newToken.InitialDaoBalance,
	})
	if err != nil {
		return err
	}

	label := newToken.Label
	if label == "" {
		label = fmt.Sprintf("%s-issuer", newToken.Subdenom)
	}
	if err := k.instantiator.Instantiate(ctx, newToken.IssuerCodeID, label, initMsg); err != nil {
		return fmt.Errorf("requesting issuer instantiation: %w", err)
	}

	pending := types.PendingCreation{
		IssuerCodeID:    newToken.IssuerCodeID,
		Subdenom:        newToken.Subdenom,
		UnbondingBlocks: msg.UnbondingBlocks,
	}
	if err := k.setPending(ctx, pending); err != nil {
		return err
	}

	k.logger.Info("token creation requested", "subdenom", newToken.Subdenom, "code_id", newToken.IssuerCodeID)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		EventTypeTokenCreationRequested,
		sdk.NewAttribute(AttributeKeyDao, dao),
		sdk.NewAttribute(AttributeKeySubdenom, newToken.Subdenom),
	))
	return nil
}

// OnInstantiateReply finalizes a pending token creation with the issuer
// address carried by the host runtime's reply payload. At most one creation
// is ever pending, so a reply without one is rejected outright.
func (k Keeper) OnInstantiateReply(ctx context.Context, payload []byte) error {
	pending, err := k.getPending(ctx)
	if err != nil {
		return err
	}
	if pending == nil {
		return types.ErrUnexpectedReply
	}

	var reply types.InstantiateReply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return errorsmod.Wrap(types.ErrMalformedReplyPayload, err.Error())
	}
	if strings.TrimSpace(reply.ContractAddress) == "" {
		return types.ErrMalformedReplyPayload
	}
	issuer, err := types.ValidateAddress(reply.ContractAddress)
	if err != nil {
		return errorsmod.Wrap(types.ErrMalformedReplyPayload, err.Error())
	}

	if err := k.Issuer.Set(ctx, issuer); err != nil {
		return err
	}
	cfg := types.Config{
		Denom:           types.FactoryDenom(issuer, pending.Subdenom),
		UnbondingBlocks: pending.UnbondingBlocks,
	}
	if err := k.setConfig(ctx, cfg); err != nil {
		return err
	}
	if err := k.Pending.Remove(ctx); err != nil {
		return err
	}

	k.logger.Info("token voting finalized", "denom", cfg.Denom, "issuer", issuer)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeFinalized,
		sdk.NewAttribute(AttributeKeyIssuer, issuer),
		sdk.NewAttribute(AttributeKeyDenom, cfg.Denom),
	))
	return nil
}

// UpdateConfig changes the unbonding duration. DAO only.
func (k Keeper) UpdateConfig(ctx context.Context, msg types.MsgUpdateConfig) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireDao(ctx, msg.Sender); err != nil {
		return err
	}
	cfg, err := k.getConfig(ctx)
	if err != nil {
		return err
	}
	cfg.UnbondingBlocks = msg.UnbondingBlocks
	if err := k.setConfig(ctx, cfg); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeConfigUpdated,
		sdk.NewAttribute(AttributeKeyUnbondingBlocks, fmt.Sprintf("%d", msg.UnbondingBlocks)),
	))
	return nil
}

// UpdateActiveThreshold replaces or clears the activation threshold. DAO only.
func (k Keeper) UpdateActiveThreshold(ctx context.Context, msg types.MsgUpdateActiveThreshold) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.requireDao(ctx, msg.Sender); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}
	return k.setActiveThreshold(ctx, msg.ActiveThreshold)
}

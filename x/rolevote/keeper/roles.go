package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/x/rolevote/types"
)

// MintToken creates a role token and credits its weight to the owner at the
// current height. DAO only.
func (k Keeper) MintToken(ctx context.Context, msg types.MsgMintToken) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}
	if err := k.requireDao(ctx, msg.Sender); err != nil {
		return err
	}

	owner, err := types.ValidateAddress(msg.Owner)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "owner: %s", err)
	}
	token := types.RoleToken{
		TokenID:  msg.TokenID,
		Owner:    owner,
		Weight:   msg.Weight,
		Role:     msg.Role,
		TokenURI: msg.TokenURI,
	}
	if err := k.mintToken(ctx, token); err != nil {
		return err
	}

	k.logger.Debug("minted role token", "token_id", token.TokenID, "owner", owner, "weight", token.Weight)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeMintToken,
		sdk.NewAttribute(AttributeKeyTokenID, token.TokenID),
		sdk.NewAttribute(AttributeKeyOwner, owner),
		sdk.NewAttribute(AttributeKeyWeight, fmt.Sprintf("%d", token.Weight)),
	))
	return nil
}

// mintToken stores the token and applies its weight to the owner and
// aggregate snapshots.
func (k Keeper) mintToken(ctx context.Context, token types.RoleToken) error {
	if _, err := k.Tokens.Get(ctx, token.TokenID); err == nil {
		return errorsmod.Wrap(types.ErrDuplicateToken, token.TokenID)
	}
	if err := k.setToken(ctx, token); err != nil {
		return err
	}

	height := blockHeight(ctx)
	weight := sdkmath.NewIntFromUint64(token.Weight)
	if _, err := k.ledger.Add(ctx, token.Owner, height, weight); err != nil {
		return err
	}
	if _, err := k.ledger.AddToTotal(ctx, height, weight); err != nil {
		return err
	}
	return nil
}

// TransferToken moves a role token to a new owner, debiting the old owner
// and crediting the new one at the current height. The aggregate total is
// untouched; weight is conserved across transfers. The current owner or the
// DAO may transfer.
func (k Keeper) TransferToken(ctx context.Context, msg types.MsgTransferToken) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}

	sender, err := types.ValidateAddress(msg.Sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}
	token, err := k.getToken(ctx, msg.TokenID)
	if err != nil {
		return err
	}
	if sender != token.Owner {
		if err := k.requireDao(ctx, sender); err != nil {
			return err
		}
	}

	newOwner, err := types.ValidateAddress(msg.NewOwner)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "new owner: %s", err)
	}
	oldOwner := token.Owner
	if newOwner == oldOwner {
		return nil
	}

	token.Owner = newOwner
	if err := k.setToken(ctx, token); err != nil {
		return err
	}

	height := blockHeight(ctx)
	weight := sdkmath.NewIntFromUint64(token.Weight)
	if _, err := k.ledger.Add(ctx, oldOwner, height, weight.Neg()); err != nil {
		return err
	}
	if _, err := k.ledger.Add(ctx, newOwner, height, weight); err != nil {
		return err
	}

	k.logger.Debug("transferred role token", "token_id", token.TokenID, "from", oldOwner, "to", newOwner)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeTransferToken,
		sdk.NewAttribute(AttributeKeyTokenID, token.TokenID),
		sdk.NewAttribute(AttributeKeyOwner, oldOwner),
		sdk.NewAttribute(AttributeKeyNewOwner, newOwner),
	))
	return nil
}

// BurnToken destroys a role token and debits its weight from the owner and
// aggregate at the current height. DAO only.
func (k Keeper) BurnToken(ctx context.Context, msg types.MsgBurnToken) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}
	if err := k.requireDao(ctx, msg.Sender); err != nil {
		return err
	}

	token, err := k.getToken(ctx, msg.TokenID)
	if err != nil {
		return err
	}
	if err := k.Tokens.Remove(ctx, token.TokenID); err != nil {
		return err
	}

	height := blockHeight(ctx)
	weight := sdkmath.NewIntFromUint64(token.Weight)
	if _, err := k.ledger.Add(ctx, token.Owner, height, weight.Neg()); err != nil {
		return err
	}
	if _, err := k.ledger.AddToTotal(ctx, height, weight.Neg()); err != nil {
		return err
	}

	k.logger.Debug("burned role token", "token_id", token.TokenID, "owner", token.Owner)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeBurnToken,
		sdk.NewAttribute(AttributeKeyTokenID, token.TokenID),
		sdk.NewAttribute(AttributeKeyOwner, token.Owner),
	))
	return nil
}

// UpdateTokenWeight changes a role token's weight in place, shifting the
// owner and aggregate snapshots by the difference. DAO only.
func (k Keeper) UpdateTokenWeight(ctx context.Context, msg types.MsgUpdateTokenWeight) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}
	if err := k.requireDao(ctx, msg.Sender); err != nil {
		return err
	}

	token, err := k.getToken(ctx, msg.TokenID)
	if err != nil {
		return err
	}
	if token.Weight == msg.Weight {
		return nil
	}

	delta := sdkmath.NewIntFromUint64(msg.Weight).Sub(sdkmath.NewIntFromUint64(token.Weight))
	token.Weight = msg.Weight
	if err := k.setToken(ctx, token); err != nil {
		return err
	}

	height := blockHeight(ctx)
	if _, err := k.ledger.Add(ctx, token.Owner, height, delta); err != nil {
		return err
	}
	if _, err := k.ledger.AddToTotal(ctx, height, delta); err != nil {
		return err
	}

	k.logger.Debug("updated role token weight", "token_id", token.TokenID, "weight", msg.Weight)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeUpdateTokenWeight,
		sdk.NewAttribute(AttributeKeyTokenID, token.TokenID),
		sdk.NewAttribute(AttributeKeyWeight, fmt.Sprintf("%d", msg.Weight)),
	))
	return nil
}

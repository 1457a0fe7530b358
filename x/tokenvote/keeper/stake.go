package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ismellike/dao-contracts/x/tokenvote/types"
)

// Stake locks amount for the sender and credits their voting power at the
// current height. Repeated stakes in one block collapse into a single
// snapshot point holding the final balance.
func (k Keeper) Stake(ctx context.Context, msg types.MsgStake) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return err
	}

	staker, err := types.ValidateAddress(msg.Sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}

	staked, err := k.stakedBalance(ctx, staker)
	if err != nil {
		return err
	}
	staked = staked.Add(msg.Amount)
	if err := k.Staked.Set(ctx, staker, staked); err != nil {
		return err
	}

	height := blockHeight(ctx)
	if err := k.ledger.Record(ctx, staker, height, staked); err != nil {
		return err
	}
	if _, err := k.ledger.AddToTotal(ctx, height, msg.Amount); err != nil {
		return err
	}

	if k.hooks != nil {
		if err := k.hooks.AfterStake(ctx, staker, msg.Amount); err != nil {
			return err
		}
	}

	k.logger.Debug("staked", "staker", staker, "amount", msg.Amount.String(), "height", height)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeStake,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyAmount, msg.Amount.String()),
	))
	return nil
}

// Unstake starts unbonding amount of the sender's stake. Voting power drops
// at the current height; the tokens become claimable once the unbonding
// period elapses.
func (k Keeper) Unstake(ctx context.Context, msg types.MsgUnstake) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	cfg, err := k.getConfig(ctx)
	if err != nil {
		return err
	}

	staker, err := types.ValidateAddress(msg.Sender)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}

	staked, err := k.stakedBalance(ctx, staker)
	if err != nil {
		return err
	}
	if msg.Amount.GT(staked) {
		return errorsmod.Wrapf(types.ErrInsufficientStake, "staked %s, requested %s", staked, msg.Amount)
	}

	claims, err := k.getClaims(ctx, staker)
	if err != nil {
		return err
	}
	if len(claims) >= types.MaxClaims {
		return types.ErrTooManyClaims
	}

	staked = staked.Sub(msg.Amount)
	if staked.IsZero() {
		if err := k.Staked.Remove(ctx, staker); err != nil {
			return err
		}
	} else {
		if err := k.Staked.Set(ctx, staker, staked); err != nil {
			return err
		}
	}

	height := blockHeight(ctx)
	if err := k.ledger.Record(ctx, staker, height, staked); err != nil {
		return err
	}
	if _, err := k.ledger.AddToTotal(ctx, height, msg.Amount.Neg()); err != nil {
		return err
	}

	releaseHeight := height + cfg.UnbondingBlocks
	claims = append(claims, types.Claim{Amount: msg.Amount, ReleaseHeight: releaseHeight})
	if err := k.setClaims(ctx, staker, claims); err != nil {
		return err
	}

	if k.hooks != nil {
		if err := k.hooks.AfterUnstake(ctx, staker, msg.Amount); err != nil {
			return err
		}
	}

	k.logger.Debug("unstaked", "staker", staker, "amount", msg.Amount.String(), "release_height", releaseHeight)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeUnstake,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyAmount, msg.Amount.String()),
		sdk.NewAttribute(AttributeKeyReleaseHeight, fmt.Sprintf("%d", releaseHeight)),
	))
	return nil
}

// Claim releases every mature unbonding claim of the sender and returns the
// released amount. Voting power is untouched; it was debited at unstake
// time. The actual token payout is signalled to the treasury collaborator
// through the claim hook and event.
func (k Keeper) Claim(ctx context.Context, msg types.MsgClaim) (sdkmath.Int, error) {
	if err := msg.ValidateBasic(); err != nil {
		return sdkmath.Int{}, err
	}
	if _, err := k.getConfig(ctx); err != nil {
		return sdkmath.Int{}, err
	}

	staker, err := types.ValidateAddress(msg.Sender)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(types.ErrInvalidAddress, "sender: %s", err)
	}

	claims, err := k.getClaims(ctx, staker)
	if err != nil {
		return sdkmath.Int{}, err
	}

	height := blockHeight(ctx)
	released := sdkmath.ZeroInt()
	remaining := claims[:0]
	for _, claim := range claims {
		if claim.ReleaseHeight <= height {
			released = released.Add(claim.Amount)
		} else {
			remaining = append(remaining, claim)
		}
	}
	if released.IsZero() {
		return sdkmath.Int{}, types.ErrNothingToClaim
	}
	if err := k.setClaims(ctx, staker, remaining); err != nil {
		return sdkmath.Int{}, err
	}

	if k.hooks != nil {
		if err := k.hooks.AfterClaim(ctx, staker, released); err != nil {
			return sdkmath.Int{}, err
		}
	}

	k.logger.Debug("claimed", "staker", staker, "amount", released.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		EventTypeClaim,
		sdk.NewAttribute(AttributeKeyStaker, staker),
		sdk.NewAttribute(AttributeKeyAmount, released.String()),
	))
	return released, nil
}

func (k Keeper) stakedBalance(ctx context.Context, staker string) (sdkmath.Int, error) {
	staked, err := k.Staked.Get(ctx, staker)
	if err != nil {
		return sdkmath.ZeroInt(), nil
	}
	return staked, nil
}

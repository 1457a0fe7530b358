package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/ismellike/dao-contracts/x/tokenvote/types"
	"github.com/ismellike/dao-contracts/x/voting"
)

// VotingPowerAtHeight returns the address's power at the given height, or at
// the current height when height is nil. Addresses with no stake history
// have zero power.
func (k Keeper) VotingPowerAtHeight(ctx context.Context, address string, height *uint64) (voting.VotingPowerAtHeightResponse, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return voting.VotingPowerAtHeightResponse{}, err
	}
	addr, err := types.ValidateAddress(address)
	if err != nil {
		return voting.VotingPowerAtHeightResponse{}, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	h := blockHeight(ctx)
	if height != nil {
		h = *height
	}
	power, err := k.ledger.ValueAt(ctx, addr, h)
	if err != nil {
		return voting.VotingPowerAtHeightResponse{}, err
	}
	return voting.VotingPowerAtHeightResponse{Power: power, Height: h}, nil
}

// TotalPowerAtHeight returns the aggregate power at the given height, or at
// the current height when height is nil.
func (k Keeper) TotalPowerAtHeight(ctx context.Context, height *uint64) (voting.TotalPowerAtHeightResponse, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return voting.TotalPowerAtHeightResponse{}, err
	}

	h := blockHeight(ctx)
	if height != nil {
		h = *height
	}
	power, err := k.ledger.TotalAt(ctx, h)
	if err != nil {
		return voting.TotalPowerAtHeightResponse{}, err
	}
	return voting.TotalPowerAtHeightResponse{Power: power, Height: h}, nil
}

// GetConfig returns the finalized config.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	return k.getConfig(ctx)
}

// GetDao returns the owning DAO address.
func (k Keeper) GetDao(ctx context.Context) (string, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return "", err
	}
	return k.Dao.Get(ctx)
}

// Info identifies the module. Available regardless of configuration state;
// it carries no power figures.
func (k Keeper) Info() voting.InfoResponse {
	return voting.InfoResponse{
		Contract: types.ContractName,
		Version:  types.ContractVersion,
	}
}

// ClaimsFor lists the address's pending unbonding claims.
func (k Keeper) ClaimsFor(ctx context.Context, address string) ([]types.Claim, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return nil, err
	}
	addr, err := types.ValidateAddress(address)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}
	return k.getClaims(ctx, addr)
}

// ListStakers pages through current staker balances in address order.
func (k Keeper) ListStakers(ctx context.Context, limit, offset int) ([]types.StakerBalance, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	stakers := make([]types.StakerBalance, 0, limit)
	seen := 0
	err := k.Staked.Walk(ctx, nil, func(address string, staked sdkmath.Int) (bool, error) {
		if seen < offset {
			seen++
			return false, nil
		}
		if len(stakers) >= limit {
			return true, nil
		}
		stakers = append(stakers, types.StakerBalance{Address: address, Staked: staked})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return stakers, nil
}

// IsActive reports whether total power satisfies the configured activation
// threshold. Modules without a threshold are always active.
func (k Keeper) IsActive(ctx context.Context) (bool, error) {
	cfg, err := k.getConfig(ctx)
	if err != nil {
		return false, err
	}
	threshold, err := k.getActiveThreshold(ctx)
	if err != nil {
		return false, err
	}
	if threshold == nil {
		return true, nil
	}

	total, err := k.ledger.LatestTotal(ctx)
	if err != nil {
		return false, err
	}

	supply := sdkmath.ZeroInt()
	if threshold.Percentage != nil {
		if k.bankKeeper == nil {
			return false, fmt.Errorf("bank keeper is not configured for supply lookups")
		}
		supply, err = k.bankKeeper.GetSupply(ctx, cfg.Denom)
		if err != nil {
			return false, err
		}
	}
	return threshold.Met(total, supply), nil
}

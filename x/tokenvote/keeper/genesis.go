package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/ismellike/dao-contracts/x/tokenvote/types"
)

// InitGenesis installs the genesis state and records the opening power
// snapshots at the current height.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if gs.Dao != "" {
		if err := k.Dao.Set(ctx, gs.Dao); err != nil {
			return err
		}
	}
	if gs.Config != nil {
		if err := k.setConfig(ctx, *gs.Config); err != nil {
			return err
		}
	}
	if gs.Pending != nil {
		if err := k.setPending(ctx, *gs.Pending); err != nil {
			return err
		}
	}
	if gs.Issuer != "" {
		if err := k.Issuer.Set(ctx, gs.Issuer); err != nil {
			return err
		}
	}
	if err := k.setActiveThreshold(ctx, gs.ActiveThreshold); err != nil {
		return err
	}

	height := blockHeight(ctx)
	total := sdkmath.ZeroInt()
	for _, staker := range gs.Stakers {
		if staker.Staked.IsPositive() {
			if err := k.Staked.Set(ctx, staker.Address, staker.Staked); err != nil {
				return err
			}
			if err := k.ledger.Record(ctx, staker.Address, height, staker.Staked); err != nil {
				return err
			}
			total = total.Add(staker.Staked)
		}
		if err := k.setClaims(ctx, staker.Address, staker.Claims); err != nil {
			return err
		}
	}
	if total.IsPositive() {
		if err := k.ledger.RecordTotal(ctx, height, total); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis dumps the current module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	if dao, err := k.Dao.Get(ctx); err == nil {
		gs.Dao = dao
	}
	if cfg, err := k.getConfig(ctx); err == nil {
		gs.Config = &cfg
	}
	pending, err := k.getPending(ctx)
	if err != nil {
		return nil, err
	}
	gs.Pending = pending
	if issuer, err := k.Issuer.Get(ctx); err == nil {
		gs.Issuer = issuer
	}
	threshold, err := k.getActiveThreshold(ctx)
	if err != nil {
		return nil, err
	}
	gs.ActiveThreshold = threshold

	stakers := map[string]*types.GenesisStaker{}
	order := []string{}
	err = k.Staked.Walk(ctx, nil, func(address string, staked sdkmath.Int) (bool, error) {
		stakers[address] = &types.GenesisStaker{Address: address, Staked: staked}
		order = append(order, address)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Claims.Walk(ctx, nil, func(address string, _ string) (bool, error) {
		claims, err := k.getClaims(ctx, address)
		if err != nil {
			return false, err
		}
		if staker, ok := stakers[address]; ok {
			staker.Claims = claims
		} else {
			stakers[address] = &types.GenesisStaker{Address: address, Staked: sdkmath.ZeroInt(), Claims: claims}
			order = append(order, address)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	for _, address := range order {
		gs.Stakers = append(gs.Stakers, *stakers[address])
	}
	return gs, nil
}

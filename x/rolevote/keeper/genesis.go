package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/ismellike/dao-contracts/x/rolevote/types"
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

	height := blockHeight(ctx)
	owners := map[string]sdkmath.Int{}
	order := []string{}
	total := sdkmath.ZeroInt()
	for _, token := range gs.Tokens {
		if err := k.setToken(ctx, token); err != nil {
			return err
		}
		weight := sdkmath.NewIntFromUint64(token.Weight)
		if current, ok := owners[token.Owner]; ok {
			owners[token.Owner] = current.Add(weight)
		} else {
			owners[token.Owner] = weight
			order = append(order, token.Owner)
		}
		total = total.Add(weight)
	}
	for _, owner := range order {
		if err := k.ledger.Record(ctx, owner, height, owners[owner]); err != nil {
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

	err = k.Tokens.Walk(ctx, nil, func(tokenID string, _ string) (bool, error) {
		token, err := k.getToken(ctx, tokenID)
		if err != nil {
			return false, err
		}
		gs.Tokens = append(gs.Tokens, token)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

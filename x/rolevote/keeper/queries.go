package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/ismellike/dao-contracts/x/rolevote/types"
	"github.com/ismellike/dao-contracts/x/voting"
)

// VotingPowerAtHeight returns the address's power at the given height, or at
// the current height when height is nil. Addresses holding no role tokens
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

// Token returns one role token by id.
func (k Keeper) Token(ctx context.Context, tokenID string) (types.RoleToken, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return types.RoleToken{}, err
	}
	return k.getToken(ctx, tokenID)
}

// ListTokens pages through role tokens in token-id order.
func (k Keeper) ListTokens(ctx context.Context, limit, offset int) ([]types.RoleToken, error) {
	if _, err := k.getConfig(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tokens := make([]types.RoleToken, 0, limit)
	seen := 0
	err := k.Tokens.Walk(ctx, nil, func(tokenID string, _ string) (bool, error) {
		if seen < offset {
			seen++
			return false, nil
		}
		if len(tokens) >= limit {
			return true, nil
		}
		token, err := k.getToken(ctx, tokenID)
		if err != nil {
			return false, err
		}
		tokens = append(tokens, token)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

package types

import (
	"context"

	"cosmossdk.io/math"
)

// ContractInstantiator emits a contract-instantiation sub-message to the
// host runtime. The created contract's address arrives later through the
// module's reply handler; dispatch itself is outside this module.
type ContractInstantiator interface {
	Instantiate(ctx context.Context, codeID uint64, label string, msg []byte) error
}

// BankKeeper is the subset of the bank module consulted for denom supply.
type BankKeeper interface {
	GetSupply(ctx context.Context, denom string) (math.Int, error)
}

// StakingHooks receives notifications after stake state changes commit.
type StakingHooks interface {
	AfterStake(ctx context.Context, staker string, amount math.Int) error
	AfterUnstake(ctx context.Context, staker string, amount math.Int) error
	AfterClaim(ctx context.Context, staker string, amount math.Int) error
}

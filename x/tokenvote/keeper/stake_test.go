package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/ismellike/dao-contracts/x/tokenvote/types"
)

func TestStakeUnstakeClaimLifecycle(t *testing.T) {
	k, ctx := setupKeeper(t)
	dao := testAddr("dao")
	alice := testAddr("alice")
	initExisting(t, k, ctx, dao, 7)

	// Stake 100 at height 10.
	ctx10 := ctx.WithBlockHeight(10)
	require.NoError(t, k.Stake(ctx10, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(100)}))

	power, err := k.VotingPowerAtHeight(ctx10, alice, heightPtr(10))
	require.NoError(t, err)
	require.Equal(t, int64(100), power.Power.Int64())

	// Stake 50 more at height 20.
	ctx20 := ctx.WithBlockHeight(20)
	require.NoError(t, k.Stake(ctx20, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(50)}))

	power, err = k.VotingPowerAtHeight(ctx20, alice, heightPtr(15))
	require.NoError(t, err)
	require.Equal(t, int64(100), power.Power.Int64())

	power, err = k.VotingPowerAtHeight(ctx20, alice, heightPtr(20))
	require.NoError(t, err)
	require.Equal(t, int64(150), power.Power.Int64())

	// Unstake 30 at height 25: power drops immediately, claim matures at 32.
	ctx25 := ctx.WithBlockHeight(25)
	require.NoError(t, k.Unstake(ctx25, types.MsgUnstake{Sender: alice, Amount: sdkmath.NewInt(30)}))

	power, err = k.VotingPowerAtHeight(ctx25, alice, heightPtr(25))
	require.NoError(t, err)
	require.Equal(t, int64(120), power.Power.Int64())

	claims, err := k.ClaimsFor(ctx25, alice)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	require.Equal(t, uint64(32), claims[0].ReleaseHeight)
	require.Equal(t, int64(30), claims[0].Amount.Int64())

	// One block early: nothing due.
	_, err = k.Claim(ctx.WithBlockHeight(31), types.MsgClaim{Sender: alice})
	require.ErrorIs(t, err, types.ErrNothingToClaim)

	// At the release height the claim pays out.
	released, err := k.Claim(ctx.WithBlockHeight(32), types.MsgClaim{Sender: alice})
	require.NoError(t, err)
	require.Equal(t, int64(30), released.Int64())

	claims, err = k.ClaimsFor(ctx.WithBlockHeight(32), alice)
	require.NoError(t, err)
	require.Empty(t, claims)

	// Claiming voting power is unaffected by the payout.
	power, err = k.VotingPowerAtHeight(ctx.WithBlockHeight(32), alice, nil)
	require.NoError(t, err)
	require.Equal(t, int64(120), power.Power.Int64())
}

func TestStakeRejectsZeroAmount(t *testing.T) {
	k, ctx := setupKeeper(t)
	initExisting(t, k, ctx, testAddr("dao"), 0)

	err := k.Stake(ctx, types.MsgStake{Sender: testAddr("alice"), Amount: sdkmath.ZeroInt()})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestUnstakeRejectsMoreThanStaked(t *testing.T) {
	k, ctx := setupKeeper(t)
	alice := testAddr("alice")
	initExisting(t, k, ctx, testAddr("dao"), 0)

	require.NoError(t, k.Stake(ctx, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(10)}))
	err := k.Unstake(ctx, types.MsgUnstake{Sender: alice, Amount: sdkmath.NewInt(11)})
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	// Never-staked addresses have zero stake to draw on.
	err = k.Unstake(ctx, types.MsgUnstake{Sender: testAddr("bob"), Amount: sdkmath.NewInt(1)})
	require.ErrorIs(t, err, types.ErrInsufficientStake)
}

func TestSameHeightStakesCollapseToSinglePoint(t *testing.T) {
	k, ctx := setupKeeper(t)
	alice := testAddr("alice")
	initExisting(t, k, ctx, testAddr("dao"), 0)

	ctx10 := ctx.WithBlockHeight(10)
	require.NoError(t, k.Stake(ctx10, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(100)}))
	require.NoError(t, k.Stake(ctx10, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(50)}))

	// The block's final balance is the only value recorded at that height.
	power, err := k.VotingPowerAtHeight(ctx10, alice, heightPtr(10))
	require.NoError(t, err)
	require.Equal(t, int64(150), power.Power.Int64())

	// No phantom point survives below the write height.
	power, err = k.VotingPowerAtHeight(ctx10, alice, heightPtr(9))
	require.NoError(t, err)
	require.True(t, power.Power.IsZero())

	total, err := k.TotalPowerAtHeight(ctx10, heightPtr(10))
	require.NoError(t, err)
	require.Equal(t, int64(150), total.Power.Int64())
}

func TestTotalPowerEqualsSumOfStakers(t *testing.T) {
	k, ctx := setupKeeper(t)
	initExisting(t, k, ctx, testAddr("dao"), 3)

	stakers := map[string]int64{
		testAddr("alice"): 100,
		testAddr("bob"):   250,
		testAddr("carol"): 7,
	}
	ctx = ctx.WithBlockHeight(5)
	for staker, amount := range stakers {
		require.NoError(t, k.Stake(ctx, types.MsgStake{Sender: staker, Amount: sdkmath.NewInt(amount)}))
	}
	ctx = ctx.WithBlockHeight(6)
	require.NoError(t, k.Unstake(ctx, types.MsgUnstake{Sender: testAddr("bob"), Amount: sdkmath.NewInt(50)}))

	sum := sdkmath.ZeroInt()
	for staker := range stakers {
		power, err := k.VotingPowerAtHeight(ctx, staker, nil)
		require.NoError(t, err)
		sum = sum.Add(power.Power)
	}
	total, err := k.TotalPowerAtHeight(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, total.Power, sum)
	require.Equal(t, int64(307), total.Power.Int64())
}

func TestUnstakeCapsPendingClaims(t *testing.T) {
	k, ctx := setupKeeper(t)
	alice := testAddr("alice")
	initExisting(t, k, ctx, testAddr("dao"), 1000)

	require.NoError(t, k.Stake(ctx, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(types.MaxClaims + 1)}))
	for i := 0; i < types.MaxClaims; i++ {
		require.NoError(t, k.Unstake(ctx, types.MsgUnstake{Sender: alice, Amount: sdkmath.OneInt()}))
	}
	err := k.Unstake(ctx, types.MsgUnstake{Sender: alice, Amount: sdkmath.OneInt()})
	require.ErrorIs(t, err, types.ErrTooManyClaims)
}

func TestStakeLifecycleInvokesHooks(t *testing.T) {
	k, ctx := setupKeeper(t)
	alice := testAddr("alice")
	initExisting(t, k, ctx, testAddr("dao"), 0)

	hooks := &mockHooks{}
	k.SetHooks(hooks)

	require.NoError(t, k.Stake(ctx, types.MsgStake{Sender: alice, Amount: sdkmath.NewInt(5)}))
	require.NoError(t, k.Unstake(ctx, types.MsgUnstake{Sender: alice, Amount: sdkmath.NewInt(2)}))
	_, err := k.Claim(ctx, types.MsgClaim{Sender: alice})
	require.NoError(t, err)

	require.Len(t, hooks.calls, 3)
	require.Equal(t, "stake", hooks.calls[0].kind)
	require.Equal(t, "unstake", hooks.calls[1].kind)
	require.Equal(t, "claim", hooks.calls[2].kind)
	require.Equal(t, int64(2), hooks.calls[2].amount.Int64())
}

func heightPtr(h uint64) *uint64 {
	return &h
}

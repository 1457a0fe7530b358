package keeper_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storemetrics "cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/ismellike/dao-contracts/x/tokenvote/keeper"
	"github.com/ismellike/dao-contracts/x/tokenvote/types"
)

type instantiateRequest struct {
	codeID uint64
	label  string
	msg    []byte
}

type mockInstantiator struct {
	requests []instantiateRequest
}

func (m *mockInstantiator) Instantiate(_ context.Context, codeID uint64, label string, msg []byte) error {
	m.requests = append(m.requests, instantiateRequest{codeID: codeID, label: label, msg: msg})
	return nil
}

type mockBankKeeper struct {
	supply map[string]sdkmath.Int
}

func (m mockBankKeeper) GetSupply(_ context.Context, denom string) (sdkmath.Int, error) {
	if amount, ok := m.supply[denom]; ok {
		return amount, nil
	}
	return sdkmath.ZeroInt(), nil
}

type hookCall struct {
	kind   string
	staker string
	amount sdkmath.Int
}

type mockHooks struct {
	calls []hookCall
}

func (m *mockHooks) AfterStake(_ context.Context, staker string, amount sdkmath.Int) error {
	m.calls = append(m.calls, hookCall{kind: "stake", staker: staker, amount: amount})
	return nil
}

func (m *mockHooks) AfterUnstake(_ context.Context, staker string, amount sdkmath.Int) error {
	m.calls = append(m.calls, hookCall{kind: "unstake", staker: staker, amount: amount})
	return nil
}

func (m *mockHooks) AfterClaim(_ context.Context, staker string, amount sdkmath.Int) error {
	m.calls = append(m.calls, hookCall{kind: "claim", staker: staker, amount: amount})
	return nil
}

func setupKeeper(t *testing.T) (keeper.Keeper, sdk.Context) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := rootmulti.NewStore(db, log.NewNopLogger(), storemetrics.NoOpMetrics{})
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	require.NoError(t, cms.LoadLatestVersion())

	header := tmproto.Header{
		ChainID: "dao-test-1",
		Height:  1,
		Time:    time.Unix(1_770_000_000, 0).UTC(),
	}
	ctx := sdk.NewContext(cms, header, false, log.NewNopLogger())

	reg := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(reg)
	cdc := codec.NewProtoCodec(reg)

	k := keeper.NewKeeper(cdc, runtime.NewKVStoreService(storeKey), log.NewNopLogger())
	return k, ctx
}

func testAddr(seed string) string {
	return sdk.AccAddress([]byte(seed)).String()
}

// initExisting finalizes the module against an existing denom.
func initExisting(t *testing.T, k keeper.Keeper, ctx sdk.Context, dao string, unbondingBlocks uint64) {
	t.Helper()
	err := k.Initialize(ctx, types.MsgInitialize{
		Dao: dao,
		Token: types.TokenSource{
			Existing: &types.ExistingToken{Denom: "udao"},
		},
		UnbondingBlocks: unbondingBlocks,
	})
	require.NoError(t, err)
}

func replyPayload(t *testing.T, address string) []byte {
	t.Helper()
	raw, err := json.Marshal(types.InstantiateReply{ContractAddress: address})
	require.NoError(t, err)
	return raw
}

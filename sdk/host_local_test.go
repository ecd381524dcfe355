package sdk_test

import (
	"path/filepath"
	"testing"

	"nft_editions/sdk"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestInvokeCommits(t *testing.T) {
	host := sdk.ResetLocal()

	err := host.Invoke(func() {
		sdk.StateSetObject("k", "v")
		sdk.Log("hello")
	})
	require.NoError(t, err)

	val := sdk.StateGetObject("k")
	require.NotNil(t, val)
	require.Equal(t, "v", *val)
	require.Equal(t, []string{"hello"}, host.Logs())
}

func TestInvokeRollsBackOnRevert(t *testing.T) {
	host := sdk.ResetLocal()

	err := host.Invoke(func() {
		sdk.StateSetObject("k", "v")
		sdk.Log("doomed")
		sdk.Revert("boom", "some_symbol")
	})
	require.Error(t, err)
	var ab *sdk.CallAbort
	require.ErrorAs(t, err, &ab)
	require.Equal(t, "some_symbol", ab.Symbol)

	require.Nil(t, sdk.StateGetObject("k"), "state rolled back")
	require.Empty(t, host.Logs(), "logs rolled back")
}

func TestInvokeRollsBackOnAbort(t *testing.T) {
	host := sdk.ResetLocal()

	err := host.Invoke(func() {
		sdk.StateSetObject("k", "v")
		sdk.Abort("fatal")
	})
	require.Error(t, err)
	require.Nil(t, sdk.StateGetObject("k"))
	_ = host
}

func TestDrawEnforcesIntentLimit(t *testing.T) {
	host := sdk.ResetLocal()
	buyer := sdk.Address("hive:buyer")
	host.Deposit(buyer, 1000, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("100", sdk.AssetHive)}
	err := host.Call(buyer, intents, func() {
		sdk.HiveDraw(uint256.NewInt(60), sdk.AssetHive)
		// cumulative 110 > 100, the whole call unwinds
		sdk.HiveDraw(uint256.NewInt(50), sdk.AssetHive)
	})
	require.Error(t, err)
	require.Equal(t, "1000", host.BalanceOf(buyer, sdk.AssetHive).Dec())
	require.Equal(t, "0", host.BalanceOf(host.ContractAddress(), sdk.AssetHive).Dec())
}

func TestDrawWithinLimitMovesFunds(t *testing.T) {
	host := sdk.ResetLocal()
	buyer := sdk.Address("hive:buyer")
	host.Deposit(buyer, 1000, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("100", sdk.AssetHive)}
	err := host.Call(buyer, intents, func() {
		sdk.HiveDraw(uint256.NewInt(100), sdk.AssetHive)
	})
	require.NoError(t, err)
	require.Equal(t, "900", host.BalanceOf(buyer, sdk.AssetHive).Dec())
	require.Equal(t, "100", host.BalanceOf(host.ContractAddress(), sdk.AssetHive).Dec())
}

func TestHiveTransferRefusals(t *testing.T) {
	host := sdk.ResetLocal()
	rcpt := sdk.Address("hive:rcpt")

	err := host.Invoke(func() {
		// nothing on the contract balance yet
		terr := sdk.HiveTransfer(rcpt, uint256.NewInt(10), sdk.AssetHive)
		require.EqualError(t, terr, "insufficient contract balance")
	})
	require.NoError(t, err)

	host.Deposit(host.ContractAddress(), 100, sdk.AssetHive)
	host.FailTransfersTo(rcpt, true)
	err = host.Invoke(func() {
		terr := sdk.HiveTransfer(rcpt, uint256.NewInt(10), sdk.AssetHive)
		require.EqualError(t, terr, "transfer rejected by recipient")
	})
	require.NoError(t, err)
	require.Equal(t, "0", host.BalanceOf(rcpt, sdk.AssetHive).Dec())
}

func TestGetEnvRoundTrip(t *testing.T) {
	host := sdk.ResetLocal()
	host.Sender = sdk.Address("hive:someone")
	host.Intents = []sdk.Intent{sdk.TransferAllowIntent("5", sdk.AssetHive)}

	err := host.Invoke(func() {
		env := sdk.GetEnv()
		require.Equal(t, sdk.Address("hive:someone"), env.Sender.Address)
		require.Len(t, env.Intents, 1)
		require.Equal(t, "transfer.allow", env.Intents[0].Type)
		require.Equal(t, "5", env.Intents[0].Args["limit"])
	})
	require.NoError(t, err)
}

func TestStateDBPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := sdk.OpenStateDB(path)
	require.NoError(t, err)

	host := sdk.ResetLocal()
	require.NoError(t, host.AttachDB(db))
	require.NoError(t, host.Invoke(func() {
		sdk.StateSetObject("persisted", "yes")
	}))
	require.NoError(t, db.Close())

	// a fresh host on the same file sees the committed state
	db2, err := sdk.OpenStateDB(path)
	require.NoError(t, err)
	defer db2.Close()

	host2 := sdk.ResetLocal()
	require.NoError(t, host2.AttachDB(db2))
	val := sdk.StateGetObject("persisted")
	require.NotNil(t, val)
	require.Equal(t, "yes", *val)
}

func TestStateDBDropsRolledBackWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := sdk.OpenStateDB(path)
	require.NoError(t, err)
	defer db.Close()

	host := sdk.ResetLocal()
	require.NoError(t, host.AttachDB(db))
	require.Error(t, host.Invoke(func() {
		sdk.StateSetObject("ghost", "1")
		sdk.Abort("no")
	}))

	kv, err := db.Load()
	require.NoError(t, err)
	require.NotContains(t, kv, "ghost")
}

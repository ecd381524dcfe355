package contract_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"nft_editions/contract"
	"nft_editions/sdk"

	"github.com/stretchr/testify/require"
)

const (
	owner = sdk.Address("hive:edition-owner")
	alice = sdk.Address("hive:alice")
	bob   = sdk.Address("hive:bob")
	carol = sdk.Address("hive:carol")
)

// newHost resets the local chain before each test so state never leaks.
func newHost(t *testing.T) *sdk.LocalHost {
	t.Helper()
	return sdk.ResetLocal()
}

func strptr(s string) *string { return &s }

// mustCall runs a contract call as sender and fails the test on revert.
func mustCall(t *testing.T, host *sdk.LocalHost, sender sdk.Address, intents []sdk.Intent, fn func()) {
	t.Helper()
	require.NoError(t, host.Call(sender, intents, fn))
}

// requireRevert runs a call expected to revert with the given symbol.
func requireRevert(t *testing.T, host *sdk.LocalHost, sender sdk.Address, intents []sdk.Intent, symbol string, fn func()) {
	t.Helper()
	err := host.Call(sender, intents, fn)
	require.Error(t, err)
	var ab *sdk.CallAbort
	require.ErrorAs(t, err, &ab)
	require.Equal(t, symbol, ab.Symbol, "revert symbol mismatch: %s", ab.Msg)
}

// initPayload builds a contract_init payload with the standard test edition:
// size 1000, 2.5% royalty and a 1% share for alice.
func initPayload() string {
	return initPayloadWith(1000, 250, `[{"address":"hive:alice","bps":100}]`)
}

func initPayloadWith(size uint64, royaltyBps uint64, sharesJSON string) string {
	return fmt.Sprintf(`{
		"owner": "%s",
		"name": "Genesis",
		"symbol": "GEN",
		"description": "first run",
		"content_url": "ipfs://bafyexample",
		"content_hash": "QmHashExample",
		"content_type": "image/png",
		"size": %d,
		"royalty_bps": %d,
		"shares": %s
	}`, owner, size, royaltyBps, sharesJSON)
}

// initEdition runs contract_init with the standard test edition.
func initEdition(t *testing.T, host *sdk.LocalHost) {
	t.Helper()
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayload()))
	})
}

// setPrice opens the sale gate as the owner.
func setPrice(t *testing.T, host *sdk.LocalHost, price string) {
	t.Helper()
	mustCall(t, host, owner, nil, func() {
		contract.SetPriceEntry(strptr(`{"price":"` + price + `"}`))
	})
}

// purchase buys one token as buyer with an exact-limit intent.
func purchase(t *testing.T, host *sdk.LocalHost, buyer sdk.Address, limit string) {
	t.Helper()
	intents := []sdk.Intent{sdk.TransferAllowIntent(limit, sdk.AssetHive)}
	mustCall(t, host, buyer, intents, func() {
		contract.PurchaseEntry(nil)
	})
}

// mintAs self-mints one token as the given sender.
func mintAs(t *testing.T, host *sdk.LocalHost, sender sdk.Address) {
	t.Helper()
	mustCall(t, host, sender, nil, func() {
		contract.MintEntry(nil)
	})
}

// mintFor has the owner mint one token directly to the recipient.
func mintFor(t *testing.T, host *sdk.LocalHost, to sdk.Address) {
	t.Helper()
	mustCall(t, host, owner, nil, func() {
		contract.MintBatchEntry(strptr(`{"to":["` + to.String() + `"]}`))
	})
}

// getEdition fetches and decodes the edition view.
func getEdition(t *testing.T, host *sdk.LocalHost) contract.EditionView {
	t.Helper()
	var view contract.EditionView
	mustCall(t, host, owner, nil, func() {
		res := contract.GetEditionEntry(nil)
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view
}

// getShareholders fetches and decodes the share table view.
func getShareholders(t *testing.T, host *sdk.LocalHost) contract.ShareTableView {
	t.Helper()
	var view contract.ShareTableView
	mustCall(t, host, owner, nil, func() {
		res := contract.GetShareholdersEntry(nil)
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view
}

// totalSupply fetches the alive token count.
func totalSupply(t *testing.T, host *sdk.LocalHost) uint64 {
	t.Helper()
	var view contract.SupplyView
	mustCall(t, host, owner, nil, func() {
		res := contract.TotalSupplyEntry(nil)
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view.TotalSupply
}

// balanceOf fetches the alive token count of one holder.
func balanceOf(t *testing.T, host *sdk.LocalHost, addr sdk.Address) uint64 {
	t.Helper()
	var view contract.BalanceView
	mustCall(t, host, owner, nil, func() {
		res := contract.BalanceOfEntry(strptr(`{"address":"` + addr.String() + `"}`))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view.Balance
}

// ownerOf resolves the holder of a token id.
func ownerOf(t *testing.T, host *sdk.LocalHost, id uint64) string {
	t.Helper()
	var view contract.OwnerView
	mustCall(t, host, owner, nil, func() {
		res := contract.OwnerOfEntry(strptr(fmt.Sprintf(`{"id":%d}`, id)))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view.Owner
}

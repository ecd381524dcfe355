package contract_test

import (
	"encoding/json"
	"testing"

	"nft_editions/contract"
	"nft_editions/sdk"

	"github.com/stretchr/testify/require"
)

func royaltyInfo(t *testing.T, host *sdk.LocalHost, payload string) contract.RoyaltyView {
	t.Helper()
	var view contract.RoyaltyView
	mustCall(t, host, bob, nil, func() {
		res := contract.RoyaltyInfoEntry(strptr(payload))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	return view
}

func TestRoyaltyInfo(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	view := royaltyInfo(t, host, `{"id":1,"sale_price":"10000"}`)

	// 250 bps of 10000
	require.Equal(t, "250", view.Amount)
	require.Equal(t, owner.String(), view.Receiver)
}

func TestRoyaltyInfoTruncates(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	view := royaltyInfo(t, host, `{"id":1,"sale_price":"39"}`)
	require.Equal(t, "0", view.Amount, "39 * 250 / 10000 truncates to zero")
}

func TestRoyaltyInfoZeroRate(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(10, 0, `[]`)))
	})

	view := royaltyInfo(t, host, `{"id":1,"sale_price":"1000000"}`)
	require.Equal(t, "0", view.Amount)
	require.Equal(t, "", view.Receiver, "no royalty rate means no receiver")
}

func TestRoyaltyInfoAfterRenounce(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mustCall(t, host, owner, nil, func() {
		contract.TransferOwnerEntry(strptr(`{"to":""}`))
	})

	view := royaltyInfo(t, host, `{"id":1,"sale_price":"10000"}`)
	require.Equal(t, "0", view.Amount)
	require.Equal(t, "", view.Receiver)
}

func TestRoyaltyInfoFollowsOwner(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mustCall(t, host, owner, nil, func() {
		contract.TransferOwnerEntry(strptr(`{"to":"hive:carol"}`))
	})

	view := royaltyInfo(t, host, `{"id":1,"sale_price":"10000"}`)
	require.Equal(t, "250", view.Amount)
	require.Equal(t, carol.String(), view.Receiver)
}

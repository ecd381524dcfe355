package contract_test

import (
	"encoding/json"
	"testing"

	"nft_editions/contract"

	"github.com/stretchr/testify/require"
)

func TestTransferToken(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	mustCall(t, host, alice, nil, func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:bob","id":1}`))
	})
	require.Equal(t, bob.String(), ownerOf(t, host, 1))
	require.Equal(t, uint64(0), balanceOf(t, host, alice))
	require.Equal(t, uint64(1), balanceOf(t, host, bob))
}

func TestTransferTokenUnauthorized(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:bob","id":1}`))
	})
	require.Equal(t, alice.String(), ownerOf(t, host, 1))
}

func TestTransferUnknownToken(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, alice, nil, "token_not_found", func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:bob","id":7}`))
	})
}

func TestApproveAndTransfer(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	mustCall(t, host, alice, nil, func() {
		contract.ApproveTokenEntry(strptr(`{"to":"hive:carol","id":1}`))
	})

	// the operator moves the token on alice's behalf
	mustCall(t, host, carol, nil, func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:bob","id":1}`))
	})
	require.Equal(t, bob.String(), ownerOf(t, host, 1))

	// the approval died with the transfer
	requireRevert(t, host, carol, nil, "unauthorized", func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:carol","id":1}`))
	})
}

func TestApproveHolderOnly(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.ApproveTokenEntry(strptr(`{"to":"hive:bob","id":1}`))
	})
}

func TestApproveClear(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	mustCall(t, host, alice, nil, func() {
		contract.ApproveTokenEntry(strptr(`{"to":"hive:carol","id":1}`))
	})
	mustCall(t, host, alice, nil, func() {
		contract.ApproveTokenEntry(strptr(`{"to":"","id":1}`))
	})

	requireRevert(t, host, carol, nil, "unauthorized", func() {
		contract.TransferTokenEntry(strptr(`{"to":"hive:carol","id":1}`))
	})
}

func TestBurnToken(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)
	mintFor(t, host, alice)

	mustCall(t, host, alice, nil, func() {
		contract.BurnTokenEntry(strptr(`{"id":1}`))
	})

	require.Equal(t, uint64(1), totalSupply(t, host))
	require.Equal(t, uint64(1), balanceOf(t, host, alice))
	requireRevert(t, host, alice, nil, "token_not_found", func() {
		contract.OwnerOfEntry(strptr(`{"id":1}`))
	})

	// burned ids are never reissued
	mintFor(t, host, bob)
	require.Equal(t, bob.String(), ownerOf(t, host, 3))
}

func TestBurnByApprovedOperator(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	mustCall(t, host, alice, nil, func() {
		contract.ApproveTokenEntry(strptr(`{"to":"hive:carol","id":1}`))
	})
	mustCall(t, host, carol, nil, func() {
		contract.BurnTokenEntry(strptr(`{"id":1}`))
	})
	require.Equal(t, uint64(0), totalSupply(t, host))
}

func TestBurnUnauthorized(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.BurnTokenEntry(strptr(`{"id":1}`))
	})
}

func TestTokenURIDefault(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	mintFor(t, host, alice)

	var view contract.TokenURIView
	mustCall(t, host, bob, nil, func() {
		res := contract.TokenURIEntry(strptr(`{"id":1}`))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	require.Equal(t, "ipfs://bafyexample", view.URL, "all tokens share the edition artifact")
}

func TestTokenURIDelegatesToMetadataContract(t *testing.T) {
	host := newHost(t)
	host.RegisterContract("contract:renderer", func(method, payload string) *string {
		require.Equal(t, "token_uri", method)
		uri := "ipfs://rendered/1"
		return &uri
	})

	payload := `{
		"owner": "hive:edition-owner",
		"name": "Genesis",
		"content_url": "ipfs://bafyexample",
		"content_hash": "QmHashExample",
		"size": 10,
		"shares": [],
		"metadata_contract": "contract:renderer"
	}`
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(payload))
	})
	mintFor(t, host, alice)

	var view contract.TokenURIView
	mustCall(t, host, bob, nil, func() {
		res := contract.TokenURIEntry(strptr(`{"id":1}`))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	require.Equal(t, "ipfs://rendered/1", view.URL)
}

func TestTokenURIUnknownToken(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, bob, nil, "token_not_found", func() {
		contract.TokenURIEntry(strptr(`{"id":1}`))
	})
}

func TestBalanceOfUnknownHolder(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	require.Equal(t, uint64(0), balanceOf(t, host, carol))
}

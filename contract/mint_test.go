package contract_test

import (
	"encoding/json"
	"testing"

	"nft_editions/contract"

	"github.com/stretchr/testify/require"
)

func TestOwnerMintDenseIds(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mintFor(t, host, alice)
	mintFor(t, host, alice)
	mintFor(t, host, bob)

	require.Equal(t, alice.String(), ownerOf(t, host, 1))
	require.Equal(t, alice.String(), ownerOf(t, host, 2))
	require.Equal(t, bob.String(), ownerOf(t, host, 3))
	require.Equal(t, uint64(2), balanceOf(t, host, alice))
	require.Equal(t, uint64(1), balanceOf(t, host, bob))
	require.Equal(t, uint64(3), totalSupply(t, host))
}

func TestMintGoesToCaller(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mustCall(t, host, owner, nil, func() {
		contract.MintEntry(nil)
	})
	require.Equal(t, owner.String(), ownerOf(t, host, 1))
}

func TestMintUnauthorized(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.MintEntry(nil)
	})
	require.Equal(t, uint64(0), totalSupply(t, host))
}

func TestMintCapCountsMintedEver(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(2, 0, `[]`)))
	})

	mintFor(t, host, alice)
	mintFor(t, host, bob)
	requireRevert(t, host, owner, nil, "supply_exhausted", func() {
		contract.MintEntry(nil)
	})

	// burning does not reopen the run
	mustCall(t, host, alice, nil, func() {
		contract.BurnTokenEntry(strptr(`{"id":1}`))
	})
	require.Equal(t, uint64(1), totalSupply(t, host))
	requireRevert(t, host, owner, nil, "supply_exhausted", func() {
		contract.MintEntry(nil)
	})
}

func TestAllowlistQuota(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"hive:carol","quota":2}`))
	})

	mintAs(t, host, carol)
	mintAs(t, host, carol)
	requireRevert(t, host, carol, nil, "unauthorized", func() {
		contract.MintEntry(nil)
	})

	// owner mints never touch anyone's quota
	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"hive:carol","quota":1}`))
	})
	mintFor(t, host, bob)
	mintAs(t, host, carol)
	requireRevert(t, host, carol, nil, "unauthorized", func() {
		contract.MintEntry(nil)
	})
}

func TestPublicMinting(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"","quota":1}`))
	})

	// anyone may mint while the switch is set, however many times
	mintAs(t, host, bob)
	mintAs(t, host, bob)
	mintAs(t, host, carol)
	require.Equal(t, uint64(2), balanceOf(t, host, bob))

	// individual quotas are not spent while public minting is the reason
	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"hive:alice","quota":1}`))
	})
	mintAs(t, host, alice)
	mintAs(t, host, alice)

	// closing the switch makes the untouched quota count again
	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"","quota":0}`))
	})
	mintAs(t, host, alice)
	requireRevert(t, host, alice, nil, "unauthorized", func() {
		contract.MintEntry(nil)
	})
	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.MintEntry(nil)
	})
}

func TestSetMinterOwnerOnly(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.SetMinterEntry(strptr(`{"address":"hive:bob","quota":10}`))
	})
}

func TestMintBatch(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	var result contract.MintResult
	mustCall(t, host, owner, nil, func() {
		res := contract.MintBatchEntry(strptr(`{"to":["hive:alice","hive:bob","hive:alice"]}`))
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &result))
	})

	require.Equal(t, uint64(1), result.FirstID)
	require.Equal(t, uint64(3), result.Count)
	require.Equal(t, alice.String(), ownerOf(t, host, 1))
	require.Equal(t, bob.String(), ownerOf(t, host, 2))
	require.Equal(t, alice.String(), ownerOf(t, host, 3))
	require.Equal(t, uint64(2), balanceOf(t, host, alice))
}

func TestMintBatchEmpty(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, owner, nil, "empty_list", func() {
		contract.MintBatchEntry(strptr(`{"to":[]}`))
	})
}

func TestMintBatchAtomicOnCap(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(2, 0, `[]`)))
	})

	requireRevert(t, host, owner, nil, "supply_exhausted", func() {
		contract.MintBatchEntry(strptr(`{"to":["hive:alice","hive:bob","hive:carol"]}`))
	})
	require.Equal(t, uint64(0), totalSupply(t, host), "nothing minted when the batch overflows the run")
}

func TestMintBatchOwnerOnly(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	// allowlist quota covers the single-mint path only
	mustCall(t, host, owner, nil, func() {
		contract.SetMinterEntry(strptr(`{"address":"hive:carol","quota":3}`))
	})
	requireRevert(t, host, carol, nil, "unauthorized", func() {
		contract.MintBatchEntry(strptr(`{"to":["hive:carol","hive:carol"]}`))
	})
	require.Equal(t, uint64(0), totalSupply(t, host))
}

func TestNumberCanMint(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(5, 0, `[]`)))
	})
	mintFor(t, host, alice)
	mintFor(t, host, alice)

	var view contract.CanMintView
	mustCall(t, host, owner, nil, func() {
		res := contract.NumberCanMintEntry(nil)
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	require.False(t, view.Unbounded)
	require.Equal(t, uint64(3), view.Remaining)
}

func TestNumberCanMintUnbounded(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(0, 0, `[]`)))
	})

	var view contract.CanMintView
	mustCall(t, host, owner, nil, func() {
		res := contract.NumberCanMintEntry(nil)
		require.NotNil(t, res)
		require.NoError(t, json.Unmarshal([]byte(*res), &view))
	})
	require.True(t, view.Unbounded)
}

package contract_test

import (
	"testing"

	"nft_editions/contract"
	"nft_editions/sdk"

	"github.com/stretchr/testify/require"
)

func TestPurchase(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	setPrice(t, host, "10000")
	host.Deposit(bob, 50000, sdk.AssetHive)

	purchase(t, host, bob, "10000")

	require.Equal(t, bob.String(), ownerOf(t, host, 1))
	require.Equal(t, "40000", host.BalanceOf(bob, sdk.AssetHive).Dec())
	require.Equal(t, "10000", host.BalanceOf(host.ContractAddress(), sdk.AssetHive).Dec())
	require.Equal(t, "10000", getEdition(t, host).Price, "price unchanged by a sale")
}

func TestPurchaseSaleClosed(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	host.Deposit(bob, 50000, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("10000", sdk.AssetHive)}
	requireRevert(t, host, bob, intents, "unauthorized", func() {
		contract.PurchaseEntry(nil)
	})
	require.Equal(t, uint64(0), totalSupply(t, host))
}

func TestPurchaseExactPaymentRequired(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	setPrice(t, host, "10000")
	host.Deposit(bob, 50000, sdk.AssetHive)

	// underpaying cannot settle
	under := []sdk.Intent{sdk.TransferAllowIntent("9999", sdk.AssetHive)}
	requireRevert(t, host, bob, under, "payment_mismatch", func() {
		contract.PurchaseEntry(nil)
	})

	// overpaying signals a stale price the buyer never agreed to
	over := []sdk.Intent{sdk.TransferAllowIntent("10001", sdk.AssetHive)}
	requireRevert(t, host, bob, over, "payment_mismatch", func() {
		contract.PurchaseEntry(nil)
	})

	// no intent at all
	requireRevert(t, host, bob, nil, "payment_mismatch", func() {
		contract.PurchaseEntry(nil)
	})

	require.Equal(t, uint64(0), totalSupply(t, host))
	require.Equal(t, "50000", host.BalanceOf(bob, sdk.AssetHive).Dec())
}

func TestPurchaseSoldOut(t *testing.T) {
	host := newHost(t)
	mustCall(t, host, owner, nil, func() {
		contract.InitEntry(strptr(initPayloadWith(1, 0, `[]`)))
	})
	setPrice(t, host, "100")
	mintFor(t, host, alice)
	host.Deposit(bob, 1000, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("100", sdk.AssetHive)}
	requireRevert(t, host, bob, intents, "supply_exhausted", func() {
		contract.PurchaseEntry(nil)
	})
	require.Equal(t, "1000", host.BalanceOf(bob, sdk.AssetHive).Dec(), "no funds move on a failed purchase")
}

func TestPurchaseIgnoresForeignAssetIntent(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	setPrice(t, host, "100")
	host.Deposit(bob, 1000, sdk.AssetHive)

	intents := []sdk.Intent{
		sdk.TransferAllowIntent("5", sdk.AssetHbd),
		sdk.TransferAllowIntent("100", sdk.AssetHive),
	}
	mustCall(t, host, bob, intents, func() {
		contract.PurchaseEntry(nil)
	})
	require.Equal(t, uint64(1), totalSupply(t, host))
	require.Equal(t, "900", host.BalanceOf(bob, sdk.AssetHive).Dec())
}

func TestPurchaseInsufficientFundsRollsBack(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	setPrice(t, host, "10000")
	host.Deposit(bob, 5, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("10000", sdk.AssetHive)}
	err := host.Call(bob, intents, func() {
		contract.PurchaseEntry(nil)
	})
	require.Error(t, err)
	require.Equal(t, uint64(0), totalSupply(t, host), "mint rolled back with the failed draw")
	require.Equal(t, "5", host.BalanceOf(bob, sdk.AssetHive).Dec())
}

func TestPriceZeroClosesSale(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	setPrice(t, host, "100")
	host.Deposit(bob, 1000, sdk.AssetHive)
	purchase(t, host, bob, "100")

	setPrice(t, host, "0")
	intents := []sdk.Intent{sdk.TransferAllowIntent("100", sdk.AssetHive)}
	requireRevert(t, host, bob, intents, "unauthorized", func() {
		contract.PurchaseEntry(nil)
	})
}

func TestSetPriceOwnerOnly(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, bob, nil, "unauthorized", func() {
		contract.SetPriceEntry(strptr(`{"price":"1"}`))
	})
}

func TestDeposit(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)
	host.Deposit(carol, 7000, sdk.AssetHive)

	intents := []sdk.Intent{sdk.TransferAllowIntent("5000", sdk.AssetHive)}
	mustCall(t, host, carol, intents, func() {
		contract.DepositEntry(nil)
	})

	require.Equal(t, "2000", host.BalanceOf(carol, sdk.AssetHive).Dec())
	require.Equal(t, "5000", host.BalanceOf(host.ContractAddress(), sdk.AssetHive).Dec())

	// deposited revenue is claimable through the splitter
	view := getShareholders(t, host)
	require.Equal(t, "50", view.Shares[0].Pending, "alice gets 1% of 5000")
}

func TestDepositRequiresIntent(t *testing.T) {
	host := newHost(t)
	initEdition(t, host)

	requireRevert(t, host, carol, nil, "payment_mismatch", func() {
		contract.DepositEntry(nil)
	})
}

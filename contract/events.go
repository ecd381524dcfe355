package contract

import (
	"fmt"

	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// emitInitEvent writes a tiny "ei" log so indexers know a fresh edition went live.
func emitInitEvent(owner string, size uint64, royaltyBps uint64) {
	sdk.Log(fmt.Sprintf(
		"ei|by:%s|size:%d|roy:%d",
		owner,
		size,
		royaltyBps,
	))
}

// emitPriceChanged signals the sale gate flipping; price 0 means closed.
func emitPriceChanged(price *uint256.Int) {
	sdk.Log(fmt.Sprintf(
		"sp|p:%s",
		price.Dec(),
	))
}

// emitSale records a completed purchase with buyer, price and the minted id.
func emitSale(buyer string, price *uint256.Int, tokenID uint64) {
	sdk.Log(fmt.Sprintf(
		"es|to:%s|p:%s|id:%d",
		buyer,
		price.Dec(),
		tokenID,
	))
}

// emitTransfer is the standard token movement event; mints use the zero
// address as from, burns as to.
func emitTransfer(from string, to string, tokenID uint64) {
	sdk.Log(fmt.Sprintf(
		"t|from:%s|to:%s|id:%d",
		from,
		to,
		tokenID,
	))
}

// emitApproval keeps marketplaces updated about the per-token operator.
func emitApproval(tokenID uint64, approved string) {
	sdk.Log(fmt.Sprintf(
		"ap|id:%d|to:%s",
		tokenID,
		approved,
	))
}

// emitMinterSet logs allowlist quota updates so indexers can mirror the table.
func emitMinterSet(addr string, quota uint16) {
	sdk.Log(fmt.Sprintf(
		"ms|addr:%s|q:%d",
		addr,
		quota,
	))
}

// emitURLUpdated traces contentUrl repoints by the owner.
func emitURLUpdated(url string) {
	sdk.Log(fmt.Sprintf(
		"uu|url:%s",
		url,
	))
}

// emitDeposit tells indexing bots revenue entered the splitter outside a sale.
func emitDeposit(from string, amount *uint256.Int) {
	sdk.Log(fmt.Sprintf(
		"df|by:%s|am:%s",
		from,
		amount.Dec(),
	))
}

// emitPaymentReleased marks a successful shareholder payout.
func emitPaymentReleased(to string, amount *uint256.Int) {
	sdk.Log(fmt.Sprintf(
		"pr|to:%s|am:%s",
		to,
		amount.Dec(),
	))
}

// emitPaymentFailed marks an isolated payout failure inside the withdraw
// fan-out; the entitlement stays claimable via withdraw_account.
func emitPaymentFailed(to string, amount *uint256.Int, reason string) {
	sdk.Log(fmt.Sprintf(
		"pf|to:%s|am:%s|r:%s",
		to,
		amount.Dec(),
		reason,
	))
}

// emitOwnershipTransferred logs admin handovers including renounces (empty to).
func emitOwnershipTransferred(from string, to string) {
	sdk.Log(fmt.Sprintf(
		"ot|from:%s|to:%s",
		from,
		to,
	))
}

package contract

import "nft_editions/sdk"

// SetPrice opens or moves the sale gate; a price of zero closes it. Only the
// owner may flip the gate and the change applies to all future purchases.
// Example payload: {"price":"1000"}
func SetPrice(args *PriceArgs) {
	requireOwner()
	price := parseAmount("price", args.Price)
	setSalePrice(price)
	emitPriceChanged(price)
}

// Purchase mints one token to the buyer against the exact sale price. The
// buyer attaches a transfer.allow intent whose limit must equal the current
// price: less cannot pay, more signals a stale price the buyer did not agree
// to. Supply and payment are checked before any funds move.
func Purchase() *MintResult {
	ed := requireInitialized()

	price := getSalePrice()
	if price.IsZero() {
		failUnauthorized("sale is closed")
	}

	requireSupply(ed, 1)

	allow := getFirstTransferAllow()
	if allow == nil {
		failPaymentMismatch("missing transfer.allow intent")
	}
	if !allow.Limit.Eq(price) {
		failPaymentMismatch("intent limit does not match sale price")
	}

	buyer := getSenderAddress()
	recordRevenue(price)
	id := mintTo(buyer)

	// The draw aborts the whole call on failure, rolling back the mint.
	sdk.HiveDraw(price, SaleAsset)

	emitSale(AddressToString(buyer), price, id)
	return &MintResult{FirstID: id, Count: 1}
}

// Deposit routes revenue into the splitter outside of a sale, e.g. secondary
// royalty remittances. The full intent limit is drawn.
func Deposit() {
	requireInitialized()

	allow := getFirstTransferAllow()
	if allow == nil || allow.Limit.IsZero() {
		failPaymentMismatch("missing transfer.allow intent")
	}

	from := getSenderAddress()
	recordRevenue(allow.Limit)
	sdk.HiveDraw(allow.Limit, SaleAsset)

	emitDeposit(AddressToString(from), allow.Limit)
}

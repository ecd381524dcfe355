package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// isInitialized reports whether contract_init already ran.
func isInitialized() bool {
	return sdk.StateGetObject(editionKey()) != nil
}

// requireInitialized loads the edition record or reverts; every entry point
// except contract_init starts here.
func requireInitialized() *Edition {
	raw := sdk.StateGetObject(editionKey())
	if raw == nil {
		failInvalidConfiguration("edition not initialized")
	}
	ed, err := DecodeEdition([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt edition record")
	}
	return ed
}

// saveEdition persists the record through the binary codec.
func saveEdition(ed *Edition) {
	sdk.StateSetObject(editionKey(), string(EncodeEdition(ed)))
}

// requireOwner loads the edition and checks the sender is its admin.
func requireOwner() *Edition {
	ed := requireInitialized()
	if getSenderAddress() != ed.Owner {
		failUnauthorized("only the edition owner may call this")
	}
	return ed
}

// getSalePrice returns the current price; zero means the sale gate is closed.
func getSalePrice() *uint256.Int {
	raw := sdk.StateGetObject(salePriceKey())
	if raw == nil || *raw == "" {
		return uint256.NewInt(0)
	}
	price, err := uint256.FromDecimal(*raw)
	if err != nil {
		sdk.Abort("corrupt sale price")
	}
	return price
}

// setSalePrice stores the price as a decimal string.
func setSalePrice(price *uint256.Int) {
	sdk.StateSetObject(salePriceKey(), price.Dec())
}

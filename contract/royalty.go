package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// RoyaltyInfo reports who should receive secondary sale royalties and how
// much, for a hypothetical sale price. The receiver is the current owner;
// once ownership is renounced, or when the edition carries no royalty rate,
// the report is the zero address and zero. Amounts truncate toward zero
// just like share cuts. Advisory only, nothing is transferred.
// Example payload: {"id":1,"sale_price":"10000"}
func RoyaltyInfo(args *RoyaltyArgs) *RoyaltyView {
	ed := requireInitialized()

	salePrice := parseAmount("sale_price", args.SalePrice)

	if ed.Owner.IsZero() || ed.RoyaltyBps == 0 {
		return &RoyaltyView{
			Receiver: AddressToString(sdk.AddressZero),
			Amount:   "0",
		}
	}

	amount := new(uint256.Int).Mul(salePrice, uint256.NewInt(ed.RoyaltyBps))
	amount.Div(amount, uint256.NewInt(BpsDenominator))

	return &RoyaltyView{
		Receiver: AddressToString(ed.Owner),
		Amount:   amount.Dec(),
	}
}

package contract

import "nft_editions/sdk"

// loadShareTable returns the ordered shareholder rows. The table is written
// once at init and frozen afterwards; ownership transfer moves admin rights
// only, revenue entitlements stay with the original addresses.
func loadShareTable() []Shareholder {
	raw := sdk.StateGetObject(shareTableKey())
	if raw == nil {
		failInvalidConfiguration("share table not initialized")
	}
	shares, err := DecodeShareTable([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt share table")
	}
	return shares
}

// saveShareTable persists the rows in order.
func saveShareTable(shares []Shareholder) {
	sdk.StateSetObject(shareTableKey(), string(EncodeShareTable(shares)))
}

// findShare returns the bps entitlement of an address, 0 when not in the table.
func findShare(shares []Shareholder, addr sdk.Address) uint64 {
	for _, sh := range shares {
		if sh.Address == addr {
			return sh.Bps
		}
	}
	return 0
}

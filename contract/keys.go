package contract

import "nft_editions/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// singletonKey builds the 1-byte key used for the edition record, price,
// ledger and share table.
func singletonKey(prefix byte) string {
	return string([]byte{prefix})
}

// tokenKey mixes the prefix with the token id, keeping per-token rows
// contiguous in host storage.
func tokenKey(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// addrKey appends raw address bytes after the prefix to avoid nested maps in
// host storage.
func addrKey(prefix byte, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}

// editionKey holds the encoded Edition record.
func editionKey() string { return singletonKey(kEdition) }

// salePriceKey holds the current price as a decimal string.
func salePriceKey() string { return singletonKey(kSalePrice) }

// ledgerKey holds the encoded revenue totals.
func ledgerKey() string { return singletonKey(kLedger) }

// shareTableKey holds the encoded shareholder table.
func shareTableKey() string { return singletonKey(kShareTable) }

// tokenOwnerKey maps a token id to its holder.
func tokenOwnerKey(id uint64) string { return tokenKey(kTokenOwner, id) }

// tokenApprovalKey maps a token id to its single approved operator.
func tokenApprovalKey(id uint64) string { return tokenKey(kTokenApproval, id) }

// holderBalanceKey counts alive tokens per holder.
func holderBalanceKey(addr sdk.Address) string { return addrKey(kHolderBalance, addr) }

// minterQuotaKey stores the remaining allowlist quota per minter.
func minterQuotaKey(addr sdk.Address) string { return addrKey(kMinterQuota, addr) }

// withdrawnKey stores the cumulative amount already paid to a shareholder.
func withdrawnKey(addr sdk.Address) string { return addrKey(kWithdrawn, addr) }

package contract

import (
	"strconv"

	"nft_editions/sdk"
)

// getMinterQuota returns the remaining allowlist quota for an address; zero
// means the address is not on the allowlist.
func getMinterQuota(addr sdk.Address) uint16 {
	raw := sdk.StateGetObject(minterQuotaKey(addr))
	if raw == nil || *raw == "" {
		return 0
	}
	val, err := strconv.ParseUint(*raw, 10, 16)
	if err != nil {
		sdk.Abort("corrupt minter quota for " + AddressToString(addr))
	}
	return uint16(val)
}

// setMinterQuota writes the quota; zero removes the row entirely so the
// allowlist never accumulates dead entries.
func setMinterQuota(addr sdk.Address, quota uint16) {
	if quota == 0 {
		sdk.StateDeleteObject(minterQuotaKey(addr))
		return
	}
	sdk.StateSetObject(minterQuotaKey(addr), strconv.FormatUint(uint64(quota), 10))
}

// consumeMinterQuota decrements one use after an allowlist mint.
func consumeMinterQuota(addr sdk.Address) {
	quota := getMinterQuota(addr)
	if quota == 0 {
		sdk.Abort("quota underflow for " + AddressToString(addr))
	}
	setMinterQuota(addr, quota-1)
}

package contract

import (
	"strconv"

	"nft_editions/sdk"
)

// getCount reads a counter stored as a decimal string, defaulting to zero
// when the key was never written.
func getCount(key string) uint64 {
	raw := sdk.StateGetObject(key)
	if raw == nil || *raw == "" {
		return 0
	}
	val, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt counter " + key)
	}
	return val
}

// setCount persists a counter as a plain decimal string.
func setCount(key string, value uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(value, 10))
}

// mintedCount returns the number of tokens ever issued; ids are dense so the
// next id is always mintedCount()+1.
func mintedCount() uint64 { return getCount(TokensCount) }

// burnedCount returns how many tokens were destroyed since creation.
func burnedCount() uint64 { return getCount(BurnedCount) }

// aliveSupply is minted minus burned, the value total_supply reports.
func aliveSupply() uint64 { return mintedCount() - burnedCount() }

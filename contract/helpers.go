package contract

import (
	"strconv"

	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// itoa keeps revert message formatting short.
func itoa(v int) string { return strconv.Itoa(v) }

// validAddress accepts user addresses the host recognizes plus contract
// accounts, which can hold tokens and revenue shares like anyone else.
func validAddress(a sdk.Address) bool {
	return a.IsValid() || a.Domain() == sdk.AddressDomainContract
}

// parseAmount converts a decimal string payload field into a uint256 or
// reverts with invalid_configuration. Negative and non-numeric input fails
// inside uint256.FromDecimal already.
func parseAmount(field string, value string) *uint256.Int {
	if value == "" {
		failInvalidConfiguration(field + " required")
	}
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		failInvalidConfiguration("invalid " + field + ": " + value)
	}
	return amount
}

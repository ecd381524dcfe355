package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// loadLedger returns the revenue totals, zeroed when no revenue ever arrived.
func loadLedger() *Ledger {
	raw := sdk.StateGetObject(ledgerKey())
	if raw == nil {
		return &Ledger{
			TotalReceived:  uint256.NewInt(0),
			TotalWithdrawn: uint256.NewInt(0),
		}
	}
	l, err := DecodeLedger([]byte(*raw))
	if err != nil {
		sdk.Abort("corrupt revenue ledger")
	}
	return l
}

// saveLedger persists the totals through the binary codec.
func saveLedger(l *Ledger) {
	sdk.StateSetObject(ledgerKey(), string(EncodeLedger(l)))
}

// recordRevenue adds a fresh receipt to the lifetime total. Called by both the
// sale gate and direct deposits.
func recordRevenue(amount *uint256.Int) {
	l := loadLedger()
	l.TotalReceived.Add(l.TotalReceived, amount)
	saveLedger(l)
}

// getWithdrawn returns the cumulative amount already paid to a shareholder.
func getWithdrawn(addr sdk.Address) *uint256.Int {
	raw := sdk.StateGetObject(withdrawnKey(addr))
	if raw == nil || *raw == "" {
		return uint256.NewInt(0)
	}
	val, err := uint256.FromDecimal(*raw)
	if err != nil {
		sdk.Abort("corrupt withdrawn record for " + AddressToString(addr))
	}
	return val
}

// setWithdrawn overwrites the cumulative payout record for a shareholder.
func setWithdrawn(addr sdk.Address, amount *uint256.Int) {
	sdk.StateSetObject(withdrawnKey(addr), amount.Dec())
}

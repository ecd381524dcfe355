package contract

import "nft_editions/sdk"

// Revert symbols surfaced to callers and indexers. Every precondition failure
// aborts the whole call with no state change; the only exception is the
// withdraw fan-out, which reports per-shareholder failures as events instead.
const (
	SymUnauthorized         = "unauthorized"
	SymInvalidConfiguration = "invalid_configuration"
	SymSupplyExhausted      = "supply_exhausted"
	SymPaymentMismatch      = "payment_mismatch"
	SymTransferFailed       = "transfer_failed"
	SymNothingDue           = "nothing_due"
	SymTokenNotFound        = "token_not_found"
	SymEmptyList            = "empty_list"
)

// fail reverts the call with a taxonomy symbol. The trailing panic only fires
// if the host revert ever returns, so execution can never fall through.
func fail(symbol string, msg string) {
	sdk.Revert(msg, symbol)
	panic(symbol + ": " + msg)
}

func failUnauthorized(msg string) { fail(SymUnauthorized, msg) }

func failInvalidConfiguration(msg string) { fail(SymInvalidConfiguration, msg) }

func failSupplyExhausted(msg string) { fail(SymSupplyExhausted, msg) }

func failPaymentMismatch(msg string) { fail(SymPaymentMismatch, msg) }

func failTransferFailed(msg string) { fail(SymTransferFailed, msg) }

func failNothingDue(msg string) { fail(SymNothingDue, msg) }

func failTokenNotFound(msg string) { fail(SymTokenNotFound, msg) }

func failEmptyList(msg string) { fail(SymEmptyList, msg) }

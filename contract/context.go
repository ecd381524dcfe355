package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop memoized data so
// subsequent helper calls always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit *uint256.Int
	Token sdk.Asset
}

// getFirstTransferAllow scans the provided intents and returns the first
// transfer.allow intent carrying the sale asset; intents for other assets are
// ignored. The cached result is cleared automatically whenever currentEnv()
// detects a new transaction so calls do not leak state.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := intent.Args["token"]
		if sdk.Asset(token) != SaleAsset {
			continue
		}
		limit, err := uint256.FromDecimal(intent.Args["limit"])
		if err != nil {
			sdk.Abort("invalid intent limit")
		}
		ta := &TransferAllow{
			Limit: limit,
			Token: sdk.Asset(token),
		}
		cachedTransfer = ta
		return ta
	}
	return nil
}

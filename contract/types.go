package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// Edition is the per-contract record created exactly once by the factory call.
// ContentHash and ContentType never change after creation; ContentURL may be
// repointed by the owner and Owner itself moves via ownership transfer.
type Edition struct {
	Owner            sdk.Address
	Name             string
	Symbol           string
	Description      string
	ContentURL       string
	ContentHash      string
	ContentType      string
	Size             uint64 // 0 = unbounded run
	RoyaltyBps       uint64
	MetadataContract *string // optional token_uri renderer contract
}

// Shareholder is one row of the revenue share table. The owner's implicit
// remainder is materialized as the final row at init time, so the table
// always sums to BpsDenominator.
type Shareholder struct {
	Address sdk.Address
	Bps     uint64
}

// Ledger tracks lifetime gross receipts and lifetime payouts. The difference
// is what still sits on the contract balance (plus truncation dust).
type Ledger struct {
	TotalReceived  *uint256.Int
	TotalWithdrawn *uint256.Int
}

// -----------------------------------------------------------------------------
// Entry point argument payloads (JSON, tinyjson codecs in codec_tinyjson.go)
// -----------------------------------------------------------------------------

type ShareInput struct {
	Address string `json:"address"`
	Bps     uint64 `json:"bps"`
}

type InitArgs struct {
	Owner            string       `json:"owner"`
	Name             string       `json:"name"`
	Symbol           string       `json:"symbol"`
	Description      string       `json:"description"`
	ContentURL       string       `json:"content_url"`
	ContentHash      string       `json:"content_hash"`
	ContentType      string       `json:"content_type"`
	Size             uint64       `json:"size"`
	RoyaltyBps       uint64       `json:"royalty_bps"`
	Shares           []ShareInput `json:"shares"`
	MetadataContract string       `json:"metadata_contract"`
}

type PriceArgs struct {
	Price string `json:"price"`
}

type MintBatchArgs struct {
	To []string `json:"to"`
}

type MinterSetArgs struct {
	Address string `json:"address"`
	Quota   uint16 `json:"quota"`
}

type URLArgs struct {
	URL string `json:"url"`
}

type WithdrawArgs struct {
	Account string `json:"account"`
}

// TransferArgs carries the target token and counterparty for token_transfer
// and token_approve.
type TransferArgs struct {
	To string `json:"to"`
	ID uint64 `json:"id"`
}

type TokenArgs struct {
	ID uint64 `json:"id"`
}

type AddressArgs struct {
	Address string `json:"address"`
}

type RoyaltyArgs struct {
	ID        uint64 `json:"id"`
	SalePrice string `json:"sale_price"`
}

type OwnerTransferArgs struct {
	To string `json:"to"`
}

// -----------------------------------------------------------------------------
// View payloads (JSON out)
// -----------------------------------------------------------------------------

type EditionView struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	ContentURL  string `json:"content_url"`
	ContentHash string `json:"content_hash"`
	ContentType string `json:"content_type"`
	Size        uint64 `json:"size"`
	Minted      uint64 `json:"minted"`
	Burned      uint64 `json:"burned"`
	TotalSupply uint64 `json:"total_supply"`
	Price       string `json:"price"`
	RoyaltyBps  uint64 `json:"royalty_bps"`
}

type CanMintView struct {
	Unbounded bool   `json:"unbounded"`
	Remaining uint64 `json:"remaining"`
}

type SupplyView struct {
	TotalSupply uint64 `json:"total_supply"`
}

type OwnerView struct {
	ID    uint64 `json:"id"`
	Owner string `json:"owner"`
}

type BalanceView struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type RoyaltyView struct {
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

type MintResult struct {
	FirstID uint64 `json:"first_id"`
	Count   uint64 `json:"count"`
}

type PaymentView struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Reason  string `json:"reason,omitempty"`
}

type WithdrawResult struct {
	Released []PaymentView `json:"released"`
	Failed   []PaymentView `json:"failed"`
}

type ShareholderView struct {
	Address   string `json:"address"`
	Bps       uint64 `json:"bps"`
	Withdrawn string `json:"withdrawn"`
	Pending   string `json:"pending"`
}

type TokenURIView struct {
	ID  uint64 `json:"id"`
	URL string `json:"url"`
}

type ShareTableView struct {
	Shares []ShareholderView `json:"shares"`
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

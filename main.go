////////////////////////////////////////////////////////////////////////////////
// NFT Editions: single-artifact edition contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "nft_editions/contract"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit creates the edition this contract instance manages. One shot;
// the factory passes owner, content fields, run size and revenue shares.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	return contract.InitEntry(payload)
}

// -----------------------------------------------------------------------------
// Sale gate
// -----------------------------------------------------------------------------

// PriceSet opens or moves the sale gate; price 0 closes it. Owner only.
//
//go:wasmexport price_set
func PriceSet(payload *string) *string {
	return contract.SetPriceEntry(payload)
}

// Purchase mints one token to the buyer against the exact sale price carried
// in a transfer.allow intent.
//
//go:wasmexport purchase
func Purchase(payload *string) *string {
	return contract.PurchaseEntry(payload)
}

// Deposit routes revenue into the splitter outside of a sale.
//
//go:wasmexport deposit
func Deposit(payload *string) *string {
	return contract.DepositEntry(payload)
}

// -----------------------------------------------------------------------------
// Minting
// -----------------------------------------------------------------------------

// Mint issues one token to the caller; owner mints freely, everyone does
// while public minting is open, allowlisted minters burn quota.
//
//go:wasmexport mint
func Mint(payload *string) *string {
	return contract.MintEntry(payload)
}

// MintBatch issues one token per recipient, atomically. Owner only.
//
//go:wasmexport mint_batch
func MintBatch(payload *string) *string {
	return contract.MintBatchEntry(payload)
}

// MinterSet grants or revokes an allowlist quota. Owner only.
//
//go:wasmexport minter_set
func MinterSet(payload *string) *string {
	return contract.SetMinterEntry(payload)
}

// -----------------------------------------------------------------------------
// Edition admin
// -----------------------------------------------------------------------------

// URLUpdate repoints the mutable content URL. Owner only.
//
//go:wasmexport url_update
func URLUpdate(payload *string) *string {
	return contract.UpdateURLEntry(payload)
}

// OwnerTransfer hands the admin role over; the zero address renounces it.
//
//go:wasmexport owner_transfer
func OwnerTransfer(payload *string) *string {
	return contract.TransferOwnerEntry(payload)
}

// -----------------------------------------------------------------------------
// Revenue splitter
// -----------------------------------------------------------------------------

// Withdraw fans out every pending shareholder cut, best effort.
//
//go:wasmexport withdraw
func Withdraw(payload *string) *string {
	return contract.WithdrawEntry(payload)
}

// WithdrawAccount pulls the pending cut of one shareholder.
//
//go:wasmexport withdraw_account
func WithdrawAccount(payload *string) *string {
	return contract.WithdrawAccountEntry(payload)
}

// -----------------------------------------------------------------------------
// Tokens
// -----------------------------------------------------------------------------

// TokenTransfer moves a token; holder or approved operator only.
//
//go:wasmexport token_transfer
func TokenTransfer(payload *string) *string {
	return contract.TransferTokenEntry(payload)
}

// TokenApprove grants the single operator slot for a token.
//
//go:wasmexport token_approve
func TokenApprove(payload *string) *string {
	return contract.ApproveTokenEntry(payload)
}

// TokenBurn destroys a token permanently.
//
//go:wasmexport token_burn
func TokenBurn(payload *string) *string {
	return contract.BurnTokenEntry(payload)
}

// TokenURI resolves the metadata URL for a token.
//
//go:wasmexport token_uri
func TokenURI(payload *string) *string {
	return contract.TokenURIEntry(payload)
}

// RoyaltyInfo reports the royalty receiver and amount for a sale price.
//
//go:wasmexport royalty_info
func RoyaltyInfo(payload *string) *string {
	return contract.RoyaltyInfoEntry(payload)
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetEdition returns the full public edition state.
//
//go:wasmexport get_edition
func GetEdition(payload *string) *string {
	return contract.GetEditionEntry(payload)
}

// GetShareholders returns the share table with withdrawn/pending amounts.
//
//go:wasmexport get_shareholders
func GetShareholders(payload *string) *string {
	return contract.GetShareholdersEntry(payload)
}

// GetURI returns the current edition content URL.
//
//go:wasmexport get_uri
func GetURI(payload *string) *string {
	return contract.GetURIEntry(payload)
}

// NumberCanMint reports the remaining issuance headroom.
//
//go:wasmexport number_can_mint
func NumberCanMint(payload *string) *string {
	return contract.NumberCanMintEntry(payload)
}

// TotalSupply reports minted minus burned.
//
//go:wasmexport total_supply
func TotalSupply(payload *string) *string {
	return contract.TotalSupplyEntry(payload)
}

// OwnerOf reports the holder of a token id.
//
//go:wasmexport owner_of
func OwnerOf(payload *string) *string {
	return contract.OwnerOfEntry(payload)
}

// BalanceOf counts the alive tokens of an address.
//
//go:wasmexport balance_of
func BalanceOf(payload *string) *string {
	return contract.BalanceOfEntry(payload)
}

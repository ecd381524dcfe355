package contract

// Payload-level entry points. Each one decodes the JSON payload, runs the
// operation and serializes the response; the wasm exports in package main are
// one-line wrappers around these so the whole contract stays testable with a
// plain go toolchain.

// InitEntry handles contract_init.
func InitEntry(payload *string) *string {
	args := &InitArgs{}
	decodeArgs(payload, args)
	Init(args)
	return respondOK()
}

// SetPriceEntry handles price_set.
func SetPriceEntry(payload *string) *string {
	args := &PriceArgs{}
	decodeArgs(payload, args)
	SetPrice(args)
	return respondOK()
}

// PurchaseEntry handles purchase; the payment rides in as an intent so the
// payload itself is ignored.
func PurchaseEntry(_ *string) *string {
	return respond(Purchase())
}

// DepositEntry handles deposit, same intent-carried payment as purchase.
func DepositEntry(_ *string) *string {
	Deposit()
	return respondOK()
}

// MintEntry handles mint. The token always goes to the caller, so the
// payload is ignored.
func MintEntry(_ *string) *string {
	return respond(Mint())
}

// MintBatchEntry handles mint_batch.
func MintBatchEntry(payload *string) *string {
	args := &MintBatchArgs{}
	decodeArgs(payload, args)
	return respond(MintBatch(args))
}

// SetMinterEntry handles minter_set.
func SetMinterEntry(payload *string) *string {
	args := &MinterSetArgs{}
	decodeArgs(payload, args)
	SetMinter(args)
	return respondOK()
}

// UpdateURLEntry handles url_update.
func UpdateURLEntry(payload *string) *string {
	args := &URLArgs{}
	decodeArgs(payload, args)
	UpdateURL(args)
	return respondOK()
}

// WithdrawEntry handles withdraw, the full fan-out.
func WithdrawEntry(_ *string) *string {
	return respond(Withdraw())
}

// WithdrawAccountEntry handles withdraw_account. An empty payload targets the
// sender's own entitlement.
func WithdrawAccountEntry(payload *string) *string {
	args := &WithdrawArgs{}
	if unwrapPayload(payload) != "" {
		decodeArgs(payload, args)
	}
	return respond(WithdrawAccount(args))
}

// TransferTokenEntry handles token_transfer.
func TransferTokenEntry(payload *string) *string {
	args := &TransferArgs{}
	decodeArgs(payload, args)
	TransferToken(args)
	return respondOK()
}

// ApproveTokenEntry handles token_approve.
func ApproveTokenEntry(payload *string) *string {
	args := &TransferArgs{}
	decodeArgs(payload, args)
	ApproveToken(args)
	return respondOK()
}

// BurnTokenEntry handles token_burn.
func BurnTokenEntry(payload *string) *string {
	args := &TokenArgs{}
	decodeArgs(payload, args)
	BurnToken(args)
	return respondOK()
}

// TokenURIEntry handles token_uri.
func TokenURIEntry(payload *string) *string {
	args := &TokenArgs{}
	decodeArgs(payload, args)
	return respond(TokenURI(args))
}

// RoyaltyInfoEntry handles royalty_info.
func RoyaltyInfoEntry(payload *string) *string {
	args := &RoyaltyArgs{}
	decodeArgs(payload, args)
	return respond(RoyaltyInfo(args))
}

// GetEditionEntry handles get_edition.
func GetEditionEntry(_ *string) *string {
	return respond(GetEdition())
}

// GetShareholdersEntry handles get_shareholders.
func GetShareholdersEntry(_ *string) *string {
	return respond(GetShareholders())
}

// GetURIEntry handles get_uri.
func GetURIEntry(_ *string) *string {
	return respond(GetURI())
}

// NumberCanMintEntry handles number_can_mint.
func NumberCanMintEntry(_ *string) *string {
	return respond(NumberCanMint())
}

// TotalSupplyEntry handles total_supply.
func TotalSupplyEntry(_ *string) *string {
	return respond(TotalSupply())
}

// OwnerOfEntry handles owner_of.
func OwnerOfEntry(payload *string) *string {
	args := &TokenArgs{}
	decodeArgs(payload, args)
	return respond(OwnerOf(args))
}

// BalanceOfEntry handles balance_of.
func BalanceOfEntry(payload *string) *string {
	args := &AddressArgs{}
	decodeArgs(payload, args)
	return respond(BalanceOf(args))
}

// TransferOwnerEntry handles owner_transfer.
func TransferOwnerEntry(payload *string) *string {
	args := &OwnerTransferArgs{}
	decodeArgs(payload, args)
	TransferOwner(args)
	return respondOK()
}

package contract

import (
	"strconv"

	"nft_editions/sdk"
)

// canOperate reports whether the sender may move or burn the token: either
// the current holder or the one approved operator.
func canOperate(id uint64, holder sdk.Address) bool {
	sender := getSenderAddress()
	if sender == holder {
		return true
	}
	if approved := getTokenApproval(id); approved != nil && *approved == sender {
		return true
	}
	return false
}

// TransferToken moves a token to a new holder. The holder or the approved
// operator may call it; any approval is cleared on transfer.
// Example payload: {"to":"hive:bob","id":1}
func TransferToken(args *TransferArgs) {
	requireInitialized()
	holder := requireTokenOwner(args.ID)

	if !canOperate(args.ID, holder) {
		failUnauthorized("not holder or approved")
	}

	to := AddressFromString(args.To)
	if to.IsZero() || !validAddress(to) {
		failInvalidConfiguration("invalid recipient address")
	}

	clearTokenApproval(args.ID)
	bumpHolderBalance(holder, -1)
	bumpHolderBalance(to, 1)
	setTokenOwner(args.ID, to)

	emitTransfer(AddressToString(holder), AddressToString(to), args.ID)
}

// ApproveToken grants the single operator slot for a token to the given
// address. Only the holder may approve; the zero address clears the slot.
// Example payload: {"to":"hive:market","id":1}
func ApproveToken(args *TransferArgs) {
	requireInitialized()
	holder := requireTokenOwner(args.ID)

	if getSenderAddress() != holder {
		failUnauthorized("only the holder may approve")
	}

	to := AddressFromString(args.To)
	if to.IsZero() {
		clearTokenApproval(args.ID)
		emitApproval(args.ID, AddressToString(sdk.AddressZero))
		return
	}
	if !validAddress(to) {
		failInvalidConfiguration("invalid operator address")
	}

	setTokenApproval(args.ID, to)
	emitApproval(args.ID, AddressToString(to))
}

// BurnToken destroys a token permanently. Holder or approved operator only.
// Burning shrinks total_supply but never reopens the issuance cap.
// Example payload: {"id":1}
func BurnToken(args *TokenArgs) {
	requireInitialized()
	holder := requireTokenOwner(args.ID)

	if !canOperate(args.ID, holder) {
		failUnauthorized("not holder or approved")
	}

	clearTokenApproval(args.ID)
	bumpHolderBalance(holder, -1)
	deleteToken(args.ID)
	setCount(BurnedCount, burnedCount()+1)

	emitTransfer(AddressToString(holder), AddressToString(sdk.AddressZero), args.ID)
}

// TokenURI resolves the metadata URL for a token. When a metadata contract is
// configured the lookup is delegated to it, otherwise every token shares the
// edition content URL.
// Example payload: {"id":1}
func TokenURI(args *TokenArgs) *TokenURIView {
	ed := requireInitialized()
	requireTokenOwner(args.ID)

	if ed.MetadataContract != nil {
		payload := `{"id":` + strconv.FormatUint(args.ID, 10) + `}`
		res := sdk.ContractCall(*ed.MetadataContract, "token_uri", payload, nil)
		if res != nil && *res != "" {
			return &TokenURIView{ID: args.ID, URL: *res}
		}
	}
	return &TokenURIView{ID: args.ID, URL: ed.ContentURL}
}

// OwnerOf reports the current holder of a token id.
// Example payload: {"id":1}
func OwnerOf(args *TokenArgs) *OwnerView {
	requireInitialized()
	holder := requireTokenOwner(args.ID)
	return &OwnerView{ID: args.ID, Owner: AddressToString(holder)}
}

// BalanceOf counts the alive tokens held by an address.
// Example payload: {"address":"hive:alice"}
func BalanceOf(args *AddressArgs) *BalanceView {
	requireInitialized()
	addr := AddressFromString(args.Address)
	if !validAddress(addr) || addr.IsZero() {
		failInvalidConfiguration("invalid address")
	}
	return &BalanceView{
		Address: AddressToString(addr),
		Balance: getHolderBalance(addr),
	}
}

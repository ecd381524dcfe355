package contract

import "nft_editions/sdk"

// getTokenOwner returns the current holder of a token id, or nil when the id
// was never minted or has been burned.
func getTokenOwner(id uint64) *sdk.Address {
	raw := sdk.StateGetObject(tokenOwnerKey(id))
	if raw == nil {
		return nil
	}
	addr := AddressFromString(*raw)
	return &addr
}

// requireTokenOwner resolves the holder or reverts with token_not_found.
func requireTokenOwner(id uint64) sdk.Address {
	owner := getTokenOwner(id)
	if owner == nil {
		failTokenNotFound("token does not exist")
	}
	return *owner
}

// setTokenOwner rebinds a token id to a holder.
func setTokenOwner(id uint64, owner sdk.Address) {
	sdk.StateSetObject(tokenOwnerKey(id), AddressToString(owner))
}

// deleteToken removes a burned token's ownership row.
func deleteToken(id uint64) {
	sdk.StateDeleteObject(tokenOwnerKey(id))
}

// getTokenApproval returns the one approved operator for a token, if any.
func getTokenApproval(id uint64) *sdk.Address {
	raw := sdk.StateGetObject(tokenApprovalKey(id))
	if raw == nil {
		return nil
	}
	addr := AddressFromString(*raw)
	return &addr
}

// setTokenApproval binds the single operator slot for a token.
func setTokenApproval(id uint64, approved sdk.Address) {
	sdk.StateSetObject(tokenApprovalKey(id), AddressToString(approved))
}

// clearTokenApproval drops the operator slot; every transfer and burn does this.
func clearTokenApproval(id uint64) {
	sdk.StateDeleteObject(tokenApprovalKey(id))
}

// getHolderBalance counts the alive tokens held by an address.
func getHolderBalance(addr sdk.Address) uint64 {
	return getCount(holderBalanceKey(addr))
}

// bumpHolderBalance adjusts the per-holder token count by delta (+1/-1).
func bumpHolderBalance(addr sdk.Address, delta int64) {
	current := getHolderBalance(addr)
	next := uint64(int64(current) + delta)
	if next == 0 {
		sdk.StateDeleteObject(holderBalanceKey(addr))
		return
	}
	setCount(holderBalanceKey(addr), next)
}

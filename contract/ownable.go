package contract

// TransferOwner hands the admin role to another address. The zero address
// renounces ownership entirely, freezing price, allowlist and URL forever.
// Revenue shares are not affected: the original owner's remainder row keeps
// accruing to their address.
// Example payload: {"to":"hive:newadmin"}
func TransferOwner(args *OwnerTransferArgs) {
	ed := requireOwner()

	to := AddressFromString(args.To)
	if !to.IsZero() && !validAddress(to) {
		failInvalidConfiguration("invalid new owner address")
	}

	from := ed.Owner
	ed.Owner = to
	saveEdition(ed)

	emitOwnershipTransferred(AddressToString(from), AddressToString(to))
}

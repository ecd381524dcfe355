package contract

import "nft_editions/sdk"

// remainingSupply returns how many tokens can still be issued. The cap counts
// tokens ever minted, so burning never reopens a sold out run.
func remainingSupply(ed *Edition) (unbounded bool, remaining uint64) {
	if ed.Size == 0 {
		return true, 0
	}
	minted := mintedCount()
	if minted >= ed.Size {
		return false, 0
	}
	return false, ed.Size - minted
}

// requireSupply reverts when the run cannot issue count more tokens.
func requireSupply(ed *Edition, count uint64) {
	unbounded, remaining := remainingSupply(ed)
	if unbounded {
		return
	}
	if count > remaining {
		failSupplyExhausted("edition sold out")
	}
}

// requireMintAuthority checks the sender may issue one token. The owner
// mints freely, and so does everyone while the zero-address public switch
// is set. Otherwise the sender spends one unit of their own quota. Quota
// only burns when it was the reason the mint was allowed, so owner and
// public mints never touch the allowlist.
func requireMintAuthority(ed *Edition) {
	sender := getSenderAddress()
	if sender == ed.Owner {
		return
	}
	if getMinterQuota(sdk.AddressZero) > 0 {
		return
	}
	if getMinterQuota(sender) == 0 {
		failUnauthorized("not authorized to mint")
	}
	consumeMinterQuota(sender)
}

// mintTo issues the next dense id to the recipient and returns it. Callers
// are responsible for supply and authority checks.
func mintTo(to sdk.Address) uint64 {
	id := mintedCount() + 1
	setCount(TokensCount, id)
	setTokenOwner(id, to)
	bumpHolderBalance(to, 1)
	emitTransfer(AddressToString(sdk.AddressZero), AddressToString(to), id)
	return id
}

// Mint issues one token to the caller. The owner always may; anyone may
// while public minting is open; otherwise the caller spends allowlist quota.
// Directed mints go through MintBatch instead.
func Mint() *MintResult {
	ed := requireInitialized()

	requireMintAuthority(ed)
	requireSupply(ed, 1)

	id := mintTo(getSenderAddress())
	return &MintResult{FirstID: id, Count: 1}
}

// MintBatch issues one token per listed recipient in order, so ids stay dense
// and the n-th recipient gets firstId+n-1. Owner only. The whole batch is
// atomic: any invalid recipient or an exhausted run reverts everything.
// Example payload: {"to":["hive:alice","hive:bob"]}
func MintBatch(args *MintBatchArgs) *MintResult {
	ed := requireInitialized()
	if getSenderAddress() != ed.Owner {
		failUnauthorized("only the owner may batch mint")
	}

	if len(args.To) == 0 {
		failEmptyList("no recipients")
	}
	if len(args.To) > MaxBatchRecipients {
		failInvalidConfiguration("too many recipients")
	}

	recipients := make([]sdk.Address, 0, len(args.To))
	for _, raw := range args.To {
		addr := AddressFromString(raw)
		if addr.IsZero() || !validAddress(addr) {
			failInvalidConfiguration("invalid recipient address " + raw)
		}
		recipients = append(recipients, addr)
	}

	count := uint64(len(recipients))
	requireSupply(ed, count)

	first := uint64(0)
	for i, to := range recipients {
		id := mintTo(to)
		if i == 0 {
			first = id
		}
	}
	return &MintResult{FirstID: first, Count: count}
}

// SetMinter grants or revokes an allowlist quota. Quota replaces the previous
// value rather than adding to it; zero removes the entry. A positive quota
// on the zero address opens public minting for everyone.
// Example payload: {"address":"hive:carol","quota":3}
func SetMinter(args *MinterSetArgs) {
	requireOwner()

	addr := AddressFromString(args.Address)
	if !addr.IsZero() && !validAddress(addr) {
		failInvalidConfiguration("invalid minter address")
	}

	setMinterQuota(addr, args.Quota)
	emitMinterSet(AddressToString(addr), args.Quota)
}

// NumberCanMint reports the remaining issuance headroom of the run.
func NumberCanMint() *CanMintView {
	ed := requireInitialized()
	unbounded, remaining := remainingSupply(ed)
	return &CanMintView{Unbounded: unbounded, Remaining: remaining}
}

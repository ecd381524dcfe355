package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// Init creates the one edition this contract instance manages. It can only
// run once; the factory passes the owner, immutable content fields, the run
// size (0 = unbounded) and the explicit revenue shares. The owner's implicit
// remainder is materialized as the final share table row so the table always
// sums to BpsDenominator. The sale gate starts closed (price 0).
func Init(args *InitArgs) {
	if isInitialized() {
		failInvalidConfiguration("edition already initialized")
	}

	owner := AddressFromString(args.Owner)
	if owner.IsZero() {
		owner = getSenderAddress()
	}
	if !validAddress(owner) {
		failInvalidConfiguration("invalid owner address")
	}

	if args.Name == "" || len(args.Name) > MaxNameLength {
		failInvalidConfiguration("name must be 1.." + itoa(MaxNameLength) + " chars")
	}
	if args.ContentURL == "" || len(args.ContentURL) > MaxURLLength {
		failInvalidConfiguration("content_url must be 1.." + itoa(MaxURLLength) + " chars")
	}
	if args.ContentHash == "" {
		failInvalidConfiguration("content_hash required")
	}
	if args.RoyaltyBps >= BpsDenominator {
		failInvalidConfiguration("royalty_bps must be below the denominator")
	}

	shares := buildShareTable(owner, args.Shares)

	ed := &Edition{
		Owner:       owner,
		Name:        args.Name,
		Symbol:      args.Symbol,
		Description: args.Description,
		ContentURL:  args.ContentURL,
		ContentHash: args.ContentHash,
		ContentType: args.ContentType,
		Size:        args.Size,
		RoyaltyBps:  args.RoyaltyBps,
	}
	if args.MetadataContract != "" {
		mc := args.MetadataContract
		ed.MetadataContract = &mc
	}

	saveEdition(ed)
	saveShareTable(shares)
	setSalePrice(uint256.NewInt(0))
	saveLedger(&Ledger{
		TotalReceived:  uint256.NewInt(0),
		TotalWithdrawn: uint256.NewInt(0),
	})

	emitInitEvent(AddressToString(owner), ed.Size, ed.RoyaltyBps)
}

// buildShareTable validates the explicit rows and appends the owner remainder.
// Explicit shares must leave the owner a strictly positive remainder: a table
// that already sums to the full denominator is rejected.
func buildShareTable(owner sdk.Address, inputs []ShareInput) []Shareholder {
	if len(inputs) > MaxShareholders {
		failInvalidConfiguration("too many shareholders")
	}

	shares := make([]Shareholder, 0, len(inputs)+1)
	var total uint64
	for _, in := range inputs {
		addr := AddressFromString(in.Address)
		if !validAddress(addr) || addr.IsZero() {
			failInvalidConfiguration("invalid shareholder address " + in.Address)
		}
		if addr == owner {
			failInvalidConfiguration("owner share is implicit, do not list it")
		}
		if in.Bps == 0 {
			failInvalidConfiguration("zero bps share for " + in.Address)
		}
		// each row stays below the denominator, so the running total cannot wrap
		if in.Bps >= BpsDenominator {
			failInvalidConfiguration("share above denominator for " + in.Address)
		}
		if findShare(shares, addr) != 0 {
			failInvalidConfiguration("duplicate shareholder " + in.Address)
		}
		total += in.Bps
		if total >= BpsDenominator {
			failInvalidConfiguration("explicit shares leave no owner remainder")
		}
		shares = append(shares, Shareholder{Address: addr, Bps: in.Bps})
	}

	shares = append(shares, Shareholder{
		Address: owner,
		Bps:     BpsDenominator - total,
	})
	return shares
}

// UpdateURL repoints the mutable content URL; hash and type stay frozen so the
// original artifact remains verifiable.
func UpdateURL(args *URLArgs) {
	ed := requireOwner()
	if args.URL == "" || len(args.URL) > MaxURLLength {
		failInvalidConfiguration("url must be 1.." + itoa(MaxURLLength) + " chars")
	}
	ed.ContentURL = args.URL
	saveEdition(ed)
	emitURLUpdated(args.URL)
}

package contract

import (
	"nft_editions/sdk"

	"github.com/holiman/uint256"
)

// pendingFor computes what a shareholder may still pull: their truncated
// proportional cut of lifetime receipts minus what they already withdrew.
// Truncation dust stays on the contract balance and is never distributed.
func pendingFor(l *Ledger, shares []Shareholder, addr sdk.Address) *uint256.Int {
	bps := findShare(shares, addr)
	if bps == 0 {
		return uint256.NewInt(0)
	}
	entitled := new(uint256.Int).Mul(l.TotalReceived, uint256.NewInt(bps))
	entitled.Div(entitled, uint256.NewInt(BpsDenominator))

	withdrawn := getWithdrawn(addr)
	if entitled.Cmp(withdrawn) <= 0 {
		return uint256.NewInt(0)
	}
	return entitled.Sub(entitled, withdrawn)
}

// payOut applies the ledger effects for a payout and then moves the funds.
// State is written before the transfer so a re-entrant call into this
// contract sees the entitlement already consumed. The returned error is the
// ledger refusal, with all effects still applied; callers roll back.
func payOut(l *Ledger, addr sdk.Address, amount *uint256.Int) error {
	withdrawn := getWithdrawn(addr)
	setWithdrawn(addr, new(uint256.Int).Add(withdrawn, amount))
	l.TotalWithdrawn.Add(l.TotalWithdrawn, amount)
	saveLedger(l)

	return sdk.HiveTransfer(addr, amount, SaleAsset)
}

// rollbackPayOut undoes the effects of a failed payOut so the entitlement
// stays claimable later.
func rollbackPayOut(l *Ledger, addr sdk.Address, amount *uint256.Int) {
	withdrawn := getWithdrawn(addr)
	setWithdrawn(addr, new(uint256.Int).Sub(withdrawn, amount))
	l.TotalWithdrawn.Sub(l.TotalWithdrawn, amount)
	saveLedger(l)
}

// WithdrawAccount pulls the pending cut of a single shareholder. Anyone may
// trigger it; funds always go to the shareholder, never the caller. A failed
// transfer reverts the whole call.
// Example payload: {"account":"hive:alice"}
func WithdrawAccount(args *WithdrawArgs) *PaymentView {
	requireInitialized()

	account := AddressFromString(args.Account)
	if account.IsZero() {
		account = getSenderAddress()
	}
	if !validAddress(account) {
		failInvalidConfiguration("invalid account address")
	}

	l := loadLedger()
	shares := loadShareTable()
	pending := pendingFor(l, shares, account)
	if pending.IsZero() {
		failNothingDue("nothing to withdraw")
	}

	if err := payOut(l, account, pending); err != nil {
		failTransferFailed("payout refused: " + err.Error())
	}

	emitPaymentReleased(AddressToString(account), pending)
	return &PaymentView{
		Address: AddressToString(account),
		Amount:  pending.Dec(),
	}
}

// Withdraw fans out every pending cut in share table order. Payouts are best
// effort: one refused transfer is rolled back for that shareholder alone and
// reported, the rest still settle. Reverts only when nobody had anything due.
func Withdraw() *WithdrawResult {
	requireInitialized()

	l := loadLedger()
	shares := loadShareTable()

	result := &WithdrawResult{
		Released: []PaymentView{},
		Failed:   []PaymentView{},
	}
	for _, sh := range shares {
		pending := pendingFor(l, shares, sh.Address)
		if pending.IsZero() {
			continue
		}
		addrStr := AddressToString(sh.Address)
		if err := payOut(l, sh.Address, pending); err != nil {
			rollbackPayOut(l, sh.Address, pending)
			emitPaymentFailed(addrStr, pending, err.Error())
			result.Failed = append(result.Failed, PaymentView{
				Address: addrStr,
				Amount:  pending.Dec(),
				Reason:  err.Error(),
			})
			continue
		}
		emitPaymentReleased(addrStr, pending)
		result.Released = append(result.Released, PaymentView{
			Address: addrStr,
			Amount:  pending.Dec(),
		})
	}

	if len(result.Released) == 0 && len(result.Failed) == 0 {
		failNothingDue("nothing to withdraw")
	}
	return result
}

// GetShareholders reports the full table with per-row withdrawn and pending
// amounts, mostly for dashboards.
func GetShareholders() *ShareTableView {
	requireInitialized()

	l := loadLedger()
	shares := loadShareTable()

	view := &ShareTableView{Shares: make([]ShareholderView, 0, len(shares))}
	for _, sh := range shares {
		view.Shares = append(view.Shares, ShareholderView{
			Address:   AddressToString(sh.Address),
			Bps:       sh.Bps,
			Withdrawn: getWithdrawn(sh.Address).Dec(),
			Pending:   pendingFor(l, shares, sh.Address).Dec(),
		})
	}
	return view
}

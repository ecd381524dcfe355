//go:build !wasm

package sdk

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/holiman/uint256"
)

// CallAbort is the panic payload raised by the local host when a contract call
// aborts or reverts. LocalHost.Invoke converts it into an error after rolling
// the state back, mirroring the all-or-nothing semantics of the chain runtime.
type CallAbort struct {
	Msg    string
	Symbol string
}

func (a *CallAbort) Error() string {
	if a.Symbol != "" {
		return a.Symbol + ": " + a.Msg
	}
	return a.Msg
}

// LocalHost is an in-memory stand-in for the VSC host used by plain go builds
// and tests. It keeps kv state, account balances and the emitted log lines,
// and can optionally write state through to a bbolt StateDB so it survives
// process restarts like a devnet node would.
type LocalHost struct {
	kv       map[string]string
	balances map[string]*uint256.Int
	logs     []string
	failing  map[Address]bool
	handlers map[string]func(method, payload string) *string
	db       *StateDB

	ContractID  string
	Sender      Address
	BlockID     string
	BlockHeight uint64
	Timestamp   string
	TxID        string
	Intents     []Intent

	seq   uint64
	txSeq uint64
	drawn *uint256.Int
}

// active is the host all sdk calls route to in non-wasm builds.
var active *LocalHost

// hostSeq makes tx ids globally unique across hosts, so per-transaction
// caches in contract code never confuse two freshly reset hosts.
var hostSeq uint64

// NewLocalHost returns a fresh host with empty state and sane env defaults.
func NewLocalHost() *LocalHost {
	hostSeq++
	return &LocalHost{
		kv:         map[string]string{},
		balances:   map[string]*uint256.Int{},
		failing:    map[Address]bool{},
		handlers:   map[string]func(method, payload string) *string{},
		ContractID: "vsctestcontract",
		BlockID:    "block1",
		Timestamp:  "2026-01-01T00:00:00",
		TxID:       fmt.Sprintf("tx-%d-0", hostSeq),
		seq:        hostSeq,
		drawn:      uint256.NewInt(0),
	}
}

func init() {
	active = NewLocalHost()
}

// Local returns the currently active local host.
func Local() *LocalHost { return active }

// ResetLocal swaps in a brand new host, used by tests to isolate state.
func ResetLocal() *LocalHost {
	active = NewLocalHost()
	return active
}

// Use installs the host as the active one and returns it for chaining.
func (h *LocalHost) Use() *LocalHost {
	active = h
	return h
}

// AttachDB loads persisted state from the given StateDB and keeps writing
// committed calls back to it.
func (h *LocalHost) AttachDB(db *StateDB) error {
	kv, err := db.Load()
	if err != nil {
		return err
	}
	h.kv = kv
	h.db = db
	return nil
}

// Invoke runs fn with call atomicity: abort/revert rolls every state change
// back and is returned as an error; a clean run commits (and flushes to the
// attached StateDB if any).
func (h *LocalHost) Invoke(fn func()) (err error) {
	snapKV := maps.Clone(h.kv)
	snapBal := make(map[string]*uint256.Int, len(h.balances))
	for k, v := range h.balances {
		snapBal[k] = v.Clone()
	}
	snapLogs := len(h.logs)
	h.drawn = uint256.NewInt(0)

	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(*CallAbort)
			if !ok {
				panic(r)
			}
			h.kv = snapKV
			h.balances = snapBal
			h.logs = h.logs[:snapLogs]
			err = ab
			return
		}
		if h.db != nil {
			if dbErr := h.db.Replace(h.kv); dbErr != nil {
				err = dbErr
			}
		}
	}()

	fn()
	return nil
}

// Call sets up the transaction env (sender, intents, fresh tx id) and then
// invokes fn atomically. This is the main entry for tests.
func (h *LocalHost) Call(sender Address, intents []Intent, fn func()) error {
	h.Sender = sender
	h.Intents = intents
	h.txSeq++
	h.TxID = fmt.Sprintf("tx-%d-%d", h.seq, h.txSeq)
	return h.Invoke(fn)
}

// Deposit credits an account out of thin air, like test harness faucets do.
func (h *LocalHost) Deposit(addr Address, amount uint64, asset Asset) {
	bal := h.balance(addr, asset)
	bal.Add(bal, uint256.NewInt(amount))
	h.setBalance(addr, asset, bal)
}

// BalanceOf reads an account balance without going through the env machinery.
func (h *LocalHost) BalanceOf(addr Address, asset Asset) *uint256.Int {
	return h.balance(addr, asset)
}

// ContractAddress is the ledger account the contract itself holds funds on.
func (h *LocalHost) ContractAddress() Address {
	return Address("contract:" + h.ContractID)
}

// FailTransfersTo marks a recipient as rejecting incoming transfers, used to
// exercise the withdraw fan-out failure isolation.
func (h *LocalHost) FailTransfersTo(addr Address, fail bool) {
	if fail {
		h.failing[addr] = true
	} else {
		delete(h.failing, addr)
	}
}

// RegisterContract wires a callable stand-in for another contract (e.g. a
// metadata renderer) into the local chain.
func (h *LocalHost) RegisterContract(id string, handler func(method, payload string) *string) {
	h.handlers[id] = handler
}

// Logs returns all log lines emitted so far (committed calls only).
func (h *LocalHost) Logs() []string { return h.logs }

// ClearLogs drops collected log lines between test phases.
func (h *LocalHost) ClearLogs() { h.logs = nil }

// TransferAllowIntent builds the intent a sender signs to let the contract
// draw up to limit of the given asset.
func TransferAllowIntent(limit string, asset Asset) Intent {
	return Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": asset.String()},
	}
}

func (h *LocalHost) balance(addr Address, asset Asset) *uint256.Int {
	if b, ok := h.balances[balKey(addr, asset)]; ok {
		return b.Clone()
	}
	return uint256.NewInt(0)
}

func (h *LocalHost) setBalance(addr Address, asset Asset, v *uint256.Int) {
	h.balances[balKey(addr, asset)] = v.Clone()
}

func balKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// ----------------------------------------------------------------------------
// host function implementations, same signatures as the wasm imports
// ----------------------------------------------------------------------------

func log(s *string) *string {
	active.logs = append(active.logs, *s)
	return s
}

func stateSetObject(key *string, value *string) *string {
	active.kv[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := active.kv[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(active.kv, *key)
	return nil
}

func getEnv(arg *string) *string {
	h := active
	m := map[string]interface{}{
		"contract.id":                h.ContractID,
		"tx.id":                      h.TxID,
		"tx.index":                   0,
		"tx.op_index":                0,
		"block.id":                   h.BlockID,
		"block.height":               h.BlockHeight,
		"block.timestamp":            h.Timestamp,
		"msg.sender":                 h.Sender.String(),
		"msg.payer":                  h.Sender.String(),
		"msg.required_auths":         []string{h.Sender.String()},
		"msg.required_posting_auths": []string{},
		"intents":                    h.Intents,
	}
	b, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	s := string(b)
	return &s
}

func getEnvKey(arg *string) *string {
	h := active
	var v string
	switch *arg {
	case "contract.id":
		v = h.ContractID
	case "tx.id":
		v = h.TxID
	case "block.id":
		v = h.BlockID
	case "block.timestamp":
		v = h.Timestamp
	default:
		return nil
	}
	return &v
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := active.balance(Address(*arg1), Asset(*arg2))
	s := bal.Dec()
	return &s
}

func hiveDraw(arg1 *string, arg2 *string) *string {
	h := active
	amt, err := uint256.FromDecimal(*arg1)
	if err != nil {
		panic(&CallAbort{Msg: "invalid draw amount"})
	}
	asset := Asset(*arg2)

	var limit *uint256.Int
	for _, intent := range h.Intents {
		if intent.Type != "transfer.allow" || Asset(intent.Args["token"]) != asset {
			continue
		}
		l, err := uint256.FromDecimal(intent.Args["limit"])
		if err != nil {
			panic(&CallAbort{Msg: "invalid transfer.allow limit"})
		}
		limit = l
		break
	}
	if limit == nil {
		panic(&CallAbort{Msg: "missing transfer.allow intent"})
	}
	total := new(uint256.Int).Add(h.drawn, amt)
	if total.Gt(limit) {
		panic(&CallAbort{Msg: "draw exceeds transfer.allow limit"})
	}

	from := h.Sender
	bal := h.balance(from, asset)
	if bal.Lt(amt) {
		panic(&CallAbort{Msg: "insufficient sender balance"})
	}
	h.setBalance(from, asset, bal.Sub(bal, amt))
	cb := h.balance(h.ContractAddress(), asset)
	h.setBalance(h.ContractAddress(), asset, cb.Add(cb, amt))
	h.drawn = total
	return nil
}

func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	h := active
	to := Address(*arg1)
	amt, err := uint256.FromDecimal(*arg2)
	if err != nil {
		msg := "invalid transfer amount"
		return &msg
	}
	asset := Asset(*arg3)

	if h.failing[to] {
		msg := "transfer rejected by recipient"
		return &msg
	}
	bal := h.balance(h.ContractAddress(), asset)
	if bal.Lt(amt) {
		msg := "insufficient contract balance"
		return &msg
	}
	h.setBalance(h.ContractAddress(), asset, bal.Sub(bal, amt))
	tb := h.balance(to, asset)
	h.setBalance(to, asset, tb.Add(tb, amt))
	return nil
}

func contractRead(contractId *string, key *string) *string {
	if _, ok := active.handlers[*contractId]; ok {
		marker := "1"
		return &marker
	}
	return nil
}

func contractCall(contractId *string, method *string, payload *string, options *string) *string {
	handler, ok := active.handlers[*contractId]
	if !ok {
		panic(&CallAbort{Msg: "contract not found: " + *contractId})
	}
	return handler(*method, *payload)
}

func abort(msg, file *string, line, column *int32) {
	panic(&CallAbort{Msg: *msg})
}

func revert(msg, symbol *string) {
	panic(&CallAbort{Msg: *msg, Symbol: *symbol})
}

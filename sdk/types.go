package sdk

// Intent is a signed permission attached to the transaction, e.g. transfer.allow
// which caps how much the contract may draw from the sender.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-transaction execution environment handed over by the host.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Payer       string   `json:"msg.payer"`
	Intents     []Intent `json:"intents"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

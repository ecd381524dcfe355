// Package sdk wraps the VSC wasm host interface. The raw host functions are
// declared twice: as //go:wasmimport bindings for the deployed build and as an
// in-memory local host for plain go builds and tests (see host_wasm.go and
// host_local.go).
package sdk

import (
	"encoding/json"
	"errors"

	"github.com/holiman/uint256"
)

// Log writes a message to the host console / event log so indexers can trace contract steps.
// Example payload: sdk.Log("hello editions")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("not initialized")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("wrong payment", "payment_mismatch")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count:token", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count:token")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count:token")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range raw {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range raw {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender := ""
	if s, ok := envMap["msg.sender"].(string); ok {
		sender = s
	}
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	if c, ok := envMap["msg.caller"].(string); ok {
		env.Caller = Caller{Address: Address(c)}
	} else {
		env.Caller = Caller{Address: env.Sender.Address}
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) *uint256.Int {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := uint256.FromDecimal(balStr)
	if err != nil {
		Abort("invalid balance from host: " + balStr)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(uint256.NewInt(1000), sdk.AssetHive)
func HiveDraw(amount *uint256.Int, asset Asset) {
	amt := amount.Dec()
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address. A non-nil
// error means the ledger refused the transfer (the contract state is untouched
// by the host in that case); callers decide whether that reverts the call.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), uint256.NewInt(500), sdk.AssetHive)
func HiveTransfer(to Address, amount *uint256.Int, asset Asset) error {
	toaddr := to.String()
	amt := amount.Dec()
	as := asset.String()
	res := hiveTransfer(&toaddr, &amt, &as)
	if res != nil && *res != "" {
		return errors.New(*res)
	}
	return nil
}

// ContractStateGet reads another contract's state key (view-only).
// Example payload: sdk.ContractStateGet("contract:metadata", "cfg")
func ContractStateGet(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall("contract:metadata", "render", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}

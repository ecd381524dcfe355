package contract

import (
	"strconv"
	"strings"

	"nft_editions/sdk"

	"github.com/CosmWasm/tinyjson"
)

// unwrapPayload trims whitespace plus one layer of accidental quoting that
// some wallets wrap around JSON payloads.
func unwrapPayload(payload *string) string {
	if payload == nil {
		return ""
	}
	raw := strings.TrimSpace(*payload)
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return strings.TrimSpace(unquoted)
			}
			return strings.TrimSpace(raw[1 : len(raw)-1])
		}
	}
	return raw
}

// decodeArgs parses the JSON payload into the args struct, reverting on
// malformed input so callers never see half-filled args.
func decodeArgs(payload *string, args tinyjson.Unmarshaler) {
	raw := unwrapPayload(payload)
	if raw == "" {
		failInvalidConfiguration("payload required")
	}
	if err := tinyjson.Unmarshal([]byte(raw), args); err != nil {
		failInvalidConfiguration("malformed payload: " + err.Error())
	}
}

// respond serializes a view into the JSON string handed back to the host.
func respond(view tinyjson.Marshaler) *string {
	data, err := tinyjson.Marshal(view)
	if err != nil {
		sdk.Abort("could not serialize response")
	}
	s := string(data)
	return &s
}

// respondOK is the minimal ack for operations without a return value.
func respondOK() *string {
	s := `{"ok":true}`
	return &s
}

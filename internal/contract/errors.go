package contract

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Fallback messages when an error carries neither a reason nor a message.
const (
	FallbackTxFailure   = "Transaction failed"
	FallbackLoadFailure = "Failed to load player data. Please ensure you're on Sepolia network."
)

// RevertReason decodes the Error(string) payload carried in a JSON-RPC error's
// data field. It returns "" when there is none.
func RevertReason(err error) string {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return ""
	}
	var raw []byte
	switch data := dataErr.ErrorData().(type) {
	case string:
		decoded, decodeErr := hexutil.Decode(data)
		if decodeErr != nil {
			return ""
		}
		raw = decoded
	case []byte:
		raw = data
	default:
		return ""
	}
	reason, unpackErr := abi.UnpackRevert(raw)
	if unpackErr != nil {
		return ""
	}
	return reason
}

// Reason maps an error to the text shown to the user: the revert reason when
// present, then the error message, then fallback.
func Reason(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if reason := RevertReason(err); reason != "" {
		return reason
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

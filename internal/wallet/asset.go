package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type watchAssetOptions struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Image    string `json:"image"`
}

type watchAssetParams struct {
	Type    string            `json:"type"`
	Options watchAssetOptions `json:"options"`
}

// WatchAsset asks the wallet to track an ERC20 token. It reports whether the
// user accepted.
//
// JSON-RPC params always travel as an array, so the request carries
// [{type, options}] rather than the bare object an injected provider takes.
// A wallet that only accepts the bare object answers with an error, which
// is returned unchanged.
func WatchAsset(ctx context.Context, p Provider, token common.Address, symbol string, decimals int) (bool, error) {
	var added bool
	err := p.Request(ctx, &added, "wallet_watchAsset", watchAssetParams{
		Type: "ERC20",
		Options: watchAssetOptions{
			Address:  token.Hex(),
			Symbol:   symbol,
			Decimals: decimals,
		},
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// Accounts returns the accounts the wallet currently exposes without prompting.
func Accounts(ctx context.Context, p Provider) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.Request(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

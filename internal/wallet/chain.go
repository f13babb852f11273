package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SepoliaChainID is the network the game contract is deployed on.
var SepoliaChainID = big.NewInt(11155111)

// ChainGuard keeps the wallet on the required network.
type ChainGuard struct {
	chainID   *big.Int
	chainName string
}

func NewChainGuard(chainID *big.Int, chainName string) *ChainGuard {
	if chainID == nil {
		chainID = SepoliaChainID
	}
	if chainName == "" {
		chainName = "Sepolia"
	}
	return &ChainGuard{chainID: new(big.Int).Set(chainID), chainName: chainName}
}

func (g *ChainGuard) ChainID() *big.Int { return new(big.Int).Set(g.chainID) }

func (g *ChainGuard) ChainName() string { return g.chainName }

// HexChainID is the chain id in the 0x form wallets expect, e.g. 0xaa36a7.
func (g *ChainGuard) HexChainID() string {
	return hexutil.EncodeBig(g.chainID)
}

// Matches reports whether chainID is the required chain.
func (g *ChainGuard) Matches(chainID *big.Int) bool {
	return chainID != nil && chainID.Cmp(g.chainID) == 0
}

// CurrentChainID reads eth_chainId from the provider.
func CurrentChainID(ctx context.Context, p Provider) (*big.Int, error) {
	var id hexutil.Big
	if err := p.Request(ctx, &id, "eth_chainId"); err != nil {
		return nil, fmt.Errorf("read chain id: %w", err)
	}
	return id.ToInt(), nil
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// Ensure checks the active network and asks the wallet to switch when it
// differs. It returns the chain id the wallet is on afterwards.
func (g *ChainGuard) Ensure(ctx context.Context, p Provider) (*big.Int, error) {
	current, err := CurrentChainID(ctx, p)
	if err != nil {
		return nil, newError(ErrRequestFailed, err.Error(), err)
	}
	if g.Matches(current) {
		return current, nil
	}

	err = p.Request(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: g.HexChainID()})
	if err != nil {
		if code, ok := ErrorCode(err); ok && code == CodeUnknownChain {
			return nil, newError(ErrUnknownChain, fmt.Sprintf("Please add %s network to MetaMask", g.chainName), err)
		}
		if code, ok := ErrorCode(err); ok && code == CodeUserRejected {
			return nil, newError(ErrUserRejected, err.Error(), err)
		}
		return nil, newError(ErrRequestFailed, err.Error(), err)
	}

	current, err = CurrentChainID(ctx, p)
	if err != nil {
		return nil, newError(ErrRequestFailed, err.Error(), err)
	}
	if !g.Matches(current) {
		return nil, newError(ErrWrongChain, fmt.Sprintf("Please switch to %s network", g.chainName), nil)
	}
	return current, nil
}

package wallet

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Connection is an authorized wallet on the required chain.
type Connection struct {
	Provider Provider
	Account  common.Address
	ChainID  *big.Int
}

// ConnectorConfig configures the wallet connector.
type ConnectorConfig struct {
	Providers        []Provider
	Preferred        string
	RequirePreferred bool
	Guard            *ChainGuard
	Logger           *zap.Logger
}

// Connector runs the wallet handshake: provider selection, account access
// and the network check.
type Connector struct {
	providers        []Provider
	preferred        string
	requirePreferred bool
	guard            *ChainGuard
	logger           *zap.SugaredLogger
}

func NewConnector(cfg ConnectorConfig) *Connector {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Connector{
		providers:        cfg.Providers,
		preferred:        cfg.Preferred,
		requirePreferred: cfg.RequirePreferred,
		guard:            cfg.Guard,
		logger:           cfg.Logger.Sugar(),
	}
}

// Providers returns the configured providers.
func (c *Connector) Providers() []Provider {
	return c.providers
}

// Select picks the provider to connect through. The preferred wallet wins
// when present; otherwise the single (or first) configured provider is used.
func (c *Connector) Select() (Provider, error) {
	if len(c.providers) == 0 {
		return nil, newError(ErrNoProvider,
			"MetaMask is not installed! Please install MetaMask from https://metamask.io to use this DApp.", nil)
	}
	for _, p := range c.providers {
		if strings.EqualFold(p.Name(), c.preferred) {
			return p, nil
		}
	}
	if c.requirePreferred {
		return nil, newError(ErrNotPreferred, "Please use MetaMask wallet to connect.", nil)
	}
	return c.providers[0], nil
}

// RequestAccounts asks the wallet for account access and returns the first account.
func (c *Connector) RequestAccounts(ctx context.Context, p Provider) (common.Address, error) {
	var accounts []common.Address
	if err := p.Request(ctx, &accounts, "eth_requestAccounts"); err != nil {
		c.logger.Warnw("Account request failed", "provider", p.Name(), "error", err)
		return common.Address{}, mapAccountsError(err)
	}
	if len(accounts) == 0 {
		return common.Address{}, newError(ErrNoAccounts, "Failed to connect: No accounts found", nil)
	}
	return accounts[0], nil
}

func mapAccountsError(err error) error {
	code, _ := ErrorCode(err)
	switch code {
	case CodeUserRejected:
		return newError(ErrUserRejected, "Connection rejected. Please approve the connection in MetaMask.", err)
	case CodeRequestPending:
		return newError(ErrRequestPending, "Connection request already pending. Please check MetaMask.", err)
	}
	msg := err.Error()
	if msg == "" {
		msg = "Unknown error"
	}
	return newError(ErrRequestFailed, "Failed to connect: "+msg, err)
}

// Connect selects a provider, requests accounts and makes sure the wallet is
// on the required chain.
func (c *Connector) Connect(ctx context.Context) (*Connection, error) {
	p, err := c.Select()
	if err != nil {
		return nil, err
	}

	account, err := c.RequestAccounts(ctx, p)
	if err != nil {
		return nil, err
	}

	chainID, err := c.guard.Ensure(ctx, p)
	if err != nil {
		return nil, err
	}

	c.logger.Infow("Wallet connected", "provider", p.Name(), "account", account.Hex(), "chainId", chainID)
	return &Connection{Provider: p, Account: account, ChainID: chainID}, nil
}

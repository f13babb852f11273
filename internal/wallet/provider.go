// Package wallet talks to JSON-RPC wallet providers using the same request
// methods a browser wallet extension exposes.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// Standard provider error codes (EIP-1193 / EIP-3326).
const (
	CodeUserRejected   = 4001
	CodeRequestPending = -32002
	CodeUnknownChain   = 4902
)

// Provider is a wallet endpoint.
type Provider interface {
	Name() string
	Request(ctx context.Context, result interface{}, method string, params ...interface{}) error
}

// RPCProvider is a Provider backed by a go-ethereum RPC client.
type RPCProvider struct {
	name   string
	url    string
	client *rpc.Client
}

// Dial connects to the wallet endpoint at url.
func Dial(ctx context.Context, name, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial wallet %s: %w", name, err)
	}
	return &RPCProvider{name: name, url: url, client: client}, nil
}

func (p *RPCProvider) Name() string { return p.name }

func (p *RPCProvider) URL() string { return p.url }

// Client exposes the underlying RPC client so chain reads can share the connection.
func (p *RPCProvider) Client() *rpc.Client { return p.client }

func (p *RPCProvider) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	return p.client.CallContext(ctx, result, method, params...)
}

func (p *RPCProvider) Close() {
	p.client.Close()
}

// ErrorCode extracts the JSON-RPC error code from err.
func ErrorCode(err error) (int, bool) {
	var coded rpc.Error
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return 0, false
}

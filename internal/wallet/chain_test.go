package wallet

import (
	"context"
	"errors"
	"testing"
)

func TestChainGuard_HexChainID(t *testing.T) {
	if got := NewChainGuard(nil, "").HexChainID(); got != "0xaa36a7" {
		t.Errorf("HexChainID() = %s, want 0xaa36a7", got)
	}
}

func TestEnsure_SwitchesNetwork(t *testing.T) {
	p := &MockProvider{
		ProviderName: "metamask",
		Results: map[string][]string{
			"eth_chainId":                {`"0x1"`, `"0xaa36a7"`},
			"wallet_switchEthereumChain": {`null`},
		},
	}

	id, err := NewChainGuard(nil, "").Ensure(context.Background(), p)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if id.Cmp(SepoliaChainID) != 0 {
		t.Errorf("chain id = %s", id)
	}
	params, ok := p.Params["wallet_switchEthereumChain"][0].(switchChainParams)
	if !ok || params.ChainID != "0xaa36a7" {
		t.Errorf("switch params = %#v", p.Params["wallet_switchEthereumChain"])
	}
}

func TestEnsure_UnknownChain(t *testing.T) {
	p := &MockProvider{
		ProviderName: "metamask",
		Results:      map[string][]string{"eth_chainId": {`"0x1"`}},
		Errors: map[string]error{
			"wallet_switchEthereumChain": &codedError{code: CodeUnknownChain, msg: "Unrecognized chain ID"},
		},
	}

	_, err := NewChainGuard(nil, "").Ensure(context.Background(), p)
	if !errors.Is(err, ErrUnknownChain) {
		t.Fatalf("Ensure() error = %v, want ErrUnknownChain", err)
	}
	if err.Error() != "Please add Sepolia network to MetaMask" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestEnsure_StillWrongAfterSwitch(t *testing.T) {
	p := &MockProvider{
		ProviderName: "metamask",
		Results: map[string][]string{
			"eth_chainId":                {`"0x1"`},
			"wallet_switchEthereumChain": {`null`},
		},
	}

	_, err := NewChainGuard(nil, "").Ensure(context.Background(), p)
	if !errors.Is(err, ErrWrongChain) {
		t.Fatalf("Ensure() error = %v, want ErrWrongChain", err)
	}
}

func TestEnsure_OtherSwitchErrorSurfacesRaw(t *testing.T) {
	raw := errors.New("wallet locked")
	p := &MockProvider{
		ProviderName: "metamask",
		Results:      map[string][]string{"eth_chainId": {`"0x5"`}},
		Errors:       map[string]error{"wallet_switchEthereumChain": raw},
	}

	_, err := NewChainGuard(nil, "").Ensure(context.Background(), p)
	if !errors.Is(err, raw) || err.Error() != "wallet locked" {
		t.Fatalf("Ensure() error = %v, want raw wallet error", err)
	}
}

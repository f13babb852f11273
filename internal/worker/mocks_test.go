package worker

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/battlepoint/arena/internal/models"
	"github.com/battlepoint/arena/internal/wallet"
)

// MockStore records every write it receives.
type MockStore struct {
	mu       sync.Mutex
	Records  []models.PlayerState
	FailFor  string
	TopCalls int
}

func (m *MockStore) Record(ctx context.Context, player models.PlayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFor != "" && player.Address == m.FailFor {
		return errors.New("store unavailable")
	}
	m.Records = append(m.Records, player)
	return nil
}

func (m *MockStore) Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TopCalls++
	return models.PlaceholderLeaderboard(), nil
}

func (m *MockStore) records() []models.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.PlayerState(nil), m.Records...)
}

// MockWallet answers eth_chainId and eth_accounts.
type MockWallet struct {
	mu       sync.Mutex
	ChainID  string
	Accounts []string
	Err      error
}

func (m *MockWallet) Name() string { return "metamask" }

func (m *MockWallet) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	var raw []byte
	switch method {
	case "eth_chainId":
		raw, _ = json.Marshal(m.ChainID)
	case "eth_accounts":
		accounts := m.Accounts
		if accounts == nil {
			accounts = []string{}
		}
		raw, _ = json.Marshal(accounts)
	default:
		return errors.New("unsupported method " + method)
	}
	return json.Unmarshal(raw, result)
}

// MockTarget stands in for the arena session.
type MockTarget struct {
	mu       sync.Mutex
	Conn     *wallet.Connection
	Accounts [][]common.Address
	Chains   []*big.Int
}

func (m *MockTarget) Connection() *wallet.Connection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Conn
}

func (m *MockTarget) HandleAccountsChanged(ctx context.Context, accounts []common.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Accounts = append(m.Accounts, accounts)
}

func (m *MockTarget) HandleChainChanged(ctx context.Context, chainID *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Chains = append(m.Chains, chainID)
}

func (m *MockTarget) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Accounts), len(m.Chains)
}

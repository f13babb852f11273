package contract

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MockCaller answers eth_call by method name.
type MockCaller struct {
	mu       sync.Mutex
	Calls    []string
	Outputs  map[string][]interface{}
	Failures map[string]error
}

func (m *MockCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	method, err := gameTokenABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, method.Name)
	m.mu.Unlock()

	if err := m.Failures[method.Name]; err != nil {
		return nil, err
	}
	values, ok := m.Outputs[method.Name]
	if !ok {
		return nil, errors.New("no output for " + method.Name)
	}
	return method.Outputs.Pack(values...)
}

// MockRequester records wallet requests.
type MockRequester struct {
	Methods    []string
	Params     [][]interface{}
	RequestErr error
	Hash       common.Hash
}

func (m *MockRequester) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	m.Methods = append(m.Methods, method)
	m.Params = append(m.Params, params)
	if m.RequestErr != nil {
		return m.RequestErr
	}
	if h, ok := result.(*common.Hash); ok {
		*h = m.Hash
	}
	return nil
}

// MockReceipts returns NotFound for the first Pending lookups.
type MockReceipts struct {
	Pending int
	Status  uint64
	Lookups int
}

func (m *MockReceipts) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	m.Lookups++
	if m.Lookups <= m.Pending {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{TxHash: txHash, Status: m.Status}, nil
}

// rpcDataError mimics the JSON-RPC error the client returns for a revert.
type rpcDataError struct {
	code int
	msg  string
	data interface{}
}

func (e *rpcDataError) Error() string          { return e.msg }
func (e *rpcDataError) ErrorCode() int         { return e.code }
func (e *rpcDataError) ErrorData() interface{} { return e.data }

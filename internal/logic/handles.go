package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/wallet"
)

// ChainBackend serves contract reads and receipt lookups.
type ChainBackend interface {
	contract.Caller
	contract.ReceiptReader
}

// HandleFactory builds the read-only and signer-bound contract handles for a
// connection. It runs once per connection; the handles are then reused.
type HandleFactory func(ctx context.Context, conn *wallet.Connection) (PlayerReader, Transactor, error)

type HandlesConfig struct {
	Address      common.Address
	Backend      ChainBackend // optional; defaults to the wallet's own endpoint
	PollInterval time.Duration
	Logger       *zap.Logger
}

// ContractHandles returns the HandleFactory used in production.
func ContractHandles(cfg HandlesConfig) HandleFactory {
	return func(ctx context.Context, conn *wallet.Connection) (PlayerReader, Transactor, error) {
		backend := cfg.Backend
		if backend == nil {
			rp, ok := conn.Provider.(*wallet.RPCProvider)
			if !ok {
				return nil, nil, fmt.Errorf("provider %s has no chain backend", conn.Provider.Name())
			}
			backend = ethclient.NewClient(rp.Client())
		}

		reader := contract.NewReader(cfg.Address, backend)
		writer := contract.NewWriter(contract.WriterConfig{
			Address:      cfg.Address,
			From:         conn.Account,
			Wallet:       conn.Provider,
			Receipts:     backend,
			PollInterval: cfg.PollInterval,
			Logger:       cfg.Logger,
		})
		return reader, writer, nil
	}
}

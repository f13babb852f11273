package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ErrReverted is returned when a mined transaction has a failed status.
var ErrReverted = errors.New("transaction reverted")

// Requester sends raw JSON-RPC requests to the wallet, which signs
// eth_sendTransaction on the user's behalf.
type Requester interface {
	Request(ctx context.Context, result interface{}, method string, params ...interface{}) error
}

// ReceiptReader fetches transaction receipts. *ethclient.Client satisfies it.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// WriterConfig configures the signer-bound handle.
type WriterConfig struct {
	Address      common.Address
	From         common.Address
	Wallet       Requester
	Receipts     ReceiptReader
	PollInterval time.Duration
	Logger       *zap.Logger
}

// Writer is the signer-bound contract handle. Every mutating method submits
// exactly one transaction and returns its hash without waiting for it.
type Writer struct {
	address      common.Address
	from         common.Address
	abi          abi.ABI
	wallet       Requester
	receipts     ReceiptReader
	pollInterval time.Duration
	logger       *zap.SugaredLogger
}

func NewWriter(cfg WriterConfig) *Writer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Writer{
		address:      cfg.Address,
		from:         cfg.From,
		abi:          gameTokenABI,
		wallet:       cfg.Wallet,
		receipts:     cfg.Receipts,
		pollInterval: cfg.PollInterval,
		logger:       cfg.Logger.Sugar(),
	}
}

// From returns the account transactions are sent from.
func (w *Writer) From() common.Address {
	return w.from
}

type sendTxArgs struct {
	From common.Address `json:"from"`
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

func (w *Writer) send(ctx context.Context, method string, args ...interface{}) (common.Hash, error) {
	input, err := w.abi.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack %s: %w", method, err)
	}

	var hash common.Hash
	err = w.wallet.Request(ctx, &hash, "eth_sendTransaction", sendTxArgs{
		From: w.from,
		To:   w.address,
		Data: input,
	})
	if err != nil {
		return common.Hash{}, err
	}
	w.logger.Infow("Transaction submitted", "method", method, "hash", hash.Hex(), "from", w.from.Hex())
	return hash, nil
}

func (w *Writer) MintForWin(ctx context.Context, player common.Address) (common.Hash, error) {
	return w.send(ctx, "mintForWin", player)
}

func (w *Writer) EnergyBoost(ctx context.Context) (common.Hash, error) {
	return w.send(ctx, "energyBoost")
}

func (w *Writer) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	return w.send(ctx, "transfer", to, amount)
}

func (w *Writer) Burn(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return w.send(ctx, "burn", amount)
}

func (w *Writer) UpgradeWeapon(ctx context.Context, weaponID, statID int) (common.Hash, error) {
	return w.send(ctx, "upgradeWeapon", big.NewInt(int64(weaponID)), big.NewInt(int64(statID)))
}

func (w *Writer) Stake(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return w.send(ctx, "stake", amount)
}

func (w *Writer) Unstake(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return w.send(ctx, "unstake", amount)
}

func (w *Writer) ClaimRewards(ctx context.Context) (common.Hash, error) {
	return w.send(ctx, "claimRewards")
}

// WaitMined polls for the receipt until the transaction is mined or ctx ends.
// Lookup errors other than "not found" are logged and polling continues.
func (w *Writer) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := w.receipts.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, ErrReverted
			}
			return receipt, nil
		case errors.Is(err, ethereum.NotFound), err == nil:
			w.logger.Debugw("Transaction not yet mined", "hash", hash.Hex())
		default:
			w.logger.Warnw("Receipt retrieval failed", "hash", hash.Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

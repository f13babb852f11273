package logic

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/models"
	"github.com/battlepoint/arena/internal/wallet"
)

// ArenaConfig wires the page-level controller.
type ArenaConfig struct {
	Connector    Connector
	Handles      HandleFactory
	Leaderboard  LeaderboardService
	Publisher    Publisher
	TokenAddress common.Address
	ChainName    string
	TxTimeout    time.Duration
	Logger       *zap.Logger
	Now          func() time.Time
}

// Arena owns the single wallet session and dispatches player actions.
// Actions are serialized by one processing flag: while a transaction chain is
// in flight every other action is refused with ErrBusy.
type Arena struct {
	connector    Connector
	handles      HandleFactory
	leaderboard  LeaderboardService
	publisher    Publisher
	tokenAddress common.Address
	chainName    string
	txTimeout    time.Duration
	logger       *zap.SugaredLogger
	now          func() time.Time

	session    *session
	activity   *ActivityLog
	processing atomic.Bool
	connecting atomic.Bool
}

func NewArena(cfg ArenaConfig) *Arena {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ChainName == "" {
		cfg.ChainName = "Sepolia"
	}
	return &Arena{
		connector:    cfg.Connector,
		handles:      cfg.Handles,
		leaderboard:  cfg.Leaderboard,
		publisher:    cfg.Publisher,
		tokenAddress: cfg.TokenAddress,
		chainName:    cfg.ChainName,
		txTimeout:    cfg.TxTimeout,
		logger:       cfg.Logger.Sugar(),
		now:          cfg.Now,
		session:      newSession(),
		activity:     NewActivityLog(cfg.Now),
	}
}

// IsProcessing reports whether an action transaction is in flight.
func (a *Arena) IsProcessing() bool {
	return a.processing.Load()
}

// Connection returns the current wallet connection, or nil.
func (a *Arena) Connection() *wallet.Connection {
	conn, _, _ := a.session.handles()
	return conn
}

func (a *Arena) CurrentAddress() string {
	if conn := a.Connection(); conn != nil {
		return conn.Account.Hex()
	}
	return ""
}

// Connect runs the wallet handshake, builds the contract handles and loads
// the player. Every failure adds one error activity and leaves the session
// untouched.
func (a *Arena) Connect(ctx context.Context) (*models.WalletStatus, error) {
	if !a.connecting.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer a.connecting.Store(false)

	conn, err := a.connector.Connect(ctx)
	if err != nil {
		a.connectFailed(err)
		return nil, err
	}

	reader, writer, err := a.handles(ctx, conn)
	if err != nil {
		a.connectFailed(err)
		return nil, err
	}

	a.session.attach(conn, reader, writer)
	_ = a.reload(ctx, conn.Account)

	connectsTotal.WithLabelValues("success").Inc()
	a.addActivity(models.ActivitySuccess, "Wallet connected successfully")
	a.notify(models.ActivitySuccess, fmt.Sprintf("Wallet connected to %s!", a.chainName), "")
	a.publishState()

	status := a.Wallet()
	return &status, nil
}

func (a *Arena) connectFailed(err error) {
	connectsTotal.WithLabelValues("failure").Inc()
	a.logger.Warnw("Wallet connection failed", "error", err)
	a.addActivity(models.ActivityError, "Failed to connect wallet")

	msg := err.Error()
	if msg == "" {
		msg = "Failed to connect wallet"
	}
	a.notify(models.ActivityError, msg, "")
}

// Disconnect forgets the wallet connection and the player view.
func (a *Arena) Disconnect() models.WalletStatus {
	a.session.detach()
	a.logger.Infow("Wallet disconnected")
	a.publishState()
	return a.Wallet()
}

func (a *Arena) Wallet() models.WalletStatus {
	conn := a.Connection()
	if conn == nil {
		return models.WalletStatus{Connected: false}
	}
	status := models.WalletStatus{
		Connected:    true,
		Provider:     conn.Provider.Name(),
		Address:      conn.Account.Hex(),
		ShortAddress: models.ShortenAddress(conn.Account.Hex()),
		ChainName:    a.chainName,
	}
	if conn.ChainID != nil {
		status.ChainID = conn.ChainID.String()
	}
	return status
}

// WatchAsset asks the connected wallet to track the BPT token.
func (a *Arena) WatchAsset(ctx context.Context) (bool, error) {
	conn := a.Connection()
	if conn == nil {
		return false, ErrNotConnected
	}
	added, err := wallet.WatchAsset(ctx, conn.Provider, a.tokenAddress, contract.TokenSymbol, contract.TokenDecimals)
	if err != nil {
		a.logger.Errorw("Error adding token to wallet", "error", err)
		return false, err
	}
	return added, nil
}

// HandleAccountsChanged follows the wallet's account selection: no account
// means disconnect, a different first account rebinds the handles and reloads.
func (a *Arena) HandleAccountsChanged(ctx context.Context, accounts []common.Address) {
	conn := a.Connection()
	if conn == nil {
		return
	}
	if len(accounts) == 0 {
		a.logger.Infow("Wallet exposed no accounts, disconnecting")
		a.Disconnect()
		return
	}
	if accounts[0] == conn.Account {
		return
	}

	next := &wallet.Connection{Provider: conn.Provider, Account: accounts[0], ChainID: conn.ChainID}
	reader, writer, err := a.handles(ctx, next)
	if err != nil {
		a.logger.Errorw("Failed to rebind contract handles", "account", accounts[0].Hex(), "error", err)
		a.Disconnect()
		return
	}
	a.logger.Infow("Wallet account changed", "from", conn.Account.Hex(), "to", accounts[0].Hex())
	a.session.attach(next, reader, writer)
	_ = a.reload(ctx, next.Account)
	a.publishState()
}

// HandleChainChanged drops the whole session, the equivalent of reloading the page.
func (a *Arena) HandleChainChanged(ctx context.Context, chainID *big.Int) {
	if a.Connection() == nil {
		return
	}
	a.logger.Warnw("Wallet chain changed, resetting session", "chainId", chainID)
	a.session.detach()
	a.activity.Reset()
	a.publishState()
}

func (a *Arena) Dashboard() models.Dashboard {
	conn, player, weapons := a.session.view()

	d := models.Dashboard{
		Player:           player,
		EnergyPercentage: player.EnergyPercentage(),
		Weapons:          make([]models.WeaponView, 0, len(weapons)),
		Activities:       a.activity.Recent(),
		IsProcessing:     a.processing.Load(),
	}
	if conn != nil {
		d.Connected = true
		d.Address = conn.Account.Hex()
		d.ShortAddress = models.ShortenAddress(d.Address)
	}
	for i, w := range weapons {
		d.Weapons = append(d.Weapons, models.WeaponView{ID: i, Name: models.WeaponNames[i], Stats: w})
	}
	return d
}

func (a *Arena) Activity() []models.Activity {
	return a.activity.Recent()
}

// Reload re-runs the batched player read for the connected account.
func (a *Arena) Reload(ctx context.Context) error {
	conn := a.Connection()
	if conn == nil {
		return ErrNotConnected
	}
	return a.reload(ctx, conn.Account)
}

// reload reads the player state and swaps it into the session in one step.
// Failures are logged and reported but leave the previous view in place.
func (a *Arena) reload(ctx context.Context, player common.Address) error {
	_, reader, _ := a.session.handles()
	if reader == nil {
		return ErrNotConnected
	}

	snap, err := reader.LoadPlayer(ctx, player)
	if err != nil {
		reloadFailures.Inc()
		msg := contract.Reason(err, contract.FallbackLoadFailure)
		a.logger.Errorw("Error loading player data", "player", player.Hex(), "error", err)
		a.addActivity(models.ActivityError, msg)
		a.notify(models.ActivityError, msg, "")
		return err
	}

	if !a.session.apply(snap) {
		a.logger.Infow("Discarding player data for inactive account", "player", player.Hex())
		return nil
	}

	if a.leaderboard != nil {
		if err := a.leaderboard.Record(ctx, snap.Player); err != nil {
			a.logger.Warnw("Failed to record leaderboard entry", "player", player.Hex(), "error", err)
		}
	}
	return nil
}

func (a *Arena) addActivity(kind models.ActivityKind, message string) {
	entry := a.activity.Add(kind, message)
	a.publish(models.StreamActivity, entry)
}

func (a *Arena) notify(level models.ActivityKind, title, description string) models.Notification {
	n := models.Notification{Level: level, Title: title, Description: description}
	a.publish(models.StreamNotification, n)
	return n
}

func (a *Arena) publishState() {
	a.publish(models.StreamState, a.Dashboard())
}

func (a *Arena) publish(kind models.StreamEventType, payload interface{}) {
	if a.publisher == nil {
		return
	}
	a.publisher.Publish(models.StreamEvent{Type: kind, Payload: payload, Timestamp: a.now()})
}

package handlers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/battlepoint/arena/internal/models"
)

// MockArenaService
type MockArenaService struct {
	ConnectFunc       func(ctx context.Context) (*models.WalletStatus, error)
	WatchAssetFunc    func(ctx context.Context) (bool, error)
	DashboardFunc     func() models.Dashboard
	ActionFunc        func(action string, args ...interface{}) (*models.ActionResponse, error)
	CurrentAddressVal string

	Actions []string
	Args    [][]interface{}
}

func (m *MockArenaService) Connect(ctx context.Context) (*models.WalletStatus, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return &models.WalletStatus{Connected: true, Address: "0x1111111111111111111111111111111111111111"}, nil
}

func (m *MockArenaService) Disconnect() models.WalletStatus { return models.WalletStatus{} }

func (m *MockArenaService) Wallet() models.WalletStatus {
	if m.CurrentAddressVal == "" {
		return models.WalletStatus{}
	}
	return models.WalletStatus{Connected: true, Address: m.CurrentAddressVal}
}

func (m *MockArenaService) WatchAsset(ctx context.Context) (bool, error) {
	if m.WatchAssetFunc != nil {
		return m.WatchAssetFunc(ctx)
	}
	return true, nil
}

func (m *MockArenaService) Dashboard() models.Dashboard {
	if m.DashboardFunc != nil {
		return m.DashboardFunc()
	}
	return models.Dashboard{Player: models.EmptyPlayerState(""), Activities: []models.Activity{}}
}

func (m *MockArenaService) Activity() []models.Activity {
	return []models.Activity{{ID: "1", Type: models.ActivityInfo, Message: "Boosting energy..."}}
}

func (m *MockArenaService) CurrentAddress() string { return m.CurrentAddressVal }

func (m *MockArenaService) act(action string, args ...interface{}) (*models.ActionResponse, error) {
	m.Actions = append(m.Actions, action)
	m.Args = append(m.Args, args)
	if m.ActionFunc != nil {
		return m.ActionFunc(action, args...)
	}
	return &models.ActionResponse{TxHash: "0xabc", Message: action}, nil
}

func (m *MockArenaService) WinMatch(ctx context.Context) (*models.ActionResponse, error) {
	return m.act("win")
}

func (m *MockArenaService) EnergyBoost(ctx context.Context) (*models.ActionResponse, error) {
	return m.act("energy")
}

func (m *MockArenaService) Transfer(ctx context.Context, to, amount string) (*models.ActionResponse, error) {
	return m.act("transfer", to, amount)
}

func (m *MockArenaService) Burn(ctx context.Context, amount string) (*models.ActionResponse, error) {
	return m.act("burn", amount)
}

func (m *MockArenaService) UpgradeWeapon(ctx context.Context, weaponID, statID int) (*models.ActionResponse, error) {
	return m.act("upgrade", weaponID, statID)
}

func (m *MockArenaService) Stake(ctx context.Context, amount string) (*models.ActionResponse, error) {
	return m.act("stake", amount)
}

func (m *MockArenaService) Unstake(ctx context.Context, amount string) (*models.ActionResponse, error) {
	return m.act("unstake", amount)
}

func (m *MockArenaService) ClaimRewards(ctx context.Context) (*models.ActionResponse, error) {
	return m.act("claim")
}

// MockLeaderboardService
type MockLeaderboardService struct {
	TopFunc func(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error)
}

func (m *MockLeaderboardService) Record(ctx context.Context, player models.PlayerState) error {
	return nil
}

func (m *MockLeaderboardService) Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error) {
	if m.TopFunc != nil {
		return m.TopFunc(ctx, limit, current)
	}
	return models.PlaceholderLeaderboard(), nil
}

// MockSkinService
type MockSkinService struct {
	OwnedByFunc func(ctx context.Context, owner string) ([]models.NFTSkin, error)
	MarketFunc  func(ctx context.Context, viewer string) ([]models.NFTSkin, error)
}

func (m *MockSkinService) OwnedBy(ctx context.Context, owner string) ([]models.NFTSkin, error) {
	if m.OwnedByFunc != nil {
		return m.OwnedByFunc(ctx, owner)
	}
	return []models.NFTSkin{}, nil
}

func (m *MockSkinService) Market(ctx context.Context, viewer string) ([]models.NFTSkin, error) {
	if m.MarketFunc != nil {
		return m.MarketFunc(ctx, viewer)
	}
	return []models.NFTSkin{}, nil
}

type MockPostgres struct {
	PingErr  error
	ExecErr  error
	Executed []string
}

func (m *MockPostgres) Ping(ctx context.Context) error { return m.PingErr }
func (m *MockPostgres) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.Executed = append(m.Executed, sql)
	return pgconn.CommandTag{}, m.ExecErr
}

type MockRedis struct {
	Down bool
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	if m.Down {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	return redis.NewStatusResult("PONG", nil)
}

package logic

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/models"
	"github.com/battlepoint/arena/internal/wallet"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Connector performs the wallet handshake.
type Connector interface {
	Connect(ctx context.Context) (*wallet.Connection, error)
}

// PlayerReader is the read-only contract handle.
type PlayerReader interface {
	LoadPlayer(ctx context.Context, player common.Address) (*contract.Snapshot, error)
}

// Transactor is the signer-bound contract handle.
type Transactor interface {
	MintForWin(ctx context.Context, player common.Address) (common.Hash, error)
	EnergyBoost(ctx context.Context) (common.Hash, error)
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	Burn(ctx context.Context, amount *big.Int) (common.Hash, error)
	UpgradeWeapon(ctx context.Context, weaponID, statID int) (common.Hash, error)
	Stake(ctx context.Context, amount *big.Int) (common.Hash, error)
	Unstake(ctx context.Context, amount *big.Int) (common.Hash, error)
	ClaimRewards(ctx context.Context) (common.Hash, error)
	WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Publisher receives stream events for connected clients.
type Publisher interface {
	Publish(event models.StreamEvent)
}

type ArenaService interface {
	Connect(ctx context.Context) (*models.WalletStatus, error)
	Disconnect() models.WalletStatus
	Wallet() models.WalletStatus
	WatchAsset(ctx context.Context) (bool, error)
	Dashboard() models.Dashboard
	Activity() []models.Activity
	CurrentAddress() string

	WinMatch(ctx context.Context) (*models.ActionResponse, error)
	EnergyBoost(ctx context.Context) (*models.ActionResponse, error)
	Transfer(ctx context.Context, to, amount string) (*models.ActionResponse, error)
	Burn(ctx context.Context, amount string) (*models.ActionResponse, error)
	UpgradeWeapon(ctx context.Context, weaponID, statID int) (*models.ActionResponse, error)
	Stake(ctx context.Context, amount string) (*models.ActionResponse, error)
	Unstake(ctx context.Context, amount string) (*models.ActionResponse, error)
	ClaimRewards(ctx context.Context) (*models.ActionResponse, error)
}

type LeaderboardService interface {
	Record(ctx context.Context, player models.PlayerState) error
	Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error)
}

type SkinService interface {
	OwnedBy(ctx context.Context, owner string) ([]models.NFTSkin, error)
	Market(ctx context.Context, viewer string) ([]models.NFTSkin, error)
}

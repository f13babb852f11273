package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// DefaultLeaderboardSize is used when LEADERBOARD_SIZE is unset.
const DefaultLeaderboardSize = 10

// Postgres is the subset of *pgxpool.Pool the handlers use.
type Postgres interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Redis is the subset of *redis.Client the handlers use.
type Redis interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Postgres Postgres
	Redis    Redis
	Hub      *Hub
	Logger   *zap.Logger
	// Services
	Arena           logic.ArenaService
	Leaderboard     logic.LeaderboardService
	Skins           logic.SkinService
	LeaderboardSize int
	AdminToken      string
}

type Handler struct {
	pg              Postgres
	redis           Redis
	hub             *Hub
	logger          *zap.SugaredLogger
	validator       *validator.Validate
	arena           logic.ArenaService
	leaderboard     logic.LeaderboardService
	skins           logic.SkinService
	leaderboardSize int
	adminToken      string
}

func New(cfg Config) *Handler {
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = DefaultLeaderboardSize
	}
	return &Handler{
		pg:              cfg.Postgres,
		redis:           cfg.Redis,
		hub:             cfg.Hub,
		logger:          cfg.Logger.Sugar(),
		validator:       newValidator(),
		arena:           cfg.Arena,
		leaderboard:     cfg.Leaderboard,
		skins:           cfg.Skins,
		leaderboardSize: cfg.LeaderboardSize,
		adminToken:      cfg.AdminToken,
	}
}

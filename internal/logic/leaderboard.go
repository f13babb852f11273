package logic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/battlepoint/arena/internal/models"
)

const (
	leaderboardKey     = "arena:leaderboard"
	playerKeyPrefix    = "arena:player:"
	defaultLeaderboard = 10
	maxLeaderboard     = 100
)

// LeaderboardStore ranks every player seen by a successful state reload,
// scored by BPT balance.
type LeaderboardStore struct {
	redis RedisClient
}

func NewLeaderboardStore(redis RedisClient) *LeaderboardStore {
	return &LeaderboardStore{redis: redis}
}

// Record upserts the player's balance score and details.
func (s *LeaderboardStore) Record(ctx context.Context, player models.PlayerState) error {
	if player.Address == "" {
		return nil
	}
	balance, err := decimal.NewFromString(player.Balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", player.Balance, err)
	}
	member := strings.ToLower(player.Address)

	if err := s.redis.ZAdd(ctx, leaderboardKey, redis.Z{Score: balance.InexactFloat64(), Member: member}).Err(); err != nil {
		return fmt.Errorf("failed to score player: %w", err)
	}
	err = s.redis.HSet(ctx, playerKeyPrefix+member,
		"address", player.Address,
		"balance", player.Balance,
		"wins", strconv.FormatUint(player.Wins, 10),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store player details: %w", err)
	}
	return nil
}

// Top returns up to limit players by balance. current marks the connected
// player's row. An empty store yields the placeholder board.
func (s *LeaderboardStore) Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboard
	}
	if limit > maxLeaderboard {
		limit = maxLeaderboard
	}

	ranked, err := s.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(ranked) == 0 {
		return placeholderBoard(), nil
	}

	current = strings.ToLower(current)
	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		member, _ := z.Member.(string)
		entry := models.LeaderboardEntry{
			Rank:      i + 1,
			Address:   member,
			Balance:   decimal.NewFromFloat(z.Score).String(),
			IsCurrent: current != "" && member == current,
		}

		details, err := s.redis.HGetAll(ctx, playerKeyPrefix+member).Result()
		if err == nil {
			if addr := details["address"]; addr != "" {
				entry.Address = addr
			}
			if bal := details["balance"]; bal != "" {
				entry.Balance = bal
			}
			entry.Wins, _ = strconv.ParseUint(details["wins"], 10, 64)
		}
		entry.ShortAddress = models.ShortenAddress(entry.Address)
		entries = append(entries, entry)
	}
	return entries, nil
}

func placeholderBoard() []models.LeaderboardEntry {
	entries := models.PlaceholderLeaderboard()
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].ShortAddress = entries[i].Address
	}
	return entries
}

package logic

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/battlepoint/arena/internal/contract"
	"github.com/battlepoint/arena/internal/models"
	"github.com/battlepoint/arena/internal/wallet"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

// MockProvider is a wallet that answers every request with canned JSON.
type MockProvider struct {
	ProviderName string
	Results      map[string]string
	Errors       map[string]error
}

func (m *MockProvider) Name() string { return m.ProviderName }

func (m *MockProvider) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	if err := m.Errors[method]; err != nil {
		return err
	}
	raw, ok := m.Results[method]
	if !ok {
		return errors.New("unsupported method " + method)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal([]byte(raw), result)
}

type MockConnector struct {
	ConnectFunc func(ctx context.Context) (*wallet.Connection, error)
}

func (m *MockConnector) Connect(ctx context.Context) (*wallet.Connection, error) {
	return m.ConnectFunc(ctx)
}

func connectAs(account common.Address) *MockConnector {
	return &MockConnector{ConnectFunc: func(ctx context.Context) (*wallet.Connection, error) {
		return &wallet.Connection{
			Provider: &MockProvider{ProviderName: "metamask", Results: map[string]string{"wallet_watchAsset": "true"}},
			Account:  account,
			ChainID:  big.NewInt(11155111),
		}, nil
	}}
}

// MockReader serves snapshots from a per-account table.
type MockReader struct {
	mu        sync.Mutex
	Snapshots map[common.Address]*contract.Snapshot
	Err       error
	Loads     int
}

func (m *MockReader) LoadPlayer(ctx context.Context, player common.Address) (*contract.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.Err != nil {
		return nil, m.Err
	}
	if snap, ok := m.Snapshots[player]; ok {
		cp := *snap
		return &cp, nil
	}
	return &contract.Snapshot{Player: models.EmptyPlayerState(player.Hex()), Weapons: models.DefaultWeapons()}, nil
}

func (m *MockReader) loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Loads
}

// MockTransactor records submitted transactions.
type MockTransactor struct {
	mu            sync.Mutex
	Sent          []string
	SubmitErr     error
	WaitErr       error
	WaitMinedFunc func(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	LastAmount    *big.Int
	LastTo        common.Address
	LastWeapon    int
	LastStat      int
}

var mockHash = common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000def")

func (m *MockTransactor) record(method string) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, method)
	if m.SubmitErr != nil {
		return common.Hash{}, m.SubmitErr
	}
	return mockHash, nil
}

func (m *MockTransactor) MintForWin(ctx context.Context, player common.Address) (common.Hash, error) {
	m.LastTo = player
	return m.record("mintForWin")
}

func (m *MockTransactor) EnergyBoost(ctx context.Context) (common.Hash, error) {
	return m.record("energyBoost")
}

func (m *MockTransactor) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	m.LastTo, m.LastAmount = to, amount
	return m.record("transfer")
}

func (m *MockTransactor) Burn(ctx context.Context, amount *big.Int) (common.Hash, error) {
	m.LastAmount = amount
	return m.record("burn")
}

func (m *MockTransactor) UpgradeWeapon(ctx context.Context, weaponID, statID int) (common.Hash, error) {
	m.LastWeapon, m.LastStat = weaponID, statID
	return m.record("upgradeWeapon")
}

func (m *MockTransactor) Stake(ctx context.Context, amount *big.Int) (common.Hash, error) {
	m.LastAmount = amount
	return m.record("stake")
}

func (m *MockTransactor) Unstake(ctx context.Context, amount *big.Int) (common.Hash, error) {
	m.LastAmount = amount
	return m.record("unstake")
}

func (m *MockTransactor) ClaimRewards(ctx context.Context) (common.Hash, error) {
	return m.record("claimRewards")
}

func (m *MockTransactor) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if m.WaitMinedFunc != nil {
		return m.WaitMinedFunc(ctx, hash)
	}
	if m.WaitErr != nil {
		return nil, m.WaitErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}, nil
}

func (m *MockTransactor) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Sent...)
}

// MockPublisher collects stream events.
type MockPublisher struct {
	mu     sync.Mutex
	Events []models.StreamEvent
}

func (m *MockPublisher) Publish(event models.StreamEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

func (m *MockPublisher) count(kind models.StreamEventType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Events {
		if e.Type == kind {
			n++
		}
	}
	return n
}

type MockLeaderboard struct {
	mu       sync.Mutex
	Recorded []models.PlayerState
}

func (m *MockLeaderboard) Record(ctx context.Context, player models.PlayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Recorded = append(m.Recorded, player)
	return nil
}

func (m *MockLeaderboard) Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error) {
	return nil, nil
}

// MockRedis keeps a sorted set and hashes in memory.
type MockRedis struct {
	Scores   map[string]float64
	Hashes   map[string]map[string]string
	ZAddErr  error
	RangeErr error
}

func NewMockRedis() *MockRedis {
	return &MockRedis{Scores: map[string]float64{}, Hashes: map[string]map[string]string{}}
}

func (m *MockRedis) ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	if m.ZAddErr != nil {
		return redis.NewIntResult(0, m.ZAddErr)
	}
	for _, z := range members {
		m.Scores[z.Member.(string)] = z.Score
	}
	return redis.NewIntResult(int64(len(members)), nil)
}

func (m *MockRedis) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	if m.RangeErr != nil {
		return redis.NewZSliceCmdResult(nil, m.RangeErr)
	}
	var out []redis.Z
	for member, score := range m.Scores {
		out = append(out, redis.Z{Score: score, Member: member})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if int(stop)+1 < len(out) {
		out = out[:stop+1]
	}
	return redis.NewZSliceCmdResult(out, nil)
}

func (m *MockRedis) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	h := m.Hashes[key]
	if h == nil {
		h = map[string]string{}
		m.Hashes[key] = h
	}
	for i := 0; i+1 < len(values); i += 2 {
		h[values[i].(string)] = values[i+1].(string)
	}
	return redis.NewIntResult(int64(len(values)/2), nil)
}

func (m *MockRedis) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	return redis.NewMapStringStringResult(m.Hashes[key], nil)
}

type MockPgPool struct {
	QueryFunc func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockPgRows{}, nil
}
func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// MockPgRows yields the given skins in order.
type MockPgRows struct {
	Skins   []models.NFTSkin
	ScanErr error
	curr    int
	closed  bool
}

func (r *MockPgRows) Close()                                       { r.closed = true }
func (r *MockPgRows) Err() error                                   { return nil }
func (r *MockPgRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *MockPgRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *MockPgRows) Values() ([]any, error)                       { return nil, nil }
func (r *MockPgRows) RawValues() [][]byte                          { return nil }
func (r *MockPgRows) Conn() *pgx.Conn                              { return nil }
func (r *MockPgRows) Next() bool {
	r.curr++
	return r.curr <= len(r.Skins)
}
func (r *MockPgRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	s := r.Skins[r.curr-1]
	*dest[0].(*int64) = s.TokenID
	*dest[1].(*string) = s.Name
	*dest[2].(*int) = s.WeaponType
	*dest[3].(*int) = s.Rarity
	*dest[4].(*string) = s.ImageURI
	*dest[5].(*string) = s.Owner
	*dest[6].(*bool) = s.Equipped
	*dest[7].(*bool) = s.ForSale
	*dest[8].(**string) = s.Price
	return nil
}

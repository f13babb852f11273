package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/battlepoint/arena/internal/models"
)

// Caller executes read-only contract calls. *ethclient.Client satisfies it.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Snapshot is the result of one batched player read.
type Snapshot struct {
	Player  models.PlayerState
	Weapons [models.WeaponSlots]models.WeaponStats
}

// Reader is the read-only contract handle.
type Reader struct {
	address common.Address
	abi     abi.ABI
	caller  Caller
}

func NewReader(address common.Address, caller Caller) *Reader {
	return &Reader{address: address, abi: gameTokenABI, caller: caller}
}

// Address returns the contract address.
func (r *Reader) Address() common.Address {
	return r.address
}

func (r *Reader) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	to := r.address
	output, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return nil, err
	}
	values, err := r.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

func (r *Reader) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	values, err := r.call(ctx, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return bigAt(values, 0, "balanceOf")
}

// PlayerStats returns wins, energy, staked and pending rewards, in contract units.
func (r *Reader) PlayerStats(ctx context.Context, player common.Address) ([4]*big.Int, error) {
	var out [4]*big.Int
	values, err := r.call(ctx, "getPlayerStats", player)
	if err != nil {
		return out, err
	}
	for i := range out {
		if out[i], err = bigAt(values, i, "getPlayerStats"); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (r *Reader) WeaponStats(ctx context.Context, player common.Address, weaponID int) (models.WeaponStats, error) {
	values, err := r.call(ctx, "getWeaponStats", player, big.NewInt(int64(weaponID)))
	if err != nil {
		return models.WeaponStats{}, err
	}
	var stats [4]uint64
	for i := range stats {
		v, err := bigAt(values, i, "getWeaponStats")
		if err != nil {
			return models.WeaponStats{}, err
		}
		stats[i] = v.Uint64()
	}
	return models.WeaponStats{Damage: stats[0], Range: stats[1], Speed: stats[2], Armor: stats[3]}, nil
}

// LoadPlayer reads balance, player stats and all weapon slots concurrently.
// Either every read succeeds or no snapshot is returned.
func (r *Reader) LoadPlayer(ctx context.Context, player common.Address) (*Snapshot, error) {
	var (
		balance *big.Int
		stats   [4]*big.Int
		weapons [models.WeaponSlots]models.WeaponStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = r.BalanceOf(gctx, player)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = r.PlayerStats(gctx, player)
		return err
	})
	for i := 0; i < models.WeaponSlots; i++ {
		g.Go(func() error {
			var err error
			weapons[i], err = r.WeaponStats(gctx, player, i)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Player: models.PlayerState{
			Address:        player.Hex(),
			Balance:        FormatAmount(balance),
			Wins:           stats[0].Uint64(),
			Energy:         stats[1].Uint64(),
			StakedAmount:   FormatAmount(stats[2]),
			PendingRewards: FormatAmount(stats[3]),
		},
		Weapons: weapons,
	}, nil
}

func bigAt(values []interface{}, i int, method string) (*big.Int, error) {
	if i >= len(values) {
		return nil, fmt.Errorf("%s: missing output %d", method, i)
	}
	v, ok := values[i].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: output %d is %T, not uint256", method, i, values[i])
	}
	return v, nil
}

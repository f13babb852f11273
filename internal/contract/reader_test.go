package contract

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func playerOutputs() map[string][]interface{} {
	return map[string][]interface{}{
		"balanceOf":      {ether(125)},
		"getPlayerStats": {big.NewInt(7), big.NewInt(60), ether(40), ether(2)},
		"getWeaponStats": {big.NewInt(25), big.NewInt(10), big.NewInt(15), big.NewInt(10)},
	}
}

func TestLoadPlayer_BatchesAllReads(t *testing.T) {
	caller := &MockCaller{Outputs: playerOutputs()}
	reader := NewReader(common.HexToAddress("0x00000000000000000000000000000000000000aa"), caller)
	player := common.HexToAddress("0x1111111111111111111111111111111111111111")

	snap, err := reader.LoadPlayer(context.Background(), player)
	if err != nil {
		t.Fatalf("LoadPlayer() error = %v", err)
	}

	calls := append([]string(nil), caller.Calls...)
	sort.Strings(calls)
	want := []string{"balanceOf", "getPlayerStats", "getWeaponStats", "getWeaponStats", "getWeaponStats"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}

	p := snap.Player
	if p.Balance != "125" || p.Wins != 7 || p.Energy != 60 || p.StakedAmount != "40" || p.PendingRewards != "2" {
		t.Errorf("unexpected player state: %+v", p)
	}
	if p.Address != player.Hex() {
		t.Errorf("Address = %s, want %s", p.Address, player.Hex())
	}
	for i, w := range snap.Weapons {
		if w.Damage != 25 || w.Range != 10 || w.Speed != 15 || w.Armor != 10 {
			t.Errorf("weapon %d = %+v", i, w)
		}
	}
}

func TestLoadPlayer_AnyFailureDiscardsSnapshot(t *testing.T) {
	caller := &MockCaller{
		Outputs:  playerOutputs(),
		Failures: map[string]error{"getPlayerStats": errors.New("execution reverted")},
	}
	reader := NewReader(common.Address{}, caller)

	snap, err := reader.LoadPlayer(context.Background(), common.HexToAddress("0x01"))
	if err == nil {
		t.Fatal("LoadPlayer() expected error")
	}
	if snap != nil {
		t.Errorf("LoadPlayer() snapshot = %+v, want nil", snap)
	}
}

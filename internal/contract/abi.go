package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// GameTokenABI is the subset of the BattlePoint token ABI the arena calls.
const GameTokenABI = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
		"inputs":[{"name":"account","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getPlayerStats","stateMutability":"view",
		"inputs":[{"name":"player","type":"address"}],
		"outputs":[
			{"name":"wins","type":"uint256"},
			{"name":"energy","type":"uint256"},
			{"name":"staked","type":"uint256"},
			{"name":"pendingRewards","type":"uint256"}]},
	{"type":"function","name":"getWeaponStats","stateMutability":"view",
		"inputs":[{"name":"player","type":"address"},{"name":"weaponId","type":"uint256"}],
		"outputs":[
			{"name":"damage","type":"uint256"},
			{"name":"range","type":"uint256"},
			{"name":"speed","type":"uint256"},
			{"name":"armor","type":"uint256"}]},
	{"type":"function","name":"mintForWin","stateMutability":"nonpayable",
		"inputs":[{"name":"player","type":"address"}],"outputs":[]},
	{"type":"function","name":"energyBoost","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
		"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"burn","stateMutability":"nonpayable",
		"inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"upgradeWeapon","stateMutability":"nonpayable",
		"inputs":[{"name":"weaponId","type":"uint256"},{"name":"statId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"stake","stateMutability":"nonpayable",
		"inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"unstake","stateMutability":"nonpayable",
		"inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"claimRewards","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

// Token metadata used for wallet_watchAsset.
const (
	TokenSymbol   = "BPT"
	TokenDecimals = 18
)

var gameTokenABI = mustParseABI(GameTokenABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("contract: invalid game token ABI: " + err.Error())
	}
	return parsed
}

// ABI returns the parsed game token ABI.
func ABI() abi.ABI {
	return gameTokenABI
}

package models

// Weapon slots are fixed by the contract.
const WeaponSlots = 3

// Stat ids accepted by upgradeWeapon.
const (
	StatDamage = iota
	StatRange
	StatSpeed
	StatArmor
)

// MaxEnergy is the upper bound the contract enforces on player energy.
const MaxEnergy = 100

var (
	WeaponNames = [WeaponSlots]string{"ASSAULT RIFLE", "SNIPER", "SHOTGUN"}
	StatNames   = [4]string{"damage", "range", "speed", "armor"}
)

// PlayerState is the batched read of a player's on-chain figures.
// Token amounts are already formatted in BPT (18 decimals).
type PlayerState struct {
	Address        string `json:"address"`
	Balance        string `json:"balance"`
	Wins           uint64 `json:"wins"`
	Energy         uint64 `json:"energy"`
	StakedAmount   string `json:"staked_amount"`
	PendingRewards string `json:"pending_rewards"`
}

// EnergyPercentage returns the energy bar fill, capped at 100.
func (p PlayerState) EnergyPercentage() float64 {
	pct := float64(p.Energy) / MaxEnergy * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// EmptyPlayerState is what the dashboard shows before the first successful read.
func EmptyPlayerState(address string) PlayerState {
	return PlayerState{
		Address:        address,
		Balance:        "0",
		StakedAmount:   "0",
		PendingRewards: "0",
	}
}

type WeaponStats struct {
	Damage uint64 `json:"damage"`
	Range  uint64 `json:"range"`
	Speed  uint64 `json:"speed"`
	Armor  uint64 `json:"armor"`
}

// Stat returns the value for one of the Stat* ids.
func (w WeaponStats) Stat(statID int) uint64 {
	switch statID {
	case StatDamage:
		return w.Damage
	case StatRange:
		return w.Range
	case StatSpeed:
		return w.Speed
	case StatArmor:
		return w.Armor
	}
	return 0
}

// DefaultWeapons are shown until the contract has been read.
func DefaultWeapons() [WeaponSlots]WeaponStats {
	return [WeaponSlots]WeaponStats{
		{Damage: 10, Range: 10, Speed: 10, Armor: 10},
		{Damage: 15, Range: 20, Speed: 5, Armor: 10},
		{Damage: 20, Range: 5, Speed: 15, Armor: 10},
	}
}

// WeaponView is a weapon slot as rendered by the upgrade panel.
type WeaponView struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Stats WeaponStats `json:"stats"`
}

// Dashboard is the full page view for the connected player.
type Dashboard struct {
	Connected        bool         `json:"connected"`
	Address          string       `json:"address,omitempty"`
	ShortAddress     string       `json:"short_address,omitempty"`
	Player           PlayerState  `json:"player"`
	EnergyPercentage float64      `json:"energy_percentage"`
	Weapons          []WeaponView `json:"weapons"`
	Activities       []Activity   `json:"activities"`
	IsProcessing     bool         `json:"is_processing"`
}

// ShortenAddress renders 0x1234...5678.
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

package models

// LeaderboardEntry for leaderboard display
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	Address      string `json:"address"`
	ShortAddress string `json:"short_address"`
	Balance      string `json:"balance"`
	Wins         uint64 `json:"wins"`
	IsCurrent    bool   `json:"is_current"`
}

// PlaceholderLeaderboard is served while no player has been recorded yet.
func PlaceholderLeaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Address: "0x1234...5678", Balance: "1250", Wins: 45},
		{Address: "0x8765...4321", Balance: "980", Wins: 38},
		{Address: "0xabcd...efgh", Balance: "750", Wins: 29},
	}
}

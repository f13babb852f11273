package models

type AmountRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

type TransferRequest struct {
	To     string `json:"to" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,numeric"`
}

type UpgradeRequest struct {
	WeaponID *int `json:"weapon_id" validate:"required,min=0,max=2"`
	StatID   *int `json:"stat_id" validate:"required,min=0,max=3"`
}

// ActionResponse is returned by every action endpoint.
type ActionResponse struct {
	TxHash       string       `json:"tx_hash"`
	Message      string       `json:"message"`
	Notification Notification `json:"notification"`
	Dashboard    Dashboard    `json:"dashboard"`
}

// WalletStatus describes the current wallet connection.
type WalletStatus struct {
	Connected    bool   `json:"connected"`
	Provider     string `json:"provider,omitempty"`
	Address      string `json:"address,omitempty"`
	ShortAddress string `json:"short_address,omitempty"`
	ChainID      string `json:"chain_id,omitempty"`
	ChainName    string `json:"chain_name,omitempty"`
}

type WatchAssetResponse struct {
	Added bool `json:"added"`
}

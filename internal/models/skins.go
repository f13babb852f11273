package models

const (
	RarityCommon = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

var RarityNames = [4]string{"COMMON", "RARE", "EPIC", "LEGENDARY"}

// NFTSkin is a weapon skin as indexed from the skins collection.
type NFTSkin struct {
	TokenID     int64   `json:"token_id"`
	Name        string  `json:"name"`
	WeaponType  int     `json:"weapon_type"`
	WeaponName  string  `json:"weapon_name"`
	Rarity      int     `json:"rarity"`
	RarityName  string  `json:"rarity_name"`
	ImageURI    string  `json:"image_uri"`
	Owner       string  `json:"owner"`
	Equipped    bool    `json:"equipped"`
	ForSale     bool    `json:"for_sale,omitempty"`
	Price       *string `json:"price,omitempty"`
}

// Label fills the display names from the numeric ids.
func (s *NFTSkin) Label() {
	if s.WeaponType >= 0 && s.WeaponType < len(WeaponNames) {
		s.WeaponName = WeaponNames[s.WeaponType]
	}
	if s.Rarity >= 0 && s.Rarity < len(RarityNames) {
		s.RarityName = RarityNames[s.Rarity]
	}
}

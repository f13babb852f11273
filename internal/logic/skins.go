package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/battlepoint/arena/internal/models"
)

// SkinCatalog reads the off-chain index of weapon skin NFTs.
type SkinCatalog struct {
	pg PgPool
}

func NewSkinCatalog(pg PgPool) *SkinCatalog {
	return &SkinCatalog{pg: pg}
}

const skinColumns = `token_id, name, weapon_type, rarity, COALESCE(image_uri, ''), owner, equipped, for_sale, price::text`

// OwnedBy returns the skins held by owner, equipped first.
func (s *SkinCatalog) OwnedBy(ctx context.Context, owner string) ([]models.NFTSkin, error) {
	if owner == "" {
		return []models.NFTSkin{}, nil
	}
	rows, err := s.pg.Query(ctx, `
		SELECT `+skinColumns+`
		FROM nft_skins
		WHERE lower(owner) = $1
		ORDER BY equipped DESC, rarity DESC, token_id
	`, strings.ToLower(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to get skins: %w", err)
	}
	return scanSkins(rows)
}

// Market returns the listed skins the viewer does not already own.
func (s *SkinCatalog) Market(ctx context.Context, viewer string) ([]models.NFTSkin, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT `+skinColumns+`
		FROM nft_skins
		WHERE for_sale AND lower(owner) <> $1
		ORDER BY rarity DESC, price, token_id
	`, strings.ToLower(viewer))
	if err != nil {
		return nil, fmt.Errorf("failed to get market listings: %w", err)
	}
	return scanSkins(rows)
}

func scanSkins(rows pgx.Rows) ([]models.NFTSkin, error) {
	defer rows.Close()

	skins := []models.NFTSkin{}
	for rows.Next() {
		var skin models.NFTSkin
		if err := rows.Scan(&skin.TokenID, &skin.Name, &skin.WeaponType, &skin.Rarity,
			&skin.ImageURI, &skin.Owner, &skin.Equipped, &skin.ForSale, &skin.Price); err != nil {
			return nil, fmt.Errorf("failed to scan skin: %w", err)
		}
		skin.Label()
		skins = append(skins, skin)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skins, nil
}

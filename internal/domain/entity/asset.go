package entity

import "nft_escrow/internal/domain/value"

// AssetMetadata только для отображения, на жизненный цикл не влияет.
type AssetMetadata struct {
	Address  value.Address
	Name     string
	Symbol   string
	MediaURI string
}

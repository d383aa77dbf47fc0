package entity

import "nft_escrow/internal/domain/value"

// EscrowAccount состояние удерживающего счёта на леджере.
type EscrowAccount struct {
	Address    value.Address
	Exists     bool
	Resolution value.EscrowResolution
}

// IsOpen сообщает, что счёт ещё удерживает актив.
func (a EscrowAccount) IsOpen() bool {
	return a.Exists && a.Resolution == value.EscrowUnresolved
}

// IsMissing счёта нет, и исход по нему неизвестен.
func (a EscrowAccount) IsMissing() bool {
	return !a.Exists && a.Resolution == value.EscrowUnresolved
}

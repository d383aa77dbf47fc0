package escrow

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"lukechampine.com/blake3"

	"nft_escrow/internal/domain/value"
)

// escrowSeed отделяет адреса эскроу от других производных ключей.
const escrowSeed = "nft-escrow/holding-account"

// DeriveAddress выводит адрес удерживающего счёта из участников сделки и nonce.
// Одинаковые входы дают одинаковый адрес.
func DeriveAddress(seller, buyer, asset value.Address, nonce uint64) (value.Address, error) {
	h := blake3.New(32, nil) //nolint:mnd // 256-bit digest

	_, _ = h.Write([]byte(escrowSeed))

	for _, part := range []value.Address{seller, buyer, asset} {
		key := part.Key()
		if key == nil {
			return "", fmt.Errorf("escrow.DeriveAddress: %q: %w", part, value.ErrAddressMalformed)
		}

		_, _ = h.Write(key)
	}

	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	_, _ = h.Write(n[:])

	var key [32]byte
	copy(key[:], h.Sum(nil))

	return value.AddressFromKey(key), nil
}

// RandomNonce новый nonce на каждую сделку, чтобы повторная продажа того же
// актива получала новый счёт.
func RandomNonce() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("rand.Read: %w", err)
	}

	return binary.BigEndian.Uint64(buf[:]), nil
}

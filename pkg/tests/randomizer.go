package tests

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/btcsuite/btcutil/base58"
)

const addressKeyLength = 32

type Randomizer struct {
	Float64 func() float64
	Intn    func(n int) int
	Bool    func() bool
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Intn:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}

// Address случайный 32-байтный ключ в base58.
func (r Randomizer) Address() string {
	key := make([]byte, addressKeyLength)
	for i := range key {
		key[i] = byte(r.Intn(256)) //nolint:mnd // skip
	}

	return base58.Encode(key)
}

// Amount положительная сумма с не более чем одним знаком после точки.
func (r Randomizer) Amount(maxWhole int) string {
	whole, tenths := r.Intn(maxWhole), r.Intn(10) //nolint:mnd // skip
	if whole == 0 && tenths == 0 {
		tenths = 1
	}

	return fmt.Sprintf("%d.%d", whole, tenths)
}

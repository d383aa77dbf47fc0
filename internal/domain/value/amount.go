package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxFractionRepr is the longest accepted rendering of amount mod 1: "0.5".
	maxFractionRepr = 3
	// MaxAmountLength bounds the text form, so the decimal stays small.
	MaxAmountLength = 32
)

var (
	ErrAmountTooLong  = fmt.Errorf("amount is longer than %d characters", MaxAmountLength)
	ErrAmountExponent = errors.New("amount must be written without an exponent")
)

// Amount is a money-like decimal quantity. Arithmetic never goes through
// float64.
type Amount struct {
	d decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// ParseAmount принимает только позиционную запись: "2.5", "-1", "0.05".
// Экспонента и длинные строки отсекаются до разбора, иначе Mod и Add
// строят big.Int на миллионы цифр.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)

	if len(s) > MaxAmountLength {
		return Amount{}, ErrAmountTooLong
	}

	if strings.ContainsAny(s, "eE") {
		return Amount{}, ErrAmountExponent
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	return Amount{d: d}, nil
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

func (a Amount) String() string {
	return a.d.String()
}

func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

func (a Amount) Equal(other Amount) bool {
	return a.d.Equal(other.d)
}

func (a Amount) Add(other Amount) Amount {
	return Amount{d: a.d.Add(other.d)}
}

func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{d: a.d.Mul(factor)}
}

// HasAtMostOneDecimal renders amount mod 1 and rejects anything longer than
// "0.5". Negative fractions ("-0.5") are rejected by the same rule.
func (a Amount) HasAtMostOneDecimal() bool {
	return len(a.d.Mod(decimal.NewFromInt(1)).String()) <= maxFractionRepr
}

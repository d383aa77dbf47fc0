package fee

import (
	"fmt"

	"github.com/shopspring/decimal"

	"nft_escrow/internal/domain/value"
)

// DefaultPercentage доля комиссии, если конфиг не задан.
var DefaultPercentage = decimal.RequireFromString("0.02") //nolint:gochecknoglobals

// Calculator считает комиссию без float-арифметики. Ошибок не возвращает:
// отрицательные и нулевые суммы отсекает валидатор.
type Calculator struct {
	percentage decimal.Decimal
}

func NewCalculator(percentage decimal.Decimal) Calculator {
	return Calculator{percentage: percentage}
}

// ParsePercentage принимает долю в диапазоне [0, 1).
func ParsePercentage(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fee.ParsePercentage: %w", err)
	}

	if p.IsNegative() || p.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("fee.ParsePercentage: %s is outside [0, 1)", p)
	}

	return p, nil
}

func (c Calculator) Percentage() decimal.Decimal {
	return c.percentage
}

func (c Calculator) Fee(amount value.Amount) value.Amount {
	return amount.Mul(c.percentage)
}

func (c Calculator) Total(amount value.Amount) value.Amount {
	return amount.Add(c.Fee(amount))
}

type Quote struct {
	Amount     value.Amount
	Fee        value.Amount
	Total      value.Amount
	Percentage decimal.Decimal
}

func (c Calculator) Quote(amount value.Amount) Quote {
	fee := c.Fee(amount)

	return Quote{
		Amount:     amount,
		Fee:        fee,
		Total:      amount.Add(fee),
		Percentage: c.percentage,
	}
}

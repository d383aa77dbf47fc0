package fee_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain/service/fee"
	"nft_escrow/internal/domain/value"
)

func TestCalculator(t *testing.T) {
	rq := require.New(t)

	calc := fee.NewCalculator(decimal.RequireFromString("0.02"))

	testCases := []struct {
		amount string
		fee    string
		total  string
	}{
		{amount: "2.5", fee: "0.05", total: "2.55"},
		{amount: "0.1", fee: "0.002", total: "0.102"},
		{amount: "100", fee: "2", total: "102"},
		{amount: "0", fee: "0", total: "0"},
		{amount: "-1.5", fee: "-0.03", total: "-1.53"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(*testing.T) {
			amount := value.MustParseAmount(tc.amount)

			rq.True(value.MustParseAmount(tc.fee).Equal(calc.Fee(amount)), calc.Fee(amount).String())
			rq.True(value.MustParseAmount(tc.total).Equal(calc.Total(amount)), calc.Total(amount).String())
		})
	}
}

func TestCalculatorQuote(t *testing.T) {
	rq := require.New(t)

	quote := fee.NewCalculator(fee.DefaultPercentage).Quote(value.MustParseAmount("2.5"))

	rq.Equal("2.5", quote.Amount.String())
	rq.Equal("0.05", quote.Fee.String())
	rq.Equal("2.55", quote.Total.String())
	rq.Equal("0.02", quote.Percentage.String())
}

func TestParsePercentage(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input   string
		wantErr bool
	}{
		{input: "0.02"},
		{input: "0"},
		{input: "0.999"},
		{input: "1", wantErr: true},
		{input: "-0.01", wantErr: true},
		{input: "two", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			_, err := fee.ParsePercentage(tc.input)
			if tc.wantErr {
				rq.Error(err)

				return
			}

			rq.NoError(err)
		})
	}
}

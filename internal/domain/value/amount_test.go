package value_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nft_escrow/internal/domain/value"
	"nft_escrow/pkg/tests"
)

func TestAmountHasAtMostOneDecimal(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input string
		want  bool
	}{
		{input: "2.5", want: true},
		{input: "2", want: true},
		{input: "0.1", want: true},
		{input: "2.50", want: true},
		{input: "100.0", want: true},
		{input: "2.55", want: false},
		{input: "0.05", want: false},
		{input: "1.123", want: false},
		{input: "-2.5", want: false},
		{input: "-3", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(*testing.T) {
			rq.Equal(tc.want, value.MustParseAmount(tc.input).HasAtMostOneDecimal())
		})
	}
}

func TestAmountHasAtMostOneDecimalRandomized(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 500 {
		raw := random.Amount(1_000_000)

		oneDigit := value.MustParseAmount(raw)
		rq.True(oneDigit.HasAtMostOneDecimal(), oneDigit.String())
		rq.True(oneDigit.IsPositive(), oneDigit.String())

		hundredths := 1 + random.Intn(9)

		twoDigits := value.MustParseAmount(fmt.Sprintf("%s%d", raw, hundredths))
		rq.False(twoDigits.HasAtMostOneDecimal(), twoDigits.String())
	}
}

func TestParseAmount(t *testing.T) {
	rq := require.New(t)

	amount, err := value.ParseAmount(" 2.5 ")
	rq.NoError(err)
	rq.Equal("2.5", amount.String())
	rq.True(amount.IsPositive())

	_, err = value.ParseAmount("two")
	rq.Error(err)

	rq.False(value.MustParseAmount("0").IsPositive())
	rq.True(value.MustParseAmount("2.5").Add(value.MustParseAmount("0.05")).Equal(value.MustParseAmount("2.55")))
}

func TestParseAmountRejectsUnboundedForms(t *testing.T) {
	testCases := []struct {
		input string
		err   error
	}{
		{input: "1e9999999", err: value.ErrAmountExponent},
		{input: "1e10000000", err: value.ErrAmountExponent},
		{input: "2.5E3", err: value.ErrAmountExponent},
		{input: "-1e-200000", err: value.ErrAmountExponent},
		{input: "1" + strings.Repeat("0", value.MaxAmountLength), err: value.ErrAmountTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.input[:min(len(tc.input), 12)], func(t *testing.T) {
			rq := require.New(t)

			start := time.Now()

			_, err := value.ParseAmount(tc.input)
			rq.ErrorIs(err, tc.err)
			rq.Less(time.Since(start), 100*time.Millisecond)
		})
	}

	longest, err := value.ParseAmount(strings.Repeat("9", value.MaxAmountLength-2) + ".5")
	require.NoError(t, err)
	require.True(t, longest.HasAtMostOneDecimal())
}

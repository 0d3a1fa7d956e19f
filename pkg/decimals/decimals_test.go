package decimals

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/soldracula/dracula/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	t.Run("overflow_decimals", func(t *testing.T) {
		assert.NotPanics(t, func() { ToDecimal(1, math.MaxInt32-1) }, "in-range decimals shouldn't panic")
		assert.NotPanics(t, func() { ToDecimal(1, math.MinInt32+1) }, "in-range decimals shouldn't panic")
		assert.Panics(t, func() { ToDecimal(1, int64(math.MaxInt32)+1) }, "out of range decimals should panic")
		assert.Panics(t, func() { ToDecimal(1, int64(math.MinInt32)) }, "out of range decimals should panic")
	})

	testcases := []struct {
		decimals uint16
		value    uint64
		expected string
	}{
		{0, 1, "1"},
		{1, 1, "0.1"},
		{9, 1, "0.000000001"},
		{9, 1_500_000_000, "1.5"},
		{36, 1, "0.000000000000000000000000000000000001"},
		{0, math.MaxUint64, "18446744073709551615"},
		{9, math.MaxUint64, "18446744073.709551615"},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d_%d", tc.decimals, tc.value), func(t *testing.T) {
			actual := ToDecimal(tc.value, tc.decimals)
			assert.Equal(t, tc.expected, actual.String())
		})
	}

	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, "-0.25", ToDecimal(-25, 2).String())
	})
}

func TestLamportsToSOL(t *testing.T) {
	assert.Equal(t, "0.001", LamportsToSOL(1_000_000).String())
	assert.Equal(t, "0", LamportsToSOL(0).String())
}

func TestSOLToLamports(t *testing.T) {
	testcases := []struct {
		sol      string
		expected uint64
	}{
		{"0", 0},
		{"0.001", 1_000_000},
		{"1", 1_000_000_000},
		{"0.0000000001", 1},
		{"0.0000000015", 2},
	}
	for _, tc := range testcases {
		t.Run(tc.sol, func(t *testing.T) {
			actual, err := SOLToLamports(MustFromString(tc.sol))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := SOLToLamports(decimal.NewFromInt(-1))
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})
	t.Run("overflow", func(t *testing.T) {
		_, err := SOLToLamports(MustFromString("100000000000"))
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})
}

func TestPowerOfTen(t *testing.T) {
	for n := int64(-36); n <= 36; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			assert.True(t, decimal.New(1, int32(n)).Equal(PowerOfTen(n)))
		})
	}
	t.Run("outside_table", func(t *testing.T) {
		assert.True(t, decimal.New(1, 40).Equal(PowerOfTen(40)))
	})
}

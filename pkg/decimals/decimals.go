package decimals

import (
	"math"
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
)

const (
	DefaultDivPrecision = 36

	// SOLDecimals is the number of lamport digits in one SOL.
	SOLDecimals = 9
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal scales an integer amount of base units down by decimals.
func ToDecimal[T Integer, D Integer](value T, decimals D) decimal.Decimal {
	switch {
	case int64(decimals) > math.MaxInt32:
		logger.Panic("ToDecimal: decimals is too big, should be equal less than 2^31-1", slogx.Any("decimals", decimals))
	case int64(decimals) < math.MinInt32+1:
		logger.Panic("ToDecimal: decimals is too small, should be greater than -2^31", slogx.Any("decimals", decimals))
	}

	var v *big.Int
	if value < 0 {
		v = big.NewInt(int64(value))
	} else {
		v = new(big.Int).SetUint64(uint64(value))
	}
	return decimal.NewFromBigInt(v, -int32(decimals))
}

// LamportsToSOL formats a lamport amount as SOL.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return ToDecimal(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL amount to lamports, rounding fractions of a lamport up.
func SOLToLamports(sol decimal.Decimal) (uint64, error) {
	if sol.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "negative amount %s SOL", sol)
	}
	lamports := sol.Mul(PowerOfTen(SOLDecimals)).Ceil().BigInt()
	if !lamports.IsUint64() {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s SOL overflows lamports", sol)
	}
	return lamports.Uint64(), nil
}

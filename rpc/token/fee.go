package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// feeExp is a decimal exponent of contract fee percentages.
const feeExp = 18

// FeePrecision is a contract representation of 100% fee.
var FeePrecision = new(big.Int).Exp(big.NewInt(10), big.NewInt(feeExp), nil)

// ErrInvalidFeeRate is returned for fee rates out of [0, 1] range or with
// precision finer than the contract supports.
var ErrInvalidFeeRate = errors.New("invalid fee rate")

// FeeRate converts contract fee percent into a fraction, 0.01 is 1%.
func FeeRate(percent *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(percent, -feeExp)
}

// FeePercent converts a fraction into contract fee percent.
func FeePercent(rate decimal.Decimal) (*big.Int, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFeeRate, rate)
	}

	shifted := rate.Shift(feeExp)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFeeRate, rate)
	}

	return shifted.BigInt(), nil
}

// SplitFee calculates fee and net parts of the transfer amount the same way
// the contract does.
func SplitFee(amount, percent *big.Int) (fee, net *big.Int) {
	fee = new(big.Int).Mul(amount, percent)
	fee.Quo(fee, FeePrecision)
	return fee, new(big.Int).Sub(amount, fee)
}

// FormatAmount returns human-readable representation of the amount with the
// given token decimals.
func FormatAmount(amount *big.Int, decimals int) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// ParseAmount parses human-readable token amount into contract integer
// representation.
func ParseAmount(s string, decimals int) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("invalid amount %q: too many decimal places", s)
	}

	return shifted.BigInt(), nil
}

// FeeRate returns current fee of the token as a fraction.
func (c *ContractReader) FeeRate() (decimal.Decimal, error) {
	cfg, err := c.GetConfig()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return FeeRate(cfg.FeePercent), nil
}

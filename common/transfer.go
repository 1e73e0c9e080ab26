package common

const (
	// FeePrecision is a fixed-point denominator of fee percentages:
	// FeePrecision means 100%, FeePrecision/100 means 1%.
	FeePrecision = 1_000_000_000_000_000_000

	// ErrInvalidFeePercent is thrown when fee percent is out of
	// [0, FeePrecision] range.
	ErrInvalidFeePercent = "fee percent must be within [0, 1]"
)

// Fee returns the part of amount skimmed with the given fee percent. The
// result is rounded toward zero.
func Fee(amount, percent int) int {
	return amount * percent / FeePrecision
}

// SplitFee returns fee and net parts of amount, fee+net is always equal to
// amount.
func SplitFee(amount, percent int) (int, int) {
	if percent < 0 || percent > FeePrecision {
		panic(ErrInvalidFeePercent)
	}

	fee := Fee(amount, percent)
	return fee, amount - fee
}

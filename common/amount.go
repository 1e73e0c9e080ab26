package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// maxAmountDec is 2^128-1, the largest balance or supply value. It doesn't
// fit int64 so it's parsed at runtime, VM integers are wide enough.
const maxAmountDec = "340282366920938463463374607431768211455"

const (
	// ErrInvalidAmount appears when a positive amount is required but zero,
	// negative or out of range value is passed.
	ErrInvalidAmount = "invalid amount"
	// ErrInsufficientBalance appears when an account holds less than it is
	// asked to pay.
	ErrInsufficientBalance = "insufficient balance"
	// ErrArithmeticOverflow appears when a credit would exceed MaxAmount.
	ErrArithmeticOverflow = "arithmetic overflow"
)

// MaxAmount returns the upper bound of any balance, allowance or supply.
func MaxAmount() int {
	return std.Atoi(maxAmountDec, 10)
}

// CheckAmount panics with ErrInvalidAmount unless 0 < amount <= MaxAmount().
func CheckAmount(amount int) {
	if amount <= 0 || amount > MaxAmount() {
		panic(ErrInvalidAmount)
	}
}

// Credit returns balance+amount. It panics with ErrArithmeticOverflow if the
// result exceeds MaxAmount().
func Credit(balance, amount int) int {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}

	res := balance + amount
	if res > MaxAmount() {
		panic(ErrArithmeticOverflow)
	}

	return res
}

// Debit returns balance-amount. It panics with errMsg if amount exceeds
// balance.
func Debit(balance, amount int, errMsg string) int {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}

	if amount > balance {
		panic(errMsg)
	}

	return balance - amount
}

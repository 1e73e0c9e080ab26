package audit

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

var (
	// ErrSupplyMismatch is returned when the sum of account balances differs
	// from minted minus burned amount or from the on-chain total supply.
	ErrSupplyMismatch = errors.New("supply mismatch")

	// ErrNegativeBalance is returned when replayed transfers drive some
	// account balance below zero.
	ErrNegativeBalance = errors.New("negative balance")
)

// Report is a result of the token supply reconciliation.
type Report struct {
	Token util.Uint160

	Minted *big.Int
	Burned *big.Int
	// Sum of all account balances.
	Circulating *big.Int
	// On-chain total supply.
	Supply *big.Int

	Accounts int
	// Accounts with negative balance sorted by address.
	Negative []util.Uint160
}

// Err returns all violations found in the report or nil.
func (r Report) Err() error {
	var errs []error

	issued := new(big.Int).Sub(r.Minted, r.Burned)
	if r.Circulating.Cmp(issued) != 0 {
		errs = append(errs, fmt.Errorf("%w: balances sum to %s, minted minus burned is %s",
			ErrSupplyMismatch, r.Circulating, issued))
	}

	if r.Supply != nil && r.Circulating.Cmp(r.Supply) != 0 {
		errs = append(errs, fmt.Errorf("%w: balances sum to %s, total supply is %s",
			ErrSupplyMismatch, r.Circulating, r.Supply))
	}

	for _, acc := range r.Negative {
		errs = append(errs, fmt.Errorf("%w: account %s", ErrNegativeBalance, acc.StringLE()))
	}

	return errors.Join(errs...)
}

// Reconcile replays stored transfers of the token and checks them against
// the on-chain total supply. Nil supply skips the comparison.
func (l *Ledger) Reconcile(ctx context.Context, token util.Uint160, supply *big.Int) (Report, error) {
	totals, err := l.Totals(ctx, token)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Token:       token,
		Minted:      totals.Minted,
		Burned:      totals.Burned,
		Circulating: new(big.Int),
		Supply:      supply,
	}

	for acc, b := range totals.Balances {
		switch b.Sign() {
		case -1:
			r.Negative = append(r.Negative, acc)
		case 0:
			continue
		}

		r.Accounts++
		r.Circulating.Add(r.Circulating, b)
	}

	sort.Slice(r.Negative, func(i, j int) bool {
		return r.Negative[i].Less(r.Negative[j])
	})

	return r, nil
}

package audit

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *Ledger {
	l, err := OpenLedger(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, l.Close()) })
	return l
}

func transfer(tx byte, idx int, from, to util.Uint160, amount int64) Transfer {
	return Transfer{
		Tx:     util.Uint256{tx},
		Index:  idx,
		From:   from,
		To:     to,
		Amount: big.NewInt(amount),
	}
}

func TestLedgerReconcile(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	var (
		tkn      = util.Uint160{0xff}
		owner    = util.Uint160{1}
		alice    = util.Uint160{2}
		receiver = util.Uint160{3}
		none     util.Uint160
	)

	_, ok, err := l.LastBlock(ctx, tkn)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, l.Record(ctx, tkn, 1, []Transfer{transfer(1, 0, none, owner, 1000)}))
	require.NoError(t, l.Record(ctx, tkn, 2, []Transfer{
		transfer(2, 0, owner, alice, 99),
		transfer(2, 1, owner, receiver, 1),
	}))
	require.NoError(t, l.Record(ctx, tkn, 3, []Transfer{transfer(3, 0, owner, none, 50)}))

	// repeated block is not counted twice
	require.NoError(t, l.Record(ctx, tkn, 2, []Transfer{
		transfer(2, 0, owner, alice, 99),
		transfer(2, 1, owner, receiver, 1),
	}))

	last, ok, err := l.LastBlock(ctx, tkn)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 3, last)

	totals, err := l.Totals(ctx, tkn)
	require.NoError(t, err)
	require.EqualValues(t, 1000, totals.Minted.Int64())
	require.EqualValues(t, 50, totals.Burned.Int64())
	require.EqualValues(t, 850, totals.Balances[owner].Int64())
	require.EqualValues(t, 99, totals.Balances[alice].Int64())
	require.EqualValues(t, 1, totals.Balances[receiver].Int64())

	r, err := l.Reconcile(ctx, tkn, big.NewInt(950))
	require.NoError(t, err)
	require.NoError(t, r.Err())
	require.Equal(t, 3, r.Accounts)
	require.EqualValues(t, 950, r.Circulating.Int64())

	r, err = l.Reconcile(ctx, tkn, nil)
	require.NoError(t, err)
	require.NoError(t, r.Err())

	r, err = l.Reconcile(ctx, tkn, big.NewInt(1000))
	require.NoError(t, err)
	require.ErrorIs(t, r.Err(), ErrSupplyMismatch)

	t.Run("other token", func(t *testing.T) {
		r, err := l.Reconcile(ctx, util.Uint160{0xfe}, big.NewInt(0))
		require.NoError(t, err)
		require.NoError(t, r.Err())
		require.Zero(t, r.Accounts)
	})

	t.Run("negative balance", func(t *testing.T) {
		require.NoError(t, l.Record(ctx, tkn, 4, []Transfer{transfer(4, 0, alice, receiver, 100)}))

		r, err := l.Reconcile(ctx, tkn, big.NewInt(950))
		require.NoError(t, err)
		require.Equal(t, []util.Uint160{alice}, r.Negative)
		require.ErrorIs(t, r.Err(), ErrNegativeBalance)
		require.NotErrorIs(t, r.Err(), ErrSupplyMismatch)
	})

	t.Run("invalid amount", func(t *testing.T) {
		err := l.Record(ctx, tkn, 5, []Transfer{transfer(5, 0, alice, receiver, -1)})
		require.Error(t, err)

		// failed block is rolled back
		last, _, err := l.LastBlock(ctx, tkn)
		require.NoError(t, err)
		require.EqualValues(t, 4, last)
	})
}

func TestLedgerFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")
	tkn := util.Uint160{1}

	l, err := OpenLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.Record(ctx, tkn, 10, []Transfer{transfer(1, 0, util.Uint160{}, util.Uint160{2}, 5)}))
	require.NoError(t, l.Close())

	l, err = OpenLedger(path)
	require.NoError(t, err)
	defer l.Close()

	last, ok, err := l.LastBlock(ctx, tkn)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 10, last)

	r, err := l.Reconcile(ctx, tkn, big.NewInt(5))
	require.NoError(t, err)
	require.NoError(t, r.Err())
}

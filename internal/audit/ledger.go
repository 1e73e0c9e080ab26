/*
Package audit reconciles supply of the Skim Token contracts off-chain.

Token contracts keep supply consistent per call only. Ledger stores every
NEP-17 Transfer notification of the token in SQLite database, so that sum of
all account balances can be compared with minted and burned totals and with
the on-chain total supply.
*/
package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	// SQLite driver for the ledger database.
	_ "github.com/mattn/go-sqlite3"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

const schema = `
CREATE TABLE IF NOT EXISTS transfers (
	token    TEXT    NOT NULL,
	block    INTEGER NOT NULL,
	tx       TEXT    NOT NULL,
	idx      INTEGER NOT NULL,
	sender   TEXT,
	receiver TEXT,
	amount   TEXT    NOT NULL,
	PRIMARY KEY (token, tx, idx)
);
CREATE TABLE IF NOT EXISTS cursors (
	token TEXT    PRIMARY KEY,
	block INTEGER NOT NULL
);`

// Transfer is a single NEP-17 Transfer notification of the token. Zero From
// means mint, zero To means burn.
type Transfer struct {
	Block  uint32
	Tx     util.Uint256
	Index  int
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// Ledger is a SQLite storage of token transfers.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates ledger database at the given path. Use
// ":memory:" for a process-local ledger.
func OpenLedger(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// a new connection to ":memory:" is a new empty database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores transfers of the token processed up to the given block
// atomically. Already stored transfers are ignored, so blocks may be
// processed more than once.
func (l *Ledger) Record(ctx context.Context, token util.Uint160, block uint32, transfers []Transfer) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	err = record(ctx, tx, token, block, transfers)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func record(ctx context.Context, tx *sql.Tx, token util.Uint160, block uint32, transfers []Transfer) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO transfers
		(token, block, tx, idx, sender, receiver, amount) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range transfers {
		t := transfers[i]
		if t.Amount == nil || t.Amount.Sign() < 0 {
			return fmt.Errorf("transfer #%d of tx %s: invalid amount %v", t.Index, t.Tx.StringLE(), t.Amount)
		}

		_, err = stmt.ExecContext(ctx, token.StringLE(), t.Block, t.Tx.StringLE(), t.Index,
			nullAccount(t.From), nullAccount(t.To), t.Amount.String())
		if err != nil {
			return fmt.Errorf("insert transfer #%d of tx %s: %w", t.Index, t.Tx.StringLE(), err)
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO cursors (token, block) VALUES (?, ?)
		ON CONFLICT (token) DO UPDATE SET block = max(block, excluded.block)`, token.StringLE(), block)
	if err != nil {
		return fmt.Errorf("update cursor: %w", err)
	}

	return nil
}

// LastBlock returns the latest block recorded for the token. The second
// value is false if nothing has been recorded yet.
func (l *Ledger) LastBlock(ctx context.Context, token util.Uint160) (uint32, bool, error) {
	var block uint32

	err := l.db.QueryRowContext(ctx, `SELECT block FROM cursors WHERE token = ?`, token.StringLE()).Scan(&block)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select cursor: %w", err)
	}

	return block, true, nil
}

// Totals groups supply values accumulated from the token transfers.
type Totals struct {
	Minted   *big.Int
	Burned   *big.Int
	Balances map[util.Uint160]*big.Int
}

// Totals replays all stored transfers of the token.
func (l *Ledger) Totals(ctx context.Context, token util.Uint160) (Totals, error) {
	res := Totals{
		Minted:   new(big.Int),
		Burned:   new(big.Int),
		Balances: make(map[util.Uint160]*big.Int),
	}

	rows, err := l.db.QueryContext(ctx, `SELECT sender, receiver, amount FROM transfers
		WHERE token = ? ORDER BY block, rowid`, token.StringLE())
	if err != nil {
		return res, fmt.Errorf("select transfers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			from, to sql.NullString
			amountS  string
		)

		err = rows.Scan(&from, &to, &amountS)
		if err != nil {
			return res, fmt.Errorf("scan transfer: %w", err)
		}

		amount, ok := new(big.Int).SetString(amountS, 10)
		if !ok {
			return res, fmt.Errorf("invalid stored amount %q", amountS)
		}

		if from.Valid {
			acc, err := util.Uint160DecodeStringLE(from.String)
			if err != nil {
				return res, fmt.Errorf("invalid stored sender: %w", err)
			}
			res.balance(acc).Sub(res.balance(acc), amount)
		} else {
			res.Minted.Add(res.Minted, amount)
		}

		if to.Valid {
			acc, err := util.Uint160DecodeStringLE(to.String)
			if err != nil {
				return res, fmt.Errorf("invalid stored receiver: %w", err)
			}
			res.balance(acc).Add(res.balance(acc), amount)
		} else {
			res.Burned.Add(res.Burned, amount)
		}
	}

	err = rows.Err()
	if err != nil {
		return res, fmt.Errorf("iterate transfers: %w", err)
	}

	return res, nil
}

func (x Totals) balance(acc util.Uint160) *big.Int {
	b, ok := x.Balances[acc]
	if !ok {
		b = new(big.Int)
		x.Balances[acc] = b
	}
	return b
}

func nullAccount(acc util.Uint160) sql.NullString {
	if acc.Equals(util.Uint160{}) {
		return sql.NullString{}
	}
	return sql.NullString{String: acc.StringLE(), Valid: true}
}

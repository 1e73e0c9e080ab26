package audit

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/block"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/skim-contract/rpc/token"
	"go.uber.org/zap"
)

// Blockchain groups chain services needed to collect token transfers.
// rpcclient.Client satisfies it.
type Blockchain interface {
	GetBlockCount() (uint32, error)
	GetBlockByIndex(index uint32) (*block.Block, error)
	GetApplicationLog(hash util.Uint256, trig *trigger.Type) (*result.ApplicationLog, error)
}

// ScannerPrm groups Scanner parameters.
type ScannerPrm struct {
	Logger     *zap.Logger
	Blockchain Blockchain
	Ledger     *Ledger

	// Token contract to collect transfers of.
	Token util.Uint160
}

// Scanner collects Transfer notifications of the token contract from the
// chain into the Ledger.
type Scanner struct {
	log    *zap.Logger
	chain  Blockchain
	ledger *Ledger
	token  util.Uint160
}

// NewScanner constructs Scanner from parameters.
func NewScanner(prm ScannerPrm) *Scanner {
	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Scanner{
		log:    l.With(zap.Stringer("token", prm.Token)),
		chain:  prm.Blockchain,
		ledger: prm.Ledger,
		token:  prm.Token,
	}
}

// Sync scans blocks following the latest recorded one up to the current
// chain height and returns the number of scanned blocks.
func (s *Scanner) Sync(ctx context.Context) (uint32, error) {
	count, err := s.chain.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var from uint32

	last, ok, err := s.ledger.LastBlock(ctx, s.token)
	if err != nil {
		return 0, err
	}
	if ok {
		from = last + 1
	}

	if from >= count {
		return 0, nil
	}

	return count - from, s.Scan(ctx, from, count-1)
}

// Scan records token transfers from the blocks in [from, to] range. Each
// block is recorded atomically, Scan may be interrupted and repeated.
func (s *Scanner) Scan(ctx context.Context, from, to uint32) error {
	if from > to {
		return fmt.Errorf("invalid block range [%d, %d]", from, to)
	}

	s.log.Info("scanning blocks...", zap.Uint32("from", from), zap.Uint32("to", to))

	var total int

	for i := from; i <= to; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		transfers, err := s.blockTransfers(i)
		if err != nil {
			return fmt.Errorf("block #%d: %w", i, err)
		}

		err = s.ledger.Record(ctx, s.token, i, transfers)
		if err != nil {
			return fmt.Errorf("record transfers of block #%d: %w", i, err)
		}

		if len(transfers) > 0 {
			s.log.Debug("transfers recorded", zap.Uint32("block", i), zap.Int("count", len(transfers)))
		}

		total += len(transfers)

		if i == to { // i++ overflows for math.MaxUint32
			break
		}
	}

	s.log.Info("blocks successfully scanned", zap.Int("transfers", total))

	return nil
}

func (s *Scanner) blockTransfers(index uint32) ([]Transfer, error) {
	b, err := s.chain.GetBlockByIndex(index)
	if err != nil {
		return nil, fmt.Errorf("get block: %w", err)
	}

	trig := trigger.Application

	var res []Transfer
	for _, tx := range b.Transactions {
		h := tx.Hash()

		log, err := s.chain.GetApplicationLog(h, &trig)
		if err != nil {
			return nil, fmt.Errorf("get application log of tx %s: %w", h.StringLE(), err)
		}

		transfers, err := s.txTransfers(index, log)
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", h.StringLE(), err)
		}

		res = append(res, transfers...)
	}

	return res, nil
}

// txTransfers decodes Transfer notifications of the token from the
// successful executions.
func (s *Scanner) txTransfers(index uint32, log *result.ApplicationLog) ([]Transfer, error) {
	var res []Transfer

	for _, ex := range log.Executions {
		if !ex.VMState.HasFlag(vmstate.Halt) {
			continue
		}

		for _, e := range ex.Events {
			if e.Name != "Transfer" || !e.ScriptHash.Equals(s.token) {
				continue
			}

			var ev token.TransferEvent

			err := ev.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("decode Transfer notification #%d: %w", len(res), err)
			}

			res = append(res, Transfer{
				Block:  index,
				Tx:     log.Container,
				Index:  len(res),
				From:   ev.From,
				To:     ev.To,
				Amount: ev.Amount,
			})
		}
	}

	return res, nil
}

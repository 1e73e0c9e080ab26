package main

import (
	"fmt"

	"github.com/nspcc-dev/skim-contract/internal/audit"
	"github.com/nspcc-dev/skim-contract/rpc/token"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAuditCommand(cfg *config) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Reconcile token supply with its transfer history",
		Long: `Collects Transfer notifications of the token into the local SQLite ` +
			`ledger and checks that account balances sum up to minted minus burned ` +
			`amount and to the on-chain total supply. Subsequent runs continue from ` +
			`the last scanned block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := cfg.tokenHash()
			if err != nil {
				return err
			}

			b, err := cfg.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			l, err := audit.OpenLedger(dbPath)
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer l.Close()

			n, err := audit.NewScanner(audit.ScannerPrm{
				Logger:     cfg.log,
				Blockchain: b.rpc,
				Ledger:     l,
				Token:      h,
			}).Sync(cmd.Context())
			if err != nil {
				return fmt.Errorf("scan chain: %w", err)
			}

			cfg.log.Debug("ledger is synchronized", zap.Uint32("blocks", n))

			r := token.NewReader(b.invoker(), h)

			supply, err := r.TotalSupply()
			if err != nil {
				return fmt.Errorf("get total supply: %w", err)
			}

			decimals, err := r.Decimals()
			if err != nil {
				return fmt.Errorf("get decimals: %w", err)
			}

			rep, err := l.Reconcile(cmd.Context(), h, supply)
			if err != nil {
				return fmt.Errorf("reconcile: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "minted:       %s\n", token.FormatAmount(rep.Minted, decimals))
			fmt.Fprintf(out, "burned:       %s\n", token.FormatAmount(rep.Burned, decimals))
			fmt.Fprintf(out, "circulating:  %s\n", token.FormatAmount(rep.Circulating, decimals))
			fmt.Fprintf(out, "total supply: %s\n", token.FormatAmount(rep.Supply, decimals))
			fmt.Fprintf(out, "accounts:     %d\n", rep.Accounts)

			return rep.Err()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "skim-audit.db", "Path to the ledger database")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/skim-contract/deploy"
	"github.com/nspcc-dev/skim-contract/rpc/token"
	"github.com/spf13/cobra"
)

type deployFlags struct {
	tokenNEF, tokenManifest     string
	factoryNEF, factoryManifest string

	name, symbol string
	decimals     int64
	supply       string
	feeReceiver  string
	owner        string
}

func newDeployCommand(cfg *config) *cobra.Command {
	var df deployFlags

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy Skim Token and/or Skim Token Factory contracts",
		Long: `Deploys contracts from the compiled NEF and manifest files. Token is ` +
			`deployed if --token-nef is set, factory is deployed if --factory-nef ` +
			`is set. Contracts already deployed by the account are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prm, err := df.prm()
			if err != nil {
				return err
			}

			if prm.TokenContract == nil && prm.FactoryContract == nil {
				return fmt.Errorf("nothing to deploy, set --token-nef or --factory-nef")
			}

			b, err := cfg.dialSigner(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			prm.Logger = cfg.log
			prm.Blockchain = b.rpc
			prm.LocalAccount = b.acc

			res, err := deploy.Deploy(cmd.Context(), prm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if prm.TokenContract != nil {
				fmt.Fprintf(out, "token: %s (%s)\n", res.Token.StringLE(), address.Uint160ToString(res.Token))
			}
			if prm.FactoryContract != nil {
				fmt.Fprintf(out, "factory: %s (%s)\n", res.Factory.StringLE(), address.Uint160ToString(res.Factory))
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&df.tokenNEF, "token-nef", "", "Compiled token contract")
	f.StringVar(&df.tokenManifest, "token-manifest", "", "Token contract manifest, defaults to the NEF path with .manifest.json suffix")
	f.StringVar(&df.factoryNEF, "factory-nef", "", "Compiled factory contract")
	f.StringVar(&df.factoryManifest, "factory-manifest", "", "Factory contract manifest, defaults to the NEF path with .manifest.json suffix")
	f.StringVar(&df.name, "name", "", "Token name")
	f.StringVar(&df.symbol, "symbol", "", "Token symbol")
	f.Int64Var(&df.decimals, "decimals", 8, "Token decimals")
	f.StringVar(&df.supply, "supply", "0", "Initial token supply in whole tokens, e.g. 1000.5")
	f.StringVar(&df.feeReceiver, "fee-receiver", "", "Account receiving transfer fees")
	f.StringVar(&df.owner, "owner", "", "Contract owner, signing account if empty")

	return cmd
}

func (df deployFlags) prm() (deploy.Prm, error) {
	var (
		prm   deploy.Prm
		owner util.Uint160
		err   error
	)

	if df.owner != "" {
		owner, err = parseHash160(df.owner)
		if err != nil {
			return prm, fmt.Errorf("owner: %w", err)
		}
	}

	if df.tokenNEF != "" {
		common, err := readContract(df.tokenNEF, df.tokenManifest)
		if err != nil {
			return prm, fmt.Errorf("token contract: %w", err)
		}

		if df.feeReceiver == "" {
			return prm, fmt.Errorf("missing --fee-receiver")
		}

		receiver, err := parseHash160(df.feeReceiver)
		if err != nil {
			return prm, fmt.Errorf("fee receiver: %w", err)
		}

		supply, err := token.ParseAmount(df.supply, int(df.decimals))
		if err != nil {
			return prm, fmt.Errorf("initial supply: %w", err)
		}

		prm.TokenContract = &deploy.TokenContractPrm{
			Common:        common,
			Name:          df.name,
			Symbol:        df.symbol,
			Decimals:      df.decimals,
			InitialSupply: supply,
			FeeReceiver:   receiver,
			Owner:         owner,
		}
	}

	if df.factoryNEF != "" {
		common, err := readContract(df.factoryNEF, df.factoryManifest)
		if err != nil {
			return prm, fmt.Errorf("factory contract: %w", err)
		}

		prm.FactoryContract = &deploy.FactoryContractPrm{
			Common: common,
			Owner:  owner,
		}
	}

	return prm, nil
}

func readContract(nefPath, manifestPath string) (deploy.CommonDeployPrm, error) {
	var res deploy.CommonDeployPrm

	if manifestPath == "" {
		manifestPath = nefPathToManifest(nefPath)
	}

	b, err := os.ReadFile(nefPath)
	if err != nil {
		return res, fmt.Errorf("read NEF file: %w", err)
	}

	res.NEF, err = nef.FileFromBytes(b)
	if err != nil {
		return res, fmt.Errorf("decode NEF file: %w", err)
	}

	b, err = os.ReadFile(manifestPath)
	if err != nil {
		return res, fmt.Errorf("read manifest file: %w", err)
	}

	var m manifest.Manifest

	err = json.Unmarshal(b, &m)
	if err != nil {
		return res, fmt.Errorf("decode manifest file: %w", err)
	}

	res.Manifest = m

	return res, nil
}

// nefPathToManifest follows neo-go compiler naming: contract.nef is paired
// with contract.manifest.json.
func nefPathToManifest(nefPath string) string {
	return strings.TrimSuffix(nefPath, ".nef") + ".manifest.json"
}

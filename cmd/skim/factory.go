package main

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/skim-contract/rpc/factory"
	"github.com/nspcc-dev/skim-contract/rpc/token"
	"github.com/spf13/cobra"
)

// gasDecimals is the number of decimals of the native GAS token.
const gasDecimals = 8

func newFactoryCommand(cfg *config) *cobra.Command {
	var creator string

	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Skim Token Factory contract operations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tokens registered in the factory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.readFactory(cmd, func(r *factory.ContractReader) error {
				var (
					ids []util.Uint160
					err error
				)
				if creator != "" {
					var acc util.Uint160
					acc, err = parseHash160(creator)
					if err != nil {
						return err
					}
					ids, err = r.TokensOf(acc)
				} else {
					ids, err = r.AllTokens()
				}
				if err != nil {
					return fmt.Errorf("list tokens: %w", err)
				}
				for i := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), ids[i].StringLE())
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&creator, "creator", "", "List only tokens of the creator")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name> <symbol> <supply>",
			Short: "Register a new token created by the signing account",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				supply, ok := new(big.Int).SetString(args[2], 10)
				if !ok || supply.Sign() < 0 {
					return fmt.Errorf("invalid supply %q", args[2])
				}
				return cfg.writeFactory(cmd, func(b *remoteBlockchain, c *factory.Contract) error {
					aer, err := b.wait(c.CreateToken(b.sender(), args[0], args[1], supply))
					if err != nil {
						return err
					}
					if len(aer.Stack) != 1 {
						return errors.New("unexpected createToken result")
					}
					raw, err := aer.Stack[0].TryBytes()
					if err != nil {
						return fmt.Errorf("invalid token ID: %w", err)
					}
					id, err := util.Uint160DecodeBytesBE(raw)
					if err != nil {
						return fmt.Errorf("invalid token ID: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "token: %s\n", id.StringLE())
					return printTx(cmd, aer.Container)
				})
			},
		},
		&cobra.Command{
			Use:   "info <token>",
			Short: "Print token record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := util.Uint160DecodeStringLE(args[0])
				if err != nil {
					return fmt.Errorf("invalid token ID: %w", err)
				}
				return cfg.readFactory(cmd, func(r *factory.ContractReader) error {
					t, err := r.TokenInfo(id)
					if err != nil {
						return fmt.Errorf("get token info: %w", err)
					}

					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "name:         %s\n", t.Name)
					fmt.Fprintf(out, "symbol:       %s\n", t.Symbol)
					fmt.Fprintf(out, "supply:       %s\n", t.Supply)
					fmt.Fprintf(out, "creator:      %s\n", address.Uint160ToString(t.Creator))
					fmt.Fprintf(out, "fee receiver: %s\n", address.Uint160ToString(t.FeeReceiver))
					fmt.Fprintf(out, "mint enabled: %t\n", t.MintEnabled)
					fmt.Fprintf(out, "locked:       %t\n", t.ImmutableMode)
					return nil
				})
			},
		},
		list,
		&cobra.Command{
			Use:   "mint <token>",
			Short: "Mint fixed amount of the token created by the signing account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.withToken(cmd, args[0], func(b *remoteBlockchain, c *factory.Contract, id util.Uint160) error {
					return sendTx(cmd, b)(c.Mint(id))
				})
			},
		},
		&cobra.Command{
			Use:   "set-mint-enabled <token> <true|false>",
			Short: "Enable or disable minting of the token",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("invalid flag: %w", err)
				}
				return cfg.withToken(cmd, args[0], func(b *remoteBlockchain, c *factory.Contract, id util.Uint160) error {
					return sendTx(cmd, b)(c.SetMintEnabled(id, enabled))
				})
			},
		},
		&cobra.Command{
			Use:   "lock <token>",
			Short: "Make token record immutable, irreversible",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.withToken(cmd, args[0], func(b *remoteBlockchain, c *factory.Contract, id util.Uint160) error {
					return sendTx(cmd, b)(c.LockOwnership(id))
				})
			},
		},
		&cobra.Command{
			Use:   "pay <token> <to> <gas>",
			Short: "Pay GAS on behalf of the token, fee goes to the factory owner",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				to, err := parseHash160(args[1])
				if err != nil {
					return err
				}
				amount, err := token.ParseAmount(args[2], gasDecimals)
				if err != nil {
					return err
				}
				return cfg.withToken(cmd, args[0], func(b *remoteBlockchain, c *factory.Contract, id util.Uint160) error {
					return sendTx(cmd, b)(c.Transfer(id, b.sender(), to, amount))
				})
			},
		},
	)

	return cmd
}

func (x *config) readFactory(cmd *cobra.Command, f func(*factory.ContractReader) error) error {
	h, err := x.factoryHash()
	if err != nil {
		return err
	}

	b, err := x.dial(cmd.Context())
	if err != nil {
		return err
	}
	defer b.close()

	return f(factory.NewReader(b.invoker(), h))
}

// withToken connects signing factory client and decodes token ID.
func (x *config) withToken(cmd *cobra.Command, tokenID string, f func(*remoteBlockchain, *factory.Contract, util.Uint160) error) error {
	id, err := util.Uint160DecodeStringLE(tokenID)
	if err != nil {
		return fmt.Errorf("invalid token ID: %w", err)
	}

	return x.writeFactory(cmd, func(b *remoteBlockchain, c *factory.Contract) error {
		return f(b, c, id)
	})
}

func (x *config) writeFactory(cmd *cobra.Command, f func(*remoteBlockchain, *factory.Contract) error) error {
	h, err := x.factoryHash()
	if err != nil {
		return err
	}

	// factory transfer spends GAS of the signer
	b, err := x.dialSigner(cmd.Context(), gas.Hash)
	if err != nil {
		return err
	}
	defer b.close()

	return f(b, factory.New(b.actor, h))
}

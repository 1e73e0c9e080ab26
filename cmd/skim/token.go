package main

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/skim-contract/rpc/token"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTokenCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Skim Token contract operations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Print token metadata and configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cfg.readToken(cmd, func(r *token.ContractReader) error {
					return printTokenInfo(cmd, r)
				})
			},
		},
		&cobra.Command{
			Use:   "balance <account>",
			Short: "Print token balance of the account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				acc, err := parseHash160(args[0])
				if err != nil {
					return err
				}
				return cfg.readToken(cmd, func(r *token.ContractReader) error {
					decimals, err := r.Decimals()
					if err != nil {
						return fmt.Errorf("get decimals: %w", err)
					}
					b, err := r.BalanceOf(acc)
					if err != nil {
						return fmt.Errorf("get balance: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), token.FormatAmount(b, decimals))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "transfer <to> <amount>",
			Short: "Transfer tokens from the signing account, fee is deducted from the amount",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				to, err := parseHash160(args[0])
				if err != nil {
					return err
				}
				return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
					amount, err := parseTokenAmount(&c.ContractReader, args[1])
					if err != nil {
						return err
					}

					cfg.logFee(&c.ContractReader, amount)

					aer, err := b.wait(c.Transfer(b.sender(), to, amount, nil))
					if err != nil {
						return err
					}
					if len(aer.Stack) != 1 {
						return errors.New("unexpected transfer result")
					}
					if ok, err := aer.Stack[0].TryBool(); err != nil || !ok {
						return errors.New("transfer was rejected by the contract")
					}
					return printTx(cmd, aer.Container)
				})
			},
		},
		&cobra.Command{
			Use:   "transfer-from <owner> <to> <amount>",
			Short: "Transfer tokens of the owner within the allowance of the signing account",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, err := parseHash160(args[0])
				if err != nil {
					return err
				}
				to, err := parseHash160(args[1])
				if err != nil {
					return err
				}
				return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
					amount, err := parseTokenAmount(&c.ContractReader, args[2])
					if err != nil {
						return err
					}

					cfg.logFee(&c.ContractReader, amount)

					aer, err := b.wait(c.TransferFrom(b.sender(), owner, to, amount, nil))
					if err != nil {
						return err
					}
					return printTx(cmd, aer.Container)
				})
			},
		},
		&cobra.Command{
			Use:   "mint [account]",
			Short: "Mint tokens to the account, signing account by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
					acc := b.sender()
					if len(args) > 0 {
						var err error
						acc, err = parseHash160(args[0])
						if err != nil {
							return err
						}
					}
					return sendTx(cmd, b)(c.Mint(acc))
				})
			},
		},
		&cobra.Command{
			Use:   "burn <amount>",
			Short: "Burn tokens of the token owner",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
					amount, err := parseTokenAmount(&c.ContractReader, args[0])
					if err != nil {
						return err
					}
					return sendTx(cmd, b)(c.Burn(amount))
				})
			},
		},
		newAllowanceCommand(cfg),
		newGovernCommand(cfg),
	)

	return cmd
}

func newAllowanceCommand(cfg *config) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Manage spending allowances",
	}

	change := func(increase bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			spender, err := parseHash160(args[0])
			if err != nil {
				return err
			}
			return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
				amount, err := parseTokenAmount(&c.ContractReader, args[1])
				if err != nil {
					return err
				}

				expires := new(big.Int)
				if ttl > 0 {
					expires.SetInt64(time.Now().Add(ttl).Unix())
				}

				send := c.DecreaseAllowance
				if increase {
					send = c.IncreaseAllowance
				}
				return sendTx(cmd, b)(send(b.sender(), spender, amount, expires))
			})
		}
	}

	increase := &cobra.Command{
		Use:   "increase <spender> <amount>",
		Short: "Increase allowance of the spender over the signing account tokens",
		Args:  cobra.ExactArgs(2),
		RunE:  change(true),
	}
	decrease := &cobra.Command{
		Use:   "decrease <spender> <amount>",
		Short: "Decrease allowance of the spender over the signing account tokens",
		Args:  cobra.ExactArgs(2),
		RunE:  change(false),
	}
	for _, c := range []*cobra.Command{increase, decrease} {
		c.Flags().DurationVar(&ttl, "ttl", 0, "Allowance lifetime, zero means no expiration")
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <owner> <spender>",
			Short: "Print allowance of the spender over the owner tokens",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, err := parseHash160(args[0])
				if err != nil {
					return err
				}
				spender, err := parseHash160(args[1])
				if err != nil {
					return err
				}
				return cfg.readToken(cmd, func(r *token.ContractReader) error {
					decimals, err := r.Decimals()
					if err != nil {
						return fmt.Errorf("get decimals: %w", err)
					}
					a, err := r.Allowance(owner, spender)
					if err != nil {
						return fmt.Errorf("get allowance: %w", err)
					}

					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "amount:  %s\n", token.FormatAmount(a.Amount, decimals))
					if a.Expires.Sign() == 0 {
						fmt.Fprintln(out, "expires: never")
					} else {
						fmt.Fprintf(out, "expires: %s\n", time.Unix(a.Expires.Int64(), 0).UTC().Format(time.RFC3339))
					}
					return nil
				})
			},
		},
		increase,
		decrease,
	)

	return cmd
}

func newGovernCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "govern",
		Short: "Token owner operations",
	}

	type setter struct {
		use, short string
		nArgs      int
		send       func(c *token.Contract, args []string) (util.Uint256, uint32, error)
	}

	for _, s := range []setter{
		{"set-fee <rate>", "Set transfer fee as a fraction, e.g. 0.01 for 1%", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				rate, err := decimal.NewFromString(args[0])
				if err != nil {
					return util.Uint256{}, 0, fmt.Errorf("invalid fee rate: %w", err)
				}
				percent, err := token.FeePercent(rate)
				if err != nil {
					return util.Uint256{}, 0, err
				}
				return c.SetFeePercent(percent)
			}},
		{"set-fee-receiver <account>", "Set account receiving transfer fees", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				acc, err := parseHash160(args[0])
				if err != nil {
					return util.Uint256{}, 0, err
				}
				return c.SetFeeReceiver(acc)
			}},
		{"set-mint-amount <amount>", "Set amount credited by a single mint", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				amount, err := parseTokenAmount(&c.ContractReader, args[0])
				if err != nil {
					return util.Uint256{}, 0, err
				}
				return c.SetMintAmount(amount)
			}},
		{"set-mint-interval <duration>", "Set minimal interval between mints of an account, e.g. 24h", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				d, err := time.ParseDuration(args[0])
				if err != nil {
					return util.Uint256{}, 0, fmt.Errorf("invalid interval: %w", err)
				}
				return c.SetMintInterval(big.NewInt(int64(d / time.Second)))
			}},
		{"set-mint-enabled <true|false>", "Enable or disable minting", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				enabled, err := strconv.ParseBool(args[0])
				if err != nil {
					return util.Uint256{}, 0, fmt.Errorf("invalid flag: %w", err)
				}
				return c.SetMintEnabled(enabled)
			}},
		{"transfer-ownership <account>", "Pass token ownership to another account", 1,
			func(c *token.Contract, args []string) (util.Uint256, uint32, error) {
				acc, err := parseHash160(args[0])
				if err != nil {
					return util.Uint256{}, 0, err
				}
				return c.TransferOwnership(acc)
			}},
		{"lock", "Make token configuration immutable, irreversible", 0,
			func(c *token.Contract, _ []string) (util.Uint256, uint32, error) {
				return c.LockOwnership()
			}},
	} {
		s := s
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.ExactArgs(s.nArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.writeToken(cmd, func(b *remoteBlockchain, c *token.Contract) error {
					return sendTx(cmd, b)(s.send(c, args))
				})
			},
		})
	}

	return cmd
}

func (x *config) readToken(cmd *cobra.Command, f func(*token.ContractReader) error) error {
	h, err := x.tokenHash()
	if err != nil {
		return err
	}

	b, err := x.dial(cmd.Context())
	if err != nil {
		return err
	}
	defer b.close()

	return f(token.NewReader(b.invoker(), h))
}

func (x *config) writeToken(cmd *cobra.Command, f func(*remoteBlockchain, *token.Contract) error) error {
	h, err := x.tokenHash()
	if err != nil {
		return err
	}

	b, err := x.dialSigner(cmd.Context())
	if err != nil {
		return err
	}
	defer b.close()

	return f(b, token.New(b.actor, h))
}

// logFee reports the fee part of the transfer before sending it.
func (x *config) logFee(r *token.ContractReader, amount *big.Int) {
	cfg, err := r.GetConfig()
	if err != nil {
		x.log.Debug("failed to get token config", zap.Error(err))
		return
	}

	fee, net := token.SplitFee(amount, cfg.FeePercent)
	x.log.Info("transfer fee", zap.Stringer("fee", fee), zap.Stringer("net", net),
		zap.String("receiver", address.Uint160ToString(cfg.FeeReceiver)))
}

func parseTokenAmount(r *token.ContractReader, s string) (*big.Int, error) {
	decimals, err := r.Decimals()
	if err != nil {
		return nil, fmt.Errorf("get decimals: %w", err)
	}

	amount, err := token.ParseAmount(s, decimals)
	if err != nil {
		return nil, err
	}

	if amount.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %s", s)
	}

	return amount, nil
}

func printTokenInfo(cmd *cobra.Command, r *token.ContractReader) error {
	meta, err := r.TokenInfo()
	if err != nil {
		return fmt.Errorf("get token info: %w", err)
	}

	cfg, err := r.GetConfig()
	if err != nil {
		return fmt.Errorf("get config: %w", err)
	}

	burned, err := r.GetTotalBurned()
	if err != nil {
		return fmt.Errorf("get total burned: %w", err)
	}

	decimals := int(meta.Decimals.Int64())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "name:          %s\n", meta.Name)
	fmt.Fprintf(out, "symbol:        %s\n", meta.Symbol)
	fmt.Fprintf(out, "decimals:      %d\n", decimals)
	fmt.Fprintf(out, "total supply:  %s\n", token.FormatAmount(meta.TotalSupply, decimals))
	fmt.Fprintf(out, "total burned:  %s\n", token.FormatAmount(burned, decimals))
	fmt.Fprintf(out, "owner:         %s\n", address.Uint160ToString(cfg.Owner))
	fmt.Fprintf(out, "fee receiver:  %s\n", address.Uint160ToString(cfg.FeeReceiver))
	fmt.Fprintf(out, "fee:           %s%%\n", token.FeeRate(cfg.FeePercent).Shift(2))
	fmt.Fprintf(out, "mint enabled:  %t\n", cfg.MintEnabled)
	fmt.Fprintf(out, "mint amount:   %s\n", token.FormatAmount(cfg.MintAmount, decimals))
	fmt.Fprintf(out, "mint interval: %s\n", time.Duration(cfg.MintInterval.Int64())*time.Second)
	fmt.Fprintf(out, "locked:        %t\n", cfg.ImmutableMode)

	return nil
}

// sendTx returns handler awaiting the sent transaction and printing its hash.
func sendTx(cmd *cobra.Command, b *remoteBlockchain) func(util.Uint256, uint32, error) error {
	return func(h util.Uint256, vub uint32, err error) error {
		aer, err := b.wait(h, vub, err)
		if err != nil {
			return err
		}
		return printTx(cmd, aer.Container)
	}
}

func printTx(cmd *cobra.Command, h util.Uint256) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "transaction %s successfully executed\n", h.StringLE())
	return err
}

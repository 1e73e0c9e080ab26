package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables used as fallbacks for the corresponding flags.
const (
	envRPC      = "SKIM_RPC"
	envWallet   = "SKIM_WALLET"
	envPassword = "SKIM_PASSWORD"
	envToken    = "SKIM_TOKEN"
	envFactory  = "SKIM_FACTORY"
)

// config is filled from the persistent flags before any command runs.
type config struct {
	envFile string
	debug   bool

	rpc      string
	wallet   string
	password string
	address  string

	token   string
	factory string

	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	return newRootCommandWithConfig(new(config))
}

func newRootCommandWithConfig(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:   "skim",
		Short: "Skim Token contracts management tool",
		Long: `Deploys Skim Token and Skim Token Factory contracts, invokes their ` +
			`methods and reconciles token supply with transfer history.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if cfg.log != nil {
				_ = cfg.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&cfg.envFile, "env", ".env", "File with environment variables, missing file is ignored")
	f.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	f.StringVarP(&cfg.rpc, "rpc", "r", "", "Neo RPC endpoint ($"+envRPC+")")
	f.StringVarP(&cfg.wallet, "wallet", "w", "", "Path to the NEP-6 wallet ($"+envWallet+")")
	f.StringVarP(&cfg.password, "password", "p", "", "Wallet account password ($"+envPassword+")")
	f.StringVarP(&cfg.address, "address", "a", "", "Wallet account to sign with, default account if empty")
	f.StringVar(&cfg.token, "token", "", "Skim Token contract address ($"+envToken+")")
	f.StringVar(&cfg.factory, "factory", "", "Skim Token Factory contract address ($"+envFactory+")")

	root.AddCommand(
		newDeployCommand(cfg),
		newTokenCommand(cfg),
		newFactoryCommand(cfg),
		newAuditCommand(cfg),
	)

	return root
}

func (x *config) init(cmd *cobra.Command) error {
	err := godotenv.Load(x.envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load environment from %s: %w", x.envFile, err)
	}

	flags := cmd.Flags()
	for _, v := range []struct {
		flag, env string
		dst       *string
	}{
		{"rpc", envRPC, &x.rpc},
		{"wallet", envWallet, &x.wallet},
		{"password", envPassword, &x.password},
		{"token", envToken, &x.token},
		{"factory", envFactory, &x.factory},
	} {
		if !flags.Changed(v.flag) {
			*v.dst = os.Getenv(v.env)
		}
	}

	x.log, err = newLogger(x.debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		c.Level.SetLevel(zapcore.DebugLevel)
	}
	return c.Build()
}

func (x *config) tokenHash() (util.Uint160, error) {
	if x.token == "" {
		return util.Uint160{}, errors.New("missing token contract, use --token or $" + envToken)
	}
	return parseHash160(x.token)
}

func (x *config) factoryHash() (util.Uint160, error) {
	if x.factory == "" {
		return util.Uint160{}, errors.New("missing factory contract, use --factory or $" + envFactory)
	}
	return parseHash160(x.factory)
}

// parseHash160 accepts both Neo addresses and LE script hashes.
func parseHash160(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid address or script hash %q", s)
	}

	return h, nil
}

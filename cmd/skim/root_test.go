package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestParseHash160(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseHash160(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseHash160(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseHash160("not an address")
	require.Error(t, err)
}

// runConfig executes command tree with a no-op leaf command and returns the
// resulting config.
func runConfig(args ...string) (*config, error) {
	cfg := new(config)

	root := newRootCommandWithConfig(cfg)
	root.AddCommand(&cobra.Command{
		Use: "noop",
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	})

	root.SetArgs(append([]string{"noop"}, args...))
	return cfg, root.Execute()
}

func TestConfigEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"SKIM_RPC=http://localhost:30333\nSKIM_TOKEN=NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv(envRPC)
		os.Unsetenv(envToken)
	})

	cfg, err := runConfig("--env", envFile, "--token", "explicit")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:30333", cfg.rpc)
	// flag takes precedence over the environment
	require.Equal(t, "explicit", cfg.token)
	require.Empty(t, cfg.wallet)
}

func TestConfigMissingEnvFile(t *testing.T) {
	_, err := runConfig("--env", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestConfigRequirements(t *testing.T) {
	var cfg config

	_, err := cfg.tokenHash()
	require.ErrorContains(t, err, envToken)

	_, err = cfg.factoryHash()
	require.ErrorContains(t, err, envFactory)

	_, err = cfg.account()
	require.ErrorContains(t, err, envWallet)

	_, err = cfg.dial(context.Background())
	require.ErrorContains(t, err, envRPC)
}

func TestNefPathToManifest(t *testing.T) {
	require.Equal(t, "contract.manifest.json", nefPathToManifest("contract.nef"))
	require.Equal(t, "dir/token.manifest.json", nefPathToManifest("dir/token.nef"))
	require.Equal(t, "token.manifest.json", nefPathToManifest("token"))
}

func TestDeployFlags(t *testing.T) {
	_, err := deployFlags{tokenNEF: "missing.nef"}.prm()
	require.Error(t, err)

	prm, err := deployFlags{}.prm()
	require.NoError(t, err)
	require.Nil(t, prm.TokenContract)
	require.Nil(t, prm.FactoryContract)

	_, err = deployFlags{owner: "bad"}.prm()
	require.Error(t, err)
}

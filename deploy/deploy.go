package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/skim-contract/contracts/token/tokenconst"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetApplicationLog returns execution results of the transaction. It is
	// polled to await deployment transactions until Context is done.
	GetApplicationLog(hash util.Uint256, trig *trigger.Type) (*result.ApplicationLog, error)
	Context() context.Context

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the Skim Token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	Name          string
	Symbol        string
	Decimals      int64
	InitialSupply *big.Int
	FeeReceiver   util.Uint160

	// Token owner, zero value makes local account the owner.
	Owner util.Uint160
}

// FactoryContractPrm groups deployment parameters of the Skim Token Factory
// contract.
type FactoryContractPrm struct {
	Common CommonDeployPrm

	// Factory owner, zero value makes local account the owner.
	Owner util.Uint160
}

// Prm groups all parameters of the deployment procedure. Nil contract
// parameters mean the contract is not deployed.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	TokenContract   *TokenContractPrm
	FactoryContract *FactoryContractPrm
}

// Result contains on-chain addresses of synchronized contracts. Addresses of
// skipped contracts are zero.
type Result struct {
	Token   util.Uint160
	Factory util.Uint160
}

// ErrInvalidPrm is returned when deployment parameters are malformed.
var ErrInvalidPrm = errors.New("invalid deployment parameters")

// Deploy deploys contracts requested in Prm to the Prm.Blockchain. Contracts
// are deployed from Prm.LocalAccount.
//
// Contract address is a function of the sender, NEF checksum and manifest
// name. Token manifest is renamed after the token name, so one account may
// deploy several tokens. Contracts already present on the chain are left
// untouched. Deploy waits for each deployment transaction to be accepted and
// fails if it has not finished with HALT state.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	if prm.LocalAccount == nil {
		return res, fmt.Errorf("%w: missing local account", ErrInvalidPrm)
	}

	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}

	sender := prm.LocalAccount.ScriptHash()
	d := &deployer{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		localAcc:   prm.LocalAccount,
	}

	if p := prm.TokenContract; p != nil {
		args, err := tokenDeployArgs(*p)
		if err != nil {
			return res, err
		}

		m := p.Common.Manifest
		m.Name = tokenManifestName(p.Common.Manifest.Name, p.Name)

		prm.Logger.Info("synchronizing Token contract with the chain...", zap.String("name", m.Name))

		res.Token, err = d.sync(ctx, p.Common.NEF, m, args)
		if err != nil {
			return res, fmt.Errorf("sync Token contract with the chain: %w", err)
		}

		prm.Logger.Info("Token contract successfully synchronized", zap.Stringer("address", res.Token))
	}

	if p := prm.FactoryContract; p != nil {
		owner := p.Owner
		if owner.Equals(util.Uint160{}) {
			owner = sender
		}

		prm.Logger.Info("synchronizing Factory contract with the chain...")

		var err error
		res.Factory, err = d.sync(ctx, p.Common.NEF, p.Common.Manifest, []any{owner})
		if err != nil {
			return res, fmt.Errorf("sync Factory contract with the chain: %w", err)
		}

		prm.Logger.Info("Factory contract successfully synchronized", zap.Stringer("address", res.Factory))
	}

	return res, nil
}

// tokenDeployArgs builds `_deploy` data of the token contract.
func tokenDeployArgs(p TokenContractPrm) ([]any, error) {
	if p.Name == "" || p.Symbol == "" {
		return nil, fmt.Errorf("%w: empty token name or symbol", ErrInvalidPrm)
	}

	if p.Decimals < 0 || p.Decimals > tokenconst.MaxDecimals {
		return nil, fmt.Errorf("%w: decimals %d out of [0, %d] range", ErrInvalidPrm, p.Decimals, tokenconst.MaxDecimals)
	}

	supply := p.InitialSupply
	if supply == nil {
		supply = new(big.Int)
	}

	if supply.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative initial supply %s", ErrInvalidPrm, supply)
	}

	if p.FeeReceiver.Equals(util.Uint160{}) {
		return nil, fmt.Errorf("%w: missing fee receiver", ErrInvalidPrm)
	}

	var owner any
	if !p.Owner.Equals(util.Uint160{}) {
		owner = p.Owner
	}

	return []any{p.Name, p.Symbol, p.Decimals, supply, p.FeeReceiver, owner}, nil
}

func tokenManifestName(base, tokenName string) string {
	if base == "" {
		return tokenName
	}
	return base + " " + tokenName
}

type deployer struct {
	logger     *zap.Logger
	blockchain Blockchain
	localAcc   *wallet.Account

	// initialized on the first deployment
	actor *actor.Actor
}

// sync deploys the contract unless it is already on the chain and returns its
// address.
func (d *deployer) sync(ctx context.Context, nefFile nef.File, m manifest.Manifest, args []any) (util.Uint160, error) {
	addr := state.CreateContractHash(d.localAcc.ScriptHash(), nefFile.Checksum, m.Name)

	l := d.logger.With(zap.String("contract", m.Name), zap.Stringer("address", addr))

	cs, err := d.blockchain.GetContractStateByHash(addr)
	if err == nil && cs != nil {
		if cs.NEF.Checksum != nefFile.Checksum {
			l.Warn("on-chain contract differs from the local one, use update to replace it")
		}
		l.Info("contract is already deployed, skip")
		return addr, nil
	}

	if err != nil && !isErrContractNotFound(err) {
		return util.Uint160{}, fmt.Errorf("get contract state: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	if d.actor == nil {
		d.actor, err = actor.NewSimple(d.blockchain, d.localAcc)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
		}
	}

	l.Info("sending deployment transaction...")

	aer, err := d.actor.Wait(management.New(d.actor).Deploy(&nefFile, &m, args))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
	}

	if !aer.VMState.HasFlag(vmstate.Halt) {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %s", aer.Container.StringLE(), aer.FaultException)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", aer.Container))

	return addr, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

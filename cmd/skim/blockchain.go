package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// remoteBlockchain wraps Neo RPC connection providing services needed for
// the commands. Connection and all requests are done within 15s timeout.
type remoteBlockchain struct {
	rpc *rpcclient.Client

	// nil for read-only connections
	acc   *wallet.Account
	actor *actor.Actor
}

// dial opens read-only connection to the configured RPC endpoint.
func (x *config) dial(ctx context.Context) (*remoteBlockchain, error) {
	if x.rpc == "" {
		return nil, errors.New("missing RPC endpoint, use --rpc or $" + envRPC)
	}

	c, err := rpcclient.New(ctx, x.rpc, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &remoteBlockchain{rpc: c}, nil
}

// dialSigner opens connection able to send transactions signed by the
// configured wallet account. The witness is limited to the entry contract
// and given contracts called by it.
func (x *config) dialSigner(ctx context.Context, allowed ...util.Uint160) (*remoteBlockchain, error) {
	acc, err := x.account()
	if err != nil {
		return nil, err
	}

	b, err := x.dial(ctx)
	if err != nil {
		return nil, err
	}

	signer := transaction.Signer{
		Account: acc.ScriptHash(),
		Scopes:  transaction.CalledByEntry,
	}
	if len(allowed) > 0 {
		signer.Scopes |= transaction.CustomContracts
		signer.AllowedContracts = allowed
	}

	b.acc = acc
	b.actor, err = actor.New(b.rpc, []actor.SignerAccount{{Signer: signer, Account: acc}})
	if err != nil {
		b.close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return b, nil
}

// account opens the wallet and decrypts the selected account.
func (x *config) account() (*wallet.Account, error) {
	if x.wallet == "" {
		return nil, errors.New("missing wallet, use --wallet or $" + envWallet)
	}

	w, err := wallet.NewWalletFromFile(x.wallet)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var h util.Uint160
	if x.address != "" {
		h, err = parseHash160(x.address)
		if err != nil {
			return nil, err
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", h.StringLE())
	}

	err = acc.Decrypt(x.password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// invoker returns test invoker with no signers.
func (x *remoteBlockchain) invoker() *invoker.Invoker {
	return invoker.New(x.rpc, nil)
}

// sender returns script hash of the signing account.
func (x *remoteBlockchain) sender() util.Uint160 {
	return x.acc.ScriptHash()
}

// wait awaits transaction sent by the actor and checks it has been
// successfully executed.
func (x *remoteBlockchain) wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	aer, err := x.actor.Wait(h, vub, nil)
	if err != nil {
		return nil, fmt.Errorf("await transaction %s: %w", h.StringLE(), err)
	}

	if !aer.VMState.HasFlag(vmstate.Halt) {
		return nil, fmt.Errorf("transaction %s failed: %s", h.StringLE(), aer.FaultException)
	}

	return aer, nil
}

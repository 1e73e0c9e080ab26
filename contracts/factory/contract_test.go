package factory_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/skim-contract/common"
	"github.com/nspcc-dev/skim-contract/contracts/factory/factoryconst"
	"github.com/nspcc-dev/skim-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/skim-contract/internal/contracttest"
	"github.com/stretchr/testify/require"
)

const factoryPath = "."

func newFactory(t *testing.T) (*neotest.ContractInvoker, neotest.Signer) {
	e := contracttest.NewExecutor(t)
	ctr := contracttest.Compile(t, e, factoryPath)
	owner := e.NewAccount(t)

	e.DeployContract(t, ctr, []any{owner.ScriptHash()})
	return e.CommitteeInvoker(ctr.Hash), owner
}

func createToken(t *testing.T, c *neotest.ContractInvoker, creator neotest.Signer, name, symbol string, supply int64) util.Uint160 {
	tx := c.WithSigners(creator).PrepareInvoke(t, "createToken", creator.ScriptHash(), name, symbol, supply)
	c.AddNewBlock(t, tx)

	aer := c.CheckHalt(t, tx.Hash())
	require.Len(t, aer.Stack, 1)

	b, err := aer.Stack[0].TryBytes()
	require.NoError(t, err)

	id, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)

	require.Len(t, aer.Events, 1)
	contracttest.RequireEvent(t, aer.Events[0], "TokenCreated", id, creator.ScriptHash(), name, symbol, supply)

	return id
}

func requireList(t *testing.T, c *neotest.ContractInvoker, expected []util.Uint160, method string, args ...any) {
	items, ok := contracttest.Call(t, c, method, args...).Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, items, len(expected))

	for i := range expected {
		contracttest.RequireItem(t, expected[i], items[i])
	}
}

func TestFactoryGeneric(t *testing.T) {
	c, owner := newFactory(t)

	contracttest.RequireCall(t, c, owner.ScriptHash(), "owner")
	c.Invoke(t, common.Version, "version")
	requireList(t, c, nil, "allTokens")
	requireList(t, c, nil, "tokensOf", owner.ScriptHash())

	c.InvokeFail(t, factoryconst.NotFoundError, "tokenInfo", util.Uint160{1, 2, 3})
	c.InvokeFail(t, common.ErrInvalidAddress, "tokenInfo", []byte{1, 2, 3})

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "update", []byte{}, []byte{}, nil)

	ctr := contracttest.Compile(t, c.Executor, factoryPath)

	rawNEF, err := ctr.NEF.Bytes()
	require.NoError(t, err)

	rawManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	c.WithSigners(owner).InvokeFail(t, common.ErrSameVersion, "update", rawNEF, rawManifest, nil)
}

func TestFactoryCreateToken(t *testing.T) {
	c, owner := newFactory(t)

	creator := c.NewAccount(t)
	other := c.NewAccount(t)

	c.WithSigners(other).InvokeFail(t, common.ErrUnauthorized, "createToken",
		creator.ScriptHash(), "Token", "TKN", 100)
	c.WithSigners(creator).InvokeFail(t, common.ErrInvalidAmount, "createToken",
		creator.ScriptHash(), "Token", "TKN", -1)

	first := createToken(t, c, creator, "First", "FST", 100)
	second := createToken(t, c, creator, "Second", "SND", 0)
	third := createToken(t, c, other, "Third", "TRD", 5)

	require.NotEqual(t, first, second)
	require.NotEqual(t, second, third)

	requireList(t, c, []util.Uint160{first, second}, "tokensOf", creator.ScriptHash())
	requireList(t, c, []util.Uint160{third}, "tokensOf", other.ScriptHash())
	requireList(t, c, []util.Uint160{first, second, third}, "allTokens")

	info := contracttest.Fields(t, c, "tokenInfo", first)
	require.Len(t, info, 7)
	contracttest.RequireItem(t, "First", info[0])
	contracttest.RequireItem(t, "FST", info[1])
	contracttest.RequireItem(t, 100, info[2])
	contracttest.RequireItem(t, owner.ScriptHash(), info[3])
	contracttest.RequireItem(t, creator.ScriptHash(), info[4])
	contracttest.RequireItem(t, false, info[5])
	contracttest.RequireItem(t, false, info[6])

	// the first token is not overwritten
	info = contracttest.Fields(t, c, "tokenInfo", second)
	contracttest.RequireItem(t, "Second", info[0])
	contracttest.RequireItem(t, 0, info[2])
}

func TestFactoryMint(t *testing.T) {
	c, _ := newFactory(t)

	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)
	id := createToken(t, c, creator, "Token", "TKN", 100)

	cCreator.InvokeFail(t, tokenconst.ErrMintDisabled, "mint", id)
	cCreator.InvokeFail(t, factoryconst.NotFoundError, "mint", util.Uint160{1})

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "setMintEnabled", id, true)

	h := cCreator.Invoke(t, stackitem.Null{}, "setMintEnabled", id, true)
	aer := c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "MintEnabledChanged", id, true)

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "mint", id)

	h = cCreator.Invoke(t, stackitem.Null{}, "mint", id)
	aer = c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "TokenMinted", id, factoryconst.MintAmount, 100+factoryconst.MintAmount)

	cCreator.Invoke(t, stackitem.Null{}, "mint", id)
	contracttest.RequireItem(t, 100+2*factoryconst.MintAmount, contracttest.Fields(t, c, "tokenInfo", id)[2])

	t.Run("overflow", func(t *testing.T) {
		maxAmount, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)

		tx := cCreator.PrepareInvoke(t, "createToken", creator.ScriptHash(), "Big", "BIG", maxAmount)
		c.AddNewBlock(t, tx)
		b, err := c.CheckHalt(t, tx.Hash()).Stack[0].TryBytes()
		require.NoError(t, err)

		bigID, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)

		cCreator.Invoke(t, stackitem.Null{}, "setMintEnabled", bigID, true)
		cCreator.InvokeFail(t, common.ErrArithmeticOverflow, "mint", bigID)
	})
}

func TestFactoryLock(t *testing.T) {
	c, _ := newFactory(t)

	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)
	id := createToken(t, c, creator, "Token", "TKN", 100)

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "lockOwnership", id)

	cCreator.Invoke(t, stackitem.Null{}, "setMintEnabled", id, true)

	h := cCreator.Invoke(t, stackitem.Null{}, "lockOwnership", id)
	aer := c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "OwnershipLocked", id)
	contracttest.RequireItem(t, true, contracttest.Fields(t, c, "tokenInfo", id)[6])

	cCreator.InvokeFail(t, tokenconst.ErrContractLocked, "lockOwnership", id)
	cCreator.InvokeFail(t, tokenconst.ErrContractLocked, "setMintEnabled", id, false)

	// locked token can still be minted
	cCreator.Invoke(t, stackitem.Null{}, "mint", id)
}

func TestFactoryTransfer(t *testing.T) {
	c, owner := newFactory(t)

	creator := c.NewAccount(t)
	id := createToken(t, c, creator, "Token", "TKN", 100)

	gasHash := c.NativeHash(t, nativenames.Gas)
	gas := c.CommitteeInvoker(gasHash)

	payer := c.NewAccount(t)
	cPayer := c.WithSigners(payer)
	to := c.NewAccount(t).ScriptHash()

	gasOf := func(acc util.Uint160) *big.Int {
		n, err := contracttest.Call(t, gas, "balanceOf", acc).TryInteger()
		require.NoError(t, err)
		return n
	}

	ownerGAS, toGAS := gasOf(owner.ScriptHash()), gasOf(to)

	const amount = 10_0000_0000

	c.WithSigners(creator).InvokeFail(t, common.ErrUnauthorized, "transfer", id, payer.ScriptHash(), to, amount)
	cPayer.InvokeFail(t, common.ErrInvalidAmount, "transfer", id, payer.ScriptHash(), to, 0)
	cPayer.InvokeFail(t, factoryconst.NotFoundError, "transfer", util.Uint160{1}, payer.ScriptHash(), to, amount)
	cPayer.InvokeFail(t, common.ErrInsufficientBalance, "transfer", id, payer.ScriptHash(), to, 1000_0000_0000)

	h := cPayer.Invoke(t, stackitem.Null{}, "transfer", id, payer.ScriptHash(), to, amount)

	fee := int64(amount / 100)
	contracttest.RequireCall(t, gas, new(big.Int).Add(toGAS, big.NewInt(amount-fee)), "balanceOf", to)
	contracttest.RequireCall(t, gas, new(big.Int).Add(ownerGAS, big.NewInt(fee)), "balanceOf", owner.ScriptHash())

	aer := c.CheckHalt(t, h)
	last := aer.Events[len(aer.Events)-1]
	contracttest.RequireEvent(t, last, "Payment", id, payer.ScriptHash(), to, amount-fee, fee)

	// token record is not changed
	contracttest.RequireItem(t, 100, contracttest.Fields(t, c, "tokenInfo", id)[2])
}

func TestFactoryTransferScope(t *testing.T) {
	c, _ := newFactory(t)

	creator := c.NewAccount(t)
	id := createToken(t, c, creator, "Token", "TKN", 100)

	gasHash := c.NativeHash(t, nativenames.Gas)
	gas := c.CommitteeInvoker(gasHash)

	payer := c.NewAccount(t)
	to := c.NewAccount(t).ScriptHash()

	const amount = 10_0000_0000

	// transfer sends the call signed by the payer with the given witness scope
	transfer := func(signer transaction.Signer) util.Uint256 {
		tx := c.NewUnsignedTx(t, c.Hash, "transfer", id, payer.ScriptHash(), to, amount)
		tx.Signers = []transaction.Signer{signer}
		neotest.AddNetworkFee(c.Chain, tx, payer)
		neotest.AddSystemFee(c.Chain, tx, -1)
		require.NoError(t, payer.SignTx(c.Chain.GetConfig().Magic, tx))
		c.AddNewBlock(t, tx)
		return tx.Hash()
	}

	toGAS, err := contracttest.Call(t, gas, "balanceOf", to).TryInteger()
	require.NoError(t, err)

	t.Run("called by entry", func(t *testing.T) {
		h := transfer(transaction.Signer{
			Account: payer.ScriptHash(),
			Scopes:  transaction.CalledByEntry,
		})
		c.CheckFault(t, h, "can't transfer assets to the recipient")
		contracttest.RequireCall(t, gas, toGAS, "balanceOf", to)
	})

	t.Run("GAS is allowed", func(t *testing.T) {
		h := transfer(transaction.Signer{
			Account:          payer.ScriptHash(),
			Scopes:           transaction.CalledByEntry | transaction.CustomContracts,
			AllowedContracts: []util.Uint160{gasHash},
		})
		aer := c.CheckHalt(t, h)
		contracttest.RequireEvent(t, aer.Events[len(aer.Events)-1], "Payment", id, payer.ScriptHash(), to, amount-amount/100, amount/100)
		contracttest.RequireCall(t, gas, new(big.Int).Add(toGAS, big.NewInt(amount-amount/100)), "balanceOf", to)
	})
}

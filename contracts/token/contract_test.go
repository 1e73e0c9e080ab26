package token_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/skim-contract/common"
	"github.com/nspcc-dev/skim-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/skim-contract/internal/contracttest"
	"github.com/stretchr/testify/require"
)

const (
	tokenPath    = "."
	receiverPath = "../../internal/testcontracts/nep17recv"

	initialSupply = 1000
)

type tokenEnv struct {
	// committee invoker, not related to the token
	c        *neotest.ContractInvoker
	owner    neotest.Signer
	receiver neotest.Signer
}

func (env tokenEnv) asOwner() *neotest.ContractInvoker {
	return env.c.WithSigners(env.owner)
}

func newToken(t *testing.T) tokenEnv {
	e := contracttest.NewExecutor(t)
	ctr := contracttest.Compile(t, e, tokenPath)

	env := tokenEnv{
		owner:    e.NewAccount(t),
		receiver: e.NewAccount(t),
	}

	e.DeployContract(t, ctr, []any{"Skim Token", "SKM", 8, initialSupply,
		env.receiver.ScriptHash(), env.owner.ScriptHash()})

	env.c = e.CommitteeInvoker(ctr.Hash)
	return env
}

func requireBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160, expected int64) {
	contracttest.RequireCall(t, c, expected, "balanceOf", acc)
}

func TestTokenGeneric(t *testing.T) {
	env := newToken(t)
	c := env.c

	c.Invoke(t, "SKM", "symbol")
	c.Invoke(t, 8, "decimals")
	c.Invoke(t, initialSupply, "totalSupply")
	c.Invoke(t, common.Version, "version")
	requireBalance(t, c, env.owner.ScriptHash(), initialSupply)
	requireBalance(t, c, c.NewAccount(t).ScriptHash(), 0)
	contracttest.RequireCall(t, c, 0, "getTotalBurned")

	c.InvokeFail(t, common.ErrInvalidAddress, "balanceOf", []byte{1, 2, 3})

	info := contracttest.Fields(t, c, "tokenInfo")
	require.Len(t, info, 4)
	contracttest.RequireItem(t, "Skim Token", info[0])
	contracttest.RequireItem(t, "SKM", info[1])
	contracttest.RequireItem(t, 8, info[2])
	contracttest.RequireItem(t, initialSupply, info[3])

	cfg := contracttest.Fields(t, c, "getConfig")
	require.Len(t, cfg, 7)
	contracttest.RequireItem(t, env.owner.ScriptHash(), cfg[0])
	contracttest.RequireItem(t, env.receiver.ScriptHash(), cfg[1])
	contracttest.RequireItem(t, tokenconst.DefaultFeePercent, cfg[2])
	contracttest.RequireItem(t, tokenconst.DefaultMintInterval, cfg[3])
	contracttest.RequireItem(t, tokenconst.DefaultMintAmount, cfg[4])
	contracttest.RequireItem(t, false, cfg[5])
	contracttest.RequireItem(t, false, cfg[6])
}

func TestTokenDeploy(t *testing.T) {
	t.Run("sender is owner by default", func(t *testing.T) {
		e := contracttest.NewExecutor(t)
		receiver := e.NewAccount(t)
		ctr := contracttest.Compile(t, e, tokenPath)
		e.DeployContract(t, ctr, []any{"Skim Token", "SKM", 8, 0, receiver.ScriptHash(), nil})

		c := e.CommitteeInvoker(ctr.Hash)
		cfg := contracttest.Fields(t, c, "getConfig")
		contracttest.RequireItem(t, e.CommitteeHash, cfg[0])
		c.Invoke(t, 0, "totalSupply")
	})

	t.Run("invalid supply", func(t *testing.T) {
		e := contracttest.NewExecutor(t)
		receiver := e.NewAccount(t)
		ctr := contracttest.Compile(t, e, tokenPath)
		e.DeployContractCheckFAULT(t, ctr, []any{"Skim Token", "SKM", 8, -1, receiver.ScriptHash(), nil},
			common.ErrInvalidAmount)
	})

	t.Run("invalid decimals", func(t *testing.T) {
		for _, decimals := range []int{-1, tokenconst.MaxDecimals + 1} {
			e := contracttest.NewExecutor(t)
			receiver := e.NewAccount(t)
			ctr := contracttest.Compile(t, e, tokenPath)
			e.DeployContractCheckFAULT(t, ctr, []any{"Skim Token", "SKM", decimals, 0, receiver.ScriptHash(), nil},
				tokenconst.ErrInvalidDecimals)
		}
	})

	t.Run("max decimals", func(t *testing.T) {
		e := contracttest.NewExecutor(t)
		receiver := e.NewAccount(t)
		ctr := contracttest.Compile(t, e, tokenPath)
		e.DeployContract(t, ctr, []any{"Skim Token", "SKM", tokenconst.MaxDecimals, 0, receiver.ScriptHash(), nil})
		e.CommitteeInvoker(ctr.Hash).Invoke(t, tokenconst.MaxDecimals, "decimals")
	})
}

func TestTokenTransfer(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()

	acc := c.NewAccount(t)
	from, to, recv := env.owner.ScriptHash(), acc.ScriptHash(), env.receiver.ScriptHash()

	h := c.Invoke(t, true, "transfer", from, to, 100, nil)
	requireBalance(t, c, from, 900)
	requireBalance(t, c, to, 99)
	requireBalance(t, c, recv, 1)
	c.Invoke(t, initialSupply, "totalSupply")

	aer := c.CheckHalt(t, h)
	require.Len(t, aer.Events, 3)
	contracttest.RequireEvent(t, aer.Events[0], "Transfer", from, to, 99)
	contracttest.RequireEvent(t, aer.Events[1], "Transfer", from, recv, 1)
	contracttest.RequireEvent(t, aer.Events[2], "FeeCharged", from, to, 99, 1)

	t.Run("zero fee", func(t *testing.T) {
		h := c.Invoke(t, true, "transfer", from, to, 50, nil)
		requireBalance(t, c, from, 850)
		requireBalance(t, c, to, 149)
		requireBalance(t, c, recv, 1)

		aer := c.CheckHalt(t, h)
		require.Len(t, aer.Events, 2)
		contracttest.RequireEvent(t, aer.Events[0], "Transfer", from, to, 50)
		contracttest.RequireEvent(t, aer.Events[1], "FeeCharged", from, to, 50, 0)
	})

	t.Run("not witnessed", func(t *testing.T) {
		c.WithSigners(acc).Invoke(t, false, "transfer", from, to, 10, nil)
		requireBalance(t, c, from, 850)
		requireBalance(t, c, to, 149)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		c.Invoke(t, false, "transfer", from, to, 851, nil)
		requireBalance(t, c, from, 850)
		requireBalance(t, c, to, 149)
		requireBalance(t, c, recv, 1)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "transfer", from, to, -1, nil)
		c.InvokeFail(t, common.ErrInvalidAddress, "transfer", from, []byte{1, 2, 3}, 1, nil)
	})

	t.Run("to contract", func(t *testing.T) {
		rcv := contracttest.Compile(t, c.Executor, receiverPath)
		c.DeployContract(t, rcv, nil)

		c.Invoke(t, true, "transfer", from, rcv.Hash, 200, "hello")
		requireBalance(t, c, rcv.Hash, 198)

		payment := contracttest.Fields(t, c.CommitteeInvoker(rcv.Hash), "get")
		contracttest.RequireItem(t, c.Hash, payment[0])
		contracttest.RequireItem(t, from, payment[1])
		contracttest.RequireItem(t, 198, payment[2])
		contracttest.RequireItem(t, "hello", payment[3])

		c.InvokeFail(t, "payment rejected", "transfer", from, rcv.Hash, 100, "reject")
		requireBalance(t, c, from, 650)
		requireBalance(t, c, rcv.Hash, 198)
	})
}

func TestTokenTransferAliasing(t *testing.T) {
	t.Run("to self", func(t *testing.T) {
		env := newToken(t)
		c := env.asOwner()
		owner := env.owner.ScriptHash()

		c.Invoke(t, true, "transfer", owner, owner, 100, nil)
		requireBalance(t, c, owner, 999)
		requireBalance(t, c, env.receiver.ScriptHash(), 1)
		c.Invoke(t, initialSupply, "totalSupply")
	})

	t.Run("to fee receiver", func(t *testing.T) {
		env := newToken(t)
		c := env.asOwner()

		c.Invoke(t, true, "transfer", env.owner.ScriptHash(), env.receiver.ScriptHash(), 100, nil)
		requireBalance(t, c, env.owner.ScriptHash(), 900)
		requireBalance(t, c, env.receiver.ScriptHash(), 100)
	})

	t.Run("from fee receiver", func(t *testing.T) {
		env := newToken(t)
		c := env.asOwner()
		owner := env.owner.ScriptHash()
		acc := c.NewAccount(t).ScriptHash()

		c.Invoke(t, stackitem.Null{}, "setFeeReceiver", owner)
		c.Invoke(t, true, "transfer", owner, acc, 100, nil)
		requireBalance(t, c, owner, 901)
		requireBalance(t, c, acc, 99)

		t.Run("to self", func(t *testing.T) {
			c.Invoke(t, true, "transfer", owner, owner, 500, nil)
			requireBalance(t, c, owner, 901)
		})
	})

	t.Run("whole fee", func(t *testing.T) {
		env := newToken(t)
		c := env.asOwner()
		acc := c.NewAccount(t).ScriptHash()

		c.Invoke(t, stackitem.Null{}, "setFeePercent", common.FeePrecision)
		h := c.Invoke(t, true, "transfer", env.owner.ScriptHash(), acc, 10, nil)
		requireBalance(t, c, acc, 0)
		requireBalance(t, c, env.receiver.ScriptHash(), 10)

		aer := c.CheckHalt(t, h)
		contracttest.RequireEvent(t, aer.Events[0], "Transfer", env.owner.ScriptHash(), acc, 0)
	})
}

func TestTokenBurn(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()
	owner := env.owner.ScriptHash()

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "burn", 10)
	c.InvokeFail(t, common.ErrInvalidAmount, "burn", 0)
	c.InvokeFail(t, common.ErrInsufficientBalance, "burn", initialSupply+1)

	h := c.Invoke(t, stackitem.Null{}, "burn", 300)
	requireBalance(t, c, owner, 700)
	c.Invoke(t, 700, "totalSupply")
	contracttest.RequireCall(t, c, 300, "getTotalBurned")

	aer := c.CheckHalt(t, h)
	require.Len(t, aer.Events, 1)
	contracttest.RequireEvent(t, aer.Events[0], "Transfer", owner, nil, 300)

	c.Invoke(t, stackitem.Null{}, "burn", 700)
	requireBalance(t, c, owner, 0)
	c.Invoke(t, 0, "totalSupply")
	contracttest.RequireCall(t, c, initialSupply, "getTotalBurned")
}

func TestTokenMint(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, tokenconst.ErrMintDisabled, "mint", acc.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "setMintEnabled", true)

	cAcc.InvokeFail(t, common.ErrUnauthorized, "mint", env.owner.ScriptHash())

	h := cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash())
	last := contracttest.Now(t, c)

	requireBalance(t, c, acc.ScriptHash(), tokenconst.DefaultMintAmount)
	c.Invoke(t, initialSupply+tokenconst.DefaultMintAmount, "totalSupply")
	contracttest.RequireItem(t, int64(last), contracttest.Fields(t, c, "getMintInfo", acc.ScriptHash())[0])

	aer := c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "Transfer", nil, acc.ScriptHash(), tokenconst.DefaultMintAmount)

	cAcc.InvokeFail(t, tokenconst.ErrMintOnCooldown, "mint", acc.ScriptHash())

	contracttest.SetTime(t, c, last+tokenconst.DefaultMintInterval-1)
	cAcc.InvokeFail(t, tokenconst.ErrMintOnCooldown, "mint", acc.ScriptHash())

	contracttest.SetTime(t, c, last+tokenconst.DefaultMintInterval)
	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash())
	requireBalance(t, c, acc.ScriptHash(), 2*tokenconst.DefaultMintAmount)

	t.Run("other account is independent", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).Invoke(t, stackitem.Null{}, "mint", other.ScriptHash())
		requireBalance(t, c, other.ScriptHash(), tokenconst.DefaultMintAmount)
	})

	t.Run("custom amount and interval", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setMintAmount", 5)
		c.Invoke(t, stackitem.Null{}, "setMintInterval", 0)

		cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash())
		cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash())
		requireBalance(t, c, acc.ScriptHash(), 2*tokenconst.DefaultMintAmount+10)
	})

	t.Run("huge interval", func(t *testing.T) {
		maxInterval, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
		c.InvokeFail(t, tokenconst.ErrInvalidInterval, "setMintInterval", new(big.Int).Add(maxInterval, big.NewInt(1)))

		c.Invoke(t, stackitem.Null{}, "setMintInterval", maxInterval)
		cAcc.InvokeFail(t, tokenconst.ErrMintOnCooldown, "mint", acc.ScriptHash())

		c.Invoke(t, stackitem.Null{}, "setMintInterval", 0)
	})

	t.Run("disabled again", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setMintEnabled", false)
		cAcc.InvokeFail(t, tokenconst.ErrMintDisabled, "mint", acc.ScriptHash())
	})
}

func TestTokenMintOverflow(t *testing.T) {
	e := contracttest.NewExecutor(t)
	ctr := contracttest.Compile(t, e, tokenPath)
	owner := e.NewAccount(t)

	maxAmount, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	e.DeployContract(t, ctr, []any{"Skim Token", "SKM", 8, maxAmount, owner.ScriptHash(), owner.ScriptHash()})

	c := e.NewInvoker(ctr.Hash, owner)
	c.Invoke(t, stackitem.Null{}, "setMintEnabled", true)
	c.InvokeFail(t, common.ErrArithmeticOverflow, "mint", owner.ScriptHash())
	c.Invoke(t, maxAmount, "totalSupply")
}

func TestTokenGovernance(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()
	cAcc := c.WithSigners(c.NewAccount(t))
	acc := c.NewAccount(t).ScriptHash()

	calls := []struct {
		method string
		arg    any
		event  string
	}{
		{"setMintAmount", 7, "MintAmountChanged"},
		{"setMintEnabled", true, "MintEnabledChanged"},
		{"setMintInterval", 60, "MintIntervalChanged"},
		{"setFeeReceiver", acc, "FeeReceiverChanged"},
		{"setFeePercent", 2 * tokenconst.DefaultFeePercent, "FeePercentChanged"},
	}

	for _, tc := range calls {
		cAcc.InvokeFail(t, common.ErrUnauthorized, tc.method, tc.arg)

		h := c.Invoke(t, stackitem.Null{}, tc.method, tc.arg)
		aer := c.CheckHalt(t, h)
		require.Len(t, aer.Events, 1)
		contracttest.RequireEvent(t, aer.Events[0], tc.event, tc.arg)
	}

	cfg := contracttest.Fields(t, c, "getConfig")
	contracttest.RequireItem(t, acc, cfg[1])
	contracttest.RequireItem(t, 2*tokenconst.DefaultFeePercent, cfg[2])
	contracttest.RequireItem(t, 60, cfg[3])
	contracttest.RequireItem(t, 7, cfg[4])
	contracttest.RequireItem(t, true, cfg[5])

	c.InvokeFail(t, common.ErrInvalidAmount, "setMintAmount", 0)
	c.InvokeFail(t, tokenconst.ErrInvalidInterval, "setMintInterval", -1)
	c.InvokeFail(t, common.ErrInvalidFeePercent, "setFeePercent", -1)
	c.InvokeFail(t, common.ErrInvalidFeePercent, "setFeePercent", common.FeePrecision+1)
	c.InvokeFail(t, common.ErrInvalidAddress, "setFeeReceiver", []byte{1})

	t.Run("fee percent is applied", func(t *testing.T) {
		c.Invoke(t, true, "transfer", env.owner.ScriptHash(), env.receiver.ScriptHash(), 100, nil)
		requireBalance(t, c, acc, 2)
	})
}

func TestTokenOwnership(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()

	newOwner := c.NewAccount(t)
	cNew := c.WithSigners(newOwner)

	cNew.InvokeFail(t, common.ErrUnauthorized, "transferOwnership", newOwner.ScriptHash())

	h := c.Invoke(t, stackitem.Null{}, "transferOwnership", newOwner.ScriptHash())
	aer := c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "OwnershipTransferred", env.owner.ScriptHash(), newOwner.ScriptHash())

	// balances stay in place
	requireBalance(t, c, env.owner.ScriptHash(), initialSupply)

	c.InvokeFail(t, common.ErrUnauthorized, "setMintEnabled", true)
	c.InvokeFail(t, common.ErrUnauthorized, "burn", 1)
	cNew.InvokeFail(t, common.ErrInsufficientBalance, "burn", 1)

	cNew.Invoke(t, stackitem.Null{}, "setMintEnabled", true)

	h = cNew.Invoke(t, stackitem.Null{}, "lockOwnership")
	aer = c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "OwnershipLocked", newOwner.ScriptHash())

	cfg := contracttest.Fields(t, c, "getConfig")
	contracttest.RequireItem(t, true, cfg[6])

	t.Run("locked", func(t *testing.T) {
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "setMintAmount", 1)
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "setMintEnabled", false)
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "setMintInterval", 1)
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "setFeeReceiver", newOwner.ScriptHash())
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "setFeePercent", 0)
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "transferOwnership", env.owner.ScriptHash())
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "lockOwnership")
		cNew.InvokeFail(t, tokenconst.ErrContractLocked, "update", []byte{}, []byte{}, nil)

		// the owner is still checked first
		c.InvokeFail(t, common.ErrUnauthorized, "lockOwnership")

		// ledger operations are not affected
		c.Invoke(t, true, "transfer", env.owner.ScriptHash(), newOwner.ScriptHash(), 100, nil)
		cNew.Invoke(t, stackitem.Null{}, "mint", newOwner.ScriptHash())
	})
}

func TestTokenUpdate(t *testing.T) {
	env := newToken(t)

	env.c.WithSigners(env.c.NewAccount(t)).InvokeFail(t, common.ErrUnauthorized, "update", []byte{}, []byte{}, nil)

	ctr := contracttest.Compile(t, env.c.Executor, tokenPath)

	rawNEF, err := ctr.NEF.Bytes()
	require.NoError(t, err)

	rawManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	env.asOwner().InvokeFail(t, common.ErrSameVersion, "update", rawNEF, rawManifest, nil)
}

func TestTokenAllowance(t *testing.T) {
	env := newToken(t)
	c := env.asOwner()
	owner := env.owner.ScriptHash()

	spender := c.NewAccount(t)
	cSpender := c.WithSigners(spender)
	to := c.NewAccount(t).ScriptHash()

	requireAllowance := func(t *testing.T, amount, expires int64) {
		fields := contracttest.Fields(t, c, "allowance", owner, spender.ScriptHash())
		contracttest.RequireItem(t, amount, fields[0])
		contracttest.RequireItem(t, expires, fields[1])
	}

	requireAllowance(t, 0, 0)

	cSpender.InvokeFail(t, common.ErrUnauthorized, "increaseAllowance", owner, spender.ScriptHash(), 100, 0)
	c.InvokeFail(t, common.ErrInvalidAmount, "increaseAllowance", owner, spender.ScriptHash(), 0, 0)
	c.InvokeFail(t, tokenconst.ErrInvalidExpiration, "increaseAllowance", owner, spender.ScriptHash(), 1, -1)
	c.InvokeFail(t, tokenconst.ErrOwnAllowance, "increaseAllowance", owner, owner, 1, 0)

	h := c.Invoke(t, stackitem.Null{}, "increaseAllowance", owner, spender.ScriptHash(), 300, 0)
	aer := c.CheckHalt(t, h)
	contracttest.RequireEvent(t, aer.Events[0], "Approval", owner, spender.ScriptHash(), 300, 0)
	requireAllowance(t, 300, 0)

	cSpender.InvokeFail(t, tokenconst.ErrInsufficientAllowance, "transferFrom",
		spender.ScriptHash(), owner, to, 301, nil)
	c.InvokeFail(t, common.ErrUnauthorized, "transferFrom",
		spender.ScriptHash(), owner, to, 10, nil)

	h = cSpender.Invoke(t, true, "transferFrom", spender.ScriptHash(), owner, to, 200, nil)
	requireAllowance(t, 100, 0)
	requireBalance(t, c, owner, 800)
	requireBalance(t, c, to, 198)
	requireBalance(t, c, env.receiver.ScriptHash(), 2)
	requireBalance(t, c, spender.ScriptHash(), 0)

	aer = c.CheckHalt(t, h)
	require.Len(t, aer.Events, 3)
	contracttest.RequireEvent(t, aer.Events[2], "FeeCharged", owner, to, 198, 2)

	t.Run("decrease", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "decreaseAllowance", owner, spender.ScriptHash(), 40, 0)
		requireAllowance(t, 60, 0)

		h := c.Invoke(t, stackitem.Null{}, "decreaseAllowance", owner, spender.ScriptHash(), 1000, 0)
		requireAllowance(t, 0, 0)

		aer := c.CheckHalt(t, h)
		contracttest.RequireEvent(t, aer.Events[0], "Approval", owner, spender.ScriptHash(), 0, 0)

		cSpender.InvokeFail(t, tokenconst.ErrInsufficientAllowance, "transferFrom",
			spender.ScriptHash(), owner, to, 1, nil)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "increaseAllowance", owner, spender.ScriptHash(), 10_000, 0)
		cSpender.InvokeFail(t, common.ErrInsufficientBalance, "transferFrom",
			spender.ScriptHash(), owner, to, 5_000, nil)
		requireAllowance(t, 10_000, 0)
		c.Invoke(t, stackitem.Null{}, "decreaseAllowance", owner, spender.ScriptHash(), 10_000, 0)
	})

	t.Run("expiration", func(t *testing.T) {
		expires := contracttest.Now(t, c) + 100
		c.Invoke(t, stackitem.Null{}, "increaseAllowance", owner, spender.ScriptHash(), 50, int64(expires))
		requireAllowance(t, 50, int64(expires))

		contracttest.SetTime(t, c, expires-1)
		cSpender.Invoke(t, true, "transferFrom", spender.ScriptHash(), owner, to, 10, nil)

		contracttest.SetTime(t, c, expires)
		cSpender.InvokeFail(t, tokenconst.ErrAllowanceExpired, "transferFrom",
			spender.ScriptHash(), owner, to, 10, nil)
		requireAllowance(t, 40, int64(expires))
	})
}

package factory

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/skim-contract/common"
	"github.com/nspcc-dev/skim-contract/contracts/factory/factoryconst"
	"github.com/nspcc-dev/skim-contract/contracts/token/tokenconst"
)

// Token is a record of the token registered in the factory.
type Token struct {
	Name   string
	Symbol string
	Supply int
	// Receiver of GAS fees paid on transfers of this token
	FeeReceiver   interop.Hash160
	Creator       interop.Hash160
	MintEnabled   bool
	ImmutableMode bool
}

const (
	ownerKey    = 'o'
	sequenceKey = 's'
	allKey      = 'a'

	tokenPrefix   = 't'
	creatorPrefix = 'c'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckUpdate(version)
		return
	}

	if len(args) < 1 {
		panic("not enough deployment arguments")
	}

	owner := args[0].(interop.Hash160)
	common.CheckAddress(owner)

	ctx := storage.GetContext()
	storage.Put(ctx, ownerKey, owner)

	runtime.Log("factory contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the factory owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(Owner())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.WithVersion(data))
	runtime.Log("factory contract updated")
}

// CreateToken registers a new token with the given name, symbol and
// initial supply. It can be invoked only by the creator. Returns identifier
// of the new token. One creator may register any number of tokens.
//
// Factory owner becomes fee receiver of the token. Minting is disabled for
// the new token.
//
// It produces TokenCreated notification.
func CreateToken(creator interop.Hash160, name, symbol string, initialSupply int) interop.Hash160 {
	common.CheckAddress(creator)
	common.CheckOwnerWitness(creator)

	if initialSupply < 0 || initialSupply > common.MaxAmount() {
		panic(common.ErrInvalidAmount)
	}

	ctx := storage.GetContext()

	seq := common.GetInt(ctx, sequenceKey)
	common.PutInt(ctx, sequenceKey, seq+1)

	id := tokenID(creator, seq)

	setToken(ctx, id, Token{
		Name:          name,
		Symbol:        symbol,
		Supply:        initialSupply,
		FeeReceiver:   storage.Get(ctx, ownerKey).(interop.Hash160),
		Creator:       creator,
		MintEnabled:   false,
		ImmutableMode: false,
	})
	common.AppendToList(ctx, append([]byte{creatorPrefix}, creator...), id)
	common.AppendToList(ctx, allKey, id)

	runtime.Notify("TokenCreated", id, creator, name, symbol, initialSupply)

	return id
}

// Mint increases supply of the registered token by the fixed mint amount.
// It can be invoked only by the token creator while minting is enabled.
//
// It produces TokenMinted notification.
func Mint(token interop.Hash160) {
	ctx := storage.GetContext()
	t := getToken(ctx, token)

	if !t.MintEnabled {
		panic(tokenconst.ErrMintDisabled)
	}

	common.CheckOwnerWitness(t.Creator)

	t.Supply = common.Credit(t.Supply, factoryconst.MintAmount)
	setToken(ctx, token, t)

	runtime.Notify("TokenMinted", token, factoryconst.MintAmount, t.Supply)
}

// Transfer pays amount of GAS from one account to another on behalf of the
// registered token. The fee is paid to the fee receiver of the token, the
// rest is paid to the recipient. It can be invoked only by the payer. Token
// record is not changed.
//
// GAS contract checks payer's witness too, so the payer must sign with the
// scope allowing GAS contract (CustomContracts with GAS hash or Global).
// CalledByEntry scope alone makes GAS transfer fail.
//
// It produces Payment notification.
func Transfer(token, from, to interop.Hash160, amount int) {
	common.CheckAddress(from)
	common.CheckAddress(to)
	common.CheckAmount(amount)

	t := getToken(storage.GetReadOnlyContext(), token)

	common.CheckOwnerWitness(from)

	if gas.BalanceOf(from) < amount {
		panic(common.ErrInsufficientBalance)
	}

	fee, net := common.SplitFee(amount, factoryconst.FeePercent)

	if !gas.Transfer(from, to, net, nil) {
		panic("can't transfer assets to the recipient")
	}

	if fee > 0 && !gas.Transfer(from, t.FeeReceiver, fee, nil) {
		panic("can't transfer fee to the fee receiver")
	}

	runtime.Notify("Payment", token, from, to, net, fee)
}

// SetMintEnabled turns minting of the registered token on or off. It can be
// invoked only by the token creator until the token is locked.
//
// It produces MintEnabledChanged notification.
func SetMintEnabled(token interop.Hash160, enabled bool) {
	ctx := storage.GetContext()
	t := checkCreator(ctx, token)

	t.MintEnabled = enabled
	setToken(ctx, token, t)

	runtime.Notify("MintEnabledChanged", token, enabled)
}

// LockOwnership permanently locks the registered token. It can be invoked
// only by the token creator.
//
// It produces OwnershipLocked notification.
func LockOwnership(token interop.Hash160) {
	ctx := storage.GetContext()
	t := checkCreator(ctx, token)

	t.ImmutableMode = true
	setToken(ctx, token, t)

	runtime.Notify("OwnershipLocked", token)
}

// TokenInfo returns record of the registered token.
func TokenInfo(token interop.Hash160) Token {
	return getToken(storage.GetReadOnlyContext(), token)
}

// TokensOf returns identifiers of tokens registered by the creator in
// registration order.
func TokensOf(creator interop.Hash160) []interop.Hash160 {
	common.CheckAddress(creator)
	return common.GetList(storage.GetReadOnlyContext(), append([]byte{creatorPrefix}, creator...))
}

// AllTokens returns identifiers of all registered tokens in registration
// order.
func AllTokens() []interop.Hash160 {
	return common.GetList(storage.GetReadOnlyContext(), allKey)
}

// Owner returns factory owner.
func Owner() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), ownerKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkCreator(ctx storage.Context, token interop.Hash160) Token {
	t := getToken(ctx, token)

	common.CheckOwnerWitness(t.Creator)

	if t.ImmutableMode {
		panic(tokenconst.ErrContractLocked)
	}

	return t
}

// tokenID derives token identifier from the creator and the factory-wide
// registration sequence number.
func tokenID(creator interop.Hash160, seq int) interop.Hash160 {
	data := append([]byte(creator), []byte(std.Itoa(seq, 10))...)
	return crypto.Ripemd160(crypto.Sha256(data))
}

func getToken(ctx storage.Context, token interop.Hash160) Token {
	common.CheckAddress(token)

	data := storage.Get(ctx, append([]byte{tokenPrefix}, token...))
	if data == nil {
		panic(factoryconst.NotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Token)
}

func setToken(ctx storage.Context, token interop.Hash160, t Token) {
	common.SetSerialized(ctx, append([]byte{tokenPrefix}, token...), t)
}

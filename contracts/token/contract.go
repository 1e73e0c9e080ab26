package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/skim-contract/common"
	"github.com/nspcc-dev/skim-contract/contracts/token/tokenconst"
)

type (
	// Config is a governance state of the token.
	Config struct {
		// Authorization root of burn and governance methods
		Owner interop.Hash160
		// Destination of skimmed fees
		FeeReceiver interop.Hash160
		// Transfer fee in common.FeePrecision units
		FeePercent int
		// Seconds between two mints of the same account
		MintInterval int
		// Amount credited by a single mint
		MintAmount int
		MintEnabled bool
		// Once set, config and ownership can't be changed anymore
		ImmutableMode bool
	}

	// Metadata holds token description and its current supply.
	Metadata struct {
		Name        string
		Symbol      string
		Decimals    int
		TotalSupply int
	}

	// MintInfo stores the time of the latest account mint in seconds.
	MintInfo struct {
		LastMintTime int
	}

	// AllowanceInfo is a spending limit one account grants another.
	AllowanceInfo struct {
		Amount int
		// Unix time in seconds after which allowance can't be used, 0 means
		// no expiration.
		Expires int
	}
)

const (
	balancePrefix   = 'a'
	mintInfoPrefix  = 'm'
	allowancePrefix = 'l'

	configKey      = 'c'
	metadataKey    = 't'
	totalBurnedKey = 'b'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckUpdate(version)
		return
	}

	if len(args) < 5 {
		panic("not enough deployment arguments")
	}

	var (
		name          = args[0].(string)
		symbol        = args[1].(string)
		decimals      = args[2].(int)
		initialSupply = args[3].(int)
		feeReceiver   = args[4].(interop.Hash160)
		owner         = runtime.GetScriptContainer().Sender
	)

	if len(args) > 5 && args[5] != nil {
		owner = args[5].(interop.Hash160)
	}

	common.CheckAddress(owner)
	common.CheckAddress(feeReceiver)

	if decimals < 0 || decimals > tokenconst.MaxDecimals {
		panic(tokenconst.ErrInvalidDecimals)
	}

	if initialSupply < 0 || initialSupply > common.MaxAmount() {
		panic(common.ErrInvalidAmount)
	}

	ctx := storage.GetContext()

	setConfig(ctx, Config{
		Owner:         owner,
		FeeReceiver:   feeReceiver,
		FeePercent:    tokenconst.DefaultFeePercent,
		MintInterval:  tokenconst.DefaultMintInterval,
		MintAmount:    tokenconst.DefaultMintAmount,
		MintEnabled:   false,
		ImmutableMode: false,
	})
	setMetadata(ctx, Metadata{
		Name:        name,
		Symbol:      symbol,
		Decimals:    decimals,
		TotalSupply: initialSupply,
	})
	putBalance(ctx, owner, initialSupply)

	if initialSupply > 0 {
		emitTransfer(nil, owner, initialSupply)
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the token owner until the ownership is locked.
func Update(nefFile, manifest []byte, data any) {
	checkGovernance(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.WithVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns token symbol.
func Symbol() string {
	return getMetadata(storage.GetReadOnlyContext()).Symbol
}

// Decimals is a NEP-17 standard method that returns precision of token
// balances.
func Decimals() int {
	return getMetadata(storage.GetReadOnlyContext()).Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of tokens
// in circulation: initial supply plus all mints minus all burns.
func TotalSupply() int {
	return getMetadata(storage.GetReadOnlyContext()).TotalSupply
}

// BalanceOf is a NEP-17 standard method that returns token balance of the
// specified account. Missing accounts have zero balance.
func BalanceOf(account interop.Hash160) int {
	common.CheckAddress(account)
	return getBalance(storage.GetReadOnlyContext(), account)
}

// TokenInfo returns token name, symbol, decimals and total supply.
func TokenInfo() Metadata {
	return getMetadata(storage.GetReadOnlyContext())
}

// GetConfig returns current governance state of the token.
func GetConfig() Config {
	return getConfig(storage.GetReadOnlyContext())
}

// GetMintInfo returns the time of the latest mint made by the account. Zero
// time is returned for accounts that have never minted.
func GetMintInfo(account interop.Hash160) MintInfo {
	common.CheckAddress(account)
	return getMintInfo(storage.GetReadOnlyContext(), account)
}

// GetTotalBurned returns the amount of tokens burned during contract
// lifetime.
func GetTotalBurned() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalBurnedKey)
}

// Allowance returns the amount spender is still allowed to transfer from
// owner's account and allowance expiration time.
func Allowance(owner, spender interop.Hash160) AllowanceInfo {
	common.CheckAddress(owner)
	common.CheckAddress(spender)
	return getAllowance(storage.GetReadOnlyContext(), owner, spender)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only by the account owner.
//
// Recipient receives amount minus fee, the fee is credited to the fee
// receiver from the config. It produces Transfer notifications for both
// parts and FeeCharged notification. Returns false if sender didn't witness
// the call or has not enough tokens.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	common.CheckAddress(from)
	common.CheckAddress(to)

	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}

	if !common.IsWitnessed(from) {
		runtime.Log(common.ErrUnauthorized)
		return false
	}

	ctx := storage.GetContext()

	net, ok := settle(ctx, getConfig(ctx), from, to, amount, false)
	if !ok {
		return false
	}

	postTransfer(from, to, net, data)

	return true
}

// TransferFrom transfers tokens from owner's account on behalf of the spender
// that was previously allowed to do so with IncreaseAllowance. Allowance is
// decreased by the full amount, the fee is charged in the same way as in
// Transfer.
//
// It panics if spender didn't witness the call, allowance is insufficient or
// expired or owner has not enough tokens.
func TransferFrom(spender, owner, to interop.Hash160, amount int, data any) bool {
	common.CheckAddress(spender)
	common.CheckAddress(owner)
	common.CheckAddress(to)
	common.CheckAmount(amount)
	common.CheckOwnerWitness(spender)

	ctx := storage.GetContext()

	allowance := getAllowance(ctx, owner, spender)
	allowance.Amount = common.Debit(allowance.Amount, amount, tokenconst.ErrInsufficientAllowance)

	if allowance.Expires != 0 && currentTime() >= allowance.Expires {
		panic(tokenconst.ErrAllowanceExpired)
	}

	net, _ := settle(ctx, getConfig(ctx), owner, to, amount, true)
	putAllowance(ctx, owner, spender, allowance)

	postTransfer(owner, to, net, data)

	return true
}

// IncreaseAllowance allows spender to transfer additional amount of owner's
// tokens until expires (unix time in seconds, 0 for no expiration). It can be
// invoked only by the owner.
//
// It produces Approval notification with the resulting allowance.
func IncreaseAllowance(owner, spender interop.Hash160, amount, expires int) {
	checkApproval(owner, spender, amount, expires)

	ctx := storage.GetContext()

	allowance := getAllowance(ctx, owner, spender)
	allowance.Amount = common.Credit(allowance.Amount, amount)
	allowance.Expires = expires

	putAllowance(ctx, owner, spender, allowance)
	runtime.Notify("Approval", owner, spender, allowance.Amount, allowance.Expires)
}

// DecreaseAllowance lowers spender's allowance by amount, allowance never
// becomes negative. It can be invoked only by the owner.
//
// It produces Approval notification with the resulting allowance.
func DecreaseAllowance(owner, spender interop.Hash160, amount, expires int) {
	checkApproval(owner, spender, amount, expires)

	ctx := storage.GetContext()

	allowance := getAllowance(ctx, owner, spender)
	if amount >= allowance.Amount {
		allowance.Amount = 0
	} else {
		allowance.Amount -= amount
	}
	allowance.Expires = expires

	putAllowance(ctx, owner, spender, allowance)
	runtime.Notify("Approval", owner, spender, allowance.Amount, allowance.Expires)
}

// Burn destroys amount of owner's tokens. It can be invoked only by the
// token owner. Burn decreases total supply and increases total burned
// counter by the same amount.
//
// It produces Transfer notification to the null account.
func Burn(amount int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	common.CheckOwnerWitness(cfg.Owner)
	common.CheckAmount(amount)

	balance := common.Debit(getBalance(ctx, cfg.Owner), amount, common.ErrInsufficientBalance)

	meta := getMetadata(ctx)
	meta.TotalSupply = common.Debit(meta.TotalSupply, amount, tokenconst.ErrNegativeSupply)

	burned := common.Credit(common.GetInt(ctx, totalBurnedKey), amount)

	putBalance(ctx, cfg.Owner, balance)
	setMetadata(ctx, meta)
	common.PutInt(ctx, totalBurnedKey, burned)

	emitTransfer(cfg.Owner, nil, amount)
	runtime.Log("assets were burned")
}

// Mint credits the account with the mint amount from the config. Each account
// can mint once per mint interval and only while minting is enabled. It can be
// invoked only by the account owner.
//
// It produces Transfer notification from the null account.
func Mint(account interop.Hash160) {
	common.CheckAddress(account)

	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !cfg.MintEnabled {
		panic(tokenconst.ErrMintDisabled)
	}

	common.CheckOwnerWitness(account)

	now := currentTime()
	info := getMintInfo(ctx, account)
	if now < info.LastMintTime+cfg.MintInterval {
		panic(tokenconst.ErrMintOnCooldown)
	}

	balance := common.Credit(getBalance(ctx, account), cfg.MintAmount)

	meta := getMetadata(ctx)
	meta.TotalSupply = common.Credit(meta.TotalSupply, cfg.MintAmount)

	info.LastMintTime = now
	common.SetSerialized(ctx, append([]byte{mintInfoPrefix}, account...), info)
	putBalance(ctx, account, balance)
	setMetadata(ctx, meta)

	emitTransfer(nil, account, cfg.MintAmount)
	runtime.Log("assets were minted")
}

// SetMintAmount changes the amount credited by a single mint.
//
// It produces MintAmountChanged notification.
func SetMintAmount(amount int) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	common.CheckAmount(amount)

	cfg.MintAmount = amount
	setConfig(ctx, cfg)
	runtime.Notify("MintAmountChanged", amount)
}

// SetMintEnabled turns minting on or off.
//
// It produces MintEnabledChanged notification.
func SetMintEnabled(enabled bool) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	cfg.MintEnabled = enabled
	setConfig(ctx, cfg)
	runtime.Notify("MintEnabledChanged", enabled)
}

// SetMintInterval changes the cooldown between mints of the same account.
// Interval must not be negative or exceed common.MaxAmount(). New interval
// applies to all accounts including those already cooling down.
//
// It produces MintIntervalChanged notification.
func SetMintInterval(seconds int) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	if seconds < 0 || seconds > common.MaxAmount() {
		panic(tokenconst.ErrInvalidInterval)
	}

	cfg.MintInterval = seconds
	setConfig(ctx, cfg)
	runtime.Notify("MintIntervalChanged", seconds)
}

// SetFeeReceiver changes the account receiving transfer fees.
//
// It produces FeeReceiverChanged notification.
func SetFeeReceiver(receiver interop.Hash160) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	common.CheckAddress(receiver)

	cfg.FeeReceiver = receiver
	setConfig(ctx, cfg)
	runtime.Notify("FeeReceiverChanged", receiver)
}

// SetFeePercent changes transfer fee. Percent is a fixed-point value where
// common.FeePrecision stands for 100%.
//
// It produces FeePercentChanged notification.
func SetFeePercent(percent int) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	if percent < 0 || percent > common.FeePrecision {
		panic(common.ErrInvalidFeePercent)
	}

	cfg.FeePercent = percent
	setConfig(ctx, cfg)
	runtime.Notify("FeePercentChanged", percent)
}

// TransferOwnership passes burn and governance rights to the new owner.
// Balances are not moved.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	common.CheckAddress(newOwner)

	previous := cfg.Owner
	cfg.Owner = newOwner
	setConfig(ctx, cfg)
	runtime.Notify("OwnershipTransferred", previous, newOwner)
}

// LockOwnership switches the token into immutable mode. After that no
// governance method (including this one) and no update can succeed.
//
// It produces OwnershipLocked notification.
func LockOwnership() {
	ctx := storage.GetContext()
	cfg := checkGovernance(ctx)

	cfg.ImmutableMode = true
	setConfig(ctx, cfg)
	runtime.Notify("OwnershipLocked", cfg.Owner)
}

// settle debits from by amount and credits to and the fee receiver with net
// and fee parts correspondingly. All resulting balances are calculated (and
// checked) before the first storage write, so accounts may coincide. If strict
// is false, insufficient balance results in false instead of panic.
func settle(ctx storage.Context, cfg Config, from, to interop.Hash160, amount int, strict bool) (int, bool) {
	fee, net := common.SplitFee(amount, cfg.FeePercent)

	fromBalance := getBalance(ctx, from)
	if amount > fromBalance {
		if strict {
			panic(common.ErrInsufficientBalance)
		}

		runtime.Log(common.ErrInsufficientBalance)
		return 0, false
	}

	fromBalance -= amount

	toBalance := fromBalance
	if !to.Equals(from) {
		toBalance = getBalance(ctx, to)
	}

	toBalance = common.Credit(toBalance, net)
	if to.Equals(from) {
		fromBalance = toBalance
	}

	var (
		receiver        = cfg.FeeReceiver
		receiverBalance int
	)

	switch {
	case receiver.Equals(to):
		receiverBalance = toBalance
	case receiver.Equals(from):
		receiverBalance = fromBalance
	default:
		receiverBalance = getBalance(ctx, receiver)
	}

	receiverBalance = common.Credit(receiverBalance, fee)
	if receiver.Equals(from) {
		fromBalance = receiverBalance
	}
	if receiver.Equals(to) {
		toBalance = receiverBalance
	}

	putBalance(ctx, from, fromBalance)
	putBalance(ctx, to, toBalance)
	putBalance(ctx, receiver, receiverBalance)

	emitTransfer(from, to, net)
	if fee > 0 {
		emitTransfer(from, receiver, fee)
	}
	runtime.Notify("FeeCharged", from, to, net, fee)

	return net, true
}

// postTransfer calls NEP-17 payment callback if the recipient is a contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func checkApproval(owner, spender interop.Hash160, amount, expires int) {
	common.CheckAddress(owner)
	common.CheckAddress(spender)
	common.CheckAmount(amount)

	if expires < 0 {
		panic(tokenconst.ErrInvalidExpiration)
	}

	if owner.Equals(spender) {
		panic(tokenconst.ErrOwnAllowance)
	}

	common.CheckOwnerWitness(owner)
}

// checkGovernance returns token config if the call is witnessed by the owner
// and the token is not locked.
func checkGovernance(ctx storage.Context) Config {
	cfg := getConfig(ctx)

	common.CheckOwnerWitness(cfg.Owner)

	if cfg.ImmutableMode {
		panic(tokenconst.ErrContractLocked)
	}

	return cfg
}

func emitTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

// currentTime returns block time in seconds.
func currentTime() int {
	return runtime.GetTime() / 1000
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{balancePrefix}, account...))
}

func putBalance(ctx storage.Context, account interop.Hash160, balance int) {
	common.PutInt(ctx, append([]byte{balancePrefix}, account...), balance)
}

func getMintInfo(ctx storage.Context, account interop.Hash160) MintInfo {
	data := storage.Get(ctx, append([]byte{mintInfoPrefix}, account...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(MintInfo)
	}

	return MintInfo{}
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}

func getAllowance(ctx storage.Context, owner, spender interop.Hash160) AllowanceInfo {
	data := storage.Get(ctx, allowanceKey(owner, spender))
	if data != nil {
		return std.Deserialize(data.([]byte)).(AllowanceInfo)
	}

	return AllowanceInfo{}
}

func putAllowance(ctx storage.Context, owner, spender interop.Hash160, allowance AllowanceInfo) {
	key := allowanceKey(owner, spender)
	if allowance.Amount == 0 {
		storage.Delete(ctx, key)
		return
	}

	common.SetSerialized(ctx, key, allowance)
}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	return std.Deserialize(data.([]byte)).(Config)
}

func setConfig(ctx storage.Context, cfg Config) {
	common.SetSerialized(ctx, configKey, cfg)
}

func getMetadata(ctx storage.Context) Metadata {
	data := storage.Get(ctx, metadataKey)
	return std.Deserialize(data.([]byte)).(Metadata)
}

func setMetadata(ctx storage.Context, meta Metadata) {
	common.SetSerialized(ctx, metadataKey, meta)
}

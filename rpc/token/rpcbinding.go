// Package token contains RPC wrappers for Skim Token contract.
package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/skim-contract/rpc/internal/binding"
)

// Config is a contract-specific token.Config type used by its methods.
type Config struct {
	Owner         util.Uint160
	FeeReceiver   util.Uint160
	FeePercent    *big.Int
	MintInterval  *big.Int
	MintAmount    *big.Int
	MintEnabled   bool
	ImmutableMode bool
}

// Metadata is a contract-specific token.Metadata type used by its methods.
type Metadata struct {
	Name        string
	Symbol      string
	Decimals    *big.Int
	TotalSupply *big.Int
}

// MintInfo is a contract-specific token.MintInfo type used by its methods.
type MintInfo struct {
	LastMintTime *big.Int
}

// AllowanceInfo is a contract-specific token.AllowanceInfo type used by its methods.
type AllowanceInfo struct {
	Amount  *big.Int
	Expires *big.Int
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// FeeChargedEvent represents "FeeCharged" event emitted by the contract.
type FeeChargedEvent struct {
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
	Fee    *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner   util.Uint160
	Spender util.Uint160
	Amount  *big.Int
	Expires *big.Int
}

// MintAmountChangedEvent represents "MintAmountChanged" event emitted by the contract.
type MintAmountChangedEvent struct {
	Amount *big.Int
}

// MintEnabledChangedEvent represents "MintEnabledChanged" event emitted by the contract.
type MintEnabledChangedEvent struct {
	Enabled bool
}

// MintIntervalChangedEvent represents "MintIntervalChanged" event emitted by the contract.
type MintIntervalChangedEvent struct {
	Interval *big.Int
}

// FeeReceiverChangedEvent represents "FeeReceiverChanged" event emitted by the contract.
type FeeReceiverChangedEvent struct {
	Receiver util.Uint160
}

// FeePercentChangedEvent represents "FeePercentChanged" event emitted by the contract.
type FeePercentChangedEvent struct {
	Percent *big.Int
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner      util.Uint160
}

// OwnershipLockedEvent represents "OwnershipLocked" event emitted by the contract.
type OwnershipLockedEvent struct {
	Owner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Hash returns contract script hash.
func (c *ContractReader) Hash() util.Uint160 {
	return c.hash
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// TokenInfo invokes `tokenInfo` method of contract.
func (c *ContractReader) TokenInfo() (*Metadata, error) {
	return itemToMetadata(unwrap.Item(c.invoker.Call(c.hash, "tokenInfo")))
}

// GetConfig invokes `getConfig` method of contract.
func (c *ContractReader) GetConfig() (*Config, error) {
	return itemToConfig(unwrap.Item(c.invoker.Call(c.hash, "getConfig")))
}

// GetMintInfo invokes `getMintInfo` method of contract.
func (c *ContractReader) GetMintInfo(account util.Uint160) (*MintInfo, error) {
	return itemToMintInfo(unwrap.Item(c.invoker.Call(c.hash, "getMintInfo", account)))
}

// GetTotalBurned invokes `getTotalBurned` method of contract.
func (c *ContractReader) GetTotalBurned() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTotalBurned"))
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*AllowanceInfo, error) {
	return itemToAllowanceInfo(unwrap.Item(c.invoker.Call(c.hash, "allowance", owner, spender)))
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, owner util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, owner, to, amount, data)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, owner util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, owner, to, amount, data)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, owner util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, owner, to, amount, data)
}

// IncreaseAllowance creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) IncreaseAllowance(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "increaseAllowance", owner, spender, amount, expires)
}

// IncreaseAllowanceTransaction creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IncreaseAllowanceTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "increaseAllowance", owner, spender, amount, expires)
}

// IncreaseAllowanceUnsigned creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IncreaseAllowanceUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "increaseAllowance", nil, owner, spender, amount, expires)
}

// DecreaseAllowance creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DecreaseAllowance(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "decreaseAllowance", owner, spender, amount, expires)
}

// DecreaseAllowanceTransaction creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DecreaseAllowanceTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "decreaseAllowance", owner, spender, amount, expires)
}

// DecreaseAllowanceUnsigned creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DecreaseAllowanceUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int, expires *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "decreaseAllowance", nil, owner, spender, amount, expires)
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, amount)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", account)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", account)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, account)
}

// SetMintAmount creates a transaction invoking `setMintAmount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintAmount(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintAmount", amount)
}

// SetMintAmountTransaction creates a transaction invoking `setMintAmount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintAmountTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintAmount", amount)
}

// SetMintAmountUnsigned creates a transaction invoking `setMintAmount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintAmountUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintAmount", nil, amount)
}

// SetMintEnabled creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintEnabled(enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintEnabled", enabled)
}

// SetMintEnabledTransaction creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintEnabledTransaction(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintEnabled", enabled)
}

// SetMintEnabledUnsigned creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintEnabledUnsigned(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintEnabled", nil, enabled)
}

// SetMintInterval creates a transaction invoking `setMintInterval` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintInterval(seconds *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintInterval", seconds)
}

// SetMintIntervalTransaction creates a transaction invoking `setMintInterval` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintIntervalTransaction(seconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintInterval", seconds)
}

// SetMintIntervalUnsigned creates a transaction invoking `setMintInterval` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintIntervalUnsigned(seconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintInterval", nil, seconds)
}

// SetFeeReceiver creates a transaction invoking `setFeeReceiver` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeeReceiver(receiver util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeReceiver", receiver)
}

// SetFeeReceiverTransaction creates a transaction invoking `setFeeReceiver` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeReceiverTransaction(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeeReceiver", receiver)
}

// SetFeeReceiverUnsigned creates a transaction invoking `setFeeReceiver` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeReceiverUnsigned(receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeeReceiver", nil, receiver)
}

// SetFeePercent creates a transaction invoking `setFeePercent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeePercent(percent *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeePercent", percent)
}

// SetFeePercentTransaction creates a transaction invoking `setFeePercent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeePercentTransaction(percent *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeePercent", percent)
}

// SetFeePercentUnsigned creates a transaction invoking `setFeePercent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeePercentUnsigned(percent *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeePercent", nil, percent)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// LockOwnership creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) LockOwnership() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "lockOwnership")
}

// LockOwnershipTransaction creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LockOwnershipTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "lockOwnership")
}

// LockOwnershipUnsigned creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LockOwnershipUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "lockOwnership", nil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToConfig converts stack item into *Config.
func itemToConfig(item stackitem.Item, err error) (*Config, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Config)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Config from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Config) FromStackItem(item stackitem.Item) error {
	arr, err := binding.Fields(item, 7)
	if err != nil {
		return err
	}

	res.Owner, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	res.FeeReceiver, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	res.FeePercent, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeePercent: %w", err)
	}

	res.MintInterval, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field MintInterval: %w", err)
	}

	res.MintAmount, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field MintAmount: %w", err)
	}

	res.MintEnabled, err = arr[5].TryBool()
	if err != nil {
		return fmt.Errorf("field MintEnabled: %w", err)
	}

	res.ImmutableMode, err = arr[6].TryBool()
	if err != nil {
		return fmt.Errorf("field ImmutableMode: %w", err)
	}

	return nil
}

// itemToMetadata converts stack item into *Metadata.
func itemToMetadata(item stackitem.Item, err error) (*Metadata, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Metadata)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Metadata from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Metadata) FromStackItem(item stackitem.Item) error {
	arr, err := binding.Fields(item, 4)
	if err != nil {
		return err
	}

	res.Name, err = binding.String(arr[0])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	res.Symbol, err = binding.String(arr[1])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	res.Decimals, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Decimals: %w", err)
	}

	res.TotalSupply, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalSupply: %w", err)
	}

	return nil
}

// itemToMintInfo converts stack item into *MintInfo.
func itemToMintInfo(item stackitem.Item, err error) (*MintInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(MintInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of MintInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *MintInfo) FromStackItem(item stackitem.Item) error {
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	res.LastMintTime, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastMintTime: %w", err)
	}

	return nil
}

// itemToAllowanceInfo converts stack item into *AllowanceInfo.
func itemToAllowanceInfo(item stackitem.Item, err error) (*AllowanceInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AllowanceInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AllowanceInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AllowanceInfo) FromStackItem(item stackitem.Item) error {
	arr, err := binding.Fields(item, 2)
	if err != nil {
		return err
	}

	res.Amount, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	res.Expires, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Expires: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	return binding.EventsFromApplicationLog[TransferEvent](log, "Transfer")
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 3)
	if err != nil {
		return err
	}

	e.From, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	e.To, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FeeChargedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeeCharged" name from the provided [result.ApplicationLog].
func FeeChargedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeeChargedEvent, error) {
	return binding.EventsFromApplicationLog[FeeChargedEvent](log, "FeeCharged")
}

// FromStackItem converts provided [stackitem.Array] to FeeChargedEvent or
// returns an error if it's not possible to do to so.
func (e *FeeChargedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 4)
	if err != nil {
		return err
	}

	e.From, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	e.To, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Fee, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	return binding.EventsFromApplicationLog[ApprovalEvent](log, "Approval")
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 4)
	if err != nil {
		return err
	}

	e.Owner, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	e.Spender, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Spender: %w", err)
	}

	e.Amount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Expires, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Expires: %w", err)
	}

	return nil
}

// MintAmountChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MintAmountChanged" name from the provided [result.ApplicationLog].
func MintAmountChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintAmountChangedEvent, error) {
	return binding.EventsFromApplicationLog[MintAmountChangedEvent](log, "MintAmountChanged")
}

// FromStackItem converts provided [stackitem.Array] to MintAmountChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MintAmountChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Amount, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// MintEnabledChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MintEnabledChanged" name from the provided [result.ApplicationLog].
func MintEnabledChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintEnabledChangedEvent, error) {
	return binding.EventsFromApplicationLog[MintEnabledChangedEvent](log, "MintEnabledChanged")
}

// FromStackItem converts provided [stackitem.Array] to MintEnabledChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MintEnabledChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Enabled, err = arr[0].TryBool()
	if err != nil {
		return fmt.Errorf("field Enabled: %w", err)
	}

	return nil
}

// MintIntervalChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MintIntervalChanged" name from the provided [result.ApplicationLog].
func MintIntervalChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintIntervalChangedEvent, error) {
	return binding.EventsFromApplicationLog[MintIntervalChangedEvent](log, "MintIntervalChanged")
}

// FromStackItem converts provided [stackitem.Array] to MintIntervalChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MintIntervalChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Interval, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Interval: %w", err)
	}

	return nil
}

// FeeReceiverChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeeReceiverChanged" name from the provided [result.ApplicationLog].
func FeeReceiverChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeeReceiverChangedEvent, error) {
	return binding.EventsFromApplicationLog[FeeReceiverChangedEvent](log, "FeeReceiverChanged")
}

// FromStackItem converts provided [stackitem.Array] to FeeReceiverChangedEvent or
// returns an error if it's not possible to do to so.
func (e *FeeReceiverChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Receiver, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	return nil
}

// FeePercentChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeePercentChanged" name from the provided [result.ApplicationLog].
func FeePercentChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeePercentChangedEvent, error) {
	return binding.EventsFromApplicationLog[FeePercentChangedEvent](log, "FeePercentChanged")
}

// FromStackItem converts provided [stackitem.Array] to FeePercentChangedEvent or
// returns an error if it's not possible to do to so.
func (e *FeePercentChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Percent, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Percent: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	return binding.EventsFromApplicationLog[OwnershipTransferredEvent](log, "OwnershipTransferred")
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 2)
	if err != nil {
		return err
	}

	e.PreviousOwner, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	e.NewOwner, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}

// OwnershipLockedEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipLocked" name from the provided [result.ApplicationLog].
func OwnershipLockedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipLockedEvent, error) {
	return binding.EventsFromApplicationLog[OwnershipLockedEvent](log, "OwnershipLocked")
}

// FromStackItem converts provided [stackitem.Array] to OwnershipLockedEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipLockedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 1)
	if err != nil {
		return err
	}

	e.Owner, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// Package factory contains RPC wrappers for Skim Token Factory contract.
package factory

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/skim-contract/rpc/internal/binding"
)

// Token is a contract-specific factory.Token type used by its methods.
type Token struct {
	Name          string
	Symbol        string
	Supply        *big.Int
	FeeReceiver   util.Uint160
	Creator       util.Uint160
	MintEnabled   bool
	ImmutableMode bool
}

// TokenCreatedEvent represents "TokenCreated" event emitted by the contract.
type TokenCreatedEvent struct {
	Token   util.Uint160
	Creator util.Uint160
	Name    string
	Symbol  string
	Supply  *big.Int
}

// TokenMintedEvent represents "TokenMinted" event emitted by the contract.
type TokenMintedEvent struct {
	Token  util.Uint160
	Amount *big.Int
	Supply *big.Int
}

// PaymentEvent represents "Payment" event emitted by the contract.
type PaymentEvent struct {
	Token  util.Uint160
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
	Fee    *big.Int
}

// MintEnabledChangedEvent represents "MintEnabledChanged" event emitted by the contract.
type MintEnabledChangedEvent struct {
	Token   util.Uint160
	Enabled bool
}

// OwnershipLockedEvent represents "OwnershipLocked" event emitted by the contract.
type OwnershipLockedEvent struct {
	Token util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Hash returns contract script hash.
func (c *ContractReader) Hash() util.Uint160 {
	return c.hash
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// TokenInfo invokes `tokenInfo` method of contract.
func (c *ContractReader) TokenInfo(token util.Uint160) (*Token, error) {
	return itemToToken(unwrap.Item(c.invoker.Call(c.hash, "tokenInfo", token)))
}

// TokensOf invokes `tokensOf` method of contract.
func (c *ContractReader) TokensOf(creator util.Uint160) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "tokensOf", creator))
}

// AllTokens invokes `allTokens` method of contract.
func (c *ContractReader) AllTokens() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "allTokens"))
}

// CreateToken creates a transaction invoking `createToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateToken(creator util.Uint160, name string, symbol string, initialSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createToken", creator, name, symbol, initialSupply)
}

// CreateTokenTransaction creates a transaction invoking `createToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTokenTransaction(creator util.Uint160, name string, symbol string, initialSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createToken", creator, name, symbol, initialSupply)
}

// CreateTokenUnsigned creates a transaction invoking `createToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateTokenUnsigned(creator util.Uint160, name string, symbol string, initialSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createToken", nil, creator, name, symbol, initialSupply)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", token)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", token)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, token)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(token util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", token, from, to, amount)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(token util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", token, from, to, amount)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(token util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, token, from, to, amount)
}

// SetMintEnabled creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintEnabled(token util.Uint160, enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintEnabled", token, enabled)
}

// SetMintEnabledTransaction creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintEnabledTransaction(token util.Uint160, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintEnabled", token, enabled)
}

// SetMintEnabledUnsigned creates a transaction invoking `setMintEnabled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintEnabledUnsigned(token util.Uint160, enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintEnabled", nil, token, enabled)
}

// LockOwnership creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) LockOwnership(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "lockOwnership", token)
}

// LockOwnershipTransaction creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LockOwnershipTransaction(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "lockOwnership", token)
}

// LockOwnershipUnsigned creates a transaction invoking `lockOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LockOwnershipUnsigned(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "lockOwnership", nil, token)
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

// itemToToken converts stack item into *Token.
func itemToToken(item stackitem.Item, err error) (*Token, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Token)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Token from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Token) FromStackItem(item stackitem.Item) error {
	arr, err := binding.Fields(item, 7)
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

	res.Supply, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	res.FeeReceiver, err = binding.Uint160(arr[3])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	res.Creator, err = binding.Uint160(arr[4])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
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

// TokenCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TokenCreated" name from the provided [result.ApplicationLog].
func TokenCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokenCreatedEvent, error) {
	return binding.EventsFromApplicationLog[TokenCreatedEvent](log, "TokenCreated")
}

// FromStackItem converts provided [stackitem.Array] to TokenCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *TokenCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 5)
	if err != nil {
		return err
	}

	e.Token, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	e.Creator, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	e.Name, err = binding.String(arr[2])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	e.Symbol, err = binding.String(arr[3])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	e.Supply, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	return nil
}

// TokenMintedEventsFromApplicationLog retrieves a set of all emitted events
// with "TokenMinted" name from the provided [result.ApplicationLog].
func TokenMintedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokenMintedEvent, error) {
	return binding.EventsFromApplicationLog[TokenMintedEvent](log, "TokenMinted")
}

// FromStackItem converts provided [stackitem.Array] to TokenMintedEvent or
// returns an error if it's not possible to do to so.
func (e *TokenMintedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 3)
	if err != nil {
		return err
	}

	e.Token, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Supply, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	return nil
}

// PaymentEventsFromApplicationLog retrieves a set of all emitted events
// with "Payment" name from the provided [result.ApplicationLog].
func PaymentEventsFromApplicationLog(log *result.ApplicationLog) ([]*PaymentEvent, error) {
	return binding.EventsFromApplicationLog[PaymentEvent](log, "Payment")
}

// FromStackItem converts provided [stackitem.Array] to PaymentEvent or
// returns an error if it's not possible to do to so.
func (e *PaymentEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, err := binding.Fields(item, 5)
	if err != nil {
		return err
	}

	e.Token, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	e.From, err = binding.Uint160(arr[1])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	e.To, err = binding.Uint160(arr[2])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	e.Amount, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Fee, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
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
	arr, err := binding.Fields(item, 2)
	if err != nil {
		return err
	}

	e.Token, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	e.Enabled, err = arr[1].TryBool()
	if err != nil {
		return fmt.Errorf("field Enabled: %w", err)
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

	e.Token, err = binding.Uint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	return nil
}

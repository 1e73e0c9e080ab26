package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrUnauthorized appears when the method must be called by a specific
	// account (token owner, creator or asset holder) but was not.
	ErrUnauthorized = "unauthorized"
	// ErrInvalidAddress appears when an account argument is not a valid
	// script hash.
	ErrInvalidAddress = "invalid address"
)

// CheckAddress panics with ErrInvalidAddress if h is not a 20-byte script
// hash.
func CheckAddress(h interop.Hash160) {
	if len(h) != interop.Hash160Len {
		panic(ErrInvalidAddress)
	}
}

// CheckOwnerWitness checks witness of the passed account.
// It panics with ErrUnauthorized message on fail.
func CheckOwnerWitness(owner interop.Hash160) {
	if !IsWitnessed(owner) {
		panic(ErrUnauthorized)
	}
}

// IsWitnessed returns true if the transaction is signed by addr or addr is
// the contract calling the current one.
func IsWitnessed(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	if runtime.CheckWitness(addr) {
		return true
	}

	return runtime.GetCallingScriptHash().Equals(addr)
}

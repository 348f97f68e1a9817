// Package types provides core types used throughout the helixvm package.
package types

// Gas represents the amount of computational resources consumed during execution.
type Gas = uint64

// Address is a printable ledger address. Just use it as a label for developers.
type Address = string

// Response is the outcome of a nested contract call: the callee's return
// string plus whatever gas it did not consume. It is produced by the
// interpreter and consumed to update the caller's gas counters.
type Response struct {
	// Ret is the string returned by the called export.
	Ret string
	// RemainingGas is the gas left over after the callee ran to completion.
	RemainingGas uint64
}

// Slot identifies an execution slot by period and thread.
type Slot struct {
	Period uint64
	Thread uint8
}

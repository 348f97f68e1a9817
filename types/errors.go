package types

import (
	"errors"
	"fmt"
)

// SetupError reports a guest export that was missing or ill-typed at link
// time. It is fatal: an instance that fails setup must not execute.
type SetupError struct {
	Export string
	Msg    string
}

var _ error = SetupError{}

func (e SetupError) Error() string {
	if e.Export != "" {
		return fmt.Sprintf("setup: %s (export %q)", e.Msg, e.Export)
	}
	return "setup: " + e.Msg
}

// OutOfGasError reports that a charge exceeded the remaining gas budget.
type OutOfGasError struct {
	Descriptor string
}

var _ error = OutOfGasError{}

func (e OutOfGasError) Error() string {
	if e.Descriptor == "" {
		return "out of gas"
	}
	return "out of gas: " + e.Descriptor
}

// GasOverflowError reports that a variable-length charge computation
// (count * rate) overflowed. Distinct from exhaustion: the counter is
// untouched when this is returned.
type GasOverflowError struct {
	Count uint64
	Rate  uint64
}

var _ error = GasOverflowError{}

func (e GasOverflowError) Error() string {
	return fmt.Sprintf("gas multiplication overflow %d * %d", e.Count, e.Rate)
}

// MarshalError reports a failure moving data across the guest memory
// boundary: malformed UTF-8, an out-of-bounds pointer, or a rejected guest
// allocation. It indicates guest misbehavior.
type MarshalError struct {
	Msg string
	Err error
}

var _ error = MarshalError{}

func (e MarshalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("marshal: %s: %v", e.Msg, e.Err)
	}
	return "marshal: " + e.Msg
}

func (e MarshalError) Unwrap() error { return e.Err }

// ValidationError reports an argument that violates a domain constraint,
// such as a negative coin amount or malformed base64.
type ValidationError struct {
	Msg string
}

var _ error = ValidationError{}

func (e ValidationError) Error() string { return e.Msg }

// Trap is the single non-recoverable abort carried across the guest/host
// boundary. Every bridge failure funnels into one of these; the guest cannot
// catch it and the entire top-level execution unwinds.
type Trap struct {
	err error
}

var _ error = (*Trap)(nil)

// NewTrap wraps err as a trap. A nil err yields a nil trap.
func NewTrap(err error) *Trap {
	if err == nil {
		return nil
	}
	return &Trap{err: err}
}

func (t *Trap) Error() string { return t.err.Error() }

func (t *Trap) Unwrap() error { return t.err }

// IsOutOfGas reports whether err is, or was caused by, gas exhaustion.
func IsOutOfGas(err error) bool {
	var oog OutOfGasError
	return errors.As(err, &oog)
}

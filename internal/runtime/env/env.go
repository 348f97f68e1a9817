// Package env defines the per-instance execution environment shared by every
// host function: the guest's linear memory, the two guest-exported gas
// counters and the owned ledger Interface.
//
// An environment is built in two phases. Construction binds the Interface and
// gas schedule; memory, allocator and gas globals are guest exports that only
// exist once the instance is linked, so they stay absent until Bind resolves
// them. Accessors return nil before that point and a failed Bind is a fatal
// setup error, never a per-call one.
package env

import (
	"github.com/helixchain/helixvm/types"
)

// ValueType is the wasm value type of a guest-exported global.
type ValueType byte

const (
	ValueTypeI32 ValueType = iota
	ValueTypeI64
)

func (v ValueType) String() string {
	if v == ValueTypeI32 {
		return "i32"
	}
	return "i64"
}

// Memory is the host's handle onto guest linear memory. Read returns a copy;
// the host never retains references into guest memory past a call. Allocate
// requests a fresh region from the guest's own allocator.
type Memory interface {
	Read(offset, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	Allocate(size uint32) (uint32, error)
}

// Global is a mutable integer global exported by the guest instance.
type Global interface {
	Get() uint64
	Set(v uint64) error
	ValueType() ValueType
}

// Env is the environment every dispatch function runs against. One
// implementation exists per guest-compiler convention; the dispatch surface
// is written only against this interface.
type Env interface {
	// Interface returns the owned ledger capability by shared clone.
	Interface() types.Interface
	// GasConfig returns the injected gas schedule.
	GasConfig() types.GasConfig
	// Memory returns the guest memory handle, or nil before Bind.
	Memory() Memory
	// RemainingPoints returns the guest's remaining-gas global, or nil before Bind.
	RemainingPoints() Global
	// ExhaustedPoints returns the guest's sticky exhaustion flag, or nil before Bind.
	ExhaustedPoints() Global
}

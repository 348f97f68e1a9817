package abi

import (
	"fmt"
	"strconv"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

// AssemblyScript builtin hooks. The AssemblyScript compiler emits imports for
// abort, seed, trace and Date.now; these adapters serve them on top of the
// same marshaling and Interface access as the dispatch surface. They are not
// gas-charged: abort already ends the execution and the others are compiler
// plumbing, not contract-visible ledger operations.

// Abort handles the abort builtin the AssemblyScript compiler emits for
// failed assertions and runtime errors inside the guest. It always traps,
// carrying the guest's message and source location.
func Abort(e env.Env, messagePtr, filenamePtr uint32, line, col int32) error {
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	message, err := memory.ReadString(mem, messagePtr)
	if err != nil {
		return types.MarshalError{Msg: "abort: failed to load message", Err: err}
	}
	if filename, err := memory.ReadString(mem, filenamePtr); err == nil && filename != "" {
		message += ", " + filename
	}
	if line != 0 {
		message += ", line " + strconv.Itoa(int(line))
	}
	if col != 0 {
		message += ", col " + strconv.Itoa(int(col))
	}
	return types.ValidationError{Msg: message}
}

// Seed serves the AssemblyScript seed builtin backing Math.random.
func Seed(e env.Env) (float64, error) {
	seed, err := e.Interface().UnsafeRandomF64()
	if err != nil {
		return 0, fmt.Errorf("failed to get random from interface: %w", err)
	}
	return seed, nil
}

// Date serves the AssemblyScript Date.now builtin. The slot timestamp is
// returned as a float; a timestamp too large to round-trip through float64
// traps rather than silently losing precision.
func Date(e env.Env) (float64, error) {
	utime, err := e.Interface().GetTime()
	if err != nil {
		return 0, fmt.Errorf("failed to get time from interface: %w", err)
	}
	ret := float64(utime)
	if uint64(ret) != utime {
		return 0, types.ValidationError{Msg: "time value not representable as float"}
	}
	return ret, nil
}

// Trace serves the AssemblyScript trace builtin: a message plus up to five
// float arguments, forwarded to the Interface's debug output.
func Trace(e env.Env, messagePtr uint32, n int32, a0, a1, a2, a3, a4 float64) error {
	if n > 5 {
		return types.ValidationError{Msg: "trace: invalid number of arguments"}
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	message, err := memory.ReadString(mem, messagePtr)
	if err != nil {
		return types.MarshalError{Msg: "trace: failed to load message", Err: err}
	}
	args := [5]float64{a0, a1, a2, a3, a4}
	for i := 0; i < int(n); i++ {
		message += fmt.Sprintf(", %v", args[i])
	}
	return e.Interface().Print(message)
}

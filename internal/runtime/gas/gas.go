// Package gas implements the metering protocol over the two mutable counters
// a metered guest exports: the remaining budget and a sticky exhaustion flag.
//
// The counters live inside the guest instance so that in-guest metering
// instrumentation and host-side charging observe one budget. A positive
// exhaustion flag forces the effective remaining budget to zero no matter
// what the counter holds; only SetRemaining clears it.
package gas

import (
	"math"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/types"
)

// Remaining returns the effective remaining gas of the instance. The
// exhaustion flag is consulted first: if it is positive the budget is zero
// regardless of the stored counter value.
func Remaining(e env.Env) (uint64, error) {
	exhausted := e.ExhaustedPoints()
	if exhausted == nil {
		return 0, types.SetupError{Export: env.ExhaustedPointsExport, Msg: "lost reference to exhaustion flag"}
	}
	if exhausted.ValueType() != env.ValueTypeI32 {
		return 0, types.SetupError{Export: env.ExhaustedPointsExport, Msg: "exhaustion flag has wrong type"}
	}
	if int32(exhausted.Get()) > 0 {
		return 0, nil
	}

	remaining := e.RemainingPoints()
	if remaining == nil {
		return 0, types.SetupError{Export: env.RemainingPointsExport, Msg: "lost reference to remaining gas counter"}
	}
	if remaining.ValueType() != env.ValueTypeI64 {
		return 0, types.SetupError{Export: env.RemainingPointsExport, Msg: "remaining gas counter has wrong type"}
	}
	return remaining.Get(), nil
}

// SetRemaining writes a new remaining budget and clears the exhaustion flag,
// regardless of its prior state.
func SetRemaining(e env.Env, points uint64) error {
	remaining := e.RemainingPoints()
	if remaining == nil {
		return types.SetupError{Export: env.RemainingPointsExport, Msg: "lost reference to remaining gas counter"}
	}
	if err := remaining.Set(points); err != nil {
		return err
	}
	exhausted := e.ExhaustedPoints()
	if exhausted == nil {
		return types.SetupError{Export: env.ExhaustedPointsExport, Msg: "lost reference to exhaustion flag"}
	}
	return exhausted.Set(0)
}

// Sub charges cost against the remaining budget. Underflow fails with an
// out-of-gas error and leaves the counter untouched; there is no partial
// charge.
func Sub(e env.Env, cost uint64) error {
	remaining, err := Remaining(e)
	if err != nil {
		return err
	}
	if cost > remaining {
		return types.OutOfGasError{}
	}
	return SetRemaining(e, remaining-cost)
}

// SubWithMult charges count*rate, the primitive behind every variable-length
// argument. The multiplication is overflow-checked before any charge is
// attempted; overflow is a distinct error from exhaustion.
func SubWithMult(e env.Env, count, rate uint64) error {
	if rate != 0 && count > math.MaxUint64/rate {
		return types.GasOverflowError{Count: count, Rate: rate}
	}
	return Sub(e, count*rate)
}

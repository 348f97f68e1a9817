package abi

import (
	"strings"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
)

// GetOwnedAddresses returns the owned addresses as a JSON array allocated
// into guest memory.
func GetOwnedAddresses(e env.Env) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().GetOwnedAddressesCost); err != nil {
		return 0, err
	}
	addresses, err := e.Interface().GetOwnedAddresses()
	if err != nil {
		return 0, err
	}
	return memory.AllocStringArray(e, addresses)
}

// GetOwnedAddressesRaw returns the owned addresses joined with ";".
func GetOwnedAddressesRaw(e env.Env) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().GetOwnedAddressesCost); err != nil {
		return 0, err
	}
	addresses, err := e.Interface().GetOwnedAddresses()
	if err != nil {
		return 0, err
	}
	return memory.AllocString(e, strings.Join(addresses, ";"))
}

// GetCallStack returns the current call chain as a JSON array allocated into
// guest memory.
func GetCallStack(e env.Env) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().GetCallStackCost); err != nil {
		return 0, err
	}
	stack, err := e.Interface().GetCallStack()
	if err != nil {
		return 0, err
	}
	return memory.AllocStringArray(e, stack)
}

// GetCallStackRaw returns the current call chain joined with ";".
func GetCallStackRaw(e env.Env) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().GetCallStackCost); err != nil {
		return 0, err
	}
	stack, err := e.Interface().GetCallStack()
	if err != nil {
		return 0, err
	}
	return memory.AllocString(e, strings.Join(stack, ";"))
}

// GetCurrentPeriod returns the period of the current execution slot.
func GetCurrentPeriod(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().GetCurrentPeriodCost); err != nil {
		return 0, err
	}
	period, err := e.Interface().GetCurrentPeriod()
	if err != nil {
		return 0, err
	}
	return int64(period), nil
}

// GetCurrentThread returns the thread of the current execution slot.
func GetCurrentThread(e env.Env) (int32, error) {
	if err := gas.Sub(e, e.GasConfig().GetCurrentThreadCost); err != nil {
		return 0, err
	}
	thread, err := e.Interface().GetCurrentThread()
	if err != nil {
		return 0, err
	}
	return int32(thread), nil
}

// GetTime returns the unix timestamp of the current slot in milliseconds.
func GetTime(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().GetTimeCost); err != nil {
		return 0, err
	}
	t, err := e.Interface().GetTime()
	if err != nil {
		return 0, err
	}
	return int64(t), nil
}

// UnsafeRandom returns a random int64. Explicitly not cryptographically
// secure; the only sanctioned source of in-contract randomness.
func UnsafeRandom(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().UnsafeRandomCost); err != nil {
		return 0, err
	}
	return e.Interface().UnsafeRandom()
}

// UnsafeRandomF64 returns a random float64. Explicitly not cryptographically
// secure.
func UnsafeRandomF64(e env.Env) (float64, error) {
	if err := gas.Sub(e, e.GasConfig().UnsafeRandomCost); err != nil {
		return 0, err
	}
	return e.Interface().UnsafeRandomF64()
}

// Print writes a message to the node's debug output, outside consensus
// state.
func Print(e env.Env, messagePtr uint32) error {
	if err := gas.Sub(e, e.GasConfig().PrintCost); err != nil {
		return err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	message, err := memory.ReadString(mem, messagePtr)
	if err != nil {
		return err
	}
	return e.Interface().Print(message)
}

package abi

import (
	"fmt"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

// CallModule calls an exported function of the contract at a given address,
// making rawCoins available to it. The callee runs on the caller's live
// remaining gas; on return the caller's budget becomes the callee's leftover.
// The callee's return string is allocated into the caller's memory and its
// offset is the result.
func CallModule(e env.Env, exec Executor, addressPtr, functionPtr, paramPtr uint32, rawCoins int64) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().CallCost); err != nil {
		return 0, err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return 0, err
	}
	address, err := memory.ReadString(mem, addressPtr)
	if err != nil {
		return 0, err
	}
	function, err := memory.ReadString(mem, functionPtr)
	if err != nil {
		return 0, err
	}
	param, err := memory.ReadString(mem, paramPtr)
	if err != nil {
		return 0, err
	}
	resp, err := callModule(e, exec, address, function, param, rawCoins)
	if err != nil {
		return 0, err
	}
	offset, err := memory.AllocString(e, resp.Ret)
	if err != nil {
		return 0, fmt.Errorf("cannot allocate response in call %s::%s: %w", address, function, err)
	}
	return offset, nil
}

// callModule drives one nested call through its whole lifecycle: resolve the
// target through the Interface, execute it on the caller's remaining gas,
// settle the gas counters and pop the call frame.
func callModule(e env.Env, exec Executor, address, function, param string, rawCoins int64) (types.Response, error) {
	if rawCoins < 0 {
		return types.Response{}, types.ValidationError{Msg: "negative amount of coins in Call"}
	}
	if exec == nil {
		return types.Response{}, types.SetupError{Msg: "no executor configured for nested calls"}
	}
	iface := e.Interface()

	// Resolved: balance reserved, frame pushed. A failure here aborts before
	// any callee code runs; only the constant charge has been billed.
	bytecode, err := iface.InitCall(address, uint64(rawCoins))
	if err != nil {
		return types.Response{}, err
	}

	// Executing: the callee gets exactly the caller's live remaining budget,
	// never a guest-supplied cap.
	remaining, err := gas.Remaining(e)
	if err != nil {
		return types.Response{}, err
	}
	resp, err := exec(remaining, bytecode, function, param, iface)
	if err != nil {
		return types.Response{}, err
	}

	// Settled: one linear budget across the call tree, so the caller
	// continues on whatever the callee left over.
	if err := gas.SetRemaining(e, resp.RemainingGas); err != nil {
		return types.Response{}, err
	}
	// The frame must be popped even though execution is done; a failure here
	// is still reported.
	if err := iface.FinishCall(); err != nil {
		return types.Response{}, err
	}
	return resp, nil
}

// GetRemainingGas returns the caller's live remaining gas, after charging the
// constant cost of asking.
func GetRemainingGas(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().RemainingGasCost); err != nil {
		return 0, err
	}
	remaining, err := gas.Remaining(e)
	if err != nil {
		return 0, err
	}
	return int64(remaining), nil
}

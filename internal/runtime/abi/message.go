package abi

import (
	"math"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

// SendMessage schedules an asynchronous message targeting a handler function
// of another contract, valid within the given slot range. All numeric
// arguments are signed at the boundary and rejected here when out of domain;
// the Interface is never reached with invalid input. No ordering or delivery
// guarantee is made at this layer.
func SendMessage(
	e env.Env,
	targetAddressPtr, targetHandlerPtr uint32,
	validityStartPeriod int64, validityStartThread int32,
	validityEndPeriod int64, validityEndThread int32,
	maxGas, gasPrice, rawCoins int64,
	dataPtr uint32,
) error {
	if err := gas.Sub(e, e.GasConfig().SendMessageCost); err != nil {
		return err
	}
	if validityStartPeriod < 0 {
		return types.ValidationError{Msg: "negative validity start period"}
	}
	if validityStartThread < 0 || validityStartThread > math.MaxUint8 {
		return types.ValidationError{Msg: "invalid validity start thread"}
	}
	if validityEndPeriod < 0 {
		return types.ValidationError{Msg: "negative validity end period"}
	}
	if validityEndThread < 0 || validityEndThread > math.MaxUint8 {
		return types.ValidationError{Msg: "invalid validity end thread"}
	}
	if maxGas < 0 {
		return types.ValidationError{Msg: "negative max gas"}
	}
	if gasPrice < 0 {
		return types.ValidationError{Msg: "negative gas price"}
	}
	if rawCoins < 0 {
		return types.ValidationError{Msg: "negative coins"}
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	targetAddress, err := memory.ReadString(mem, targetAddressPtr)
	if err != nil {
		return err
	}
	targetHandler, err := memory.ReadString(mem, targetHandlerPtr)
	if err != nil {
		return err
	}
	data, err := memory.ReadString(mem, dataPtr)
	if err != nil {
		return err
	}
	return e.Interface().SendMessage(
		targetAddress,
		targetHandler,
		types.Slot{Period: uint64(validityStartPeriod), Thread: uint8(validityStartThread)},
		types.Slot{Period: uint64(validityEndPeriod), Thread: uint8(validityEndThread)},
		uint64(maxGas),
		uint64(gasPrice),
		uint64(rawCoins),
		[]byte(data),
	)
}

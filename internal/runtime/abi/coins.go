package abi

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

// GetCallCoins returns the coins made available for the current call.
func GetCallCoins(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().GetCallCoinsCost); err != nil {
		return 0, err
	}
	coins, err := e.Interface().GetCallCoins()
	if err != nil {
		return 0, err
	}
	return int64(coins), nil
}

// TransferCoins sends an amount from the address on the current call stack to
// a target address. Amounts are signed at the boundary but semantically
// non-negative; negative values are rejected before the Interface is reached.
func TransferCoins(e env.Env, toAddressPtr uint32, rawAmount int64) error {
	if err := gas.Sub(e, e.GasConfig().TransferCost); err != nil {
		return err
	}
	if rawAmount < 0 {
		return types.ValidationError{Msg: "negative raw amount"}
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	toAddress, err := memory.ReadString(mem, toAddressPtr)
	if err != nil {
		return err
	}
	return e.Interface().TransferCoins(toAddress, uint64(rawAmount))
}

// TransferCoinsFor sends an amount from an arbitrary address to a target
// address.
func TransferCoinsFor(e env.Env, fromAddressPtr, toAddressPtr uint32, rawAmount int64) error {
	if err := gas.Sub(e, e.GasConfig().TransferCost); err != nil {
		return err
	}
	if rawAmount < 0 {
		return types.ValidationError{Msg: "negative raw amount"}
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	fromAddress, err := memory.ReadString(mem, fromAddressPtr)
	if err != nil {
		return err
	}
	toAddress, err := memory.ReadString(mem, toAddressPtr)
	if err != nil {
		return err
	}
	return e.Interface().TransferCoinsFor(fromAddress, toAddress, uint64(rawAmount))
}

// GetBalance returns the balance of the current address.
func GetBalance(e env.Env) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().GetBalanceCost); err != nil {
		return 0, err
	}
	balance, err := e.Interface().GetBalance()
	if err != nil {
		return 0, err
	}
	return int64(balance), nil
}

// GetBalanceFor returns the balance of an arbitrary address.
func GetBalanceFor(e env.Env, addressPtr uint32) (int64, error) {
	if err := gas.Sub(e, e.GasConfig().GetBalanceCost); err != nil {
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
	balance, err := e.Interface().GetBalanceFor(address)
	if err != nil {
		return 0, err
	}
	return int64(balance), nil
}

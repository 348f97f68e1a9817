package abi

import (
	"encoding/base64"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

// CreateSC stores new contract bytecode, read as a base64 string, and
// returns the freshly assigned address allocated into guest memory.
func CreateSC(e env.Env, bytecodePtr uint32) (uint32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.CreateModuleCost); err != nil {
		return 0, err
	}
	encoded, err := memory.ReadStringCharged(e, bytecodePtr, cfg.CreateModuleUnitCost)
	if err != nil {
		return 0, err
	}
	bytecode, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, types.ValidationError{Msg: "invalid base64 bytecode: " + err.Error()}
	}
	address, err := e.Interface().CreateModule(bytecode)
	if err != nil {
		return 0, err
	}
	return memory.AllocString(e, address)
}

// SetBytecode replaces the bytecode of the current address.
func SetBytecode(e env.Env, bytecodePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.SetBytecodeCost); err != nil {
		return err
	}
	encoded, err := memory.ReadStringCharged(e, bytecodePtr, cfg.SetBytecodeUnitCost)
	if err != nil {
		return err
	}
	bytecode, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return types.ValidationError{Msg: "invalid base64 bytecode: " + err.Error()}
	}
	return e.Interface().RawSetBytecode(bytecode)
}

// SetBytecodeFor replaces the bytecode of an arbitrary address.
func SetBytecodeFor(e env.Env, addressPtr, bytecodePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.SetBytecodeCost); err != nil {
		return err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	address, err := memory.ReadString(mem, addressPtr)
	if err != nil {
		return err
	}
	encoded, err := memory.ReadStringCharged(e, bytecodePtr, cfg.SetBytecodeUnitCost)
	if err != nil {
		return err
	}
	bytecode, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return types.ValidationError{Msg: "invalid base64 bytecode: " + err.Error()}
	}
	return e.Interface().RawSetBytecodeFor(address, bytecode)
}

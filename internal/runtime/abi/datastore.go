package abi

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
)

// SetData upserts a key-indexed entry in the datastore of the current
// address.
func SetData(e env.Env, keyPtr, valuePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.SetDataCost); err != nil {
		return err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.SetDataKeyUnitCost)
	if err != nil {
		return err
	}
	value, err := memory.ReadStringCharged(e, valuePtr, cfg.SetDataValueUnitCost)
	if err != nil {
		return err
	}
	return e.Interface().RawSetData(key, []byte(value))
}

// GetData reads a key-indexed entry of the current address, failing if the
// entry is absent. The returned value is billed after the lookup, at the
// value rate.
func GetData(e env.Env, keyPtr uint32) (uint32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.GetDataCost); err != nil {
		return 0, err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.GetDataKeyUnitCost)
	if err != nil {
		return 0, err
	}
	data, err := e.Interface().RawGetData(key)
	if err != nil {
		return 0, err
	}
	if err := gas.SubWithMult(e, uint64(len(data)), cfg.GetDataValueUnitCost); err != nil {
		return 0, err
	}
	return memory.AllocUTF8(e, data)
}

// HasData reports as 0/1 whether a key-indexed entry of the current address
// exists.
func HasData(e env.Env, keyPtr uint32) (int32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.HasDataCost); err != nil {
		return 0, err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.HasDataKeyUnitCost)
	if err != nil {
		return 0, err
	}
	exists, err := e.Interface().HasData(key)
	if err != nil {
		return 0, err
	}
	if exists {
		return 1, nil
	}
	return 0, nil
}

// DeleteData removes a key-indexed entry of the current address, failing if
// the entry is absent.
func DeleteData(e env.Env, keyPtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.DeleteDataCost); err != nil {
		return err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.DeleteDataKeyUnitCost)
	if err != nil {
		return err
	}
	return e.Interface().RawDeleteData(key)
}

// AppendData appends to an existing key-indexed entry of the current address,
// failing if the entry is absent.
func AppendData(e env.Env, keyPtr, valuePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.AppendDataCost); err != nil {
		return err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.AppendDataKeyUnitCost)
	if err != nil {
		return err
	}
	value, err := memory.ReadStringCharged(e, valuePtr, cfg.AppendDataValueUnitCost)
	if err != nil {
		return err
	}
	return e.Interface().RawAppendData(key, []byte(value))
}

// SetDataFor upserts a datastore entry of an arbitrary address, failing if
// the address does not exist.
func SetDataFor(e env.Env, addressPtr, keyPtr, valuePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.SetDataCost); err != nil {
		return err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.SetDataKeyUnitCost)
	if err != nil {
		return err
	}
	value, err := memory.ReadStringCharged(e, valuePtr, cfg.SetDataValueUnitCost)
	if err != nil {
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
	return e.Interface().RawSetDataFor(address, key, []byte(value))
}

// GetDataFor reads a datastore entry of an arbitrary address, failing if the
// entry or address is absent.
func GetDataFor(e env.Env, addressPtr, keyPtr uint32) (uint32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.GetDataCost); err != nil {
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
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.GetDataKeyUnitCost)
	if err != nil {
		return 0, err
	}
	data, err := e.Interface().RawGetDataFor(address, key)
	if err != nil {
		return 0, err
	}
	if err := gas.SubWithMult(e, uint64(len(data)), cfg.GetDataValueUnitCost); err != nil {
		return 0, err
	}
	return memory.AllocUTF8(e, data)
}

// HasDataFor reports as 0/1 whether a datastore entry of an arbitrary address
// exists.
func HasDataFor(e env.Env, addressPtr, keyPtr uint32) (int32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.HasDataCost); err != nil {
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
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.HasDataKeyUnitCost)
	if err != nil {
		return 0, err
	}
	exists, err := e.Interface().HasDataFor(address, key)
	if err != nil {
		return 0, err
	}
	if exists {
		return 1, nil
	}
	return 0, nil
}

// DeleteDataFor removes a datastore entry of an arbitrary address, failing if
// the entry or address is absent.
func DeleteDataFor(e env.Env, addressPtr, keyPtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.DeleteDataCost); err != nil {
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
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.DeleteDataKeyUnitCost)
	if err != nil {
		return err
	}
	return e.Interface().RawDeleteDataFor(address, key)
}

// AppendDataFor appends to an existing datastore entry of an arbitrary
// address, failing if the entry or address is absent.
func AppendDataFor(e env.Env, addressPtr, keyPtr, valuePtr uint32) error {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.AppendDataCost); err != nil {
		return err
	}
	key, err := memory.ReadStringCharged(e, keyPtr, cfg.AppendDataKeyUnitCost)
	if err != nil {
		return err
	}
	value, err := memory.ReadStringCharged(e, valuePtr, cfg.AppendDataValueUnitCost)
	if err != nil {
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
	return e.Interface().RawAppendDataFor(address, key, []byte(value))
}

package abi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixchain/helixvm/internal/runtime/abi"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

func TestSetGetData(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	keyPtr := e.Mem.StoreString("greeting")
	valuePtr := e.Mem.StoreString("hello")

	require.NoError(t, abi.SetData(e, keyPtr, valuePtr))

	retPtr, err := abi.GetData(e, e.Mem.StoreString("greeting"))
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, retPtr)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestSetDataCharging(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	cfg := e.Cfg
	keyPtr := e.Mem.StoreString("key")
	valuePtr := e.Mem.StoreString("value")

	require.NoError(t, abi.SetData(e, keyPtr, valuePtr))
	want := 100_000 - cfg.SetDataCost - 3*cfg.SetDataKeyUnitCost - 5*cfg.SetDataValueUnitCost
	assert.Equal(t, want, e.Remaining.Get())
}

func TestGetDataChargesResult(t *testing.T) {
	e, m := newEnv(t, 100_000)
	cfg := e.Cfg
	require.NoError(t, m.RawSetData("k", []byte("0123456789")))
	m.Calls = nil
	before := e.Remaining.Get()

	_, err := abi.GetData(e, e.Mem.StoreString("k"))
	require.NoError(t, err)
	want := before - cfg.GetDataCost - 1*cfg.GetDataKeyUnitCost - 10*cfg.GetDataValueUnitCost
	assert.Equal(t, want, e.Remaining.Get(), "the stored value is billed by its looked-up length")
}

func TestGetDataMissingEntry(t *testing.T) {
	e, _ := newEnv(t, 100_000)

	_, err := abi.GetData(e, e.Mem.StoreString("absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHasData(t *testing.T) {
	e, m := newEnv(t, 100_000)
	require.NoError(t, m.RawSetData("present", []byte("x")))

	exists, err := abi.HasData(e, e.Mem.StoreString("present"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), exists)

	exists, err = abi.HasData(e, e.Mem.StoreString("absent"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), exists, "a missing entry is a 0, not an error")
}

func TestDeleteData(t *testing.T) {
	e, m := newEnv(t, 100_000)
	require.NoError(t, m.RawSetData("doomed", []byte("x")))

	require.NoError(t, abi.DeleteData(e, e.Mem.StoreString("doomed")))
	exists, err := m.HasData("doomed")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteDataMissingEntry(t *testing.T) {
	e, _ := newEnv(t, 100_000)

	err := abi.DeleteData(e, e.Mem.StoreString("absent"))
	require.Error(t, err)
}

func TestAppendData(t *testing.T) {
	e, m := newEnv(t, 100_000)
	require.NoError(t, m.RawSetData("log", []byte("first")))

	require.NoError(t, abi.AppendData(e, e.Mem.StoreString("log"), e.Mem.StoreString(";second")))
	got, err := m.RawGetData("log")
	require.NoError(t, err)
	assert.Equal(t, []byte("first;second"), got)
}

func TestAppendDataMissingEntry(t *testing.T) {
	e, _ := newEnv(t, 100_000)

	err := abi.AppendData(e, e.Mem.StoreString("absent"), e.Mem.StoreString("x"))
	require.Error(t, err)
}

func TestDataForVariants(t *testing.T) {
	e, m := newEnv(t, 1_000_000)
	addrPtr := func() uint32 { return e.Mem.StoreString("addr_other") }

	require.NoError(t, abi.SetDataFor(e, addrPtr(), e.Mem.StoreString("k"), e.Mem.StoreString("v")))

	retPtr, err := abi.GetDataFor(e, addrPtr(), e.Mem.StoreString("k"))
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, retPtr)
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	exists, err := abi.HasDataFor(e, addrPtr(), e.Mem.StoreString("k"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), exists)

	require.NoError(t, abi.AppendDataFor(e, addrPtr(), e.Mem.StoreString("k"), e.Mem.StoreString("2")))
	got2, err := m.RawGetDataFor("addr_other", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got2)

	require.NoError(t, abi.DeleteDataFor(e, addrPtr(), e.Mem.StoreString("k")))
	exists, err = abi.HasDataFor(e, addrPtr(), e.Mem.StoreString("k"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), exists)
}

func TestDataForIsolatedPerAddress(t *testing.T) {
	e, m := newEnv(t, 1_000_000)
	require.NoError(t, m.RawSetDataFor("addr_a", "k", []byte("a")))
	require.NoError(t, m.RawSetDataFor("addr_b", "k", []byte("b")))

	retPtr, err := abi.GetDataFor(e, e.Mem.StoreString("addr_a"), e.Mem.StoreString("k"))
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, retPtr)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestSetDataOutOfGasBeforeInterface(t *testing.T) {
	e, m := newEnv(t, types.DefaultGasConfig().SetDataCost-1)

	err := abi.SetData(e, e.Mem.StoreString("k"), e.Mem.StoreString("v"))
	assert.True(t, types.IsOutOfGas(err))
	assert.Empty(t, m.Calls)
}

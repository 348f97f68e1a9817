package abi_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixchain/helixvm/internal/runtime/abi"
	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/types"
)

func TestCreateSC(t *testing.T) {
	e, m := newEnv(t, 100_000)
	bytecode := []byte{0x00, 0x61, 0x73, 0x6d, 0x01}
	encodedPtr := e.Mem.StoreString(base64.StdEncoding.EncodeToString(bytecode))

	addrPtr, err := abi.CreateSC(e, encodedPtr)
	require.NoError(t, err)
	address, err := memory.ReadString(e.Mem, addrPtr)
	require.NoError(t, err)
	assert.NotEmpty(t, address)
	assert.Equal(t, bytecode, m.Bytecode(address))
}

func TestCreateSCInvalidBase64(t *testing.T) {
	e, m := newEnv(t, 100_000)
	encodedPtr := e.Mem.StoreString("not base64!!!")

	_, err := abi.CreateSC(e, encodedPtr)
	var validationErr types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, m.Calls, "decode failures never reach the Interface")
}

func TestSetBytecode(t *testing.T) {
	e, m := newEnv(t, 100_000)
	bytecode := []byte{0xde, 0xad}
	encodedPtr := e.Mem.StoreString(base64.StdEncoding.EncodeToString(bytecode))

	require.NoError(t, abi.SetBytecode(e, encodedPtr))
	assert.Equal(t, bytecode, m.Bytecode("addr_current"))
}

func TestSetBytecodeFor(t *testing.T) {
	e, m := newEnv(t, 100_000)
	bytecode := []byte{0xbe, 0xef}
	addrPtr := e.Mem.StoreString("addr_other")
	encodedPtr := e.Mem.StoreString(base64.StdEncoding.EncodeToString(bytecode))

	require.NoError(t, abi.SetBytecodeFor(e, addrPtr, encodedPtr))
	assert.Equal(t, bytecode, m.Bytecode("addr_other"))
}

func TestSetBytecodeInvalidBase64(t *testing.T) {
	e, m := newEnv(t, 100_000)

	err := abi.SetBytecode(e, e.Mem.StoreString("%%%"))
	var validationErr types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, m.Calls)
}

func TestCreateSCCharging(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	cfg := e.Cfg
	encoded := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})

	_, err := abi.CreateSC(e, e.Mem.StoreString(encoded))
	require.NoError(t, err)
	want := 100_000 - cfg.CreateModuleCost - uint64(len(encoded))*cfg.CreateModuleUnitCost
	assert.Equal(t, want, e.Remaining.Get())
}

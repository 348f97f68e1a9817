package abi_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixchain/helixvm/internal/runtime/abi"
	"github.com/helixchain/helixvm/internal/runtime/memory"
)

func TestHash(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	digest := sha256.Sum256([]byte("payload"))

	retPtr, err := abi.Hash(e, e.Mem.StoreString("payload"))
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, retPtr)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(digest[:]), got)
}

func TestSignatureVerify(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	dataPtr := e.Mem.StoreString("signed data")
	sigPtr := e.Mem.StoreString("sig(pk:alice,signed data)")
	keyPtr := e.Mem.StoreString("pk:alice")

	valid, err := abi.SignatureVerify(e, dataPtr, sigPtr, keyPtr)
	require.NoError(t, err)
	assert.Equal(t, int32(1), valid)
}

func TestSignatureVerifyWrongSignature(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	dataPtr := e.Mem.StoreString("signed data")
	sigPtr := e.Mem.StoreString("sig(pk:bob,signed data)")
	keyPtr := e.Mem.StoreString("pk:alice")

	valid, err := abi.SignatureVerify(e, dataPtr, sigPtr, keyPtr)
	require.NoError(t, err, "a well-formed but wrong signature is a 0, not an error")
	assert.Equal(t, int32(0), valid)
}

func TestSignatureVerifyMalformedInputs(t *testing.T) {
	e, _ := newEnv(t, 100_000)
	dataPtr := e.Mem.StoreString("signed data")

	_, err := abi.SignatureVerify(e, dataPtr, e.Mem.StoreString("garbage"), e.Mem.StoreString("pk:alice"))
	require.Error(t, err)

	_, err = abi.SignatureVerify(e, dataPtr, e.Mem.StoreString("sig(pk:alice,signed data)"), e.Mem.StoreString("alice"))
	require.Error(t, err)
}

func TestAddressFromPublicKey(t *testing.T) {
	e, _ := newEnv(t, 100_000)

	retPtr, err := abi.AddressFromPublicKey(e, e.Mem.StoreString("pk:alice"))
	require.NoError(t, err)
	address, err := memory.ReadString(e.Mem, retPtr)
	require.NoError(t, err)
	assert.Equal(t, "addr_of_alice", address)
}

func TestAddressFromPublicKeyMalformed(t *testing.T) {
	e, _ := newEnv(t, 100_000)

	_, err := abi.AddressFromPublicKey(e, e.Mem.StoreString("no prefix"))
	require.Error(t, err)
}

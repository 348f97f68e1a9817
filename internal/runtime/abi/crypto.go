package abi

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
)

// Hash hashes a string and returns the encoded digest allocated into guest
// memory.
func Hash(e env.Env, valuePtr uint32) (uint32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.HashCost); err != nil {
		return 0, err
	}
	value, err := memory.ReadStringCharged(e, valuePtr, cfg.HashUnitCost)
	if err != nil {
		return 0, err
	}
	digest, err := e.Interface().Hash([]byte(value))
	if err != nil {
		return 0, err
	}
	return memory.AllocString(e, digest)
}

// SignatureVerify checks a signature over data against a public key. A
// well-formed but wrong signature returns 0; only a malformed signature or
// key encoding traps.
func SignatureVerify(e env.Env, dataPtr, signaturePtr, publicKeyPtr uint32) (int32, error) {
	cfg := e.GasConfig()
	if err := gas.Sub(e, cfg.SignatureVerifyCost); err != nil {
		return 0, err
	}
	data, err := memory.ReadStringCharged(e, dataPtr, cfg.SignatureVerifyDataUnitCost)
	if err != nil {
		return 0, err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return 0, err
	}
	signature, err := memory.ReadString(mem, signaturePtr)
	if err != nil {
		return 0, err
	}
	publicKey, err := memory.ReadString(mem, publicKeyPtr)
	if err != nil {
		return 0, err
	}
	valid, err := e.Interface().SignatureVerify([]byte(data), signature, publicKey)
	if err != nil {
		return 0, err
	}
	if valid {
		return 1, nil
	}
	return 0, nil
}

// AddressFromPublicKey derives the address owning a public key and allocates
// it into guest memory.
func AddressFromPublicKey(e env.Env, publicKeyPtr uint32) (uint32, error) {
	if err := gas.Sub(e, e.GasConfig().AddressFromPublicKeyCost); err != nil {
		return 0, err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return 0, err
	}
	publicKey, err := memory.ReadString(mem, publicKeyPtr)
	if err != nil {
		return 0, err
	}
	address, err := e.Interface().AddressFromPublicKey(publicKey)
	if err != nil {
		return 0, err
	}
	return memory.AllocString(e, address)
}

// Package abi is the dispatch surface of the host bridge: every privileged
// function sandboxed bytecode may import, plus the inter-contract call
// protocol.
//
// Every function follows the same shape: charge the constant cost, marshal
// and charge variable-length arguments, validate domain constraints, invoke
// exactly one Interface method (or the call protocol), marshal the result
// back. Any failure aborts the whole call; side effects already applied are
// not rolled back here.
package abi

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/types"
)

// Executor runs a contract module to completion and reports its return value
// and leftover gas. It is the hook onto the external interpreter: the bridge
// never instantiates bytecode itself.
type Executor func(maxGas uint64, bytecode []byte, function, param string, iface types.Interface) (types.Response, error)

// memoryOf returns the bound guest memory, failing if the environment was
// never linked.
func memoryOf(e env.Env) (env.Memory, error) {
	mem := e.Memory()
	if mem == nil {
		return nil, types.SetupError{Export: "memory", Msg: "uninitialized memory"}
	}
	return mem, nil
}

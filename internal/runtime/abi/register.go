package abi

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/types"
)

// trap converts a dispatch error into the single non-recoverable abort. The
// panic is recovered by the wasm engine and surfaces as a runtime error that
// unwinds the entire guest execution; the guest cannot catch it.
func trap(log *zap.Logger, fn string, err error) {
	log.Debug("host call trapped", zap.String("fn", fn), zap.Error(err))
	panic(types.NewTrap(err))
}

// Register exports the whole dispatch surface on builder. The export names
// and signatures are the bridge's wire contract: fixed-width integers and
// floats only, guest pointers as u32 offsets, booleans as 0/1.
//
// The same registration serves every toolchain environment; AssemblyScript
// guests additionally need RegisterASHooks.
func Register(builder wazero.HostModuleBuilder, e env.Env, exec Executor, log *zap.Logger) wazero.HostModuleBuilder {
	if log == nil {
		log = zap.NewNop()
	}

	// Coins
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := GetCallCoins(e)
			if err != nil {
				trap(log, "get_call_coins", err)
			}
			return v
		}).
		Export("get_call_coins")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, toAddress uint32, rawAmount int64) {
			if err := TransferCoins(e, toAddress, rawAmount); err != nil {
				trap(log, "transfer_coins", err)
			}
		}).
		WithParameterNames("to_address", "raw_amount").
		Export("transfer_coins")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, fromAddress, toAddress uint32, rawAmount int64) {
			if err := TransferCoinsFor(e, fromAddress, toAddress, rawAmount); err != nil {
				trap(log, "transfer_coins_for", err)
			}
		}).
		WithParameterNames("from_address", "to_address", "raw_amount").
		Export("transfer_coins_for")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := GetBalance(e)
			if err != nil {
				trap(log, "get_balance", err)
			}
			return v
		}).
		Export("get_balance")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address uint32) int64 {
			v, err := GetBalanceFor(e, address)
			if err != nil {
				trap(log, "get_balance_for", err)
			}
			return v
		}).
		WithParameterNames("address").
		Export("get_balance_for")

	// Datastore
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, key, value uint32) {
			if err := SetData(e, key, value); err != nil {
				trap(log, "set_data", err)
			}
		}).
		WithParameterNames("key", "value").
		Export("set_data")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, key uint32) uint32 {
			v, err := GetData(e, key)
			if err != nil {
				trap(log, "get_data", err)
			}
			return v
		}).
		WithParameterNames("key").
		Export("get_data")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, key uint32) int32 {
			v, err := HasData(e, key)
			if err != nil {
				trap(log, "has_data", err)
			}
			return v
		}).
		WithParameterNames("key").
		Export("has_data")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, key uint32) {
			if err := DeleteData(e, key); err != nil {
				trap(log, "delete_data", err)
			}
		}).
		WithParameterNames("key").
		Export("delete_data")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, key, value uint32) {
			if err := AppendData(e, key, value); err != nil {
				trap(log, "append_data", err)
			}
		}).
		WithParameterNames("key", "value").
		Export("append_data")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, key, value uint32) {
			if err := SetDataFor(e, address, key, value); err != nil {
				trap(log, "set_data_for", err)
			}
		}).
		WithParameterNames("address", "key", "value").
		Export("set_data_for")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, key uint32) uint32 {
			v, err := GetDataFor(e, address, key)
			if err != nil {
				trap(log, "get_data_for", err)
			}
			return v
		}).
		WithParameterNames("address", "key").
		Export("get_data_for")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, key uint32) int32 {
			v, err := HasDataFor(e, address, key)
			if err != nil {
				trap(log, "has_data_for", err)
			}
			return v
		}).
		WithParameterNames("address", "key").
		Export("has_data_for")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, key uint32) {
			if err := DeleteDataFor(e, address, key); err != nil {
				trap(log, "delete_data_for", err)
			}
		}).
		WithParameterNames("address", "key").
		Export("delete_data_for")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, key, value uint32) {
			if err := AppendDataFor(e, address, key, value); err != nil {
				trap(log, "append_data_for", err)
			}
		}).
		WithParameterNames("address", "key", "value").
		Export("append_data_for")

	// Module lifecycle
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, bytecode uint32) uint32 {
			v, err := CreateSC(e, bytecode)
			if err != nil {
				trap(log, "create_sc", err)
			}
			return v
		}).
		WithParameterNames("bytecode").
		Export("create_sc")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, bytecode uint32) {
			if err := SetBytecode(e, bytecode); err != nil {
				trap(log, "set_bytecode", err)
			}
		}).
		WithParameterNames("bytecode").
		Export("set_bytecode")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, bytecode uint32) {
			if err := SetBytecodeFor(e, address, bytecode); err != nil {
				trap(log, "set_bytecode_for", err)
			}
		}).
		WithParameterNames("address", "bytecode").
		Export("set_bytecode_for")

	// Inter-contract call
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, address, function, param uint32, callCoins int64) uint32 {
			v, err := CallModule(e, exec, address, function, param, callCoins)
			if err != nil {
				trap(log, "call", err)
			}
			return v
		}).
		WithParameterNames("address", "function", "param", "call_coins").
		Export("call")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := GetRemainingGas(e)
			if err != nil {
				trap(log, "get_remaining_gas", err)
			}
			return v
		}).
		Export("get_remaining_gas")

	// Crypto and identity
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, value uint32) uint32 {
			v, err := Hash(e, value)
			if err != nil {
				trap(log, "hash", err)
			}
			return v
		}).
		WithParameterNames("value").
		Export("hash")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, data, signature, publicKey uint32) int32 {
			v, err := SignatureVerify(e, data, signature, publicKey)
			if err != nil {
				trap(log, "signature_verify", err)
			}
			return v
		}).
		WithParameterNames("data", "signature", "public_key").
		Export("signature_verify")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, publicKey uint32) uint32 {
			v, err := AddressFromPublicKey(e, publicKey)
			if err != nil {
				trap(log, "address_from_public_key", err)
			}
			return v
		}).
		WithParameterNames("public_key").
		Export("address_from_public_key")

	// Introspection
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint32 {
			v, err := GetOwnedAddresses(e)
			if err != nil {
				trap(log, "get_owned_addresses", err)
			}
			return v
		}).
		Export("get_owned_addresses")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint32 {
			v, err := GetOwnedAddressesRaw(e)
			if err != nil {
				trap(log, "get_owned_addresses_raw", err)
			}
			return v
		}).
		Export("get_owned_addresses_raw")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint32 {
			v, err := GetCallStack(e)
			if err != nil {
				trap(log, "get_call_stack", err)
			}
			return v
		}).
		Export("get_call_stack")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint32 {
			v, err := GetCallStackRaw(e)
			if err != nil {
				trap(log, "get_call_stack_raw", err)
			}
			return v
		}).
		Export("get_call_stack_raw")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := GetCurrentPeriod(e)
			if err != nil {
				trap(log, "get_current_period", err)
			}
			return v
		}).
		Export("get_current_period")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int32 {
			v, err := GetCurrentThread(e)
			if err != nil {
				trap(log, "get_current_thread", err)
			}
			return v
		}).
		Export("get_current_thread")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := GetTime(e)
			if err != nil {
				trap(log, "get_time", err)
			}
			return v
		}).
		Export("get_time")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 {
			v, err := UnsafeRandom(e)
			if err != nil {
				trap(log, "unsafe_random", err)
			}
			return v
		}).
		Export("unsafe_random")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) float64 {
			v, err := UnsafeRandomF64(e)
			if err != nil {
				trap(log, "unsafe_random_f64", err)
			}
			return v
		}).
		Export("unsafe_random_f64")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, message uint32) {
			if err := Print(e, message); err != nil {
				trap(log, "print", err)
			}
		}).
		WithParameterNames("message").
		Export("print")

	// Async messaging and events
	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context,
			targetAddress, targetHandler uint32,
			validityStartPeriod int64, validityStartThread int32,
			validityEndPeriod int64, validityEndThread int32,
			maxGas, gasPrice, rawCoins int64,
			data uint32,
		) {
			err := SendMessage(e,
				targetAddress, targetHandler,
				validityStartPeriod, validityStartThread,
				validityEndPeriod, validityEndThread,
				maxGas, gasPrice, rawCoins,
				data)
			if err != nil {
				trap(log, "send_message", err)
			}
		}).
		WithParameterNames(
			"target_address", "target_handler",
			"validity_start_period", "validity_start_thread",
			"validity_end_period", "validity_end_thread",
			"max_gas", "gas_price", "raw_coins",
			"data").
		Export("send_message")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, event uint32) {
			if err := GenerateEvent(e, event); err != nil {
				trap(log, "generate_event", err)
			}
		}).
		WithParameterNames("event").
		Export("generate_event")

	return builder
}

// RegisterASHooks exports the AssemblyScript builtin imports (abort, seed,
// trace, Date.now) on builder. Only needed for ASEnv-backed instances.
func RegisterASHooks(builder wazero.HostModuleBuilder, e env.Env, log *zap.Logger) wazero.HostModuleBuilder {
	if log == nil {
		log = zap.NewNop()
	}

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, message, filename uint32, line, col int32) {
			// Abort never succeeds; it exists to carry the guest's own
			// diagnostic out of the sandbox.
			trap(log, "abort", Abort(e, message, filename, line, col))
		}).
		WithParameterNames("message", "filename", "line", "col").
		Export("abort")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) float64 {
			v, err := Seed(e)
			if err != nil {
				trap(log, "seed", err)
			}
			return v
		}).
		Export("seed")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context) float64 {
			v, err := Date(e)
			if err != nil {
				trap(log, "Date.now", err)
			}
			return v
		}).
		Export("Date.now")

	builder.NewFunctionBuilder().
		WithFunc(func(_ context.Context, message uint32, n int32, a0, a1, a2, a3, a4 float64) {
			if err := Trace(e, message, n, a0, a1, a2, a3, a4); err != nil {
				trap(log, "trace", err)
			}
		}).
		WithParameterNames("message", "n", "a0", "a1", "a2", "a3", "a4").
		Export("trace")

	return builder
}

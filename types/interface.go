package types

// Interface is the capability object the host bridge uses to reach the
// blockchain ledger and runtime context. It is the only way a contract can
// observe or mutate chain state.
//
// Implementations must be safe to share between nested calls: Clone returns a
// handle onto the same logical backend, not a snapshot. Every method either
// succeeds or returns a domain error; the bridge converts any error into a
// non-recoverable trap that unwinds the whole guest execution.
type Interface interface {
	// InitCall reserves rawCoins on the caller's balance, pushes the target
	// address onto the call stack and returns the target's bytecode.
	InitCall(address Address, rawCoins uint64) ([]byte, error)
	// FinishCall pops the call stack frame pushed by InitCall.
	FinishCall() error

	// GetCallCoins returns the coins made available for the current call.
	GetCallCoins() (uint64, error)
	// TransferCoins sends rawAmount from the current address to a target.
	TransferCoins(toAddress Address, rawAmount uint64) error
	// TransferCoinsFor sends rawAmount from an arbitrary address to a target.
	TransferCoinsFor(fromAddress, toAddress Address, rawAmount uint64) error
	// GetBalance returns the balance of the current address.
	GetBalance() (uint64, error)
	// GetBalanceFor returns the balance of an arbitrary address.
	GetBalanceFor(address Address) (uint64, error)

	// CreateModule stores new contract bytecode and returns its fresh address.
	CreateModule(bytecode []byte) (Address, error)
	// RawSetBytecode replaces the bytecode of the current address.
	RawSetBytecode(bytecode []byte) error
	// RawSetBytecodeFor replaces the bytecode of an arbitrary address.
	RawSetBytecodeFor(address Address, bytecode []byte) error

	// RawSetData upserts a datastore entry of the current address.
	RawSetData(key string, value []byte) error
	// RawGetData reads a datastore entry of the current address, failing if absent.
	RawGetData(key string) ([]byte, error)
	// HasData reports whether a datastore entry of the current address exists.
	HasData(key string) (bool, error)
	// RawDeleteData removes a datastore entry of the current address, failing if absent.
	RawDeleteData(key string) error
	// RawAppendData appends to an existing datastore entry, failing if absent.
	RawAppendData(key string, value []byte) error
	RawSetDataFor(address Address, key string, value []byte) error
	RawGetDataFor(address Address, key string) ([]byte, error)
	HasDataFor(address Address, key string) (bool, error)
	RawDeleteDataFor(address Address, key string) error
	RawAppendDataFor(address Address, key string, value []byte) error

	// GetOwnedAddresses lists the addresses owned by the current execution context.
	GetOwnedAddresses() ([]Address, error)
	// GetCallStack lists the addresses of the current call chain, caller first.
	GetCallStack() ([]Address, error)
	// GetCurrentPeriod returns the period of the current execution slot.
	GetCurrentPeriod() (uint64, error)
	// GetCurrentThread returns the thread of the current execution slot.
	GetCurrentThread() (uint8, error)

	// Hash hashes data and returns the encoded digest.
	Hash(data []byte) (string, error)
	// SignatureVerify checks a signature over data against a public key.
	// A well-formed but wrong signature yields (false, nil); malformed
	// signature or key encodings yield an error.
	SignatureVerify(data []byte, signature, publicKey string) (bool, error)
	// AddressFromPublicKey derives the address owning a public key.
	AddressFromPublicKey(publicKey string) (Address, error)

	// UnsafeRandom returns a random int64 that is NOT cryptographically secure.
	UnsafeRandom() (int64, error)
	// UnsafeRandomF64 returns a random float64 that is NOT cryptographically secure.
	UnsafeRandomF64() (float64, error)
	// GetTime returns the unix timestamp of the current slot in milliseconds.
	GetTime() (uint64, error)

	// SendMessage schedules an asynchronous message for later execution.
	// Ordering and delivery are decided by the scheduler, not here.
	SendMessage(targetAddress Address, targetHandler string, validityStart, validityEnd Slot, maxGas, gasPrice, rawCoins uint64, data []byte) error
	// GenerateEvent records an execution event verbatim.
	GenerateEvent(event string) error
	// Print writes a debug message outside of consensus state.
	Print(message string) error

	// Clone returns a handle sharing the same underlying ledger state.
	Clone() Interface
}

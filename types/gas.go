package types

// GasConfig defines the cost of every host operation: a constant charge per
// call plus per-byte rates for variable-length arguments. It is injected at
// environment construction so gas economics can be retuned without touching
// dispatch logic.
type GasConfig struct {
	// Coins
	GetCallCoinsCost uint64
	TransferCost     uint64
	GetBalanceCost   uint64

	// Datastore. Keys and values are billed at independent rates; GetData
	// additionally bills the returned value after the lookup.
	SetDataCost             uint64
	SetDataKeyUnitCost      uint64
	SetDataValueUnitCost    uint64
	GetDataCost             uint64
	GetDataKeyUnitCost      uint64
	GetDataValueUnitCost    uint64
	HasDataCost             uint64
	HasDataKeyUnitCost      uint64
	DeleteDataCost          uint64
	DeleteDataKeyUnitCost   uint64
	AppendDataCost          uint64
	AppendDataKeyUnitCost   uint64
	AppendDataValueUnitCost uint64

	// Module lifecycle
	CreateModuleCost     uint64
	CreateModuleUnitCost uint64
	SetBytecodeCost      uint64
	SetBytecodeUnitCost  uint64

	// Inter-contract calls
	CallCost         uint64
	RemainingGasCost uint64

	// Crypto and identity
	HashCost                    uint64
	HashUnitCost                uint64
	SignatureVerifyCost         uint64
	SignatureVerifyDataUnitCost uint64
	AddressFromPublicKeyCost    uint64

	// Introspection
	GetOwnedAddressesCost uint64
	GetCallStackCost      uint64
	GetCurrentPeriodCost  uint64
	GetCurrentThreadCost  uint64
	GetTimeCost           uint64
	UnsafeRandomCost      uint64

	// Messaging and events
	SendMessageCost   uint64
	GenerateEventCost uint64
	PrintCost         uint64
}

// DefaultGasConfig returns the default gas schedule.
func DefaultGasConfig() GasConfig {
	return GasConfig{
		GetCallCoinsCost: 100,
		TransferCost:     200,
		GetBalanceCost:   100,

		SetDataCost:             250,
		SetDataKeyUnitCost:      1,
		SetDataValueUnitCost:    1,
		GetDataCost:             250,
		GetDataKeyUnitCost:      1,
		GetDataValueUnitCost:    1,
		HasDataCost:             250,
		HasDataKeyUnitCost:      1,
		DeleteDataCost:          250,
		DeleteDataKeyUnitCost:   1,
		AppendDataCost:          250,
		AppendDataKeyUnitCost:   1,
		AppendDataValueUnitCost: 1,

		CreateModuleCost:     500,
		CreateModuleUnitCost: 2,
		SetBytecodeCost:      500,
		SetBytecodeUnitCost:  2,

		CallCost:         500,
		RemainingGasCost: 100,

		HashCost:                    300,
		HashUnitCost:                1,
		SignatureVerifyCost:         500,
		SignatureVerifyDataUnitCost: 1,
		AddressFromPublicKeyCost:    300,

		GetOwnedAddressesCost: 100,
		GetCallStackCost:      100,
		GetCurrentPeriodCost:  100,
		GetCurrentThreadCost:  100,
		GetTimeCost:           100,
		UnsafeRandomCost:      100,

		SendMessageCost:   300,
		GenerateEventCost: 200,
		PrintCost:         100,
	}
}

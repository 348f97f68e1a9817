package testenv

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/helixchain/helixvm/types"
)

// Message is one scheduled async message, recorded verbatim.
type Message struct {
	TargetAddress types.Address
	TargetHandler string
	ValidityStart types.Slot
	ValidityEnd   types.Slot
	MaxGas        uint64
	GasPrice      uint64
	RawCoins      uint64
	Data          []byte
}

// MockInterface implements types.Interface over an in-memory database.
// Datastore entries and bytecode live in a cometbft-db MemDB; balances, the
// call stack and recorded outputs live in plain fields so tests can inspect
// them.
//
// All randomness and time are deterministic. Clone returns the receiver:
// nested calls share one logical backend, which is exactly the production
// contract.
type MockInterface struct {
	db *dbm.MemDB

	Balances  map[types.Address]uint64
	Owned     []types.Address
	CallStack []types.Address
	CallCoins uint64
	Period    uint64
	Thread    uint8
	Time      uint64

	Events   []string
	Messages []Message
	Printed  []string

	// Calls records every Interface method reached, in order.
	Calls []string

	// Failures maps a method name to the error it should return.
	Failures map[string]error

	randState   int64
	nextAddress int
}

var _ types.Interface = (*MockInterface)(nil)

// NewMockInterface returns a mock with one live address on the call stack
// and a funded balance.
func NewMockInterface() *MockInterface {
	m := &MockInterface{
		db:        dbm.NewMemDB(),
		Balances:  map[types.Address]uint64{"addr_current": 1_000_000},
		Owned:     []types.Address{"addr_current"},
		CallStack: []types.Address{"addr_caller", "addr_current"},
		Period:    42,
		Thread:    7,
		Time:      1_600_000_000_000,
		Failures:  map[string]error{},
		randState: 1,
	}
	return m
}

func (m *MockInterface) record(method string) error {
	m.Calls = append(m.Calls, method)
	return m.Failures[method]
}

func (m *MockInterface) current() types.Address {
	return m.CallStack[len(m.CallStack)-1]
}

func dataKey(address types.Address, key string) []byte {
	return []byte("data/" + address + "/" + key)
}

func bytecodeKey(address types.Address) []byte {
	return []byte("bytecode/" + address)
}

func (m *MockInterface) InitCall(address types.Address, rawCoins uint64) ([]byte, error) {
	if err := m.record("InitCall"); err != nil {
		return nil, err
	}
	bytecode, err := m.db.Get(bytecodeKey(address))
	if err != nil {
		return nil, err
	}
	if bytecode == nil {
		return nil, fmt.Errorf("unknown module at %s", address)
	}
	if m.Balances[m.current()] < rawCoins {
		return nil, fmt.Errorf("insufficient balance for call to %s", address)
	}
	m.Balances[m.current()] -= rawCoins
	m.Balances[address] += rawCoins
	m.CallStack = append(m.CallStack, address)
	m.CallCoins = rawCoins
	return bytecode, nil
}

func (m *MockInterface) FinishCall() error {
	if err := m.record("FinishCall"); err != nil {
		return err
	}
	if len(m.CallStack) <= 1 {
		return fmt.Errorf("call stack underflow")
	}
	m.CallStack = m.CallStack[:len(m.CallStack)-1]
	return nil
}

func (m *MockInterface) GetCallCoins() (uint64, error) {
	if err := m.record("GetCallCoins"); err != nil {
		return 0, err
	}
	return m.CallCoins, nil
}

func (m *MockInterface) TransferCoins(toAddress types.Address, rawAmount uint64) error {
	if err := m.record("TransferCoins"); err != nil {
		return err
	}
	return m.transfer(m.current(), toAddress, rawAmount)
}

func (m *MockInterface) TransferCoinsFor(fromAddress, toAddress types.Address, rawAmount uint64) error {
	if err := m.record("TransferCoinsFor"); err != nil {
		return err
	}
	return m.transfer(fromAddress, toAddress, rawAmount)
}

func (m *MockInterface) transfer(from, to types.Address, amount uint64) error {
	if m.Balances[from] < amount {
		return fmt.Errorf("insufficient balance at %s", from)
	}
	m.Balances[from] -= amount
	m.Balances[to] += amount
	return nil
}

func (m *MockInterface) GetBalance() (uint64, error) {
	if err := m.record("GetBalance"); err != nil {
		return 0, err
	}
	return m.Balances[m.current()], nil
}

func (m *MockInterface) GetBalanceFor(address types.Address) (uint64, error) {
	if err := m.record("GetBalanceFor"); err != nil {
		return 0, err
	}
	balance, ok := m.Balances[address]
	if !ok {
		return 0, fmt.Errorf("unknown address %s", address)
	}
	return balance, nil
}

func (m *MockInterface) CreateModule(bytecode []byte) (types.Address, error) {
	if err := m.record("CreateModule"); err != nil {
		return "", err
	}
	m.nextAddress++
	address := fmt.Sprintf("addr_sc_%d", m.nextAddress)
	if err := m.db.Set(bytecodeKey(address), bytecode); err != nil {
		return "", err
	}
	m.Balances[address] = 0
	return address, nil
}

func (m *MockInterface) RawSetBytecode(bytecode []byte) error {
	if err := m.record("RawSetBytecode"); err != nil {
		return err
	}
	return m.db.Set(bytecodeKey(m.current()), bytecode)
}

func (m *MockInterface) RawSetBytecodeFor(address types.Address, bytecode []byte) error {
	if err := m.record("RawSetBytecodeFor"); err != nil {
		return err
	}
	return m.db.Set(bytecodeKey(address), bytecode)
}

// SetBytecode seeds bytecode for an address. Test setup helper, not part of
// the Interface.
func (m *MockInterface) SetBytecode(address types.Address, bytecode []byte) {
	if err := m.db.Set(bytecodeKey(address), bytecode); err != nil {
		panic(err)
	}
}

// Bytecode reads back the stored bytecode of an address, or nil.
func (m *MockInterface) Bytecode(address types.Address) []byte {
	bytecode, err := m.db.Get(bytecodeKey(address))
	if err != nil {
		panic(err)
	}
	return bytecode
}

func (m *MockInterface) RawSetData(key string, value []byte) error {
	if err := m.record("RawSetData"); err != nil {
		return err
	}
	return m.db.Set(dataKey(m.current(), key), value)
}

func (m *MockInterface) RawGetData(key string) ([]byte, error) {
	if err := m.record("RawGetData"); err != nil {
		return nil, err
	}
	return m.getData(m.current(), key)
}

func (m *MockInterface) HasData(key string) (bool, error) {
	if err := m.record("HasData"); err != nil {
		return false, err
	}
	return m.db.Has(dataKey(m.current(), key))
}

func (m *MockInterface) RawDeleteData(key string) error {
	if err := m.record("RawDeleteData"); err != nil {
		return err
	}
	return m.deleteData(m.current(), key)
}

func (m *MockInterface) RawAppendData(key string, value []byte) error {
	if err := m.record("RawAppendData"); err != nil {
		return err
	}
	return m.appendData(m.current(), key, value)
}

func (m *MockInterface) RawSetDataFor(address types.Address, key string, value []byte) error {
	if err := m.record("RawSetDataFor"); err != nil {
		return err
	}
	return m.db.Set(dataKey(address, key), value)
}

func (m *MockInterface) RawGetDataFor(address types.Address, key string) ([]byte, error) {
	if err := m.record("RawGetDataFor"); err != nil {
		return nil, err
	}
	return m.getData(address, key)
}

func (m *MockInterface) HasDataFor(address types.Address, key string) (bool, error) {
	if err := m.record("HasDataFor"); err != nil {
		return false, err
	}
	return m.db.Has(dataKey(address, key))
}

func (m *MockInterface) RawDeleteDataFor(address types.Address, key string) error {
	if err := m.record("RawDeleteDataFor"); err != nil {
		return err
	}
	return m.deleteData(address, key)
}

func (m *MockInterface) RawAppendDataFor(address types.Address, key string, value []byte) error {
	if err := m.record("RawAppendDataFor"); err != nil {
		return err
	}
	return m.appendData(address, key, value)
}

func (m *MockInterface) getData(address types.Address, key string) ([]byte, error) {
	value, err := m.db.Get(dataKey(address, key))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("data entry %s not found at %s", key, address)
	}
	return value, nil
}

func (m *MockInterface) deleteData(address types.Address, key string) error {
	exists, err := m.db.Has(dataKey(address, key))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("data entry %s not found at %s", key, address)
	}
	return m.db.Delete(dataKey(address, key))
}

func (m *MockInterface) appendData(address types.Address, key string, value []byte) error {
	existing, err := m.getData(address, key)
	if err != nil {
		return err
	}
	return m.db.Set(dataKey(address, key), append(existing, value...))
}

func (m *MockInterface) GetOwnedAddresses() ([]types.Address, error) {
	if err := m.record("GetOwnedAddresses"); err != nil {
		return nil, err
	}
	return append([]types.Address(nil), m.Owned...), nil
}

func (m *MockInterface) GetCallStack() ([]types.Address, error) {
	if err := m.record("GetCallStack"); err != nil {
		return nil, err
	}
	return append([]types.Address(nil), m.CallStack...), nil
}

func (m *MockInterface) GetCurrentPeriod() (uint64, error) {
	if err := m.record("GetCurrentPeriod"); err != nil {
		return 0, err
	}
	return m.Period, nil
}

func (m *MockInterface) GetCurrentThread() (uint8, error) {
	if err := m.record("GetCurrentThread"); err != nil {
		return 0, err
	}
	return m.Thread, nil
}

func (m *MockInterface) Hash(data []byte) (string, error) {
	if err := m.record("Hash"); err != nil {
		return "", err
	}
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:]), nil
}

// SignatureVerify uses a toy scheme: a well-formed signature is
// "sig(<public key>,<data>)" and a well-formed public key starts with "pk:".
// Anything else is a malformed encoding, which is an error rather than a
// verification failure.
func (m *MockInterface) SignatureVerify(data []byte, signature, publicKey string) (bool, error) {
	if err := m.record("SignatureVerify"); err != nil {
		return false, err
	}
	if !strings.HasPrefix(publicKey, "pk:") {
		return false, fmt.Errorf("malformed public key %q", publicKey)
	}
	if !strings.HasPrefix(signature, "sig(") || !strings.HasSuffix(signature, ")") {
		return false, fmt.Errorf("malformed signature %q", signature)
	}
	return signature == "sig("+publicKey+","+string(data)+")", nil
}

func (m *MockInterface) AddressFromPublicKey(publicKey string) (types.Address, error) {
	if err := m.record("AddressFromPublicKey"); err != nil {
		return "", err
	}
	if !strings.HasPrefix(publicKey, "pk:") {
		return "", fmt.Errorf("malformed public key %q", publicKey)
	}
	return "addr_of_" + strings.TrimPrefix(publicKey, "pk:"), nil
}

// UnsafeRandom is a fixed-seed xorshift, deterministic across runs.
func (m *MockInterface) UnsafeRandom() (int64, error) {
	if err := m.record("UnsafeRandom"); err != nil {
		return 0, err
	}
	m.randState ^= m.randState << 13
	m.randState ^= m.randState >> 7
	m.randState ^= m.randState << 17
	return m.randState, nil
}

func (m *MockInterface) UnsafeRandomF64() (float64, error) {
	if err := m.record("UnsafeRandomF64"); err != nil {
		return 0, err
	}
	r, err := m.UnsafeRandom()
	if err != nil {
		return 0, err
	}
	if r < 0 {
		r = -r
	}
	return float64(r%1_000_000) / 1_000_000, nil
}

func (m *MockInterface) GetTime() (uint64, error) {
	if err := m.record("GetTime"); err != nil {
		return 0, err
	}
	return m.Time, nil
}

func (m *MockInterface) SendMessage(targetAddress types.Address, targetHandler string, validityStart, validityEnd types.Slot, maxGas, gasPrice, rawCoins uint64, data []byte) error {
	if err := m.record("SendMessage"); err != nil {
		return err
	}
	m.Messages = append(m.Messages, Message{
		TargetAddress: targetAddress,
		TargetHandler: targetHandler,
		ValidityStart: validityStart,
		ValidityEnd:   validityEnd,
		MaxGas:        maxGas,
		GasPrice:      gasPrice,
		RawCoins:      rawCoins,
		Data:          append([]byte(nil), data...),
	})
	return nil
}

func (m *MockInterface) GenerateEvent(event string) error {
	if err := m.record("GenerateEvent"); err != nil {
		return err
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockInterface) Print(message string) error {
	if err := m.record("Print"); err != nil {
		return err
	}
	m.Printed = append(m.Printed, message)
	return nil
}

func (m *MockInterface) Clone() types.Interface { return m }

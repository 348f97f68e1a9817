// Package testenv provides the shared test doubles for the host bridge: an
// in-process guest memory with a bump allocator, settable gas globals, an
// environment over both, and a full mock Interface backed by an in-memory
// database.
package testenv

import (
	"encoding/binary"
	"fmt"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/types"
)

// FakeMemory is an env.Memory over a plain byte slice. Allocation is a bump
// pointer starting above offset zero so a zero offset can keep meaning
// "null".
type FakeMemory struct {
	data []byte
	next uint32

	// FailAllocate makes every Allocate call fail, simulating a guest
	// allocator rejection.
	FailAllocate bool
}

var _ env.Memory = (*FakeMemory)(nil)

func NewFakeMemory(size uint32) *FakeMemory {
	return &FakeMemory{
		data: make([]byte, size),
		next: 8,
	}
}

func (m *FakeMemory) Read(offset, length uint32) ([]byte, error) {
	if uint64(offset)+uint64(length) > uint64(len(m.data)) {
		return nil, types.MarshalError{Msg: fmt.Sprintf("memory read out of bounds at offset %d, length %d", offset, length)}
	}
	out := make([]byte, length)
	copy(out, m.data[offset:offset+length])
	return out, nil
}

func (m *FakeMemory) Write(offset uint32, data []byte) error {
	if uint64(offset)+uint64(len(data)) > uint64(len(m.data)) {
		return types.MarshalError{Msg: fmt.Sprintf("memory write out of bounds at offset %d, length %d", offset, len(data))}
	}
	copy(m.data[offset:], data)
	return nil
}

func (m *FakeMemory) Allocate(size uint32) (uint32, error) {
	if m.FailAllocate {
		return 0, types.MarshalError{Msg: "guest allocator rejected request"}
	}
	if uint64(m.next)+uint64(size) > uint64(len(m.data)) {
		return 0, types.MarshalError{Msg: "guest allocator out of memory"}
	}
	offset := m.next
	m.next += size
	return offset, nil
}

// StoreString writes s as a length-prefixed guest string and returns its
// offset, panicking on failure. Test setup helper.
func (m *FakeMemory) StoreString(s string) uint32 {
	return m.StoreBytes([]byte(s))
}

// StoreBytes writes raw as a length-prefixed guest region and returns its
// offset, panicking on failure.
func (m *FakeMemory) StoreBytes(raw []byte) uint32 {
	offset, err := m.Allocate(4 + uint32(len(raw)))
	if err != nil {
		panic(err)
	}
	prefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(prefix, uint32(len(raw)))
	if err := m.Write(offset, prefix); err != nil {
		panic(err)
	}
	if err := m.Write(offset+4, raw); err != nil {
		panic(err)
	}
	return offset
}

// StorePrefix writes a bare length prefix claiming that length bytes follow.
// With a length larger than the memory, reads through it go out of bounds.
func (m *FakeMemory) StorePrefix(length uint32) uint32 {
	offset, err := m.Allocate(4)
	if err != nil {
		panic(err)
	}
	prefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(prefix, length)
	if err := m.Write(offset, prefix); err != nil {
		panic(err)
	}
	return offset
}

package env

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/helixchain/helixvm/types"
)

// wazeroMemory adapts a wazero linear memory plus the guest's exported
// allocator to the Memory interface.
type wazeroMemory struct {
	mem   api.Memory
	alloc api.Function
}

var _ Memory = (*wazeroMemory)(nil)

func (m *wazeroMemory) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, types.MarshalError{Msg: fmt.Sprintf("memory read out of bounds at offset %d, length %d", offset, length)}
	}
	// wazero returns a view into the underlying memory; copy so the host
	// never holds a reference past the call.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *wazeroMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return types.MarshalError{Msg: fmt.Sprintf("memory write out of bounds at offset %d, length %d", offset, len(data))}
	}
	return nil
}

func (m *wazeroMemory) Allocate(size uint32) (uint32, error) {
	results, err := m.alloc.Call(context.Background(), uint64(size))
	if err != nil {
		return 0, types.MarshalError{Msg: "guest allocator rejected request", Err: err}
	}
	if len(results) != 1 {
		return 0, types.MarshalError{Msg: fmt.Sprintf("guest allocator returned %d results, want 1", len(results))}
	}
	offset := uint32(results[0])
	if offset == 0 {
		return 0, types.MarshalError{Msg: "guest allocator returned null pointer"}
	}
	return offset, nil
}

// wazeroGlobal adapts a guest-exported global to the Global interface.
type wazeroGlobal struct {
	g    api.Global
	name string
}

var _ Global = wazeroGlobal{}

func (g wazeroGlobal) Get() uint64 { return g.g.Get() }

func (g wazeroGlobal) Set(v uint64) error {
	mut, ok := g.g.(api.MutableGlobal)
	if !ok {
		return types.SetupError{Export: g.name, Msg: "global is not mutable"}
	}
	mut.Set(v)
	return nil
}

func (g wazeroGlobal) ValueType() ValueType {
	if g.g.Type() == api.ValueTypeI32 {
		return ValueTypeI32
	}
	return ValueTypeI64
}

package testenv

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/types"
)

// FakeGlobal is a settable env.Global.
type FakeGlobal struct {
	value     uint64
	valueType env.ValueType

	// Immutable makes Set fail, like a guest exporting a const global.
	Immutable bool
}

var _ env.Global = (*FakeGlobal)(nil)

func NewI64Global(v uint64) *FakeGlobal {
	return &FakeGlobal{value: v, valueType: env.ValueTypeI64}
}

func NewI32Global(v uint64) *FakeGlobal {
	return &FakeGlobal{value: v, valueType: env.ValueTypeI32}
}

func (g *FakeGlobal) Get() uint64 { return g.value }

func (g *FakeGlobal) Set(v uint64) error {
	if g.Immutable {
		return types.SetupError{Msg: "global is not mutable"}
	}
	g.value = v
	return nil
}

func (g *FakeGlobal) ValueType() env.ValueType { return g.valueType }

// FakeEnv is a bound env.Env over the fakes, for testing the dispatch
// surface without a wasm engine. Fields are exported so tests can unbind or
// swap pieces.
type FakeEnv struct {
	Iface     types.Interface
	Cfg       types.GasConfig
	Mem       *FakeMemory
	Remaining *FakeGlobal
	Exhausted *FakeGlobal
}

var _ env.Env = (*FakeEnv)(nil)

// NewFakeEnv returns an environment with gasLimit remaining, a cleared
// exhaustion flag, 1 MiB of guest memory and the default gas schedule.
func NewFakeEnv(iface types.Interface, gasLimit uint64) *FakeEnv {
	return &FakeEnv{
		Iface:     iface,
		Cfg:       types.DefaultGasConfig(),
		Mem:       NewFakeMemory(1 << 20),
		Remaining: NewI64Global(gasLimit),
		Exhausted: NewI32Global(0),
	}
}

func (e *FakeEnv) Interface() types.Interface {
	if e.Iface == nil {
		return nil
	}
	return e.Iface.Clone()
}

func (e *FakeEnv) GasConfig() types.GasConfig { return e.Cfg }

func (e *FakeEnv) Memory() env.Memory {
	if e.Mem == nil {
		return nil
	}
	return e.Mem
}

func (e *FakeEnv) RemainingPoints() env.Global {
	if e.Remaining == nil {
		return nil
	}
	return e.Remaining
}

func (e *FakeEnv) ExhaustedPoints() env.Global {
	if e.Exhausted == nil {
		return nil
	}
	return e.Exhausted
}

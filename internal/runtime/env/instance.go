package env

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/helixchain/helixvm/types"
)

// Export names of the gas counters every metered guest carries. The metering
// instrumentation keeps the live budget in remaining_points; points_exhausted
// goes positive once an in-guest charge fails and stays positive until reset.
const (
	RemainingPointsExport = "metering_remaining_points"
	ExhaustedPointsExport = "metering_points_exhausted"
)

// Option configures an environment at construction.
type Option func(*instanceEnv)

// WithLogger attaches a logger for bind and dispatch diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(e *instanceEnv) {
		if log != nil {
			e.log = log
		}
	}
}

// instanceEnv is the shared implementation behind the per-toolchain
// environments. The allocator export name is the only convention-specific
// part of binding.
type instanceEnv struct {
	iface types.Interface
	cfg   types.GasConfig
	log   *zap.Logger

	mem       Memory
	remaining Global
	exhausted Global
	bound     bool
}

func newInstanceEnv(iface types.Interface, cfg types.GasConfig, opts ...Option) instanceEnv {
	e := instanceEnv{
		iface: iface,
		cfg:   cfg,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e *instanceEnv) Interface() types.Interface { return e.iface.Clone() }
func (e *instanceEnv) GasConfig() types.GasConfig { return e.cfg }
func (e *instanceEnv) Memory() Memory             { return e.mem }
func (e *instanceEnv) RemainingPoints() Global    { return e.remaining }
func (e *instanceEnv) ExhaustedPoints() Global    { return e.exhausted }
func (e *instanceEnv) Logger() *zap.Logger        { return e.log }

// bind resolves the guest exports this environment needs. It runs exactly
// once, at instance linking; any missing export aborts instantiation.
func (e *instanceEnv) bind(mod api.Module, allocExport string) error {
	if e.bound {
		return types.SetupError{Msg: "environment already bound"}
	}
	mem := mod.Memory()
	if mem == nil {
		return types.SetupError{Export: "memory", Msg: "guest does not export linear memory"}
	}
	alloc := mod.ExportedFunction(allocExport)
	if alloc == nil {
		return types.SetupError{Export: allocExport, Msg: "guest does not export an allocator"}
	}
	remaining := mod.ExportedGlobal(RemainingPointsExport)
	if remaining == nil {
		return types.SetupError{Export: RemainingPointsExport, Msg: "guest does not export the remaining gas counter"}
	}
	exhausted := mod.ExportedGlobal(ExhaustedPointsExport)
	if exhausted == nil {
		return types.SetupError{Export: ExhaustedPointsExport, Msg: "guest does not export the exhaustion flag"}
	}

	e.mem = &wazeroMemory{mem: mem, alloc: alloc}
	e.remaining = wazeroGlobal{g: remaining, name: RemainingPointsExport}
	e.exhausted = wazeroGlobal{g: exhausted, name: ExhaustedPointsExport}
	e.bound = true

	e.log.Debug("environment bound",
		zap.String("allocator", allocExport),
		zap.Uint32("memory_size", mem.Size()))
	return nil
}

package env

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/helixchain/helixvm/types"
)

// tinygoAllocExport is the allocator TinyGo guests export.
const tinygoAllocExport = "malloc"

// TinyGoEnv is the environment for contracts built with the TinyGo
// toolchain. TinyGo guests use the shared dispatch surface only; they have no
// equivalent of the AssemblyScript builtins.
type TinyGoEnv struct {
	instanceEnv
}

var _ Env = (*TinyGoEnv)(nil)

// NewTinyGoEnv returns an unbound TinyGo environment owning iface.
func NewTinyGoEnv(iface types.Interface, cfg types.GasConfig, opts ...Option) *TinyGoEnv {
	return &TinyGoEnv{instanceEnv: newInstanceEnv(iface, cfg, opts...)}
}

// Bind resolves guest exports once the instance is linked.
func (e *TinyGoEnv) Bind(mod api.Module) error {
	return e.bind(mod, tinygoAllocExport)
}

package env

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/helixchain/helixvm/types"
)

// asAllocExport is the allocator the AssemblyScript loader exports.
const asAllocExport = "__alloc"

// ASEnv is the environment for contracts built with the AssemblyScript
// toolchain. Besides the shared dispatch surface, AssemblyScript guests
// import the abort/seed/trace/Date.now builtins, served by the adapters in
// the abi package.
type ASEnv struct {
	instanceEnv
}

var _ Env = (*ASEnv)(nil)

// NewASEnv returns an unbound AssemblyScript environment owning iface.
func NewASEnv(iface types.Interface, cfg types.GasConfig, opts ...Option) *ASEnv {
	return &ASEnv{instanceEnv: newInstanceEnv(iface, cfg, opts...)}
}

// Bind resolves guest exports once the instance is linked.
func (e *ASEnv) Bind(mod api.Module) error {
	return e.bind(mod, asAllocExport)
}

package abi

import (
	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/memory"
)

// GenerateEvent forwards an event string to the ledger verbatim. Only the
// string decode is validated here.
func GenerateEvent(e env.Env, eventPtr uint32) error {
	if err := gas.Sub(e, e.GasConfig().GenerateEventCost); err != nil {
		return err
	}
	mem, err := memoryOf(e)
	if err != nil {
		return err
	}
	event, err := memory.ReadString(mem, eventPtr)
	if err != nil {
		return err
	}
	return e.Interface().GenerateEvent(event)
}

package gas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/internal/runtime/testenv"
	"github.com/helixchain/helixvm/types"
)

func TestRemaining(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	remaining, err := gas.Remaining(e)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), remaining)
}

func TestRemainingExhaustionFlagWins(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	require.NoError(t, e.Exhausted.Set(1))

	remaining, err := gas.Remaining(e)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), remaining, "a positive exhaustion flag forces the budget to zero")
	assert.Equal(t, uint64(1000), e.Remaining.Get(), "the stored counter is left alone")
}

func TestRemainingMissingGlobals(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	e.Exhausted = nil
	_, err := gas.Remaining(e)
	var setupErr types.SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, env.ExhaustedPointsExport, setupErr.Export)

	e = testenv.NewFakeEnv(nil, 1000)
	e.Remaining = nil
	_, err = gas.Remaining(e)
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, env.RemainingPointsExport, setupErr.Export)
}

func TestRemainingWrongGlobalTypes(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	e.Exhausted = testenv.NewI64Global(0)
	_, err := gas.Remaining(e)
	var setupErr types.SetupError
	require.ErrorAs(t, err, &setupErr)

	e = testenv.NewFakeEnv(nil, 1000)
	e.Remaining = testenv.NewI32Global(1000)
	_, err = gas.Remaining(e)
	require.ErrorAs(t, err, &setupErr)
}

func TestSetRemainingClearsExhaustion(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 0)
	require.NoError(t, e.Exhausted.Set(1))

	require.NoError(t, gas.SetRemaining(e, 500))
	assert.Equal(t, uint64(500), e.Remaining.Get())
	assert.Equal(t, uint64(0), e.Exhausted.Get())

	remaining, err := gas.Remaining(e)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), remaining)
}

func TestSub(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	require.NoError(t, gas.Sub(e, 300))
	assert.Equal(t, uint64(700), e.Remaining.Get())

	// charging the exact remainder succeeds
	require.NoError(t, gas.Sub(e, 700))
	assert.Equal(t, uint64(0), e.Remaining.Get())
}

func TestSubUnderflow(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 100)

	err := gas.Sub(e, 101)
	assert.True(t, types.IsOutOfGas(err))
	assert.Equal(t, uint64(100), e.Remaining.Get(), "no partial charge on underflow")
}

func TestSubSeesExhaustionFlag(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	require.NoError(t, e.Exhausted.Set(1))

	err := gas.Sub(e, 1)
	assert.True(t, types.IsOutOfGas(err))
}

func TestSubWithMult(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	require.NoError(t, gas.SubWithMult(e, 100, 3))
	assert.Equal(t, uint64(700), e.Remaining.Get())

	require.NoError(t, gas.SubWithMult(e, 12345, 0))
	assert.Equal(t, uint64(700), e.Remaining.Get())
}

func TestSubWithMultOverflow(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	err := gas.SubWithMult(e, 1<<40, 1<<40)
	var overflowErr types.GasOverflowError
	require.ErrorAs(t, err, &overflowErr)
	assert.Equal(t, uint64(1<<40), overflowErr.Count)
	assert.Equal(t, uint64(1<<40), overflowErr.Rate)
	assert.False(t, types.IsOutOfGas(err), "overflow is not exhaustion")
	assert.Equal(t, uint64(1000), e.Remaining.Get())
}

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixchain/helixvm/internal/runtime/memory"
	"github.com/helixchain/helixvm/internal/runtime/testenv"
	"github.com/helixchain/helixvm/types"
)

func TestStringRoundTrip(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	for _, value := range []string{"", "hello", "héllo wörld", "日本語", "\x00embedded\x00nul"} {
		offset, err := memory.AllocString(e, value)
		require.NoError(t, err)

		got, err := memory.ReadString(e.Mem, offset)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	raw := []byte{0x00, 0xff, 0x7f, 0x80}
	offset, err := memory.AllocBytes(e, raw)
	require.NoError(t, err)

	got, err := memory.ReadBytes(e.Mem, offset)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestReadStringInvalidUTF8(t *testing.T) {
	mem := testenv.NewFakeMemory(1 << 16)
	offset := mem.StoreBytes([]byte{0xff, 0xfe})

	_, err := memory.ReadString(mem, offset)
	var marshalErr types.MarshalError
	require.ErrorAs(t, err, &marshalErr)
	assert.Contains(t, marshalErr.Msg, "invalid UTF-8")
}

func TestReadBytesHugePrefix(t *testing.T) {
	mem := testenv.NewFakeMemory(1 << 16)
	offset := mem.StorePrefix(1 << 30)

	_, err := memory.ReadBytes(mem, offset)
	var marshalErr types.MarshalError
	require.ErrorAs(t, err, &marshalErr)
}

func TestReadBytesOffsetOutOfBounds(t *testing.T) {
	mem := testenv.NewFakeMemory(64)

	_, err := memory.ReadBytes(mem, 128)
	var marshalErr types.MarshalError
	require.ErrorAs(t, err, &marshalErr)
}

func TestReadStringCharged(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	offset := e.Mem.StoreString("hello")

	value, err := memory.ReadStringCharged(e, offset, 3)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
	assert.Equal(t, uint64(1000-5*3), e.Remaining.Get())
}

func TestReadStringChargedOutOfGas(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 10)
	offset := e.Mem.StoreString("hello world")

	_, err := memory.ReadStringCharged(e, offset, 1)
	assert.True(t, types.IsOutOfGas(err))
	assert.Equal(t, uint64(10), e.Remaining.Get(), "failed charge leaves the budget alone")
}

func TestReadStringChargedBadReadLeavesGas(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	offset := e.Mem.StorePrefix(1 << 30)

	_, err := memory.ReadStringCharged(e, offset, 1)
	require.Error(t, err)
	assert.Equal(t, uint64(1000), e.Remaining.Get(), "nothing is charged for a read that fails")
}

func TestReadStringChargedUnboundMemory(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	e.Mem = nil

	_, err := memory.ReadStringCharged(e, 8, 1)
	var setupErr types.SetupError
	require.ErrorAs(t, err, &setupErr)
}

func TestAllocUTF8(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	offset, err := memory.AllocUTF8(e, []byte("stored value"))
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, offset)
	require.NoError(t, err)
	assert.Equal(t, "stored value", got)

	_, err = memory.AllocUTF8(e, []byte{0xc0, 0x80})
	var marshalErr types.MarshalError
	require.ErrorAs(t, err, &marshalErr)
}

func TestAllocStringArray(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)

	offset, err := memory.AllocStringArray(e, []string{"a", "b", "c"})
	require.NoError(t, err)
	got, err := memory.ReadString(e.Mem, offset)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, got)

	offset, err = memory.AllocStringArray(e, nil)
	require.NoError(t, err)
	got, err = memory.ReadString(e.Mem, offset)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, got, "a nil slice still serializes as an array")
}

func TestAllocFailurePropagates(t *testing.T) {
	e := testenv.NewFakeEnv(nil, 1000)
	e.Mem.FailAllocate = true

	_, err := memory.AllocString(e, "anything")
	require.Error(t, err)
}

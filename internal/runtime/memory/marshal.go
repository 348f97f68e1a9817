// Package memory marshals length-prefixed strings and byte blobs across the
// guest memory boundary.
//
// A marshaled value is a 4-byte little-endian byte length followed by the
// payload. Reads never mutate guest memory; writes always go into a fresh
// region obtained from the guest's own allocator.
package memory

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/helixchain/helixvm/internal/runtime/env"
	"github.com/helixchain/helixvm/internal/runtime/gas"
	"github.com/helixchain/helixvm/types"
)

// lengthPrefixSize is the size of the little-endian length prefix.
const lengthPrefixSize = 4

// ReadBytes reads a length-prefixed region at offset.
func ReadBytes(mem env.Memory, offset uint32) ([]byte, error) {
	prefix, err := mem.Read(offset, lengthPrefixSize)
	if err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint32(prefix)
	return mem.Read(offset+lengthPrefixSize, length)
}

// ReadString reads a length-prefixed UTF-8 string at offset. Malformed UTF-8
// fails distinctly from an out-of-bounds offset.
func ReadString(mem env.Memory, offset uint32) (string, error) {
	data, err := ReadBytes(mem, offset)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", types.MarshalError{Msg: fmt.Sprintf("invalid UTF-8 string at offset %d", offset)}
	}
	return string(data), nil
}

// ReadStringCharged reads a string and charges len*rate for it. The charge
// uses the decoded length, never a guest-claimed one, and is only applied
// after the read fully succeeds.
func ReadStringCharged(e env.Env, offset uint32, rate uint64) (string, error) {
	mem := e.Memory()
	if mem == nil {
		return "", types.SetupError{Export: "memory", Msg: "uninitialized memory"}
	}
	value, err := ReadString(mem, offset)
	if err != nil {
		return "", err
	}
	if err := gas.SubWithMult(e, uint64(len(value)), rate); err != nil {
		return "", err
	}
	return value, nil
}

// AllocBytes copies data into a freshly allocated length-prefixed guest
// region and returns its offset.
func AllocBytes(e env.Env, data []byte) (uint32, error) {
	mem := e.Memory()
	if mem == nil {
		return 0, types.SetupError{Export: "memory", Msg: "uninitialized memory"}
	}
	offset, err := mem.Allocate(lengthPrefixSize + uint32(len(data)))
	if err != nil {
		return 0, err
	}
	prefix := make([]byte, lengthPrefixSize)
	binary.LittleEndian.PutUint32(prefix, uint32(len(data)))
	if err := mem.Write(offset, prefix); err != nil {
		return 0, err
	}
	if err := mem.Write(offset+lengthPrefixSize, data); err != nil {
		return 0, err
	}
	return offset, nil
}

// AllocString allocates value as a length-prefixed guest string.
func AllocString(e env.Env, value string) (uint32, error) {
	return AllocBytes(e, []byte(value))
}

// AllocUTF8 allocates raw as a guest string after validating it is UTF-8.
func AllocUTF8(e env.Env, raw []byte) (uint32, error) {
	if !utf8.Valid(raw) {
		return 0, types.MarshalError{Msg: "cannot allocate invalid UTF-8 as string"}
	}
	return AllocBytes(e, raw)
}

// AllocStringArray JSON-serializes items and allocates the result as a guest
// string.
func AllocStringArray(e env.Env, items []string) (uint32, error) {
	if items == nil {
		items = []string{}
	}
	serialized, err := json.Marshal(items)
	if err != nil {
		return 0, types.MarshalError{Msg: "cannot serialize string array", Err: err}
	}
	return AllocBytes(e, serialized)
}

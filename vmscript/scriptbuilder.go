// Copyright (c) 2013-2014 Conformal Systems LLC.
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vmscript

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// defaultScriptAlloc is the default size used for the backing array
	// for a script being built by the ScriptBuilder.  The array will
	// dynamically grow as needed, but this figure is intended to provide
	// enough space for the vast majority of scripts without needing to
	// grow the backing array multiple times.
	defaultScriptAlloc = 256
)

// ScriptBuilder provides a facility for building custom scripts.  It allows
// you to push opcodes, ints, data blobs, and system calls while respecting
// canonical encoding.  It does not ensure the script will execute
// correctly.
//
// For example, the following would build a 2-of-3 multisig script for
// usage in an account verification script (although in this situation
// MultiSigScript() would be a better choice to generate the script):
//
//	builder := vmscript.NewScriptBuilder()
//	builder.AddInt64(2).AddData(pubKey1).AddData(pubKey2).AddData(pubKey3)
//	builder.AddInt64(3).AddSyscall(vmscript.CheckMultiSigSyscall)
//	script, err := builder.Script()
//	if err != nil {
//		// Handle the error.
//		return
//	}
//	fmt.Printf("Final multi-sig script: %x\n", script)
type ScriptBuilder struct {
	script []byte
	err    error
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, opcode)
	return b
}

// AddOps pushes the passed opcodes to the end of the script.
func (b *ScriptBuilder) AddOps(opcodes []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	b.script = append(b.script, opcodes...)
	return b
}

// AddData pushes the passed data to the end of the script.  It
// automatically chooses the smallest push-data opcode that can represent
// the length of the data.  A zero length buffer leads to a push of empty
// data onto the stack (PUSHDATA1 with a zero length byte), while a nil
// buffer is rejected with ErrNilData before any bytes are emitted.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if data == nil {
		b.err = ErrNilData
		return b
	}

	dataLen := len(data)
	switch {
	case dataLen <= math.MaxUint8:
		b.script = append(b.script, OP_PUSHDATA1, byte(dataLen))

	case dataLen <= math.MaxUint16:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, OP_PUSHDATA2)
		b.script = append(b.script, buf...)

	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, OP_PUSHDATA4)
		b.script = append(b.script, buf...)
	}

	// Append the actual data.
	b.script = append(b.script, data...)

	return b
}

// AddInt64 pushes the passed integer to the end of the script using the
// smallest canonical encoding: the dedicated single-byte opcodes for the
// values -1 through 16 and a sized little-endian signed immediate
// otherwise.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	// Fast path for small integers and -1.
	if val == -1 || (val >= 0 && val <= 16) {
		b.script = append(b.script, byte(int64(OP_PUSH0)+val))
		return b
	}

	switch {
	case val >= math.MinInt8 && val <= math.MaxInt8:
		b.script = append(b.script, OP_PUSHINT8, byte(val))

	case val >= math.MinInt16 && val <= math.MaxInt16:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(val))
		b.script = append(b.script, OP_PUSHINT16)
		b.script = append(b.script, buf...)

	case val >= math.MinInt32 && val <= math.MaxInt32:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(val))
		b.script = append(b.script, OP_PUSHINT32)
		b.script = append(b.script, buf...)

	default:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(val))
		b.script = append(b.script, OP_PUSHINT64)
		b.script = append(b.script, buf...)
	}

	return b
}

// AddSyscall pushes a system call invocation of the named interop service
// to the end of the script: the SYSCALL opcode followed by the 4-byte
// identifier of the name.
func (b *ScriptBuilder) AddSyscall(name string) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if name == "" {
		b.err = fmt.Errorf("syscall with empty name")
		return b
	}

	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, InteropID(name))
	b.script = append(b.script, OP_SYSCALL)
	b.script = append(b.script, buf...)
	return b
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	b.err = nil
	return b
}

// Script returns the currently built script.  When any errors occurred
// while building the script, the script will be returned up to the point
// of the first error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}

// NewScriptBuilder returns a new instance of a script builder.  See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

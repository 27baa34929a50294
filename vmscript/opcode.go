// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vmscript

// These constants are the values of the official opcodes used on the wire
// by the target virtual machine.  Only the subset needed to build and
// recognize verification scripts is defined here.
const (
	OP_PUSHINT8   = 0x00 // 1-byte signed immediate
	OP_PUSHINT16  = 0x01 // 2-byte signed little-endian immediate
	OP_PUSHINT32  = 0x02 // 4-byte signed little-endian immediate
	OP_PUSHINT64  = 0x03 // 8-byte signed little-endian immediate
	OP_PUSHINT128 = 0x04 // 16-byte signed little-endian immediate
	OP_PUSHINT256 = 0x05 // 32-byte signed little-endian immediate
	OP_PUSHDATA1  = 0x0c // next byte is the data length
	OP_PUSHDATA2  = 0x0d // next 2 bytes are the data length
	OP_PUSHDATA4  = 0x0e // next 4 bytes are the data length
	OP_PUSHM1     = 0x0f // -1
	OP_PUSH0      = 0x10 // 0
	OP_PUSH1      = 0x11 // 1
	OP_PUSH2      = 0x12 // 2
	OP_PUSH3      = 0x13 // 3
	OP_PUSH4      = 0x14 // 4
	OP_PUSH5      = 0x15 // 5
	OP_PUSH6      = 0x16 // 6
	OP_PUSH7      = 0x17 // 7
	OP_PUSH8      = 0x18 // 8
	OP_PUSH9      = 0x19 // 9
	OP_PUSH10     = 0x1a // 10
	OP_PUSH11     = 0x1b // 11
	OP_PUSH12     = 0x1c // 12
	OP_PUSH13     = 0x1d // 13
	OP_PUSH14     = 0x1e // 14
	OP_PUSH15     = 0x1f // 15
	OP_PUSH16     = 0x20 // 16
	OP_RET        = 0x40 // return from the current context
	OP_SYSCALL    = 0x41 // invoke the named system call that follows
)

// isSmallIntOp returns whether or not the opcode is one of the dedicated
// single-byte push opcodes for the values -1 through 16.
func isSmallIntOp(op byte) bool {
	return op == OP_PUSHM1 || (op >= OP_PUSH0 && op <= OP_PUSH16)
}

// asSmallInt returns the numeric value the passed small integer push
// opcode represents.  It must only be called with an opcode for which
// isSmallIntOp returns true.
func asSmallInt(op byte) int {
	if op == OP_PUSHM1 {
		return -1
	}
	return int(op - OP_PUSH0)
}

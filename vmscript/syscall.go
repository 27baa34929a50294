// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vmscript

import (
	"crypto/sha256"
	"encoding/binary"
)

// Names of the system calls used by standard verification scripts.
const (
	// CheckSigSyscall verifies a single signature against the public key
	// on the evaluation stack.
	CheckSigSyscall = "System.Crypto.CheckSig"

	// CheckMultiSigSyscall verifies a set of signatures against a set of
	// public keys on the evaluation stack.
	CheckMultiSigSyscall = "System.Crypto.CheckMultisig"
)

// InteropID returns the 4-byte identifier of a named system call as a
// little-endian uint32.  The identifier is the first four bytes of the
// SHA-256 hash of the name, so writing the returned value out in
// little-endian order reproduces the hash prefix verbatim.
func InteropID(name string) uint32 {
	h := sha256.Sum256([]byte(name))
	return binary.LittleEndian.Uint32(h[:4])
}

var (
	checkSigID      = InteropID(CheckSigSyscall)
	checkMultiSigID = InteropID(CheckMultiSigSyscall)
)

// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calyxutil

import (
	"encoding/hex"
	"fmt"
)

// Uint160Size is the size of a script hash in bytes.
const Uint160Size = 20

// Uint160 is the 160-bit result of hashing a verification script.  It
// identifies an account on the network.
type Uint160 [Uint160Size]byte

// NewUint160 returns a Uint160 from a byte slice.  An error is returned if
// the slice is not exactly 20 bytes.
func NewUint160(b []byte) (Uint160, error) {
	var u Uint160
	if len(b) != Uint160Size {
		return u, fmt.Errorf("invalid Uint160 length of %d, want %d",
			len(b), Uint160Size)
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns a copy of the bytes which represent the hash.
func (u Uint160) Bytes() []byte {
	b := make([]byte, Uint160Size)
	copy(b, u[:])
	return b
}

// IsZero returns true if the hash is all zeroes.
func (u Uint160) IsZero() bool {
	return u == Uint160{}
}

// String returns the hash in the reversed hexadecimal form used for
// display, following the usual convention of printing hashes as
// big-endian quantities.
func (u Uint160) String() string {
	for i := 0; i < Uint160Size/2; i++ {
		u[i], u[Uint160Size-1-i] = u[Uint160Size-1-i], u[i]
	}
	return hex.EncodeToString(u[:])
}

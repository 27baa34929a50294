// Copyright (c) 2013-2014 Conformal Systems LLC.
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calyxutil

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Hash160 calculates the hash ripemd160(sha256(b)) and returns it as a
// Uint160.  This is the two-stage hash the network uses to derive an
// account identifier from a verification script.
func Hash160(buf []byte) Uint160 {
	var u Uint160
	h := ripemd160.New()
	h.Write(chainhash.HashB(buf))
	copy(u[:], h.Sum(nil))
	return u
}

// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package calyxutil provides the account identifier primitives shared by the
rest of the SDK: the 20-byte Uint160 script hash, the two-stage
RIPEMD-160(SHA-256) hash that produces it, and the Base58Check address
encoding built on top of it.
*/
package calyxutil

// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the serialized transaction attachments of the
protocol: witnesses and signers, together with the variable-length
integer and byte-blob codec every serialized structure shares.

A Witness pairs an invocation script (the signatures supplied at spend
time) with a verification script (the authorization logic).  A Signer
binds an account hash to a witness scope bitmask and, for the custom
scopes, allow-lists of contract hashes and group keys.  Transactions
carry one witness per signer in matching order; the transaction type
itself lives in the consuming layer.

All reads are bounds checked and fail with a MessageError on truncated
or malformed input rather than panicking.
*/
package wire

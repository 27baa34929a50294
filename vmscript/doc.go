// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package vmscript implements the verification-script engine of the SDK.

It assembles the exact instruction bytes the network virtual machine
executes to authorize a transaction, and it recognizes those scripts
again after the fact.  Two standard script shapes exist: single-signature
(one embedded compressed public key followed by a signature-check
syscall) and multi-signature (a threshold, 1 to 16 embedded keys in
canonical byte order, a key count, and a multisignature-check syscall).
Everything else is a valid but unrecognized script.

Building is done through ScriptBuilder, which chooses canonical push
opcodes, or through the higher level SigScript and MultiSigScript
helpers.  The Is* predicates probe raw bytes without ever failing, while
the Extract* accessors return an error for scripts that do not match a
recognized shape.
*/
package vmscript

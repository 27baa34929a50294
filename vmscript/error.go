// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vmscript

import "errors"

// Script building and extraction errors.
var (
	// ErrBadNumRequired is returned when the requested signature
	// threshold for a multisignature script is less than one or larger
	// than the number of keys provided.
	ErrBadNumRequired = errors.New("invalid number of required signatures")

	// ErrTooManyPubKeys is returned when more public keys are provided
	// for a multisignature script than the protocol limit of 16.
	ErrTooManyPubKeys = errors.New("too many public keys")

	// ErrMissingPubKey is returned when a nil public key is provided
	// where one is required.
	ErrMissingPubKey = errors.New("missing public key")

	// ErrNilData is returned by the script builder when asked to push a
	// nil data blob.  An empty, non-nil blob is a valid zero-length push.
	ErrNilData = errors.New("push of nil data")

	// ErrUnsupportedScript is returned by the extraction functions when
	// the passed script is neither a canonical single-signature nor a
	// canonical multisignature verification script.
	ErrUnsupportedScript = errors.New("unsupported verification script")
)

// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calyxutil

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// AddressVersion is the version byte prepended to a script hash before
// Base58Check encoding it into an address.
const AddressVersion byte = 0x35

// ErrUnknownAddressVersion describes an error where an address was decoded
// successfully but carries a version byte other than AddressVersion.
var ErrUnknownAddressVersion = errors.New("unknown address version")

// ErrMalformedAddress describes an error where an address decodes to a
// payload that is not a 20-byte script hash.
var ErrMalformedAddress = errors.New("malformed address payload")

// EncodeAddress encodes the passed script hash into the human-readable
// address form: Base58Check(version byte || 20-byte hash), where the
// checksum is the first four bytes of the double SHA-256 of the versioned
// payload.
func EncodeAddress(hash Uint160) string {
	return base58.CheckEncode(hash[:], AddressVersion)
}

// DecodeAddress decodes an address back into the script hash it encodes.
// The checksum, version byte, and payload length are all verified.
func DecodeAddress(addr string) (Uint160, error) {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return Uint160{}, err
	}
	if version != AddressVersion {
		return Uint160{}, ErrUnknownAddressVersion
	}
	if len(decoded) != Uint160Size {
		return Uint160{}, ErrMalformedAddress
	}
	return NewUint160(decoded)
}

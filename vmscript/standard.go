// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vmscript

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/calyxsuite/calyxsdk/calyxutil"
)

const (
	// CompressedPubKeyLen is the length in bytes of a compressed public
	// key embedded in a verification script.
	CompressedPubKeyLen = 33

	// MaxPubKeysPerMultiSig is the maximum number of public keys a
	// multisignature verification script may embed.  This is a hard
	// protocol limit.
	MaxPubKeysPerMultiSig = 16

	// SigScriptLen is the exact length in bytes of a single-signature
	// verification script: PUSHDATA1, a length byte, the 33-byte
	// compressed key, SYSCALL, and the 4-byte syscall identifier.
	SigScriptLen = 40
)

// PublicKey is the capability this package requires of an elliptic-curve
// public key: access to its canonical compressed (33-byte) and
// uncompressed (65-byte) encodings.  Key generation and curve arithmetic
// are external concerns.  *btcec.PublicKey satisfies this interface.
type PublicKey interface {
	// SerializeCompressed returns the 33-byte compressed encoding of
	// the key: a sign prefix byte followed by the x coordinate.
	SerializeCompressed() []byte

	// SerializeUncompressed returns the 65-byte uncompressed encoding
	// of the key.
	SerializeUncompressed() []byte
}

// ScriptClass is an enumeration for the list of standard verification
// script shapes.
type ScriptClass byte

// Classes of verification script shapes this package recognizes.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	SigTy                            // Single signature.
	MultiSigTy                       // Multi signature.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	SigTy:         "sig",
	MultiSigTy:    "multisig",
}

// String implements the Stringer interface by returning the name of the
// enum script class.  If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) > len(scriptClassToName) || int(t) < 0 {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// sortableKeyEncodings implements sort.Interface over compressed public
// key encodings.  Ordering is byte-wise lexicographic, which is the
// canonical ordering of keys inside a multisignature script: two
// independently built scripts for the same key set must be byte
// identical, so the embedded key order cannot depend on caller order.
type sortableKeyEncodings [][]byte

func (s sortableKeyEncodings) Len() int { return len(s) }

func (s sortableKeyEncodings) Less(i, j int) bool {
	return bytes.Compare(s[i], s[j]) < 0
}

func (s sortableKeyEncodings) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// compressedEncoding returns the compressed encoding of the passed key
// after validating it is present and of the expected length.
func compressedEncoding(pub PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, ErrMissingPubKey
	}
	enc := pub.SerializeCompressed()
	if len(enc) != CompressedPubKeyLen {
		return nil, fmt.Errorf("invalid compressed public key length "+
			"of %d, want %d", len(enc), CompressedPubKeyLen)
	}
	return enc, nil
}

// SigScript returns the single-signature verification script for the
// passed public key: a push of the 33-byte compressed key followed by the
// signature-check system call.  The result is always exactly
// SigScriptLen bytes and fully determined by the key.
func SigScript(pub PublicKey) ([]byte, error) {
	enc, err := compressedEncoding(pub)
	if err != nil {
		return nil, err
	}

	return NewScriptBuilder().AddData(enc).
		AddSyscall(CheckSigSyscall).Script()
}

// MultiSigScript returns a verification script for a multisignature
// account where nrequired of the keys in pubkeys are required to have
// signed the transaction for success.  The keys are embedded in canonical
// byte-wise order regardless of the order they are passed in, so the
// script and its hash are determined by the key set alone.
//
// An ErrBadNumRequired is returned when nrequired is not within
// [1, len(pubkeys)], an ErrTooManyPubKeys when more than 16 keys are
// provided, and an ErrMissingPubKey when any key is nil.
func MultiSigScript(pubkeys []PublicKey, nrequired int) ([]byte, error) {
	if nrequired < 1 || nrequired > len(pubkeys) {
		return nil, ErrBadNumRequired
	}
	if len(pubkeys) > MaxPubKeysPerMultiSig {
		return nil, ErrTooManyPubKeys
	}

	encoded := make(sortableKeyEncodings, 0, len(pubkeys))
	for _, pub := range pubkeys {
		enc, err := compressedEncoding(pub)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, enc)
	}
	sort.Sort(encoded)

	builder := NewScriptBuilder().AddInt64(int64(nrequired))
	for _, enc := range encoded {
		builder.AddData(enc)
	}
	builder.AddInt64(int64(len(encoded)))
	builder.AddSyscall(CheckMultiSigSyscall)

	return builder.Script()
}

// readPushInt parses a push-integer instruction at the given offset and
// returns the pushed value along with the offset of the next instruction.
// Both the dedicated single-byte opcodes for -1 through 16 and the sized
// signed little-endian immediates up to 64 bits are accepted.  The final
// return value is false when the bytes at the offset are not a
// push-integer instruction or the script is truncated.
func readPushInt(script []byte, offset int) (int64, int, bool) {
	if offset >= len(script) {
		return 0, 0, false
	}

	op := script[offset]
	if isSmallIntOp(op) {
		return int64(asSmallInt(op)), offset + 1, true
	}

	var size int
	switch op {
	case OP_PUSHINT8:
		size = 1
	case OP_PUSHINT16:
		size = 2
	case OP_PUSHINT32:
		size = 4
	case OP_PUSHINT64:
		size = 8
	default:
		return 0, 0, false
	}
	if offset+1+size > len(script) {
		return 0, 0, false
	}

	imm := script[offset+1:]
	var val int64
	switch size {
	case 1:
		val = int64(int8(imm[0]))
	case 2:
		val = int64(int16(binary.LittleEndian.Uint16(imm)))
	case 4:
		val = int64(int32(binary.LittleEndian.Uint32(imm)))
	case 8:
		val = int64(binary.LittleEndian.Uint64(imm))
	}
	return val, offset + 1 + size, true
}

// parseMultiSig attempts to parse the passed script as a canonical
// multisignature verification script.  On success it returns the
// signature threshold and the embedded compressed key encodings in
// on-script order.  Every deviation from the canonical form, including
// trailing bytes, yields ok=false.
func parseMultiSig(script []byte) (int, [][]byte, bool) {
	// Threshold first.  A zero or negative threshold, or one beyond the
	// protocol key limit, cannot occur in a canonical script.
	nrequired, offset, ok := readPushInt(script, 0)
	if !ok || nrequired < 1 || nrequired > MaxPubKeysPerMultiSig {
		return 0, nil, false
	}

	// Embedded keys: consecutive "PUSHDATA1 0x21 <33 bytes>" entries.
	var pubkeys [][]byte
	for offset+1 < len(script) && script[offset] == OP_PUSHDATA1 &&
		script[offset+1] == CompressedPubKeyLen {

		keyStart := offset + 2
		keyEnd := keyStart + CompressedPubKeyLen
		if keyEnd > len(script) {
			return 0, nil, false
		}
		pubkeys = append(pubkeys, script[keyStart:keyEnd])
		if len(pubkeys) > MaxPubKeysPerMultiSig {
			return 0, nil, false
		}
		offset = keyEnd
	}
	if len(pubkeys) == 0 || nrequired > int64(len(pubkeys)) {
		return 0, nil, false
	}

	// The declared key count must match the number of embedded keys
	// exactly.
	npubkeys, offset, ok := readPushInt(script, offset)
	if !ok || npubkeys != int64(len(pubkeys)) {
		return 0, nil, false
	}

	// The multisignature-check system call must be the final
	// instruction, with the cursor landing exactly at end of script.
	if offset+5 != len(script) || script[offset] != OP_SYSCALL {
		return 0, nil, false
	}
	if binary.LittleEndian.Uint32(script[offset+1:]) != checkMultiSigID {
		return 0, nil, false
	}

	return int(nrequired), pubkeys, true
}

// IsSigScript returns whether or not the passed script is a canonical
// single-signature verification script.  It matches the exact 40-byte
// template and never returns an error: any deviation, including a nil or
// empty script, simply yields false.
func IsSigScript(script []byte) bool {
	if len(script) != SigScriptLen {
		return false
	}
	return script[0] == OP_PUSHDATA1 &&
		script[1] == CompressedPubKeyLen &&
		script[35] == OP_SYSCALL &&
		binary.LittleEndian.Uint32(script[36:40]) == checkSigID
}

// IsMultiSigScript returns whether or not the passed script is a
// canonical multisignature verification script.  It never returns an
// error: any deviation, including a nil or empty script, simply yields
// false.  Note that a 1-of-1 multisignature script is a valid
// multisignature script and not a single-signature one.
func IsMultiSigScript(script []byte) bool {
	_, _, ok := parseMultiSig(script)
	return ok
}

// GetScriptClass returns the class of the script passed.  NonStandardTy
// will be returned when the script is neither a single-signature nor a
// multisignature verification script.
func GetScriptClass(script []byte) ScriptClass {
	switch {
	case IsSigScript(script):
		return SigTy
	case IsMultiSigScript(script):
		return MultiSigTy
	}
	return NonStandardTy
}

// ExtractThreshold returns the number of signatures required by the
// passed verification script: one for a single-signature script and the
// embedded threshold for a multisignature script.  ErrUnsupportedScript
// is returned for anything else.
func ExtractThreshold(script []byte) (int, error) {
	if IsSigScript(script) {
		return 1, nil
	}
	if nrequired, _, ok := parseMultiSig(script); ok {
		return nrequired, nil
	}
	return 0, ErrUnsupportedScript
}

// ExtractPubKeys returns the compressed public key encodings embedded in
// the passed verification script, in on-script order.  For a
// multisignature script that order is the canonical byte-wise one.
// ErrUnsupportedScript is returned when the script is not of a
// recognized shape.
func ExtractPubKeys(script []byte) ([][]byte, error) {
	if IsSigScript(script) {
		pubkey := make([]byte, CompressedPubKeyLen)
		copy(pubkey, script[2:2+CompressedPubKeyLen])
		return [][]byte{pubkey}, nil
	}

	if _, pubkeys, ok := parseMultiSig(script); ok {
		result := make([][]byte, len(pubkeys))
		for i, pubkey := range pubkeys {
			result[i] = make([]byte, CompressedPubKeyLen)
			copy(result[i], pubkey)
		}
		return result, nil
	}

	return nil, ErrUnsupportedScript
}

// ScriptHash returns the 20-byte account hash of the passed verification
// script: RIPEMD-160 of the SHA-256 of the script bytes.
func ScriptHash(script []byte) calyxutil.Uint160 {
	return calyxutil.Hash160(script)
}

// ScriptAddress returns the Base58Check address form of the passed
// verification script's hash.
func ScriptAddress(script []byte) string {
	return calyxutil.EncodeAddress(ScriptHash(script))
}

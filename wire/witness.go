// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/calyxsuite/calyxsdk/calyxutil"
	"github.com/calyxsuite/calyxsdk/vmscript"
)

// MaxScriptLen is the maximum length in bytes either half of a witness
// may declare during deserialization.
const MaxScriptLen = 65536

// Witness pairs the invocation script supplied at spend time, typically
// pushed signatures, with the verification script holding the
// authorization logic it satisfies.  Either half may be empty; absence is
// represented as zero length, never as a missing field.  A witness is
// constructed once and not mutated afterwards.
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// NewWitness returns a new witness for the passed invocation and
// verification scripts.  Nil slices are normalized to empty scripts so
// serialization always has a concrete zero length to write.
func NewWitness(invocation, verification []byte) *Witness {
	if invocation == nil {
		invocation = []byte{}
	}
	if verification == nil {
		verification = []byte{}
	}
	return &Witness{
		InvocationScript:   invocation,
		VerificationScript: verification,
	}
}

// NewWitnessFromSignature synthesizes the witness for a single-signature
// account: the invocation script is a push of the signature and the
// verification script is the single-signature script for the passed
// public key.
func NewWitnessFromSignature(sig []byte, pub vmscript.PublicKey) (*Witness, error) {
	invocation, err := vmscript.NewScriptBuilder().AddData(sig).Script()
	if err != nil {
		return nil, err
	}
	verification, err := vmscript.SigScript(pub)
	if err != nil {
		return nil, err
	}
	return &Witness{
		InvocationScript:   invocation,
		VerificationScript: verification,
	}, nil
}

// Serialize encodes the witness to w as the var-bytes framed invocation
// script followed by the var-bytes framed verification script.
func (wit *Witness) Serialize(w io.Writer) error {
	err := WriteVarBytes(w, wit.InvocationScript)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, wit.VerificationScript)
}

// Deserialize decodes a witness from r.  Truncated input surfaces as an
// io error and an oversized declared length as a MessageError; in either
// case the witness fields are unspecified.
func (wit *Witness) Deserialize(r io.Reader) error {
	invocation, err := ReadVarBytes(r, MaxScriptLen, "invocation script")
	if err != nil {
		return err
	}

	verification, err := ReadVarBytes(r, MaxScriptLen, "verification script")
	if err != nil {
		return err
	}

	wit.InvocationScript = invocation
	wit.VerificationScript = verification
	return nil
}

// SerializeSize returns the number of bytes it would take to serialize
// the witness: the var-int framed size of each half, summed.
func (wit *Witness) SerializeSize() int {
	return VarIntSerializeSize(uint64(len(wit.InvocationScript))) +
		len(wit.InvocationScript) +
		VarIntSerializeSize(uint64(len(wit.VerificationScript))) +
		len(wit.VerificationScript)
}

// Copy creates a deep copy of the witness so the original and its scripts
// remain unchanged when the copy is manipulated.
func (wit *Witness) Copy() *Witness {
	newWit := Witness{
		InvocationScript:   make([]byte, len(wit.InvocationScript)),
		VerificationScript: make([]byte, len(wit.VerificationScript)),
	}
	copy(newWit.InvocationScript, wit.InvocationScript)
	copy(newWit.VerificationScript, wit.VerificationScript)
	return &newWit
}

// ScriptHash returns the account hash of the witness' verification
// script, which is the account the witness authorizes.
func (wit *Witness) ScriptHash() calyxutil.Uint160 {
	return vmscript.ScriptHash(wit.VerificationScript)
}

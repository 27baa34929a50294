// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/davecgh/go-spew/spew"

	"github.com/calyxsuite/calyxsdk/wire"
)

// testPubKey deterministically derives a public key from a small scalar
// so tests have stable key material without embedding full keys.
func testPubKey(t *testing.T, scalar byte) *btcec.PublicKey {
	t.Helper()

	var priv [32]byte
	priv[31] = scalar
	_, pub := btcec.PrivKeyFromBytes(priv[:])
	return pub
}

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants
// so errors in the source code can be detected.  It will only (and must
// only) be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// sigScriptKey1 is the single-signature verification script for the
// test key with scalar 1.
var sigScriptKey1 = hexToBytes("0c210279be667ef9dcbbac55a06295ce870b0702" +
	"9bfcdb2dce28d959f2815b16f817984156e7b327")

// TestWitnessSerialize tests serialization and deserialization of
// witnesses against known byte sequences, including witnesses with one or
// both scripts empty.
func TestWitnessSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wit  *wire.Witness
		buf  []byte // Serialized form
	}{
		{
			name: "both scripts empty",
			wit:  wire.NewWitness(nil, nil),
			buf:  []byte{0x00, 0x00},
		},
		{
			name: "empty invocation",
			wit:  wire.NewWitness(nil, []byte{0x40}),
			buf:  []byte{0x00, 0x01, 0x40},
		},
		{
			name: "empty verification",
			wit:  wire.NewWitness([]byte{0x0c, 0x00}, nil),
			buf:  []byte{0x02, 0x0c, 0x00, 0x00},
		},
		{
			name: "single-signature shape",
			wit: wire.NewWitness([]byte{0x0c, 0x02, 0x01, 0x02},
				sigScriptKey1),
			buf: append(append([]byte{0x04, 0x0c, 0x02, 0x01, 0x02},
				0x28), sigScriptKey1...),
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Serialize and check against the expected bytes.
		var buf bytes.Buffer
		err := test.wit.Serialize(&buf)
		if err != nil {
			t.Errorf("Serialize #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("Serialize #%d (%s)\n got: %s want: %s", i,
				test.name, spew.Sdump(buf.Bytes()),
				spew.Sdump(test.buf))
			continue
		}
		if test.wit.SerializeSize() != len(test.buf) {
			t.Errorf("SerializeSize #%d (%s) got: %d, want: %d", i,
				test.name, test.wit.SerializeSize(), len(test.buf))
			continue
		}

		// Deserialize and ensure the round trip reproduces the
		// original witness.
		var wit wire.Witness
		err = wit.Deserialize(bytes.NewReader(test.buf))
		if err != nil {
			t.Errorf("Deserialize #%d (%s) error %v", i, test.name,
				err)
			continue
		}
		if !reflect.DeepEqual(&wit, test.wit) {
			t.Errorf("Deserialize #%d (%s)\n got: %s want: %s", i,
				test.name, spew.Sdump(&wit), spew.Sdump(test.wit))
			continue
		}
	}
}

// TestWitnessDeserializeErrors performs negative tests against witness
// deserialization to confirm truncated and oversized input fail with the
// expected errors.
func TestWitnessDeserializeErrors(t *testing.T) {
	t.Parallel()

	// Truncated at various points.
	truncated := [][]byte{
		{},
		{0x02, 0x0c},
		{0x02, 0x0c, 0x00},
		{0x00, 0x05, 0x01},
	}
	for i, buf := range truncated {
		var wit wire.Witness
		err := wit.Deserialize(bytes.NewReader(buf))
		if err == nil {
			t.Errorf("Deserialize truncated #%d succeeded", i)
		}
	}

	// Declared script length beyond the maximum.
	oversize := []byte{0xfe, 0x01, 0x00, 0x02, 0x00} // 0x20001 bytes
	var wit wire.Witness
	err := wit.Deserialize(bytes.NewReader(oversize))
	if _, ok := err.(*wire.MessageError); !ok {
		t.Errorf("Deserialize oversize wrong error got: %v", err)
	}
}

// TestNewWitnessFromSignature ensures the synthesized witness pairs a
// push of the signature with the single-signature script of the key.
func TestNewWitnessFromSignature(t *testing.T) {
	t.Parallel()

	pub := testPubKey(t, 1)
	sig := bytes.Repeat([]byte{0x42}, 64)

	wit, err := wire.NewWitnessFromSignature(sig, pub)
	if err != nil {
		t.Fatalf("NewWitnessFromSignature error %v", err)
	}

	wantInvocation := append([]byte{0x0c, 0x40}, sig...)
	if !bytes.Equal(wit.InvocationScript, wantInvocation) {
		t.Errorf("invocation script\n got: %s want: %s",
			spew.Sdump(wit.InvocationScript),
			spew.Sdump(wantInvocation))
	}
	if !bytes.Equal(wit.VerificationScript, sigScriptKey1) {
		t.Errorf("verification script\n got: %s want: %s",
			spew.Sdump(wit.VerificationScript),
			spew.Sdump(sigScriptKey1))
	}

	// The witness authorizes the account of its verification script.
	wantHash := "7cefde0ee88d71bbcf936425d8a6032c9bbc6ae8"
	if hex.EncodeToString(wit.ScriptHash().Bytes()) != wantHash {
		t.Errorf("script hash got: %x, want: %s",
			wit.ScriptHash().Bytes(), wantHash)
	}

	// A nil signature and a nil key are argument errors.
	if _, err := wire.NewWitnessFromSignature(nil, pub); err == nil {
		t.Error("NewWitnessFromSignature accepted a nil signature")
	}
	if _, err := wire.NewWitnessFromSignature(sig, nil); err == nil {
		t.Error("NewWitnessFromSignature accepted a nil key")
	}
}

// TestWitnessCopy ensures a copied witness shares no bytes with the
// original.
func TestWitnessCopy(t *testing.T) {
	t.Parallel()

	wit := wire.NewWitness([]byte{0x0c, 0x01, 0xaa}, sigScriptKey1)
	witCopy := wit.Copy()

	if !reflect.DeepEqual(wit, witCopy) {
		t.Fatalf("copy differs\n got: %s want: %s",
			spew.Sdump(witCopy), spew.Sdump(wit))
	}

	witCopy.InvocationScript[0] ^= 0xff
	witCopy.VerificationScript[0] ^= 0xff
	if wit.InvocationScript[0] == witCopy.InvocationScript[0] {
		t.Error("copy shares the invocation script backing array")
	}
	if wit.VerificationScript[0] == witCopy.VerificationScript[0] {
		t.Error("copy shares the verification script backing array")
	}
}

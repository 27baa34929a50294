// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package calyxutil_test

import (
	"encoding/hex"
	"testing"

	"github.com/calyxsuite/calyxsdk/calyxutil"
)

// TestHash160 ensures the two-stage ripemd160(sha256(b)) hash produces
// known values.
func TestHash160(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string // hex-encoded input
		want string // hex-encoded expected hash
	}{
		{
			name: "empty input",
			in:   "",
			want: "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb",
		},
		{
			name: "single-signature verification script",
			in: "0c210279be667ef9dcbbac55a06295ce870b07029bfcdb2d" +
				"ce28d959f2815b16f817984156e7b327",
			want: "7cefde0ee88d71bbcf936425d8a6032c9bbc6ae8",
		},
	}

	for i, test := range tests {
		in, err := hex.DecodeString(test.in)
		if err != nil {
			t.Fatalf("bad test input #%d (%s): %v", i, test.name, err)
		}
		got := calyxutil.Hash160(in)
		if hex.EncodeToString(got.Bytes()) != test.want {
			t.Errorf("Hash160 #%d (%s) wrong result\ngot:  %x\n"+
				"want: %s", i, test.name, got.Bytes(), test.want)
		}
	}
}

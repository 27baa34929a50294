// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"strconv"
	"strings"
)

// WitnessScope is a bitmask limiting which contract contexts may rely on
// a signer's witness.  Scopes combine by bitwise OR with the exception of
// ScopeGlobal, which is mutually exclusive with every other scope.
type WitnessScope byte

const (
	// ScopeNone restricts the witness to transaction-level actions only:
	// it signs the transaction (e.g. to pay the fee) but witnesses no
	// contract.
	ScopeNone WitnessScope = 0x00

	// ScopeCalledByEntry makes the witness valid only when the checking
	// contract is called from the transaction's entry script.
	ScopeCalledByEntry WitnessScope = 0x01

	// ScopeCustomContracts makes the witness valid only for the contract
	// hashes in the signer's allowed-contracts list.
	ScopeCustomContracts WitnessScope = 0x10

	// ScopeCustomGroups makes the witness valid only for contracts
	// belonging to a group key in the signer's allowed-groups list.
	ScopeCustomGroups WitnessScope = 0x20

	// ScopeWitnessRules makes the witness governed by a set of
	// rule-based conditions carried alongside the signer.
	ScopeWitnessRules WitnessScope = 0x40

	// ScopeGlobal allows the witness in all contexts.  It cannot be
	// combined with any other scope.
	ScopeGlobal WitnessScope = 0x80
)

// orderedScopeStrings houses the scope flags in ascending bit-value
// order, which is both the String output order and the ExtractScopes
// result order.
var orderedScopeStrings = []struct {
	scope WitnessScope
	name  string
}{
	{ScopeCalledByEntry, "CalledByEntry"},
	{ScopeCustomContracts, "CustomContracts"},
	{ScopeCustomGroups, "CustomGroups"},
	{ScopeWitnessRules, "WitnessRules"},
	{ScopeGlobal, "Global"},
}

// knownScopes is the mask of every defined scope bit.
const knownScopes = ScopeCalledByEntry | ScopeCustomContracts |
	ScopeCustomGroups | ScopeWitnessRules | ScopeGlobal

// CombineScopes returns the bitwise OR of all passed scopes.  It is used
// to describe a signer's effective scope from multiple requested
// capabilities.  Note that it performs no validation, so combining
// ScopeGlobal with anything else produces a byte ScopesFromByte rejects.
func CombineScopes(scopes ...WitnessScope) WitnessScope {
	var combined WitnessScope
	for _, s := range scopes {
		combined |= s
	}
	return combined
}

// ExtractScopes decomposes a combined scope byte into its set bits, in
// ascending bit-value order.  ScopeNone yields an empty slice since it
// sets no bits.
func ExtractScopes(s WitnessScope) []WitnessScope {
	extracted := make([]WitnessScope, 0, len(orderedScopeStrings))
	for _, flag := range orderedScopeStrings {
		if s&flag.scope == flag.scope {
			extracted = append(extracted, flag.scope)
		}
	}
	return extracted
}

// ScopesFromByte converts a raw scope byte into a WitnessScope,
// validating the combination rules: no undefined bits may be set, and
// ScopeGlobal may not be combined with any other scope.
func ScopesFromByte(b byte) (WitnessScope, error) {
	s := WitnessScope(b)
	if s&^knownScopes != 0 {
		return 0, messageError("ScopesFromByte",
			"unknown witness scope bits set")
	}
	if s&ScopeGlobal == ScopeGlobal && s != ScopeGlobal {
		return 0, messageError("ScopesFromByte",
			"global scope cannot be combined with other scopes")
	}
	return s, nil
}

// String returns the WitnessScope in human-readable form.
func (s WitnessScope) String() string {
	if s == ScopeNone {
		return "None"
	}

	// Add individual bit flags.
	str := ""
	for _, flag := range orderedScopeStrings {
		if s&flag.scope == flag.scope {
			str += flag.name + "|"
			s -= flag.scope
		}
	}

	// Add any remaining flags which aren't accounted for as hex.
	str = strings.TrimRight(str, "|")
	if s != 0 {
		str += "|0x" + strconv.FormatUint(uint64(s), 16)
	}
	str = strings.TrimLeft(str, "|")
	return str
}

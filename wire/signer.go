// Copyright (c) 2024-2026 The calyxsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/calyxsuite/calyxsdk/calyxutil"
	"github.com/calyxsuite/calyxsdk/vmscript"
)

// MaxSignerSubitems is the maximum number of entries either of a
// signer's allow-lists may hold.  This is a hard protocol limit, not a
// soft default.
const MaxSignerSubitems = 16

// Signer mutation errors.
var (
	// ErrGlobalScope is returned when an allow-list is set on a signer
	// whose scope includes ScopeGlobal, which admits no restriction.
	ErrGlobalScope = errors.New("global scope does not admit allow-lists")

	// ErrTooManySubitems is returned when an allow-list of more than
	// MaxSignerSubitems entries is set on a signer.
	ErrTooManySubitems = errors.New("too many allow-list entries")

	// ErrMissingGroupKey is returned when a nil public key appears in an
	// allowed-groups list.
	ErrMissingGroupKey = errors.New("missing group public key")
)

// Signer binds an account to a witness scope and, only when the
// corresponding scope bits are set, allow-lists of contract hashes and
// group public keys.  A transaction owns zero or more signers and a
// parallel list of witnesses in matching order.
//
// The allow-lists are the one mutable surface of the type.  Each
// mutation validates first and swaps the full list on success, so a
// failed call leaves the signer in its prior state.  Concurrent mutation
// of the same signer must be serialized by the caller.
type Signer struct {
	// Account is the hash of the signer's verification script.
	Account calyxutil.Uint160

	// Scopes is the set of witness scope flags of the signer.
	Scopes WitnessScope

	// AllowedContracts holds the contract hashes the witness may be
	// relied on by.  Only non-empty when ScopeCustomContracts is set.
	AllowedContracts []calyxutil.Uint160

	// AllowedGroups holds the 33-byte compressed group keys whose
	// contracts the witness may be relied on by.  Only non-empty when
	// ScopeCustomGroups is set.
	AllowedGroups [][]byte
}

// NewSigner returns a new signer for the passed account with the given
// initial scope, commonly ScopeNone, ScopeCalledByEntry, or ScopeGlobal.
// Invalid scope combinations are rejected.
func NewSigner(account calyxutil.Uint160, scopes WitnessScope) (*Signer, error) {
	validated, err := ScopesFromByte(byte(scopes))
	if err != nil {
		return nil, err
	}
	return &Signer{Account: account, Scopes: validated}, nil
}

// HasScope returns whether or not every bit of the passed scope is set
// on the signer.
func (s *Signer) HasScope(scope WitnessScope) bool {
	return s.Scopes&scope == scope
}

// SetAllowedContracts restricts the signer's witness to the passed
// contract hashes.  It ORs ScopeCustomContracts into the scope and
// replaces the allow-list atomically.  An error is returned, with the
// signer unchanged, when the current scope includes ScopeGlobal or the
// list exceeds MaxSignerSubitems entries.
func (s *Signer) SetAllowedContracts(contracts []calyxutil.Uint160) error {
	if s.HasScope(ScopeGlobal) {
		return ErrGlobalScope
	}
	if len(contracts) > MaxSignerSubitems {
		return ErrTooManySubitems
	}

	list := make([]calyxutil.Uint160, len(contracts))
	copy(list, contracts)

	s.Scopes |= ScopeCustomContracts
	s.AllowedContracts = list
	return nil
}

// SetAllowedGroups restricts the signer's witness to contracts belonging
// to the passed group keys.  It ORs ScopeCustomGroups into the scope and
// replaces the allow-list atomically.  An error is returned, with the
// signer unchanged, when the current scope includes ScopeGlobal, the
// list exceeds MaxSignerSubitems entries, or any key is nil.
func (s *Signer) SetAllowedGroups(groups []vmscript.PublicKey) error {
	if s.HasScope(ScopeGlobal) {
		return ErrGlobalScope
	}
	if len(groups) > MaxSignerSubitems {
		return ErrTooManySubitems
	}

	list := make([][]byte, len(groups))
	for i, pub := range groups {
		if pub == nil {
			return ErrMissingGroupKey
		}
		enc := pub.SerializeCompressed()
		if len(enc) != vmscript.CompressedPubKeyLen {
			return fmt.Errorf("invalid group key length of %d, want %d",
				len(enc), vmscript.CompressedPubKeyLen)
		}
		list[i] = enc
	}

	s.Scopes |= ScopeCustomGroups
	s.AllowedGroups = list
	return nil
}

// IsContractAllowed returns whether or not a witness scoped to this
// signer may be relied on by the passed contract.  It is always false
// when ScopeCustomContracts is unset, regardless of list contents.
func (s *Signer) IsContractAllowed(contract calyxutil.Uint160) bool {
	if !s.HasScope(ScopeCustomContracts) {
		return false
	}
	for _, allowed := range s.AllowedContracts {
		if allowed == contract {
			return true
		}
	}
	return false
}

// IsGroupAllowed returns whether or not a witness scoped to this signer
// may be relied on by contracts of the passed group.  It is always false
// when ScopeCustomGroups is unset, regardless of list contents.
func (s *Signer) IsGroupAllowed(pub vmscript.PublicKey) bool {
	if pub == nil || !s.HasScope(ScopeCustomGroups) {
		return false
	}
	enc := pub.SerializeCompressed()
	for _, allowed := range s.AllowedGroups {
		if bytes.Equal(allowed, enc) {
			return true
		}
	}
	return false
}

// Serialize encodes the signer to w: the 20-byte account hash, one scope
// byte, and then, only for the scope bits that are set, a var-int count
// followed by that many 20-byte contract hashes and/or 33-byte group
// keys, contracts before groups.
func (s *Signer) Serialize(w io.Writer) error {
	_, err := w.Write(s.Account[:])
	if err != nil {
		return err
	}
	_, err = w.Write([]byte{byte(s.Scopes)})
	if err != nil {
		return err
	}

	if s.HasScope(ScopeCustomContracts) {
		err = WriteVarInt(w, uint64(len(s.AllowedContracts)))
		if err != nil {
			return err
		}
		for _, contract := range s.AllowedContracts {
			_, err = w.Write(contract[:])
			if err != nil {
				return err
			}
		}
	}

	if s.HasScope(ScopeCustomGroups) {
		err = WriteVarInt(w, uint64(len(s.AllowedGroups)))
		if err != nil {
			return err
		}
		for _, group := range s.AllowedGroups {
			_, err = w.Write(group)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Deserialize decodes a signer from r, enforcing the scope combination
// rules and the MaxSignerSubitems cap on each allow-list.
func (s *Signer) Deserialize(r io.Reader) error {
	var account [calyxutil.Uint160Size]byte
	_, err := io.ReadFull(r, account[:])
	if err != nil {
		return err
	}

	var scopeByte [1]byte
	_, err = io.ReadFull(r, scopeByte[:])
	if err != nil {
		return err
	}
	scopes, err := ScopesFromByte(scopeByte[0])
	if err != nil {
		return err
	}

	var contracts []calyxutil.Uint160
	if scopes&ScopeCustomContracts == ScopeCustomContracts {
		count, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		if count > MaxSignerSubitems {
			return messageError("Signer.Deserialize", fmt.Sprintf(
				"allowed contract count %d exceeds max %d",
				count, MaxSignerSubitems))
		}
		contracts = make([]calyxutil.Uint160, count)
		for i := range contracts {
			_, err = io.ReadFull(r, contracts[i][:])
			if err != nil {
				return err
			}
		}
	}

	var groups [][]byte
	if scopes&ScopeCustomGroups == ScopeCustomGroups {
		count, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		if count > MaxSignerSubitems {
			return messageError("Signer.Deserialize", fmt.Sprintf(
				"allowed group count %d exceeds max %d",
				count, MaxSignerSubitems))
		}
		groups = make([][]byte, count)
		for i := range groups {
			groups[i] = make([]byte, vmscript.CompressedPubKeyLen)
			_, err = io.ReadFull(r, groups[i])
			if err != nil {
				return err
			}
		}
	}

	s.Account = account
	s.Scopes = scopes
	s.AllowedContracts = contracts
	s.AllowedGroups = groups
	return nil
}

// SerializeSize returns the number of bytes it would take to serialize
// the signer.
func (s *Signer) SerializeSize() int {
	n := calyxutil.Uint160Size + 1

	if s.HasScope(ScopeCustomContracts) {
		n += VarIntSerializeSize(uint64(len(s.AllowedContracts)))
		n += len(s.AllowedContracts) * calyxutil.Uint160Size
	}
	if s.HasScope(ScopeCustomGroups) {
		n += VarIntSerializeSize(uint64(len(s.AllowedGroups)))
		n += len(s.AllowedGroups) * vmscript.CompressedPubKeyLen
	}

	return n
}

// Copy creates a deep copy of the signer so the original remains
// unchanged when the copy is mutated.
func (s *Signer) Copy() *Signer {
	newSigner := Signer{
		Account: s.Account,
		Scopes:  s.Scopes,
	}
	if s.AllowedContracts != nil {
		newSigner.AllowedContracts = make([]calyxutil.Uint160,
			len(s.AllowedContracts))
		copy(newSigner.AllowedContracts, s.AllowedContracts)
	}
	if s.AllowedGroups != nil {
		newSigner.AllowedGroups = make([][]byte, len(s.AllowedGroups))
		for i, group := range s.AllowedGroups {
			newSigner.AllowedGroups[i] = make([]byte, len(group))
			copy(newSigner.AllowedGroups[i], group)
		}
	}
	return &newSigner
}
